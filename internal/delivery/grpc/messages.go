package grpc

import "inventory_dashboard/internal/domain"

type ListProductsRequest struct {
	Search    string `json:"search,omitempty"`
	Warehouse string `json:"warehouse,omitempty"`
	Status    string `json:"status,omitempty"`
	Page      int64  `json:"page,omitempty"`
	PageSize  int64  `json:"pageSize,omitempty"`
	ClampPage bool   `json:"clampPage,omitempty"`
}

type ListProductsResponse struct {
	Products   []domain.Product `json:"products"`
	Page       int64            `json:"page"`
	PageSize   int64            `json:"pageSize"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int64            `json:"totalPages"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type ListWarehousesRequest struct{}

type ListWarehousesResponse struct {
	Warehouses []domain.Warehouse `json:"warehouses"`
}

type GetChartDataRequest struct {
	Range string `json:"range"`
}

type GetChartDataResponse struct {
	Points []domain.ChartDataPoint `json:"points"`
}

type GetKPIsRequest struct{}

type UpdateProductDemandRequest struct {
	ProductID string `json:"productId"`
	NewDemand int64  `json:"newDemand"`
}

type TransferStockRequest struct {
	ProductID            string `json:"productId"`
	Quantity             int64  `json:"quantity"`
	DestinationWarehouse string `json:"destinationWarehouse"`
}
