package grpc

import (
	"context"
	"errors"
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/middleware"
	"inventory_dashboard/internal/usecase"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ErrorDomain = "inventory.dashboard"

	ReasonNotFound          = "NOT_FOUND"
	ReasonInsufficientStock = "INSUFFICIENT_STOCK"
	ReasonInvalidInput      = "INVALID_INPUT"
)

type InventoryHandler struct {
	productUseCase   usecase.ProductUseCase
	dashboardUseCase usecase.DashboardUseCase
	mutationDelay    time.Duration
	log              *logrus.Logger
}

var _ InventoryServiceServer = (*InventoryHandler)(nil)

func NewInventoryHandler(puc usecase.ProductUseCase, duc usecase.DashboardUseCase, mutationDelay time.Duration, logger *logrus.Logger) *InventoryHandler {
	return &InventoryHandler{
		productUseCase:   puc,
		dashboardUseCase: duc,
		mutationDelay:    mutationDelay,
		log:              logger,
	}
}

func (h *InventoryHandler) ListProducts(ctx context.Context, req *ListProductsRequest) (*ListProductsResponse, error) {
	h.log.Infof("gRPC Handler: Received ListProducts request: Search=%q, Warehouse=%q, Status=%q, Page=%d, PageSize=%d",
		req.Search, req.Warehouse, req.Status, req.Page, req.PageSize)

	page, err := h.productUseCase.ListProducts(ctx, domain.ProductQuery{
		Search:    req.Search,
		Warehouse: req.Warehouse,
		Status:    domain.Status(req.Status),
		Page:      int(req.Page),
		PageSize:  int(req.PageSize),
		ClampPage: req.ClampPage,
	})
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	h.log.Infof("gRPC Handler: Listed %d products successfully", len(page.Items))
	return &ListProductsResponse{
		Products:   page.Items,
		Page:       int64(page.Page),
		PageSize:   int64(page.PageSize),
		TotalItems: int64(page.TotalItems),
		TotalPages: int64(page.TotalPages),
	}, nil
}

func (h *InventoryHandler) GetProduct(ctx context.Context, req *GetProductRequest) (*domain.Product, error) {
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%s", req.ID)
	if req.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "Product ID is required")
	}
	product, err := h.productUseCase.GetProduct(ctx, req.ID)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %s: %v", req.ID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return product, nil
}

func (h *InventoryHandler) ListWarehouses(ctx context.Context, _ *ListWarehousesRequest) (*ListWarehousesResponse, error) {
	h.log.Info("gRPC Handler: Received ListWarehouses request")
	warehouses, err := h.dashboardUseCase.ListWarehouses(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListWarehouses use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &ListWarehousesResponse{Warehouses: warehouses}, nil
}

func (h *InventoryHandler) GetChartData(ctx context.Context, req *GetChartDataRequest) (*GetChartDataResponse, error) {
	h.log.Infof("gRPC Handler: Received GetChartData request: Range=%s", req.Range)
	r, err := domain.ParseChartRange(req.Range)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	points, err := h.dashboardUseCase.GetChartData(ctx, r)
	if err != nil {
		h.log.Errorf("gRPC Handler: GetChartData use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &GetChartDataResponse{Points: points}, nil
}

func (h *InventoryHandler) GetKPIs(ctx context.Context, _ *GetKPIsRequest) (*domain.KPI, error) {
	h.log.Info("gRPC Handler: Received GetKPIs request")
	kpi, err := h.dashboardUseCase.GetKPIs(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: GetKPIs use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return kpi, nil
}

func (h *InventoryHandler) UpdateProductDemand(ctx context.Context, req *UpdateProductDemandRequest) (*domain.Product, error) {
	h.log.Infof("gRPC Handler: Received UpdateProductDemand request: ID=%s, NewDemand=%d", req.ProductID, req.NewDemand)
	if err := middleware.Sleep(ctx, h.mutationDelay); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	product, err := h.productUseCase.UpdateDemand(ctx, req.ProductID, int(req.NewDemand))
	if err != nil {
		h.log.Warnf("gRPC Handler: UpdateProductDemand use case error for ID %s: %v", req.ProductID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	h.log.Infof("gRPC Handler: Demand updated successfully: ID=%s", product.ID)
	return product, nil
}

func (h *InventoryHandler) TransferStock(ctx context.Context, req *TransferStockRequest) (*domain.Product, error) {
	h.log.Infof("gRPC Handler: Received TransferStock request: ID=%s, Quantity=%d, Destination=%s",
		req.ProductID, req.Quantity, req.DestinationWarehouse)
	if err := middleware.Sleep(ctx, h.mutationDelay); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	product, err := h.productUseCase.TransferStock(ctx, req.ProductID, int(req.Quantity), req.DestinationWarehouse)
	if err != nil {
		h.log.Warnf("gRPC Handler: TransferStock use case error for ID %s: %v", req.ProductID, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	h.log.Infof("gRPC Handler: Stock transferred successfully: ID=%s", product.ID)
	return product, nil
}

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}

	var code codes.Code
	var reason string
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code, reason = codes.NotFound, ReasonNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		code, reason = codes.FailedPrecondition, ReasonInsufficientStock
	case errors.Is(err, domain.ErrInvalidInput):
		code, reason = codes.InvalidArgument, ReasonInvalidInput
	default:
		return status.Errorf(codes.Internal, "Internal server error: %v", err)
	}

	st := status.New(code, err.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: reason,
		Domain: ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}
