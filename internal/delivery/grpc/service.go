package grpc

import (
	"context"
	"fmt"
	"inventory_dashboard/internal/domain"

	"google.golang.org/grpc"
)

const ServiceName = "inventory.v1.InventoryService"

// InventoryServiceServer is the server API for inventory.v1.InventoryService.
type InventoryServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*domain.Product, error)
	ListWarehouses(context.Context, *ListWarehousesRequest) (*ListWarehousesResponse, error)
	GetChartData(context.Context, *GetChartDataRequest) (*GetChartDataResponse, error)
	GetKPIs(context.Context, *GetKPIsRequest) (*domain.KPI, error)
	UpdateProductDemand(context.Context, *UpdateProductDemandRequest) (*domain.Product, error)
	TransferStock(context.Context, *TransferStockRequest) (*domain.Product, error)
}

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc's method handler signature.
func unaryHandler[Req any, Resp any](method string, call func(InventoryServiceServer, context.Context, *Req) (*Resp, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, mapDomainErrorToGrpcStatus(fmt.Errorf("%w: malformed %s request: %v", domain.ErrInvalidInput, method, err))
		}
		if interceptor == nil {
			return call(srv.(InventoryServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(InventoryServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListProducts", Handler: unaryHandler("ListProducts", InventoryServiceServer.ListProducts)},
		{MethodName: "GetProduct", Handler: unaryHandler("GetProduct", InventoryServiceServer.GetProduct)},
		{MethodName: "ListWarehouses", Handler: unaryHandler("ListWarehouses", InventoryServiceServer.ListWarehouses)},
		{MethodName: "GetChartData", Handler: unaryHandler("GetChartData", InventoryServiceServer.GetChartData)},
		{MethodName: "GetKPIs", Handler: unaryHandler("GetKPIs", InventoryServiceServer.GetKPIs)},
		{MethodName: "UpdateProductDemand", Handler: unaryHandler("UpdateProductDemand", InventoryServiceServer.UpdateProductDemand)},
		{MethodName: "TransferStock", Handler: unaryHandler("TransferStock", InventoryServiceServer.TransferStock)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inventory/v1/inventory.proto",
}
