package clients

import (
	"context"
	"fmt"
	"inventory_dashboard/internal/domain"
	grpcdelivery "inventory_dashboard/internal/delivery/grpc"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// InventoryClient talks to inventory.v1.InventoryService. Failures that the service
// classified come back wrapping domain.ErrNotFound, ErrInsufficientStock or ErrInvalidInput.
type InventoryClient interface {
	ListProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductPage, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
	GetChartData(ctx context.Context, r domain.ChartRange) ([]domain.ChartDataPoint, error)
	GetKPIs(ctx context.Context) (*domain.KPI, error)
	UpdateProductDemand(ctx context.Context, productID string, newDemand int) (*domain.Product, error)
	TransferStock(ctx context.Context, productID string, quantity int, destinationWarehouse string) (*domain.Product, error)
	Close() error
}

type inventoryGRPCClient struct {
	conn        *grpc.ClientConn
	callTimeout time.Duration
	log         *logrus.Logger
}

// NewInventoryGRPCClient creates a lazily connecting client. Extra dial options are
// appended after the defaults (insecure transport, JSON content subtype).
func NewInventoryGRPCClient(target string, callTimeout time.Duration, logger *logrus.Logger, opts ...grpc.DialOption) (InventoryClient, error) {
	logger.Infof("InventoryClient: Creating gRPC client for target: %s", target)
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(grpcdelivery.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		logger.Errorf("InventoryClient: Failed to create client for %s: %v", target, err)
		return nil, fmt.Errorf("failed to connect to inventory service at %s: %w", target, err)
	}

	return &inventoryGRPCClient{
		conn:        conn,
		callTimeout: callTimeout,
		log:         logger,
	}, nil
}

func (c *inventoryGRPCClient) Close() error {
	if c.conn != nil {
		c.log.Info("InventoryClient: Closing gRPC connection")
		return c.conn.Close()
	}
	return nil
}

func (c *inventoryGRPCClient) invoke(ctx context.Context, method string, req, resp interface{}) error {
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}
	if err := c.conn.Invoke(ctx, grpcdelivery.FullMethod(method), req, resp); err != nil {
		return c.mapError(method, err)
	}
	return nil
}

// mapError turns a gRPC status back into a wrapped domain error when the
// server attached an ErrorInfo reason, and falls back to the status code otherwise.
func (c *inventoryGRPCClient) mapError(method string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		c.log.Errorf("InventoryClient(gRPC): Failed to execute %s request: %v", method, err)
		return fmt.Errorf("failed to communicate with inventory service: %w", err)
	}

	reason := ""
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == grpcdelivery.ErrorDomain {
			reason = info.GetReason()
			break
		}
	}

	var sentinel error
	switch {
	case reason == grpcdelivery.ReasonNotFound, reason == "" && st.Code() == codes.NotFound:
		sentinel = domain.ErrNotFound
	case reason == grpcdelivery.ReasonInsufficientStock, reason == "" && st.Code() == codes.FailedPrecondition:
		sentinel = domain.ErrInsufficientStock
	case reason == grpcdelivery.ReasonInvalidInput, reason == "" && st.Code() == codes.InvalidArgument:
		sentinel = domain.ErrInvalidInput
	}
	if sentinel != nil {
		c.log.Warnf("InventoryClient(gRPC): %s rejected with code %s: %s", method, st.Code(), st.Message())
		return fmt.Errorf("%w (inventory service: %s)", sentinel, st.Message())
	}

	c.log.Errorf("InventoryClient(gRPC): %s failed with code %s: %s", method, st.Code(), st.Message())
	return fmt.Errorf("inventory service gRPC error (%s): %s", st.Code(), st.Message())
}

func (c *inventoryGRPCClient) ListProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductPage, error) {
	req := &grpcdelivery.ListProductsRequest{
		Search:    query.Search,
		Warehouse: query.Warehouse,
		Status:    string(query.Status),
		Page:      int64(query.Page),
		PageSize:  int64(query.PageSize),
		ClampPage: query.ClampPage,
	}
	var resp grpcdelivery.ListProductsResponse
	if err := c.invoke(ctx, "ListProducts", req, &resp); err != nil {
		return nil, err
	}
	items := resp.Products
	if items == nil {
		items = []domain.Product{}
	}
	return &domain.ProductPage{
		Items:      items,
		Page:       int(resp.Page),
		PageSize:   int(resp.PageSize),
		TotalItems: int(resp.TotalItems),
		TotalPages: int(resp.TotalPages),
	}, nil
}

func (c *inventoryGRPCClient) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	c.log.Infof("InventoryClient(gRPC): Requesting product info for ID: %s", productID)
	var product domain.Product
	if err := c.invoke(ctx, "GetProduct", &grpcdelivery.GetProductRequest{ID: productID}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *inventoryGRPCClient) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	var resp grpcdelivery.ListWarehousesResponse
	if err := c.invoke(ctx, "ListWarehouses", &grpcdelivery.ListWarehousesRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Warehouses, nil
}

func (c *inventoryGRPCClient) GetChartData(ctx context.Context, r domain.ChartRange) ([]domain.ChartDataPoint, error) {
	var resp grpcdelivery.GetChartDataResponse
	if err := c.invoke(ctx, "GetChartData", &grpcdelivery.GetChartDataRequest{Range: string(r)}, &resp); err != nil {
		return nil, err
	}
	return resp.Points, nil
}

func (c *inventoryGRPCClient) GetKPIs(ctx context.Context) (*domain.KPI, error) {
	var kpi domain.KPI
	if err := c.invoke(ctx, "GetKPIs", &grpcdelivery.GetKPIsRequest{}, &kpi); err != nil {
		return nil, err
	}
	return &kpi, nil
}

func (c *inventoryGRPCClient) UpdateProductDemand(ctx context.Context, productID string, newDemand int) (*domain.Product, error) {
	c.log.Infof("InventoryClient(gRPC): Requesting demand update for ID %s to %d", productID, newDemand)
	req := &grpcdelivery.UpdateProductDemandRequest{
		ProductID: productID,
		NewDemand: int64(newDemand),
	}
	var product domain.Product
	if err := c.invoke(ctx, "UpdateProductDemand", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *inventoryGRPCClient) TransferStock(ctx context.Context, productID string, quantity int, destinationWarehouse string) (*domain.Product, error) {
	c.log.Infof("InventoryClient(gRPC): Requesting transfer of %d units of ID %s to %s", quantity, productID, destinationWarehouse)
	req := &grpcdelivery.TransferStockRequest{
		ProductID:            productID,
		Quantity:             int64(quantity),
		DestinationWarehouse: destinationWarehouse,
	}
	var product domain.Product
	if err := c.invoke(ctx, "TransferStock", req, &product); err != nil {
		return nil, err
	}
	c.log.Infof("InventoryClient(gRPC): Transfer succeeded for ID %s, remaining stock %d", productID, product.Stock)
	return &product, nil
}
