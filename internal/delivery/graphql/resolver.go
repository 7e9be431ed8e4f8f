package graphql

import (
	"context"
	"fmt"
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/middleware"
	"inventory_dashboard/internal/usecase"
	"net/http"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/sirupsen/logrus"
)

type Resolver struct {
	products      usecase.ProductUseCase
	dashboard     usecase.DashboardUseCase
	mutationDelay time.Duration
	log           *logrus.Logger
}

func NewResolver(puc usecase.ProductUseCase, duc usecase.DashboardUseCase, mutationDelay time.Duration, logger *logrus.Logger) *Resolver {
	return &Resolver{
		products:      puc,
		dashboard:     duc,
		mutationDelay: mutationDelay,
		log:           logger,
	}
}

// NewSchema parses Schema against r. It fails only if the resolver and schema disagree.
func NewSchema(r *Resolver) (*graphqlgo.Schema, error) {
	schema, err := graphqlgo.ParseSchema(Schema, r)
	if err != nil {
		return nil, fmt.Errorf("could not parse graphql schema: %w", err)
	}
	return schema, nil
}

func NewHandler(schema *graphqlgo.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

type productsArgs struct {
	Search    *string
	Warehouse *string
	Status    *string
	Page      *int32
	PageSize  *int32
}

func (r *Resolver) Products(ctx context.Context, args productsArgs) ([]*productResolver, error) {
	query := domain.ProductQuery{
		Search:    deref(args.Search),
		Warehouse: deref(args.Warehouse),
		Status:    domain.Status(deref(args.Status)),
		Page:      1,
		PageSize:  usecase.DefaultPageSize,
	}
	if args.Page != nil {
		query.Page = int(*args.Page)
	}
	if args.PageSize != nil {
		query.PageSize = int(*args.PageSize)
	}
	r.log.Debugf("GraphQL: products query %+v", query)

	page, err := r.products.ListProducts(ctx, query)
	if err != nil {
		r.log.Errorf("GraphQL: products query failed: %v", err)
		return nil, wrapError(err)
	}
	return toProductResolvers(page.Items), nil
}

func (r *Resolver) Warehouses(ctx context.Context) ([]*warehouseResolver, error) {
	warehouses, err := r.dashboard.ListWarehouses(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*warehouseResolver, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, &warehouseResolver{w: w})
	}
	return out, nil
}

func (r *Resolver) ChartData(ctx context.Context, args struct{ Range string }) ([]*chartPointResolver, error) {
	chartRange, err := domain.ParseChartRange(args.Range)
	if err != nil {
		r.log.Warnf("GraphQL: chartData rejected: %v", err)
		return nil, wrapError(err)
	}
	points, err := r.dashboard.GetChartData(ctx, chartRange)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*chartPointResolver, 0, len(points))
	for _, p := range points {
		out = append(out, &chartPointResolver{c: p})
	}
	return out, nil
}

func (r *Resolver) Kpis(ctx context.Context) (*kpiResolver, error) {
	kpi, err := r.dashboard.GetKPIs(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return &kpiResolver{k: *kpi}, nil
}

type updateDemandArgs struct {
	ProductID graphqlgo.ID
	NewDemand int32
}

func (r *Resolver) UpdateProductDemand(ctx context.Context, args updateDemandArgs) (*productResolver, error) {
	if err := middleware.Sleep(ctx, r.mutationDelay); err != nil {
		r.log.Warnf("GraphQL: mutation abandoned during simulated latency: %v", err)
		return nil, wrapError(err)
	}
	r.log.Infof("GraphQL: updateProductDemand productId=%s newDemand=%d", args.ProductID, args.NewDemand)
	product, err := r.products.UpdateDemand(ctx, string(args.ProductID), int(args.NewDemand))
	if err != nil {
		return nil, wrapError(err)
	}
	return &productResolver{p: *product}, nil
}

type transferStockArgs struct {
	ProductID            graphqlgo.ID
	Quantity             int32
	DestinationWarehouse string
}

func (r *Resolver) TransferStock(ctx context.Context, args transferStockArgs) (*productResolver, error) {
	if err := middleware.Sleep(ctx, r.mutationDelay); err != nil {
		r.log.Warnf("GraphQL: mutation abandoned during simulated latency: %v", err)
		return nil, wrapError(err)
	}
	r.log.Infof("GraphQL: transferStock productId=%s quantity=%d destination=%s",
		args.ProductID, args.Quantity, args.DestinationWarehouse)
	product, err := r.products.TransferStock(ctx, string(args.ProductID), int(args.Quantity), args.DestinationWarehouse)
	if err != nil {
		return nil, wrapError(err)
	}
	return &productResolver{p: *product}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
