package graphql

import (
	"fmt"
	"inventory_dashboard/internal/domain"
	"math"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

// Stock and demand are capped at domain.MaxQuantity by the store, so they always fit an Int.
type productResolver struct{ p domain.Product }

func (r *productResolver) ID() graphqlgo.ID  { return graphqlgo.ID(r.p.ID) }
func (r *productResolver) Name() string      { return r.p.Name }
func (r *productResolver) Sku() string       { return r.p.SKU }
func (r *productResolver) Warehouse() string { return r.p.Warehouse }
func (r *productResolver) Stock() int32      { return int32(r.p.Stock) }
func (r *productResolver) Demand() int32     { return int32(r.p.Demand) }

type warehouseResolver struct{ w domain.Warehouse }

func (r *warehouseResolver) ID() graphqlgo.ID { return graphqlgo.ID(r.w.ID) }
func (r *warehouseResolver) Name() string     { return r.w.Name }
func (r *warehouseResolver) Location() string { return r.w.Location }

type chartPointResolver struct{ c domain.ChartDataPoint }

func (r *chartPointResolver) Date() string  { return r.c.Date }
func (r *chartPointResolver) Stock() int32  { return int32(r.c.Stock) }
func (r *chartPointResolver) Demand() int32 { return int32(r.c.Demand) }

type kpiResolver struct{ k domain.KPI }

func (r *kpiResolver) FillRate() float64 { return r.k.FillRate }

// Totals sum many products and can outgrow a GraphQL Int; those are reported as errors.
func (r *kpiResolver) TotalStock() (int32, error)  { return toInt(r.k.TotalStock, "totalStock") }
func (r *kpiResolver) TotalDemand() (int32, error) { return toInt(r.k.TotalDemand, "totalDemand") }

func toProductResolvers(products []domain.Product) []*productResolver {
	out := make([]*productResolver, 0, len(products))
	for _, p := range products {
		out = append(out, &productResolver{p: p})
	}
	return out
}

func toInt(v int, field string) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, wrapError(fmt.Errorf("%s %d does not fit a GraphQL Int", field, v))
	}
	return int32(v), nil
}
