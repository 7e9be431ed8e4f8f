package usecase

import (
	"inventory_dashboard/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateKPI sums stock and demand over every product. Fill rate is the share of
// demand covered by stock, each product contributing at most its own demand, as a
// percentage rounded half-up to two decimals. No demand means a fill rate of 0.
func CalculateKPI(products []domain.Product) domain.KPI {
	var totalStock, totalDemand, covered int64
	for _, p := range products {
		totalStock += int64(p.Stock)
		totalDemand += int64(p.Demand)
		covered += int64(min(p.Stock, p.Demand))
	}

	kpi := domain.KPI{
		TotalStock:  int(totalStock),
		TotalDemand: int(totalDemand),
	}
	if totalDemand > 0 {
		rate := decimal.NewFromInt(covered).
			Mul(hundred).
			Div(decimal.NewFromInt(totalDemand)).
			Round(2)
		kpi.FillRate = rate.InexactFloat64()
	}
	return kpi
}
