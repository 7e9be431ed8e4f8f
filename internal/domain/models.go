package domain

type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
}

type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type ChartDataPoint struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// KPI is derived from the whole product set on every request and never stored.
type KPI struct {
	TotalStock  int     `json:"totalStock"`
	TotalDemand int     `json:"totalDemand"`
	FillRate    float64 `json:"fillRate"`
}

// Status returns the stock-vs-demand classification of the product.
func (p Product) Status() Status {
	return Classify(p.Stock, p.Demand)
}
