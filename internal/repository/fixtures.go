package repository

import "inventory_dashboard/internal/domain"

// SeedProducts returns the dashboard's ten-product fixture. Each call builds a new slice.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Aluminum Plate", SKU: "ALM-10-200", Warehouse: "BLR-A", Stock: 150, Demand: 90},
		{ID: "P-1006", Name: "Rubber Gasket", SKU: "RUB-05-300", Warehouse: "PNQ-C", Stock: 200, Demand: 180},
		{ID: "P-1007", Name: "Copper Wire", SKU: "COP-02-1000", Warehouse: "DEL-B", Stock: 75, Demand: 100},
		{ID: "P-1008", Name: "Plastic Housing", SKU: "PLA-15-150", Warehouse: "BLR-A", Stock: 60, Demand: 120},
		{ID: "P-1009", Name: "Steel Rod", SKU: "STE-20-80", Warehouse: "PNQ-C", Stock: 45, Demand: 60},
		{ID: "P-1010", Name: "Ceramic Insulator", SKU: "CER-08-120", Warehouse: "DEL-B", Stock: 30, Demand: 45},
	}
}

func SeedWarehouses() []domain.Warehouse {
	return []domain.Warehouse{
		{ID: "BLR-A", Name: "BLR-A", Location: "Texas"},
		{ID: "PNQ-C", Name: "PNQ-C", Location: "New York"},
		{ID: "DEL-B", Name: "DEL-B", Location: "Los Angeles"},
	}
}

var chartFirstWeek = []domain.ChartDataPoint{
	{Date: "2024-01-01", Stock: 1200, Demand: 980},
	{Date: "2024-01-02", Stock: 1180, Demand: 1020},
	{Date: "2024-01-03", Stock: 1150, Demand: 1050},
	{Date: "2024-01-04", Stock: 1120, Demand: 1080},
	{Date: "2024-01-05", Stock: 1090, Demand: 1100},
	{Date: "2024-01-06", Stock: 1060, Demand: 1120},
	{Date: "2024-01-07", Stock: 1030, Demand: 1140},
}

var chartLastWeekOfDecember = []domain.ChartDataPoint{
	{Date: "2023-12-25", Stock: 1350, Demand: 920},
	{Date: "2023-12-26", Stock: 1320, Demand: 940},
	{Date: "2023-12-27", Stock: 1290, Demand: 960},
	{Date: "2023-12-28", Stock: 1260, Demand: 980},
	{Date: "2023-12-29", Stock: 1230, Demand: 1000},
	{Date: "2023-12-30", Stock: 1200, Demand: 1020},
	{Date: "2023-12-31", Stock: 1170, Demand: 1040},
}

var chartMidDecember = []domain.ChartDataPoint{
	{Date: "2023-12-09", Stock: 1500, Demand: 800},
	{Date: "2023-12-10", Stock: 1480, Demand: 820},
	{Date: "2023-12-11", Stock: 1450, Demand: 840},
	{Date: "2023-12-12", Stock: 1420, Demand: 860},
	{Date: "2023-12-13", Stock: 1390, Demand: 880},
	{Date: "2023-12-14", Stock: 1360, Demand: 900},
	{Date: "2023-12-15", Stock: 1330, Demand: 920},
	{Date: "2023-12-16", Stock: 1300, Demand: 940},
	{Date: "2023-12-17", Stock: 1270, Demand: 960},
	{Date: "2023-12-18", Stock: 1240, Demand: 980},
	{Date: "2023-12-19", Stock: 1210, Demand: 1000},
	{Date: "2023-12-20", Stock: 1180, Demand: 1020},
	{Date: "2023-12-21", Stock: 1150, Demand: 1040},
	{Date: "2023-12-22", Stock: 1120, Demand: 1060},
	{Date: "2023-12-23", Stock: 1090, Demand: 1080},
	{Date: "2023-12-24", Stock: 1060, Demand: 1100},
}

func concatPoints(parts ...[]domain.ChartDataPoint) []domain.ChartDataPoint {
	var out []domain.ChartDataPoint
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
