package usecase

import (
	"context"
	"fmt"
	"inventory_dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

type DashboardUseCase interface {
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
	GetChartData(ctx context.Context, r domain.ChartRange) ([]domain.ChartDataPoint, error)
	GetKPIs(ctx context.Context) (*domain.KPI, error)
}

type dashboardUseCase struct {
	productRepo   domain.ProductRepository
	warehouseRepo domain.WarehouseRepository
	charts        domain.ChartSource
	log           *logrus.Logger
}

func NewDashboardUseCase(pRepo domain.ProductRepository, wRepo domain.WarehouseRepository, charts domain.ChartSource, logger *logrus.Logger) DashboardUseCase {
	return &dashboardUseCase{
		productRepo:   pRepo,
		warehouseRepo: wRepo,
		charts:        charts,
		log:           logger,
	}
}

func (uc *dashboardUseCase) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	warehouses, err := uc.warehouseRepo.ListWarehouses()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list warehouses: %v", err)
		return nil, fmt.Errorf("could not retrieve warehouses: %w", err)
	}
	uc.log.Infof("Use Case: Retrieved %d warehouses", len(warehouses))
	return warehouses, nil
}

func (uc *dashboardUseCase) GetChartData(ctx context.Context, r domain.ChartRange) ([]domain.ChartDataPoint, error) {
	if _, err := domain.ParseChartRange(string(r)); err != nil {
		uc.log.Warnf("Use Case: Rejected chart request: %v", err)
		return nil, err
	}
	points, err := uc.charts.ChartData(r)
	if err != nil {
		uc.log.Errorf("Use Case: Chart source failed for range %s: %v", r, err)
		return nil, fmt.Errorf("could not retrieve chart data: %w", err)
	}
	uc.log.Infof("Use Case: Retrieved %d chart points for range %s", len(points), r)
	return points, nil
}

// GetKPIs reads the live store on every call; nothing is cached.
func (uc *dashboardUseCase) GetKPIs(ctx context.Context) (*domain.KPI, error) {
	products, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for KPIs: %v", err)
		return nil, fmt.Errorf("could not compute KPIs: %w", err)
	}
	kpi := CalculateKPI(products)
	uc.log.Infof("Use Case: KPIs computed (stock %d, demand %d, fill rate %.2f%%)",
		kpi.TotalStock, kpi.TotalDemand, kpi.FillRate)
	return &kpi, nil
}
