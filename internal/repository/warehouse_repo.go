package repository

import (
	"fmt"
	"inventory_dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

type memoryWarehouseRepository struct {
	warehouses []domain.Warehouse
	log        *logrus.Logger
}

// Warehouses are static reference data, so the repository needs no locking.
func NewMemoryWarehouseRepository(seed []domain.Warehouse, logger *logrus.Logger) domain.WarehouseRepository {
	warehouses := make([]domain.Warehouse, len(seed))
	copy(warehouses, seed)
	return &memoryWarehouseRepository{
		warehouses: warehouses,
		log:        logger,
	}
}

func (r *memoryWarehouseRepository) ListWarehouses() ([]domain.Warehouse, error) {
	warehouses := make([]domain.Warehouse, len(r.warehouses))
	copy(warehouses, r.warehouses)
	r.log.Debugf("Repository: Retrieved %d warehouses", len(warehouses))
	return warehouses, nil
}

func (r *memoryWarehouseRepository) GetWarehouseByID(id string) (*domain.Warehouse, error) {
	for _, w := range r.warehouses {
		if w.ID == id {
			warehouse := w
			return &warehouse, nil
		}
	}
	r.log.Warnf("Repository: Warehouse with ID %s not found", id)
	return nil, fmt.Errorf("%w: warehouse with id '%s'", domain.ErrNotFound, id)
}
