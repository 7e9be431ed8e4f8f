package repository

import (
	"fmt"
	"inventory_dashboard/internal/domain"
	"sync"

	"github.com/sirupsen/logrus"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
	log      *logrus.Logger
}

var _ domain.ProductRepository = (*memoryProductRepository)(nil)

// NewMemoryProductRepository copies seed into a fresh store; the caller's slice is never shared.
func NewMemoryProductRepository(seed []domain.Product, logger *logrus.Logger) (domain.ProductRepository, error) {
	products := make([]domain.Product, 0, len(seed))
	index := make(map[string]int, len(seed))
	for _, p := range seed {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: seed product with empty id", domain.ErrInvalidInput)
		}
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate seed product id '%s'", domain.ErrInvalidInput, p.ID)
		}
		if p.Stock < 0 || p.Demand < 0 {
			return nil, fmt.Errorf("%w: seed product '%s' has negative stock or demand", domain.ErrInvalidInput, p.ID)
		}
		if p.Stock > domain.MaxQuantity || p.Demand > domain.MaxQuantity {
			return nil, fmt.Errorf("%w: seed product '%s' exceeds the maximum quantity %d", domain.ErrInvalidInput, p.ID, domain.MaxQuantity)
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	logger.Infof("Repository: Product store seeded with %d products", len(products))
	return &memoryProductRepository{
		products: products,
		index:    index,
		log:      logger,
	}, nil
}

func (r *memoryProductRepository) ListProducts() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	r.log.Debugf("Repository: Listed %d products", len(products))
	return products, nil
}

func (r *memoryProductRepository) GetProductByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		r.log.Warnf("Repository: Product with ID %s not found", id)
		return nil, fmt.Errorf("%w: product with id '%s'", domain.ErrNotFound, id)
	}
	product := r.products[i]
	return &product, nil
}

func (r *memoryProductRepository) UpdateProduct(id string, mutate func(p *domain.Product) error) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		r.log.Warnf("Repository: Product with ID %s not found for update", id)
		return nil, fmt.Errorf("%w: product with id '%s'", domain.ErrNotFound, id)
	}

	// mutate works on a copy so a rejected change leaves the stored record untouched.
	working := r.products[i]
	if err := mutate(&working); err != nil {
		return nil, err
	}
	if working.ID != id {
		return nil, fmt.Errorf("%w: product id is immutable", domain.ErrInvalidInput)
	}
	if working.Stock < 0 {
		return nil, fmt.Errorf("%w: stock for product '%s' cannot be negative", domain.ErrInvalidInput, id)
	}
	if working.Stock > domain.MaxQuantity || working.Demand > domain.MaxQuantity || working.Demand < 0 {
		return nil, fmt.Errorf("%w: stock and demand for product '%s' must be within [0, %d]", domain.ErrInvalidInput, id, domain.MaxQuantity)
	}
	r.products[i] = working

	r.log.Infof("Repository: Product updated successfully with ID: %s", id)
	updated := working
	return &updated, nil
}
