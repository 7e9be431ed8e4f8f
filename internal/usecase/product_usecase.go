package usecase

import (
	"context"
	"errors"
	"fmt"
	"inventory_dashboard/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	ListProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateDemand(ctx context.Context, id string, newDemand int) (*domain.Product, error)
	TransferStock(ctx context.Context, id string, quantity int, destinationWarehouse string) (*domain.Product, error)
}

type ProductOptions struct {
	DefaultPageSize int
	MaxPageSize     int
	// ReassignWarehouse moves a transferred product to the destination warehouse.
	// When false only its stock is reduced.
	ReassignWarehouse bool
}

func DefaultProductOptions() ProductOptions {
	return ProductOptions{
		DefaultPageSize:   DefaultPageSize,
		MaxPageSize:       MaxPageSize,
		ReassignWarehouse: true,
	}
}

type productUseCase struct {
	productRepo   domain.ProductRepository
	warehouseRepo domain.WarehouseRepository
	opts          ProductOptions
	log           *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, wRepo domain.WarehouseRepository, opts ProductOptions, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:   pRepo,
		warehouseRepo: wRepo,
		opts:          opts,
		log:           logger,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, query domain.ProductQuery) (*domain.ProductPage, error) {
	// Zero means the caller left the parameter out.
	if query.Page == 0 {
		query.Page = 1
	}
	if query.PageSize == 0 {
		query.PageSize = uc.opts.DefaultPageSize
	}
	page, pageSize, adjusted := NormalizePage(query.Page, query.PageSize, uc.opts.DefaultPageSize, uc.opts.MaxPageSize)
	if adjusted {
		uc.log.Warnf("Use Case: Invalid pagination parameters (page: %d, pageSize: %d), using page %d, pageSize %d",
			query.Page, query.PageSize, page, pageSize)
	}
	if query.Status != "" && !domain.IsValidStatus(query.Status) {
		uc.log.Warnf("Use Case: Unknown status filter '%s' matches no products", query.Status)
	}

	products, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}

	filtered := FilterProducts(products, query.Search, query.Warehouse, query.Status)
	if query.ClampPage {
		page = ClampPage(page, len(filtered), pageSize)
	}

	result := &domain.ProductPage{
		Items:      PaginateProducts(filtered, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(filtered),
		TotalPages: TotalPages(len(filtered), pageSize),
	}
	uc.log.Infof("Use Case: Retrieved %d of %d matching products (page %d/%d)",
		len(result.Items), result.TotalItems, result.Page, result.TotalPages)
	return result, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		uc.log.Warn("Use Case: Attempted to get product with empty ID")
		return nil, fmt.Errorf("%w: product id cannot be empty", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) UpdateDemand(ctx context.Context, id string, newDemand int) (*domain.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id cannot be empty", domain.ErrInvalidInput)
	}
	if newDemand < 0 {
		uc.log.Warnf("Use Case: Attempted to set negative demand %d for product ID %s", newDemand, id)
		return nil, fmt.Errorf("%w: demand cannot be negative", domain.ErrInvalidInput)
	}
	if newDemand > domain.MaxQuantity {
		uc.log.Warnf("Use Case: Attempted to set demand %d above the maximum %d for product ID %s", newDemand, domain.MaxQuantity, id)
		return nil, fmt.Errorf("%w: demand cannot exceed %d", domain.ErrInvalidInput, domain.MaxQuantity)
	}

	uc.log.Infof("Use Case: Attempting to set demand for product ID %s to %d", id, newDemand)
	updated, err := uc.productRepo.UpdateProduct(id, func(p *domain.Product) error {
		p.Demand = newDemand
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Demand update failed for product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Demand updated for product ID %s (stock %d, demand %d, status %s)",
		id, updated.Stock, updated.Demand, updated.Status())
	return updated, nil
}

func (uc *productUseCase) TransferStock(ctx context.Context, id string, quantity int, destinationWarehouse string) (*domain.Product, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: product id cannot be empty", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		uc.log.Warnf("Use Case: Attempted transfer of non-positive quantity %d for product ID %s", quantity, id)
		return nil, fmt.Errorf("%w: transfer quantity must be positive", domain.ErrInvalidInput)
	}
	if destinationWarehouse == "" {
		return nil, fmt.Errorf("%w: destination warehouse cannot be empty", domain.ErrInvalidInput)
	}
	if _, err := uc.warehouseRepo.GetWarehouseByID(destinationWarehouse); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Unknown destination warehouse '%s' for product ID %s", destinationWarehouse, id)
			return nil, fmt.Errorf("%w: unknown destination warehouse '%s'", domain.ErrInvalidInput, destinationWarehouse)
		}
		return nil, fmt.Errorf("could not resolve destination warehouse: %w", err)
	}

	uc.log.Infof("Use Case: Attempting to transfer %d units of product ID %s to %s", quantity, id, destinationWarehouse)
	updated, err := uc.productRepo.UpdateProduct(id, func(p *domain.Product) error {
		if quantity > p.Stock {
			return fmt.Errorf("%w for product %s (requested: %d, available: %d)",
				domain.ErrInsufficientStock, id, quantity, p.Stock)
		}
		p.Stock -= quantity
		if uc.opts.ReassignWarehouse {
			p.Warehouse = destinationWarehouse
		}
		return nil
	})
	if err != nil {
		uc.log.Warnf("Use Case: Transfer failed for product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Transferred %d units of product ID %s; remaining stock %d in %s",
		quantity, id, updated.Stock, updated.Warehouse)
	return updated, nil
}
