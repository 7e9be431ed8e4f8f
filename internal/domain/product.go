// domain/product.go
package domain

import "math"

// MaxQuantity bounds a product's stock and demand so both fit a GraphQL Int.
const MaxQuantity = math.MaxInt32

// ProductQuery carries the optional list filters and the requested page.
type ProductQuery struct {
	Search    string
	Warehouse string
	Status    Status
	Page      int
	PageSize  int
	// ClampPage pulls an out-of-range page back onto the last page before slicing.
	ClampPage bool
}

type ProductPage struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

// ProductRepository is the Product Store. Reads return copies; Update runs
// mutate under the store's write lock and commits only when it returns nil.
type ProductRepository interface {
	ListProducts() ([]Product, error)
	GetProductByID(id string) (*Product, error)
	UpdateProduct(id string, mutate func(p *Product) error) (*Product, error)
}
