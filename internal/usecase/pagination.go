package usecase

import "inventory_dashboard/internal/domain"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PaginateProducts returns the 1-based page [ (page-1)*pageSize, page*pageSize ) clipped
// to the slice. Pages past the end, and non-positive page or pageSize, give an empty slice.
func PaginateProducts(products []domain.Product, page, pageSize int) []domain.Product {
	if page < 1 || pageSize < 1 {
		return []domain.Product{}
	}
	// Compare page numbers first; (page-1)*pageSize overflows for huge pages.
	if page > TotalPages(len(products), pageSize) {
		return []domain.Product{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(products))

	out := make([]domain.Product, end-start)
	copy(out, products[start:end])
	return out
}

func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems-1)/pageSize + 1
}

// ClampPage keeps current within [1, TotalPages]; with nothing to show it is always 1.
func ClampPage(current, totalItems, pageSize int) int {
	last := TotalPages(totalItems, pageSize)
	if last == 0 {
		return 1
	}
	return max(1, min(current, last))
}

// NormalizePage replaces malformed paging input with defaults instead of rejecting it.
// adjusted reports whether either value changed.
func NormalizePage(page, pageSize, defaultPageSize, maxPageSize int) (normPage, normPageSize int, adjusted bool) {
	if defaultPageSize < 1 {
		defaultPageSize = DefaultPageSize
	}
	normPage, normPageSize = page, pageSize
	if normPage < 1 {
		normPage = 1
		adjusted = true
	}
	if normPageSize < 1 {
		normPageSize = defaultPageSize
		adjusted = true
	}
	if maxPageSize > 0 && normPageSize > maxPageSize {
		normPageSize = maxPageSize
		adjusted = true
	}
	return normPage, normPageSize, adjusted
}
