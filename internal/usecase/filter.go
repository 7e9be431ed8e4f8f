package usecase

import (
	"inventory_dashboard/internal/domain"
	"strings"
)

// FilterProducts keeps the products matching every non-empty criterion, in their
// original order. search is a case-insensitive substring match on name, SKU or id;
// warehouse and status must match exactly, so an unknown status matches nothing.
func FilterProducts(products []domain.Product, search, warehouse string, status domain.Status) []domain.Product {
	needle := strings.ToLower(search)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		if warehouse != "" && p.Warehouse != warehouse {
			continue
		}
		if status != "" && p.Status() != status {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

func matchesSearch(p domain.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.SKU), needle) ||
		strings.Contains(strings.ToLower(p.ID), needle)
}
