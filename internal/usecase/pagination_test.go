package usecase

import (
	"context"
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/repository"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateProducts_SecondPageOfFour(t *testing.T) {
	products := repository.SeedProducts()
	got := PaginateProducts(products, 2, 4)
	assert.Equal(t, ids(products[4:8]), ids(got))
}

func TestPaginateProducts_Length(t *testing.T) {
	products := repository.SeedProducts()
	for pageSize := 1; pageSize <= 12; pageSize++ {
		for page := 1; page <= 12; page++ {
			want := min(pageSize, max(0, len(products)-(page-1)*pageSize))
			got := PaginateProducts(products, page, pageSize)
			assert.Len(t, got, want, "page=%d pageSize=%d", page, pageSize)
		}
	}
}

func TestPaginateProducts_Edges(t *testing.T) {
	products := repository.SeedProducts()

	assert.Len(t, PaginateProducts(products, 3, 4), 2, "last page is clipped")
	assert.Empty(t, PaginateProducts(products, 4, 4), "page past the end")
	assert.Empty(t, PaginateProducts(products, 0, 4))
	assert.Empty(t, PaginateProducts(products, 1, 0))
	assert.Empty(t, PaginateProducts(nil, 1, 10))
	assert.NotNil(t, PaginateProducts(nil, 1, 10))
}

func TestTotalPagesAndClampPage(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(10, 4))

	tests := []struct {
		current, total, pageSize, want int
	}{
		{current: 5, total: 10, pageSize: 4, want: 3},
		{current: 2, total: 10, pageSize: 4, want: 2},
		{current: 3, total: 0, pageSize: 4, want: 1},
		{current: 0, total: 10, pageSize: 4, want: 1},
		{current: 2, total: 1, pageSize: 10, want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampPage(tt.current, tt.total, tt.pageSize), "%+v", tt)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name               string
		page, pageSize     int
		wantPage, wantSize int
		wantAdjusted       bool
	}{
		{name: "valid", page: 2, pageSize: 5, wantPage: 2, wantSize: 5},
		{name: "zero page", page: 0, pageSize: 5, wantPage: 1, wantSize: 5, wantAdjusted: true},
		{name: "negative page size", page: 1, pageSize: -3, wantPage: 1, wantSize: 10, wantAdjusted: true},
		{name: "page size over cap", page: 1, pageSize: 500, wantPage: 1, wantSize: 100, wantAdjusted: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, size, adjusted := NormalizePage(tt.page, tt.pageSize, DefaultPageSize, MaxPageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantSize, size)
			assert.Equal(t, tt.wantAdjusted, adjusted)
		})
	}
}

func TestPaginateProducts_HugeValuesDoNotOverflow(t *testing.T) {
	products := repository.SeedProducts()

	assert.Empty(t, PaginateProducts(products, 1<<62, 4))
	assert.Empty(t, PaginateProducts(products, math.MaxInt, math.MaxInt))
	assert.Len(t, PaginateProducts(products, 1, math.MaxInt), 10)
	assert.Equal(t, 1, TotalPages(len(products), math.MaxInt))
}

func TestListProducts_HugePageIsEmpty(t *testing.T) {
	uc, _ := newTestProductUseCase(t, DefaultProductOptions())

	page, err := uc.ListProducts(context.Background(), domain.ProductQuery{Page: 1 << 62, PageSize: 4})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 10, page.TotalItems)

	clamped, err := uc.ListProducts(context.Background(), domain.ProductQuery{Page: 1 << 62, PageSize: 4, ClampPage: true})
	require.NoError(t, err)
	assert.Equal(t, 3, clamped.Page)
}
