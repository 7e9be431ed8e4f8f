package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"inventory_dashboard/internal/domain"
	"inventory_dashboard/internal/repository"
	"inventory_dashboard/internal/usecase"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, seed []domain.Product, mutationDelay time.Duration) *Resolver {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store, err := repository.NewMemoryProductRepository(seed, logger)
	require.NoError(t, err)
	warehouses := repository.NewMemoryWarehouseRepository(repository.SeedWarehouses(), logger)
	puc := usecase.NewProductUseCase(store, warehouses, usecase.DefaultProductOptions(), logger)
	duc := usecase.NewDashboardUseCase(store, warehouses, repository.NewFixtureChartSource(logger), logger)
	return NewResolver(puc, duc, mutationDelay, logger)
}

func newTestSchema(t *testing.T) *graphqlgo.Schema {
	t.Helper()
	schema, err := NewSchema(newTestResolver(t, repository.SeedProducts(), 0))
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, schema *graphqlgo.Schema, query string, vars map[string]interface{}, out interface{}) *graphqlgo.Response {
	t.Helper()
	resp := schema.Exec(context.Background(), query, "", vars)
	if out != nil && len(resp.Errors) == 0 {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp
}

type gqlProduct struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sku       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
}

func TestProductsQuery(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Products []gqlProduct `json:"products"`
	}
	resp := exec(t, schema, `query($s: String) { products(search: $s) { id name sku warehouse stock demand } }`,
		map[string]interface{}{"s": "hex-12"}, &data)
	require.Empty(t, resp.Errors)
	require.Len(t, data.Products, 1)
	assert.Equal(t, gqlProduct{ID: "P-1001", Name: "12mm Hex Bolt", Sku: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		data.Products[0])

	resp = exec(t, schema, `{ products(status: "healthy") { id } }`, nil, &data)
	require.Empty(t, resp.Errors)
	assert.Len(t, data.Products, 3)

	resp = exec(t, schema, `{ products(page: 3, pageSize: 4) { id } }`, nil, &data)
	require.Empty(t, resp.Errors)
	require.Len(t, data.Products, 2)
	assert.Equal(t, "P-1009", data.Products[0].ID)

	resp = exec(t, schema, `{ products(page: 4, pageSize: 4) { id } }`, nil, &data)
	require.Empty(t, resp.Errors)
	assert.Empty(t, data.Products)
}

func TestDashboardQueries(t *testing.T) {
	schema := newTestSchema(t)

	var data struct {
		Warehouses []struct {
			ID       string `json:"id"`
			Location string `json:"location"`
		} `json:"warehouses"`
		ChartData []struct {
			Date string `json:"date"`
		} `json:"chartData"`
		Kpis struct {
			TotalStock  int     `json:"totalStock"`
			TotalDemand int     `json:"totalDemand"`
			FillRate    float64 `json:"fillRate"`
		} `json:"kpis"`
	}
	resp := exec(t, schema, `{
		warehouses { id location }
		chartData(range: "14d") { date }
		kpis { totalStock totalDemand fillRate }
	}`, nil, &data)
	require.Empty(t, resp.Errors)
	assert.Len(t, data.Warehouses, 3)
	assert.Len(t, data.ChartData, 14)
	assert.Equal(t, 894, data.Kpis.TotalStock)
	assert.Equal(t, 995, data.Kpis.TotalDemand)
	assert.InDelta(t, 75.78, data.Kpis.FillRate, 1e-9)
}

func TestChartDataRejectsUnknownRange(t *testing.T) {
	schema := newTestSchema(t)

	resp := exec(t, schema, `{ chartData(range: "1y") { date } }`, nil, nil)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, CodeInvalidInput, resp.Errors[0].Extensions["code"])
}

func TestMutations(t *testing.T) {
	schema := newTestSchema(t)

	var moved struct {
		TransferStock gqlProduct `json:"transferStock"`
	}
	resp := exec(t, schema, `mutation($id: ID!) {
		transferStock(productId: $id, quantity: 50, destinationWarehouse: "PNQ-C") { id stock warehouse }
	}`, map[string]interface{}{"id": "P-1001"}, &moved)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 130, moved.TransferStock.Stock)
	assert.Equal(t, "PNQ-C", moved.TransferStock.Warehouse)

	var updated struct {
		UpdateProductDemand gqlProduct `json:"updateProductDemand"`
	}
	resp = exec(t, schema, `mutation { updateProductDemand(productId: "P-1003", newDemand: 5) { id demand } }`, nil, &updated)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 5, updated.UpdateProductDemand.Demand)

	var data struct {
		Kpis struct {
			TotalStock  int `json:"totalStock"`
			TotalDemand int `json:"totalDemand"`
		} `json:"kpis"`
	}
	resp = exec(t, schema, `{ kpis { totalStock totalDemand } }`, nil, &data)
	require.Empty(t, resp.Errors)
	assert.Equal(t, 844, data.Kpis.TotalStock)
	assert.Equal(t, 920, data.Kpis.TotalDemand)
}

func TestMutationErrorCodes(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{
			name:     "insufficient stock",
			query:    `mutation { transferStock(productId: "P-1004", quantity: 30, destinationWarehouse: "BLR-A") { id } }`,
			wantCode: CodeInsufficientStock,
		},
		{
			name:     "unknown product",
			query:    `mutation { updateProductDemand(productId: "P-0", newDemand: 1) { id } }`,
			wantCode: CodeNotFound,
		},
		{
			name:     "negative demand",
			query:    `mutation { updateProductDemand(productId: "P-1001", newDemand: -1) { id } }`,
			wantCode: CodeInvalidInput,
		},
		{
			name:     "unknown warehouse",
			query:    `mutation { transferStock(productId: "P-1001", quantity: 1, destinationWarehouse: "NOPE") { id } }`,
			wantCode: CodeInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := newTestSchema(t)
			resp := exec(t, schema, tt.query, nil, nil)
			require.NotEmpty(t, resp.Errors)
			assert.Equal(t, tt.wantCode, resp.Errors[0].Extensions["code"])
		})
	}
}

func TestHandlerServesPost(t *testing.T) {
	handler := NewHandler(newTestSchema(t))

	body, err := json.Marshal(map[string]interface{}{"query": `{ warehouses { id } }`})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"BLR-A"`)
}

func TestKpisTotalsBeyondIntRangeAreErrors(t *testing.T) {
	seed := []domain.Product{
		{ID: "A", Name: "a", SKU: "A", Warehouse: "BLR-A", Stock: domain.MaxQuantity, Demand: domain.MaxQuantity},
		{ID: "B", Name: "b", SKU: "B", Warehouse: "BLR-A", Stock: domain.MaxQuantity, Demand: 1},
	}
	schema, err := NewSchema(newTestResolver(t, seed, 0))
	require.NoError(t, err)

	resp := exec(t, schema, `{ kpis { totalStock } }`, nil, nil)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, CodeInternal, resp.Errors[0].Extensions["code"])

	var data struct {
		Products []gqlProduct `json:"products"`
	}
	resp = exec(t, schema, `{ products { id stock } }`, nil, &data)
	require.Empty(t, resp.Errors)
	require.Len(t, data.Products, 2)
	assert.Equal(t, domain.MaxQuantity, data.Products[0].Stock)
}

func TestMutationCancelledDuringLatency(t *testing.T) {
	r := newTestResolver(t, repository.SeedProducts(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.UpdateProductDemand(ctx, updateDemandArgs{ProductID: "P-1001", NewDemand: 1})
	require.Error(t, err)
	var gqlErr *gqlError
	require.True(t, errors.As(err, &gqlErr))
	assert.Equal(t, CodeCancelled, gqlErr.Extensions()["code"])
	assert.ErrorIs(t, err, context.Canceled)

	_, err = r.TransferStock(ctx, transferStockArgs{ProductID: "P-1001", Quantity: 1, DestinationWarehouse: "BLR-A"})
	require.True(t, errors.As(err, &gqlErr))
	assert.Equal(t, CodeCancelled, gqlErr.Extensions()["code"])

	p, err := r.products.GetProduct(context.Background(), "P-1001")
	require.NoError(t, err)
	assert.Equal(t, 120, p.Demand)
	assert.Equal(t, 180, p.Stock)
}
