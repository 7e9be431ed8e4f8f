package main

import (
	"bytes"
	"inventory_dashboard/config"
	"inventory_dashboard/internal/repository"
	"inventory_dashboard/internal/usecase"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()
	store, err := repository.NewMemoryProductRepository(repository.SeedProducts(), logger)
	require.NoError(t, err)
	warehouses := repository.NewMemoryWarehouseRepository(repository.SeedWarehouses(), logger)
	puc := usecase.NewProductUseCase(store, warehouses, usecase.DefaultProductOptions(), logger)
	duc := usecase.NewDashboardUseCase(store, warehouses, newChartSource(cfg.ChartSource, logger), logger)

	router, err := newRouter(cfg, puc, duc, logger)
	require.NoError(t, err)
	return router
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Setenv("GIN_MODE", "test")
	cfg, err := config.Parse()
	require.NoError(t, err)
	return cfg
}

func TestRouterServesRESTAndGraphQL(t *testing.T) {
	router := newTestServer(t, testConfig(t))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/kpis", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalStock":894`)

	body := bytes.NewBufferString(`{"query":"{ products(warehouse: \"PNQ-C\") { id } }"}`)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/graphql", body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, strings.Count(w.Body.String(), `"id"`))
}

func TestRouterCORS(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	router := newTestServer(t, testConfig(t))

	req := httptest.NewRequest(http.MethodOptions, "/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSetupLogger(t *testing.T) {
	logger := setupLogger("debug", "text")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	logger = setupLogger("loud", "json")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestNewChartSource(t *testing.T) {
	logger, _ := test.NewNullLogger()

	fixture, err := newChartSource(config.ChartSourceFixture, logger).ChartData("7d")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", fixture[0].Date)

	random, err := newChartSource(config.ChartSourceRandom, logger).ChartData("7d")
	require.NoError(t, err)
	assert.Len(t, random, 7)
}
