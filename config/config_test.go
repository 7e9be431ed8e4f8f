package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.HTTPPort)
	assert.Equal(t, ":50051", cfg.GrpcPort)
	assert.Equal(t, ChartSourceFixture, cfg.ChartSource)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, time.Duration(0), cfg.MutationDelay)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.True(t, cfg.TransferReassignsWarehouse)
	assert.True(t, cfg.AllowAllOrigins())
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", ":8080")
	t.Setenv("CHART_SOURCE", " Random ")
	t.Setenv("MUTATION_DELAY", "250ms")
	t.Setenv("DEFAULT_PAGE_SIZE", "20")
	t.Setenv("MAX_PAGE_SIZE", "40")
	t.Setenv("TRANSFER_REASSIGNS_WAREHOUSE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://dash.example.com")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, ChartSourceRandom, cfg.ChartSource)
	assert.Equal(t, 250*time.Millisecond, cfg.MutationDelay)
	assert.Equal(t, 20, cfg.DefaultPageSize)
	assert.Equal(t, 40, cfg.MaxPageSize)
	assert.False(t, cfg.TransferReassignsWarehouse)
	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "chart source", key: "CHART_SOURCE", value: "database"},
		{name: "gin mode", key: "GIN_MODE", value: "prod"},
		{name: "page size", key: "DEFAULT_PAGE_SIZE", value: "0"},
		{name: "max below default", key: "MAX_PAGE_SIZE", value: "5"},
		{name: "negative delay", key: "MUTATION_DELAY", value: "-1s"},
		{name: "unparsable delay", key: "MUTATION_DELAY", value: "soon"},
		{name: "empty port", key: "GRPC_PORT", value: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestParseClient(t *testing.T) {
	cfg, err := ParseClient()
	require.NoError(t, err)
	assert.Equal(t, "localhost:50051", cfg.Target)
	assert.Equal(t, 5*time.Second, cfg.CallTimeout)

	t.Setenv("INVENTORY_GRPC_TARGET", "inventory:9000")
	t.Setenv("INVENTORY_CALL_TIMEOUT", "750ms")
	cfg, err = ParseClient()
	require.NoError(t, err)
	assert.Equal(t, "inventory:9000", cfg.Target)
	assert.Equal(t, 750*time.Millisecond, cfg.CallTimeout)

	t.Setenv("INVENTORY_CALL_TIMEOUT", "0s")
	_, err = ParseClient()
	assert.Error(t, err)
}
