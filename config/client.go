package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ClientConfig configures inventoryctl, the gRPC command-line client.
type ClientConfig struct {
	Target      string        `envconfig:"INVENTORY_GRPC_TARGET" default:"localhost:50051"`
	CallTimeout time.Duration `envconfig:"INVENTORY_CALL_TIMEOUT" default:"5s"`
	LogLevel    string        `envconfig:"LOG_LEVEL"              default:"warn"`
}

func ParseClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Target == "" {
		return nil, fmt.Errorf("INVENTORY_GRPC_TARGET cannot be empty")
	}
	if cfg.CallTimeout <= 0 {
		return nil, fmt.Errorf("INVENTORY_CALL_TIMEOUT must be positive, got %s", cfg.CallTimeout)
	}
	return &cfg, nil
}
