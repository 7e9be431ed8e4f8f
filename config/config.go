package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	ChartSourceFixture = "fixture"
	ChartSourceRandom  = "random"
)

type Config struct {
	HTTPPort  string `envconfig:"HTTP_PORT"  default:":4000"`
	GrpcPort  string `envconfig:"GRPC_PORT"  default:":50051"` // gRPC port for inventory
	LogLevel  string `envconfig:"LOG_LEVEL"  default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	GinMode   string `envconfig:"GIN_MODE"   default:"release"`

	ChartSource string `envconfig:"CHART_SOURCE" default:"fixture"`

	// MutationDelay is artificial latency added by the transports before a mutation.
	MutationDelay time.Duration `envconfig:"MUTATION_DELAY" default:"0s"`

	DefaultPageSize int `envconfig:"DEFAULT_PAGE_SIZE" default:"10"`
	MaxPageSize     int `envconfig:"MAX_PAGE_SIZE"     default:"100"`

	TransferReassignsWarehouse bool `envconfig:"TRANSFER_REASSIGNS_WAREHOUSE" default:"true"`

	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT"     default:"10s"`
}

var (
	config Config
	once   sync.Once
)

// LoadConfig reads an optional .env file and the environment once per process.
// Invalid configuration is fatal.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		cfg, err := Parse()
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}
		config = *cfg

		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, LogLevel=%s, ChartSource=%s, MutationDelay=%s",
			config.HTTPPort, config.GrpcPort, config.LogLevel, config.ChartSource, config.MutationDelay)
	})
	return &config
}

// Parse builds a Config from the environment without touching .env or the cached value.
func Parse() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.ChartSource = strings.ToLower(strings.TrimSpace(c.ChartSource))
	switch c.ChartSource {
	case ChartSourceFixture, ChartSourceRandom:
	default:
		return fmt.Errorf("CHART_SOURCE must be '%s' or '%s', got '%s'", ChartSourceFixture, ChartSourceRandom, c.ChartSource)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test, got '%s'", c.GinMode)
	}
	if c.HTTPPort == "" || c.GrpcPort == "" {
		return fmt.Errorf("HTTP_PORT and GRPC_PORT cannot be empty")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE (%d) cannot be smaller than DEFAULT_PAGE_SIZE (%d)", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.MutationDelay < 0 {
		return fmt.Errorf("MUTATION_DELAY cannot be negative")
	}
	return nil
}

// AllowAllOrigins reports whether CORS is open to any origin.
func (c *Config) AllowAllOrigins() bool {
	for _, o := range c.CORSAllowedOrigins {
		if strings.TrimSpace(o) == "*" {
			return true
		}
	}
	return len(c.CORSAllowedOrigins) == 0
}
