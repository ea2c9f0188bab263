package config

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"
)

// Environment names a deployment environment
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Config holds all application configuration
type Config struct {
	Environment Environment `yaml:"environment" json:"environment" env:"ENVIRONMENT"`

	Server   Server   `yaml:"server" json:"server"`
	Dataset  Dataset  `yaml:"dataset" json:"dataset"`
	Logging  Logging  `yaml:"logging" json:"logging"`
	Features Features `yaml:"features" json:"features"`
	Tracing  Tracing  `yaml:"tracing" json:"tracing"`

	// LoadedFrom lists the sources applied, lowest priority first
	LoadedFrom []string `yaml:"-" json:"-"`
}

// Server configures the two network listeners. Each binds its own address.
type Server struct {
	HTTPAddress     string        `yaml:"http_address" json:"http_address" env:"HTTP_ADDRESS"`
	GRPCAddress     string        `yaml:"grpc_address" json:"grpc_address" env:"GRPC_ADDRESS"`
	ReadTimeout     time.Duration `yaml:"read_timeout" json:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" json:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" json:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT"`
}

// Dataset locates the glossary data. An empty path selects the embedded dataset.
type Dataset struct {
	Path string `yaml:"path" json:"path" env:"GLOSSARY_DATASET_PATH"`
}

// Logging configures the zap logger
type Logging struct {
	Level string `yaml:"level" json:"level" env:"LOG_LEVEL"`
}

// Features contains feature flags for the application
type Features struct {
	EnableMetrics    bool `yaml:"enable_metrics" json:"enable_metrics" env:"ENABLE_METRICS"`
	EnableReflection bool `yaml:"enable_reflection" json:"enable_reflection" env:"ENABLE_REFLECTION"`
	EnableHotReload  bool `yaml:"enable_hot_reload" json:"enable_hot_reload" env:"ENABLE_HOT_RELOAD"`
}

// Tracing configures OpenTelemetry export. Tracing is off when Endpoint is empty.
type Tracing struct {
	Endpoint    string `yaml:"endpoint" json:"endpoint" env:"OTEL_ENDPOINT"`
	ServiceName string `yaml:"service_name" json:"service_name" env:"OTEL_SERVICE_NAME"`
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}

	if c.Server.HTTPAddress == "" {
		return errors.New("HTTP_ADDRESS is required")
	}
	if c.Server.GRPCAddress == "" {
		return errors.New("GRPC_ADDRESS is required")
	}
	if c.Server.HTTPAddress == c.Server.GRPCAddress {
		return fmt.Errorf("HTTP and gRPC listeners cannot share address %s", c.Server.HTTPAddress)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// LogLevel returns the parsed log level, defaulting to info
func (c *Config) LogLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
