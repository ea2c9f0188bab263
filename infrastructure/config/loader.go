// Package config loads layered application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultConfigDir is where configuration files are looked up when CONFIG_DIR is unset
const DefaultConfigDir = "config"

// Loader handles loading configuration from multiple sources.
//
// Sources are applied lowest priority first:
//  1. Defaults in code
//  2. base.{yaml,yml,json} in the config directory
//  3. <environment>.{yaml,yml,json}
//  4. local.{yaml,yml,json} (development only)
//  5. Environment variables
type Loader struct {
	basePath    string
	environment Environment
	lookupEnv   func(string) (string, bool)

	sources     []string
	fileLoaders []FileLoader
}

// FileLoader decodes one configuration file format
type FileLoader interface {
	Load(reader io.Reader, target interface{}) error
	Extensions() []string
}

// NewLoader creates a new configuration loader
func NewLoader(basePath string, env Environment) *Loader {
	if basePath == "" {
		basePath = DefaultConfigDir
	}

	loader := &Loader{
		basePath:    basePath,
		environment: env,
		lookupEnv:   os.LookupEnv,
	}

	loader.RegisterLoader(&YAMLLoader{})
	loader.RegisterLoader(&JSONLoader{})

	return loader
}

// RegisterLoader adds a file format. Earlier loaders win when several files match.
func (l *Loader) RegisterLoader(loader FileLoader) {
	l.fileLoaders = append(l.fileLoaders, loader)
}

// BasePath returns the directory configuration files are read from
func (l *Loader) BasePath() string {
	return l.basePath
}

// Load builds the configuration from every source and validates it
func (l *Loader) Load() (*Config, error) {
	l.sources = l.sources[:0]

	cfg := l.defaultConfig()
	l.sources = append(l.sources, "defaults")

	if err := l.loadFile("base", cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load base config: %w", err)
	}

	envFile := strings.ToLower(string(l.environment))
	if err := l.loadFile(envFile, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s config: %w", envFile, err)
	}

	if l.environment == Development {
		if err := l.loadFile("local", cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: l.environ()}); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}
	l.sources = append(l.sources, "environment")

	// A file may not switch the environment it was selected by
	cfg.Environment = l.environment
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "glossary"
	}

	cfg.LoadedFrom = append([]string(nil), l.sources...)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile loads the first <name>.<ext> file found for any registered format
func (l *Loader) loadFile(name string, cfg *Config) error {
	for _, loader := range l.fileLoaders {
		for _, ext := range loader.Extensions() {
			path := filepath.Join(l.basePath, name+"."+ext)

			found, err := l.decodeFile(path, loader, cfg)
			if err != nil {
				return err
			}
			if found {
				l.sources = append(l.sources, path)
				return nil
			}
		}
	}

	return os.ErrNotExist
}

func (l *Loader) decodeFile(path string, loader FileLoader, cfg *Config) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer file.Close()

	if err := loader.Load(file, cfg); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}

// envKeys are the variables the env overlay reads
var envKeys = []string{
	"ENVIRONMENT",
	"HTTP_ADDRESS",
	"GRPC_ADDRESS",
	"HTTP_READ_TIMEOUT",
	"HTTP_WRITE_TIMEOUT",
	"HTTP_IDLE_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
	"GLOSSARY_DATASET_PATH",
	"LOG_LEVEL",
	"ENABLE_METRICS",
	"ENABLE_REFLECTION",
	"ENABLE_HOT_RELOAD",
	"OTEL_ENDPOINT",
	"OTEL_SERVICE_NAME",
}

// environ snapshots the variables the env parser may read
func (l *Loader) environ() map[string]string {
	vars := make(map[string]string)
	for _, key := range envKeys {
		if val, ok := l.lookupEnv(key); ok {
			vars[key] = val
		}
	}
	return vars
}

// defaultConfig returns a configuration that runs without any files or variables
func (l *Loader) defaultConfig() *Config {
	return &Config{
		Environment: l.environment,
		Server: Server{
			HTTPAddress:     ":5000",
			GRPCAddress:     ":50051",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: Logging{
			Level: "info",
		},
		Features: Features{
			EnableMetrics:    true,
			EnableReflection: true,
			EnableHotReload:  l.environment == Development,
		},
		Tracing: Tracing{
			ServiceName: "glossary",
		},
	}
}

// YAMLLoader loads configuration from YAML files
type YAMLLoader struct{}

func (y *YAMLLoader) Load(reader io.Reader, target interface{}) error {
	return yaml.NewDecoder(reader).Decode(target)
}

func (y *YAMLLoader) Extensions() []string {
	return []string{"yaml", "yml"}
}

// JSONLoader loads configuration from JSON files. Durations are nanosecond integers.
type JSONLoader struct{}

func (j *JSONLoader) Load(reader io.Reader, target interface{}) error {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func (j *JSONLoader) Extensions() []string {
	return []string{"json"}
}

// CurrentEnvironment reads ENVIRONMENT, defaulting to development
func CurrentEnvironment() Environment {
	if val := strings.TrimSpace(os.Getenv("ENVIRONMENT")); val != "" {
		return Environment(strings.ToLower(val))
	}
	return Development
}

// ConfigDir reads CONFIG_DIR, defaulting to DefaultConfigDir
func ConfigDir() string {
	if val := strings.TrimSpace(os.Getenv("CONFIG_DIR")); val != "" {
		return val
	}
	return DefaultConfigDir
}

// LoadConfig loads configuration for the current environment
func LoadConfig() (*Config, error) {
	return NewLoader(ConfigDir(), CurrentEnvironment()).Load()
}
