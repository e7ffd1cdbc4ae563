// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when one exists), loads them into structured Go types, and validates
// that required values are present so the service fails fast on bad or
// missing config.
//
// Responsibilities:
//   - Provide defaults for every optional setting.
//   - Honour the legacy PORT and MONGODB_URL variables.
//   - Map PEOPLE_* variables into nested config keys.
//   - Validate the result with go-playground/validator.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

/*
	Keys are resolved in this order, later sources win:

	1. defaults()                      built-in values
	2. PORT, MONGODB_URL               legacy names kept for existing deployments
	3. PEOPLE_<SECTION>__<KEY>         e.g. PEOPLE_SERVER__PORT -> server.port

	A double underscore separates nesting levels so that single
	underscores can stay inside key names (read_timeout, ssl_mode, ...).
*/

const (
	// EnvPrefix is the prefix for structured environment variables.
	EnvPrefix = "PEOPLE_"

	// ServiceName is the fixed name used in logs and APM.
	ServiceName = "people-api"

	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If it is nil after
// loading, defaults are injected.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    int      `koanf:"shutdown_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig describes where People documents live.
//
// Driver selects the storage backend. "mongo" needs URL; "memory" keeps
// everything in process and is meant for local runs and tests.
type DatabaseConfig struct {
	Driver         string `koanf:"driver" validate:"required,oneof=mongo memory"`
	URL            string `koanf:"url" validate:"required_if=Driver mongo"`
	Name           string `koanf:"name"`
	Collection     string `koanf:"collection" validate:"required"`
	ConnectTimeout int    `koanf:"connect_timeout" validate:"required,min=1"`
}

// IsMemory reports whether the in-process store is selected.
func (d DatabaseConfig) IsMemory() bool {
	return d.Driver == DriverMemory
}

// defaults returns the flat koanf key map loaded before the environment.
func defaults() map[string]any {
	return map[string]any{
		"primary.env": "development",

		"server.port":                 "4000",
		"server.read_timeout":         30,
		"server.write_timeout":        30,
		"server.idle_timeout":         60,
		"server.shutdown_timeout":     10,
		"server.cors_allowed_origins": []string{"*"},

		"database.driver":          DriverMongo,
		"database.collection":      "peoples",
		"database.connect_timeout": 10,

		"observability.service_name":                          ServiceName,
		"observability.environment":                           "development",
		"observability.logging.level":                         "info",
		"observability.logging.format":                        "json",
		"observability.logging.slow_query_threshold":          "100ms",
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.health_checks.enabled":                 true,
		"observability.health_checks.interval":                "30s",
		"observability.health_checks.timeout":                 "5s",
		"observability.health_checks.checks":                  []string{"database"},
	}
}

// legacyKeys maps the un-prefixed variables the service has always read.
var legacyKeys = map[string]string{
	"PORT":        "server.port",
	"MONGODB_URL": "database.url",
}

// envKey turns PEOPLE_SERVER__READ_TIMEOUT into server.read_timeout.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// LoadConfig loads configuration from defaults and environment variables,
// unmarshals it into Config, validates it, and applies observability
// defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	// Returning an empty key makes the provider skip the variable, so only
	// the names in legacyKeys get through.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		mapped, ok := legacyKeys[key]
		if !ok || value == "" {
			return "", nil
		}
		return mapped, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load legacy env variables: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always come from the primary config so
	// logs and traces agree on them.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// MustLoadConfig is LoadConfig for process entry points. The real logger
// depends on config, so failures go through a console logger to STDERR
// and exit the process.
func MustLoadConfig() *Config {
	cfg, err := LoadConfig()
	if err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("could not load config")
	}
	return cfg
}
