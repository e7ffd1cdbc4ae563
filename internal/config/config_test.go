package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017/people")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "mongodb://localhost:27017/people", cfg.Database.URL)
	assert.Equal(t, "peoples", cfg.Database.Collection)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
	assert.Equal(t, 100*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
	assert.False(t, cfg.Observability.NewRelic.Enabled())
}

func TestLoadConfigLegacyPort(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigPrefixedOverridesLegacy(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://legacy:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("PEOPLE_SERVER__PORT", "9090")
	t.Setenv("PEOPLE_DATABASE__URL", "mongodb://prefixed:27017")
	t.Setenv("PEOPLE_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("PEOPLE_OBSERVABILITY__LOGGING__SLOW_QUERY_THRESHOLD", "250ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://prefixed:27017", cfg.Database.URL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.Observability.Logging.SlowQueryThreshold)
}

func TestLoadConfigRequiresMongoURL(t *testing.T) {
	t.Setenv("MONGODB_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "URL")
}

func TestLoadConfigMemoryDriverNeedsNoURL(t *testing.T) {
	t.Setenv("MONGODB_URL", "")
	t.Setenv("PEOPLE_DATABASE__DRIVER", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.Database.IsMemory())
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("PEOPLE_DATABASE__DRIVER", "postgres")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("PEOPLE_OBSERVABILITY__LOGGING__LEVEL", "loud")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("PEOPLE_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("PEOPLE_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestHealthChecksHas(t *testing.T) {
	hc := DefaultObservabilityConfig().HealthChecks
	assert.True(t, hc.Has("database"))
	assert.False(t, hc.Has("redis"))

	hc.Enabled = false
	assert.False(t, hc.Has("database"))
}
