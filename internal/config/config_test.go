// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "ForgeGym API", c.App.Name)
	assert.Equal(t, "development", c.App.Environment)
	assert.Equal(t, "0.0.0.0:8080", c.Server.Address())
	assert.Equal(t, "file", c.Store.Backend)
	assert.Equal(t, "data/forge_gym_db.json", c.Store.FilePath)
	assert.Equal(t, "forge_gym_db", c.Store.RecordKey)
	assert.Equal(t, "admin@forge.com", c.Seed.AdminEmail)
	assert.Equal(t, 5, c.Admin.RecentWindow)
	assert.False(t, c.Notify.Enabled)
	assert.True(t, c.IsDevelopment())
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `
server:
  port: 9090
store:
  backend: memory
admin:
  recent_window: 10
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	c, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "memory", c.Store.Backend)
	assert.Equal(t, 10, c.Admin.RecentWindow)
	// Untouched keys keep their defaults.
	assert.Equal(t, "0.0.0.0", c.Server.Host)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("SEED_ADMIN_EMAIL", "root@forge.com")

	c, err := load("")
	require.NoError(t, err)

	assert.Equal(t, "redis", c.Store.Backend)
	assert.Equal(t, "redis://localhost:6379/0", c.Store.RedisURL)
	assert.Equal(t, "root@forge.com", c.Seed.AdminEmail)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		c, err := load("")
		require.NoError(t, err)
		return c
	}

	t.Run("unknown backend", func(t *testing.T) {
		c := base()
		c.Store.Backend = "cassandra"
		assert.Error(t, validate(c))
	})

	t.Run("redis backend without url", func(t *testing.T) {
		c := base()
		c.Store.Backend = "redis"
		c.Store.RedisURL = ""
		assert.Error(t, validate(c))
	})

	t.Run("postgres backend without url", func(t *testing.T) {
		c := base()
		c.Store.Backend = "postgres"
		c.Store.PostgresURL = ""
		assert.Error(t, validate(c))
	})

	t.Run("memory backend needs nothing", func(t *testing.T) {
		c := base()
		c.Store.Backend = "memory"
		assert.NoError(t, validate(c))
	})

	t.Run("notify enabled without endpoint", func(t *testing.T) {
		c := base()
		c.Notify.Enabled = true
		c.Notify.Endpoint = ""
		assert.Error(t, validate(c))
	})

	t.Run("wildcard origin with credentials", func(t *testing.T) {
		c := base()
		c.CORS.AllowedOrigins = []string{"*"}
		assert.Error(t, validate(c))
	})

	t.Run("missing seed credentials", func(t *testing.T) {
		c := base()
		c.Seed.AdminPassword = ""
		assert.Error(t, validate(c))
	})
}
