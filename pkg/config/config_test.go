package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("REDIS_HOST", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Orders.StrictTransitions)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 0, cfg.Redis.RedisDB)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("ORDER_STRICT_TRANSITIONS", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2, cfg.Redis.RedisDB)
	assert.True(t, cfg.Orders.StrictTransitions)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "")
		_, err := Load()
		assert.EqualError(t, err, "missing database password")
	})

	t.Run("bad driver", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_DRIVER", "sqlite")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad redis db", func(t *testing.T) {
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("REDIS_DB", "x")
		_, err := Load()
		assert.EqualError(t, err, "invalid redis database")
	})
}
