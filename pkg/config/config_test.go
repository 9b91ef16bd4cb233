package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "creative-marketplace", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)

	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.True(t, cfg.Store.SeedDemoData)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "localhost:8080", cfg.Marketplace.RootDomain)
	assert.False(t, cfg.OTel.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("MARKETPLACE_ROOT_DOMAIN", "example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr())
	assert.Equal(t, "example.com", cfg.Marketplace.RootDomain)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App:         AppConfig{Name: "creative-marketplace", Environment: "development"},
			Server:      ServerConfig{Host: "0.0.0.0", Port: 8080},
			Store:       StoreConfig{Backend: StoreBackendMemory},
			Redis:       RedisConfig{Host: "localhost", Port: 6379},
			Marketplace: MarketplaceConfig{RootDomain: "example.com"},
			JWT:         JWTConfig{Secret: "secret"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app name"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server port"},
		{"unknown backend", func(c *Config) { c.Store.Backend = "dynamo" }, "store backend"},
		{"redis backend without host", func(c *Config) {
			c.Store.Backend = StoreBackendRedis
			c.Redis.Host = ""
		}, "redis host"},
		{"missing root domain", func(c *Config) { c.Marketplace.RootDomain = "" }, "root domain"},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }, "JWT secret"},
		{"default secret in production", func(c *Config) {
			c.App.Environment = "production"
			c.JWT.Secret = "your-secret-key-change-in-production"
		}, "changed in production"},
		{"seeding in production", func(c *Config) {
			c.App.Environment = "production"
			c.Store.SeedDemoData = true
		}, "not allowed in production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
