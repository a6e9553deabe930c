package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengdao/minipos-be/internal/pkg/config"
	"github.com/sengdao/minipos-be/test/helpers"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := config.Load(helpers.TestLogger())
	require.NoError(t, err)

	assert.Equal(t, "minipos-api", cfg.App.Name)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "minipos", cfg.Database.Name)
	assert.True(t, cfg.Checkout.DefaultUsdRate.Equal(decimal.NewFromInt(23000)))
	assert.True(t, cfg.Checkout.DefaultThbRate.Equal(decimal.NewFromInt(626)))
	assert.Equal(t, "localhost:6379", cfg.Asynq.RedisAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_NAME", "pos_test")
	t.Setenv("CHECKOUT_DEFAULT_USD_RATE", "21500.50")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.Load(helpers.TestLogger())
	require.NoError(t, err)

	assert.Equal(t, "pos_test", cfg.Database.Name)
	assert.True(t, cfg.Checkout.DefaultUsdRate.Equal(decimal.RequireFromString("21500.50")))
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:9090", cfg.GetServerAddress())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		errorContains string
	}{
		{
			name:          "missing_server_port",
			mutate:        func(c *config.Config) { c.Server.Port = "" },
			errorContains: "server port",
		},
		{
			name: "max_connections_below_min",
			mutate: func(c *config.Config) {
				c.Database.MaxConnections = 1
				c.Database.MinConnections = 5
			},
			errorContains: "max connections",
		},
		{
			name: "non_positive_default_rate",
			mutate: func(c *config.Config) {
				c.Checkout.DefaultUsdRate = decimal.Zero
			},
			errorContains: "exchange rates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "test")
			cfg, err := config.Load(helpers.TestLogger())
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestProductionValidator(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cfg, err := config.Load(helpers.TestLogger())
	require.NoError(t, err)

	cfg.App.Environment = "production"
	err = config.ValidateAll(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SSL")
}
