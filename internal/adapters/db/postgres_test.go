// internal/adapters/db/postgres_test.go
package db

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildPoolConfig_PartialConfigKeepsPoolDefaults(t *testing.T) {
	// A caller that only sets connection counts, like a one-shot CLI,
	// must not zero out the pool's timing defaults.
	config := &Config{
		Host:           "localhost",
		Port:           "5432",
		User:           "test",
		Password:       "test",
		Database:       "test",
		SSLMode:        "disable",
		MaxConnections: 5,
		MinConnections: 1,
		ConnectTimeout: 10 * time.Second,
	}

	poolConfig, err := buildPoolConfig(config, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, int32(5), poolConfig.MaxConns)
	assert.Equal(t, int32(1), poolConfig.MinConns)
	assert.Positive(t, poolConfig.HealthCheckPeriod)
	assert.Positive(t, poolConfig.MaxConnLifetime)
	assert.Positive(t, poolConfig.MaxConnIdleTime)
}

func TestBuildPoolConfig_ExplicitSettingsApply(t *testing.T) {
	config := &Config{
		Host:              "localhost",
		Port:              "5432",
		User:              "test",
		Password:          "test",
		Database:          "test",
		SSLMode:           "disable",
		MaxConnections:    25,
		MinConnections:    5,
		MaxConnLifetime:   2 * time.Hour,
		MaxConnIdleTime:   15 * time.Minute,
		HealthCheckPeriod: 30 * time.Second,
		ConnectTimeout:    10 * time.Second,
	}

	poolConfig, err := buildPoolConfig(config, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, int32(25), poolConfig.MaxConns)
	assert.Equal(t, int32(5), poolConfig.MinConns)
	assert.Equal(t, 2*time.Hour, poolConfig.MaxConnLifetime)
	assert.Equal(t, 15*time.Minute, poolConfig.MaxConnIdleTime)
	assert.Equal(t, 30*time.Second, poolConfig.HealthCheckPeriod)
}
