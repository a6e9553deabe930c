// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredConfig is returned when a required setting is absent.
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// Validator checks a loaded configuration for a class of problems.
type Validator interface {
	Validate(cfg *Config) error
}

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (v *BasicValidator) Validate(cfg *Config) error {
	if cfg.Database.Host == "" {
		return fmt.Errorf("%w: database host", ErrMissingRequiredConfig)
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("%w: database name", ErrMissingRequiredConfig)
	}

	if cfg.Database.MaxConnections < cfg.Database.MinConnections {
		return fmt.Errorf("database max_connections must be >= min_connections")
	}

	if cfg.Redis.PoolSize <= 0 {
		return fmt.Errorf("redis pool_size must be positive")
	}

	if cfg.Security.RateLimitRequests <= 0 {
		return fmt.Errorf("rate_limit_requests must be positive")
	}

	return nil
}

// ProductionValidator performs strict validation for production environments
type ProductionValidator struct{}

// Validate performs production-specific validation
func (v *ProductionValidator) Validate(cfg *Config) error {
	if !cfg.IsProduction() {
		return nil
	}

	if cfg.Database.SSLMode == "disable" {
		return fmt.Errorf("database SSL must be enabled in production")
	}

	if !cfg.Security.SecureHeaders {
		return fmt.Errorf("secure headers must be enabled in production")
	}

	if len(cfg.Security.AllowedOrigins) == 0 {
		return fmt.Errorf("allowed origins must be configured in production")
	}

	for _, origin := range cfg.Security.AllowedOrigins {
		if origin == "*" {
			return fmt.Errorf("wildcard origin (*) not allowed in production")
		}
	}

	if cfg.Database.Password == "minipos_dev_2025" {
		return fmt.Errorf("default database password cannot be used in production")
	}

	return nil
}

// ValidateAll runs every validator against the configuration.
func ValidateAll(cfg *Config, validators ...Validator) error {
	if len(validators) == 0 {
		validators = []Validator{&BasicValidator{}, &ProductionValidator{}}
	}
	for _, v := range validators {
		if err := v.Validate(cfg); err != nil {
			return err
		}
	}
	return nil
}
