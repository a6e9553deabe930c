// internal/core/ports/exchange_rates.go
package ports

import (
	"context"

	"github.com/sengdao/minipos-be/internal/core/domain"
)

// ExchangeRateProvider supplies the latest captured rate snapshot.
// Latest returns (nil, nil) when no snapshot exists; substituting a default
// pair is a caller decision, logged as degraded mode, never assumed here.
type ExchangeRateProvider interface {
	Latest(ctx context.Context) (*domain.ExchangeRate, error)
	Save(ctx context.Context, rate *domain.ExchangeRate) error
}
