// internal/adapters/db/exchange_rate_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/core/ports"
)

// exchangeRateRepository implements ports.ExchangeRateProvider
type exchangeRateRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewExchangeRateRepository creates a new exchange rate repository
func NewExchangeRateRepository(db *Database, logger *slog.Logger) ports.ExchangeRateProvider {
	return &exchangeRateRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "exchange_rate")),
	}
}

// Latest returns the most recently captured rate snapshot, or (nil, nil)
// when no snapshot has ever been saved.
func (r *exchangeRateRepository) Latest(ctx context.Context) (*domain.ExchangeRate, error) {
	rate := &domain.ExchangeRate{}
	err := r.db.QueryRow(ctx, `
		SELECT id, usd_rate, thb_rate, created_at
		FROM exchange_rate
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
	).Scan(&rate.ID, &rate.UsdRate, &rate.ThbRate, &rate.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest exchange rate: %w", err)
	}

	return rate, nil
}

// Save appends a new immutable rate snapshot. Existing snapshots are never
// updated; sales keep pointing at the snapshot they were priced with.
func (r *exchangeRateRepository) Save(ctx context.Context, rate *domain.ExchangeRate) error {
	if !rate.UsdRate.IsPositive() || !rate.ThbRate.IsPositive() {
		return &domain.ValidationError{Field: "rate", Reason: "must be positive"}
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO exchange_rate (usd_rate, thb_rate)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		rate.UsdRate, rate.ThbRate,
	).Scan(&rate.ID, &rate.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate: %w", err)
	}

	r.logger.InfoContext(ctx, "exchange rate snapshot saved",
		slog.Int64("id", rate.ID),
		slog.String("usd_rate", rate.UsdRate.String()),
		slog.String("thb_rate", rate.ThbRate.String()))

	return nil
}
