// internal/core/ports/checkout_service.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sengdao/minipos-be/internal/core/domain"
)

// Totals is the read-only projection of a session's running totals,
// recomputed on demand from the cart lines and the current rate pair.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TotalUsd  decimal.Decimal `json:"total_usd"`
	TotalThb  decimal.Decimal `json:"total_thb"`
	RateID    int64           `json:"rate_id,omitempty"`
	Degraded  bool            `json:"degraded,omitempty"`
	LineCount int             `json:"line_count"`
}

// CheckoutResult is returned by a successful commit.
type CheckoutResult struct {
	SaleID int64           `json:"sale_id"`
	Change decimal.Decimal `json:"change"`
}

// CheckoutService is the session-facing surface of the transaction core.
// Each session id owns exactly one cart; per-session calls are expected to
// be sequential (single writer), while different sessions may call
// concurrently.
type CheckoutService interface {
	AddToCart(ctx context.Context, sessionID, barcode string, quantity int) (*domain.CartLine, error)
	RemoveFromCart(ctx context.Context, sessionID, barcode string) error
	ClearCart(ctx context.Context, sessionID string) error
	CartLines(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	CurrentTotals(ctx context.Context, sessionID string) (*Totals, error)
	Checkout(ctx context.Context, sessionID string, payment decimal.Decimal, customerID, employeeID string) (*CheckoutResult, error)
}
