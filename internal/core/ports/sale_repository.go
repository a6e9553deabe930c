// internal/core/ports/sale_repository.go
package ports

import (
	"context"

	"github.com/sengdao/minipos-be/internal/core/domain"
)

// SaleRepository is the single write port of the checkout flow. CommitSale
// must apply, inside one storage transaction:
//
//  1. a conditional inventory decrement per line (decrement only when the
//     current on-hand quantity covers the line quantity; a miss aborts the
//     whole transaction with domain.StockConflictError),
//  2. the sale header insert (assigning the sale id),
//  3. one sale line insert per cart line.
//
// Any failure at any step leaves durable state untouched. Other storage
// failures surface as *domain.CommitError.
type SaleRepository interface {
	CommitSale(ctx context.Context, sale *domain.Sale, lines []domain.SaleLine) (int64, error)
	FindByID(ctx context.Context, saleID int64) (*domain.Sale, []domain.SaleLine, error)
}
