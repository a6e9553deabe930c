// internal/core/services/stock.go
package services

import (
	"github.com/sengdao/minipos-be/internal/core/domain"
)

// ValidateStock checks a proposed total quantity for a product against the
// currently known on-hand count. requestedTotal must already include any
// quantity the session has carted for the same barcode.
//
// This pre-check alone is not sufficient under concurrency: two terminals
// can both pass it for the last unit. The storage layer re-evaluates the
// same condition atomically via the conditional decrement inside
// SaleRepository.CommitSale.
func ValidateStock(product *domain.Product, requestedTotal int) error {
	if requestedTotal <= 0 {
		return &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if requestedTotal > product.Quantity {
		return &domain.InsufficientStockError{
			Barcode:   product.Barcode,
			Requested: requestedTotal,
			Remaining: product.Quantity,
		}
	}
	return nil
}
