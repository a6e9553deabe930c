// internal/core/domain/pricing.go
package domain

import "github.com/shopspring/decimal"

// ConvertTotal converts a local-currency amount into a foreign currency at
// the given rate, rounded to 2 places. A non-positive rate yields zero
// rather than an error: a missing or malformed rate must never make the
// running totals blow up mid-sale.
func ConvertTotal(subtotal, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return subtotal.DivRound(rate, 2)
}

// ComputeChange returns max(0, payment - subtotal). Payment below subtotal
// is rejected before commit by Sale.Validate, never clamped here into a
// negative change.
func ComputeChange(payment, subtotal decimal.Decimal) decimal.Decimal {
	change := payment.Sub(subtotal)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}
