// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrExchangeRateUnavailable is returned when no exchange rate snapshot
// exists and the caller did not opt into a fallback pair.
var ErrExchangeRateUnavailable = errors.New("no exchange rate snapshot available")

// ValidationError reports malformed input. The cart is never mutated when
// a ValidationError is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown barcode or cart line.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// InsufficientStockError is the optimistic pre-check failure raised when the
// cart's total requested quantity for a barcode exceeds the on-hand quantity.
// Remaining carries the quantity still available so the caller can prompt
// the user to adjust.
type InsufficientStockError struct {
	Barcode   string
	Requested int
	Remaining int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, remaining %d",
		e.Barcode, e.Requested, e.Remaining)
}

// StockConflictError is the authoritative commit-time failure: the
// conditional decrement matched no row because a concurrent sale consumed
// the stock after the line was added. Distinct from InsufficientStockError
// because it signals a state change during the session.
type StockConflictError struct {
	Barcode string
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock changed during checkout for %s", e.Barcode)
}

// CommitError wraps a storage or transport failure inside the commit
// boundary. The transaction has been rolled back; no sale, no sale lines
// and no decrements were persisted. Not retried automatically: the outcome
// of the failed write may be unknown to the transport.
type CommitError struct {
	Err error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("sale commit failed: %v", e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
