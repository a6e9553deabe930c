// internal/core/domain/sale.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is an immutable snapshot of the reference rates against USD
// and THB, captured at a point in time. A committed sale stores the snapshot
// id it was priced with; the pair is never recomputed retroactively.
type ExchangeRate struct {
	ID        int64           `json:"id"`
	UsdRate   decimal.Decimal `json:"usd_rate"`
	ThbRate   decimal.Decimal `json:"thb_rate"`
	CreatedAt time.Time       `json:"created_at"`
}

// Sale is the header row of one committed sale. It is born atomically at
// commit together with its lines and the inventory decrements, and is
// immutable afterwards.
type Sale struct {
	SaleID         int64           `json:"sale_id"`
	ExchangeRateID int64           `json:"exchange_rate_id"`
	CustomerID     string          `json:"customer_id"`
	EmployeeID     string          `json:"employee_id"`
	SaleDate       time.Time       `json:"sale_date"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Change         decimal.Decimal `json:"change"`
}

// SaleLine is one row per distinct cart line, priced at time of sale.
type SaleLine struct {
	SaleID    int64           `json:"sale_id"`
	Barcode   string          `json:"barcode"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// NewSaleFromCart builds the header and lines for a commit attempt. The
// subtotal is taken from the cart itself so there is no independent
// recomputation to drift from.
func NewSaleFromCart(cart *Cart, payment decimal.Decimal, rate *ExchangeRate, customerID, employeeID string) (*Sale, []SaleLine) {
	subtotal := cart.Subtotal()
	sale := &Sale{
		ExchangeRateID: rate.ID,
		CustomerID:     customerID,
		EmployeeID:     employeeID,
		SaleDate:       time.Now(),
		Subtotal:       subtotal,
		AmountPaid:     payment,
		Change:         ComputeChange(payment, subtotal),
	}

	cartLines := cart.Lines()
	lines := make([]SaleLine, 0, len(cartLines))
	for _, l := range cartLines {
		lines = append(lines, SaleLine{
			Barcode:   l.Barcode,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal(),
		})
	}
	return sale, lines
}

// Validate checks the commit preconditions that do not require storage.
func (s *Sale) Validate() error {
	if s.AmountPaid.IsNegative() {
		return &ValidationError{Field: "amount_paid", Reason: "cannot be negative"}
	}
	if s.AmountPaid.LessThan(s.Subtotal) {
		return &ValidationError{Field: "amount_paid", Reason: "is below subtotal"}
	}
	if s.ExchangeRateID == 0 {
		return &ValidationError{Field: "exchange_rate_id", Reason: "is required"}
	}
	return nil
}
