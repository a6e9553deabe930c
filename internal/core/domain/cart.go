// internal/core/domain/cart.go
package domain

import (
	"github.com/shopspring/decimal"
)

// CartPhase tracks where a checkout session is in its lifecycle. Cart lines
// may only be mutated while the cart is in draft.
type CartPhase string

const (
	PhaseDraft      CartPhase = "draft"
	PhaseCommitting CartPhase = "committing"
)

// CartLine is one aggregated entry of a barcode within a checkout session.
// Lines with the same barcode are merged, never duplicated.
type CartLine struct {
	Barcode   string          `json:"barcode"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// LineTotal is quantity times unit price.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the ordered, mutable line set of a single checkout session.
// It is owned by exactly one session; the session's own task sequence is the
// only writer, so the cart carries no lock of its own. The subtotal is always
// recomputed from the lines, never cached.
type Cart struct {
	lines []CartLine
	phase CartPhase
}

// NewCart returns an empty draft cart.
func NewCart() *Cart {
	return &Cart{phase: PhaseDraft}
}

// AddLine merges quantity into an existing line for the barcode or appends a
// new line. Returns a copy of the resulting line.
func (c *Cart) AddLine(barcode, name, unit string, quantity int, unitPrice decimal.Decimal) (*CartLine, error) {
	if c.phase != PhaseDraft {
		return nil, &ValidationError{Field: "cart", Reason: "is locked during checkout"}
	}
	if barcode == "" {
		return nil, &ValidationError{Field: "barcode", Reason: "is required"}
	}
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}
	if unitPrice.IsNegative() {
		return nil, &ValidationError{Field: "unit_price", Reason: "cannot be negative"}
	}

	for i := range c.lines {
		if c.lines[i].Barcode == barcode {
			c.lines[i].Quantity += quantity
			line := c.lines[i]
			return &line, nil
		}
	}

	line := CartLine{
		Barcode:   barcode,
		Name:      name,
		Unit:      unit,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	c.lines = append(c.lines, line)
	return &line, nil
}

// RemoveLine removes the whole line for the barcode, not a partial decrement.
func (c *Cart) RemoveLine(barcode string) error {
	if c.phase != PhaseDraft {
		return &ValidationError{Field: "cart", Reason: "is locked during checkout"}
	}
	for i := range c.lines {
		if c.lines[i].Barcode == barcode {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Resource: "cart line", Key: barcode}
}

// Clear empties all lines and returns the cart to draft.
func (c *Cart) Clear() {
	c.lines = nil
	c.phase = PhaseDraft
}

// Subtotal recomputes the sum of line totals on every call.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// QuantityOf returns the quantity currently carted for the barcode, zero if
// the barcode has no line.
func (c *Cart) QuantityOf(barcode string) int {
	for _, l := range c.lines {
		if l.Barcode == barcode {
			return l.Quantity
		}
	}
	return 0
}

// Lines returns a copy of the line slice in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Phase returns the current lifecycle phase.
func (c *Cart) Phase() CartPhase {
	return c.phase
}

// BeginCommit locks the cart for the duration of the durable write.
func (c *Cart) BeginCommit() error {
	if c.phase != PhaseDraft {
		return &ValidationError{Field: "cart", Reason: "commit already in progress"}
	}
	if len(c.lines) == 0 {
		return &ValidationError{Field: "cart", Reason: "must have at least one line"}
	}
	c.phase = PhaseCommitting
	return nil
}

// EndCommit unlocks the cart after the durable write. On success the lines
// are discarded; on failure they are preserved for the user to retry.
func (c *Cart) EndCommit(committed bool) {
	if committed {
		c.lines = nil
	}
	c.phase = PhaseDraft
}
