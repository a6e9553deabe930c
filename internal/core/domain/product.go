// internal/core/domain/product.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus represents catalog availability
type ProductStatus string

const (
	ProductAvailable    ProductStatus = "available"
	ProductDiscontinued ProductStatus = "discontinued"
)

// Product is the read-model of one stock-keeping unit, keyed by barcode.
// Quantity is the authoritative on-hand count; it is mutated only by sale
// commits (conditional decrement) and external restocks.
type Product struct {
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	QuantityMin int             `json:"quantity_min"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	RetailPrice decimal.Decimal `json:"retail_price"`
	Status      ProductStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the product
func (p *Product) Validate() error {
	if p.Barcode == "" {
		return &ValidationError{Field: "barcode", Reason: "is required"}
	}
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	if p.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "cannot be negative"}
	}
	if p.RetailPrice.IsNegative() {
		return &ValidationError{Field: "retail_price", Reason: "cannot be negative"}
	}
	if p.Status == "" {
		p.Status = ProductAvailable
	}
	return nil
}

// BelowMinimum reports whether on-hand quantity dropped under the reorder
// threshold.
func (p *Product) BelowMinimum() bool {
	return p.Quantity < p.QuantityMin
}
