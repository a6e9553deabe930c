// internal/core/ports/product_catalog.go
package ports

import (
	"context"

	"github.com/sengdao/minipos-be/internal/core/domain"
)

// CatalogListParams holds filter and pagination parameters for catalog
// browsing.
type CatalogListParams struct {
	Search    string
	Status    string
	Unit      string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// CatalogListResult is one page of catalog products.
type CatalogListResult struct {
	Products   []*domain.Product `json:"products"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalCount int64             `json:"total_count"`
	TotalPages int               `json:"total_pages"`
}

// ProductCatalog is the read-only lookup port for stock-keeping units.
// Implemented by the database adapter; the checkout core never writes
// through it (inventory is mutated only inside SaleRepository.CommitSale).
type ProductCatalog interface {
	// FindByBarcode returns the product or (nil, nil) when the barcode is
	// unknown.
	FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	List(ctx context.Context, params CatalogListParams) (*CatalogListResult, error)
	// BelowMinimum returns, out of the given barcodes, the products whose
	// on-hand quantity dropped under their reorder threshold.
	BelowMinimum(ctx context.Context, barcodes []string) ([]*domain.Product, error)
}
