// internal/adapters/db/product_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/core/ports"
)

const productColumns = `barcode, name, unit, quantity, quantity_min,
		cost_price, retail_price, status, created_at, updated_at`

// ProductRepository implements ports.ProductCatalog and additionally exposes
// Save for restocks and seeding, which the checkout core has no port for.
type ProductRepository struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.ProductCatalog = (*ProductRepository)(nil)

// NewProductRepository creates a new product catalog repository
func NewProductRepository(db *Database, logger *slog.Logger) *ProductRepository {
	return &ProductRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "product")),
	}
}

// FindByBarcode retrieves a product by its barcode. An unknown barcode is
// not an error; it returns (nil, nil).
func (r *ProductRepository) FindByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE barcode = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, barcode))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// List retrieves catalog products with filtering and pagination
func (r *ProductRepository) List(ctx context.Context, params ports.CatalogListParams) (*ports.CatalogListResult, error) {
	qb := squirrel.Select(
		"barcode", "name", "unit", "quantity", "quantity_min",
		"cost_price", "retail_price", "status", "created_at", "updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("product").
		PlaceholderFormat(squirrel.Dollar)

	if params.Search != "" {
		qb = qb.Where("(name ILIKE ? OR barcode = ?)",
			"%"+params.Search+"%", params.Search)
	}
	if params.Status != "" {
		qb = qb.Where(squirrel.Eq{"status": params.Status})
	}
	if params.Unit != "" {
		qb = qb.Where(squirrel.Eq{"unit": params.Unit})
	}

	sortBy := "name"
	switch params.SortBy {
	case "barcode", "name", "quantity", "retail_price", "created_at":
		sortBy = params.SortBy
	}
	sortOrder := "ASC"
	if strings.EqualFold(params.SortOrder, "desc") {
		sortOrder = "DESC"
	}
	qb = qb.OrderBy(sortBy + " " + sortOrder)

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	qb = qb.Limit(uint64(pageSize)).Offset(uint64((page - 1) * pageSize))

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	var totalCount int64
	for rows.Next() {
		p := &domain.Product{}
		err := rows.Scan(
			&p.Barcode, &p.Name, &p.Unit, &p.Quantity, &p.QuantityMin,
			&p.CostPrice, &p.RetailPrice, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return &ports.CatalogListResult{
		Products:   products,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// BelowMinimum returns, out of the given barcodes, the products whose
// on-hand quantity is under their reorder threshold.
func (r *ProductRepository) BelowMinimum(ctx context.Context, barcodes []string) ([]*domain.Product, error) {
	if len(barcodes) == 0 {
		return nil, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE barcode = ANY($1) AND quantity < quantity_min
		ORDER BY quantity ASC`

	rows, err := r.db.Query(ctx, query, barcodes)
	if err != nil {
		return nil, fmt.Errorf("failed to query low stock products: %w", err)
	}

	return ScanMany(rows, func(rows pgx.Rows) (*domain.Product, error) {
		p := &domain.Product{}
		err := rows.Scan(
			&p.Barcode, &p.Name, &p.Unit, &p.Quantity, &p.QuantityMin,
			&p.CostPrice, &p.RetailPrice, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		)
		return p, err
	})
}

// Save upserts a product. Used by restocks and the seeder, never by the
// checkout flow.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO product (
			barcode, name, unit, quantity, quantity_min,
			cost_price, retail_price, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (barcode) DO UPDATE SET
			name = EXCLUDED.name,
			unit = EXCLUDED.unit,
			quantity = EXCLUDED.quantity,
			quantity_min = EXCLUDED.quantity_min,
			cost_price = EXCLUDED.cost_price,
			retail_price = EXCLUDED.retail_price,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		product.Barcode, product.Name, product.Unit,
		product.Quantity, product.QuantityMin,
		product.CostPrice, product.RetailPrice, product.Status,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	r.logger.DebugContext(ctx, "product saved",
		slog.String("barcode", product.Barcode),
		slog.String("name", product.Name))

	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(
		&p.Barcode, &p.Name, &p.Unit, &p.Quantity, &p.QuantityMin,
		&p.CostPrice, &p.RetailPrice, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
