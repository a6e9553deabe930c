// internal/adapters/db/sale_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/core/ports"
)

// saleRepository implements ports.SaleRepository
type saleRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *Database, logger *slog.Logger) ports.SaleRepository {
	return &saleRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sale")),
	}
}

// CommitSale persists the sale header, its lines and the inventory
// decrements as one transaction.
//
// The decrement is conditional: the WHERE clause re-checks the on-hand
// quantity at write time, so a row is only updated when stock still covers
// the line. Zero rows affected means a concurrent sale consumed the stock
// after this cart was validated; the whole transaction rolls back with
// domain.StockConflictError and nothing is persisted.
func (r *saleRepository) CommitSale(ctx context.Context, sale *domain.Sale, lines []domain.SaleLine) (int64, error) {
	var saleID int64

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		for _, line := range lines {
			tag, err := tx.Exec(ctx, `
				UPDATE product
				SET quantity = quantity - $2, updated_at = NOW()
				WHERE barcode = $1 AND quantity >= $2`,
				line.Barcode, line.Quantity)
			if err != nil {
				return &domain.CommitError{Err: fmt.Errorf("decrement %s: %w", line.Barcode, err)}
			}
			if tag.RowsAffected() == 0 {
				return &domain.StockConflictError{Barcode: line.Barcode}
			}
		}

		err := tx.QueryRow(ctx, `
			INSERT INTO sale (
				exchange_rate_id, customer_id, employee_id,
				sale_date, subtotal, amount_paid, change
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING sale_id`,
			sale.ExchangeRateID, nullableID(sale.CustomerID), sale.EmployeeID,
			sale.SaleDate, sale.Subtotal, sale.AmountPaid, sale.Change,
		).Scan(&saleID)
		if err != nil {
			return &domain.CommitError{Err: fmt.Errorf("insert sale: %w", err)}
		}

		batch := &pgx.Batch{}
		for _, line := range lines {
			batch.Queue(`
				INSERT INTO sale_detail (
					sale_id, barcode, quantity, unit_price, line_total
				) VALUES ($1, $2, $3, $4, $5)`,
				saleID, line.Barcode, line.Quantity, line.UnitPrice, line.LineTotal)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()
		for range lines {
			if _, err := results.Exec(); err != nil {
				return &domain.CommitError{Err: fmt.Errorf("insert sale line: %w", err)}
			}
		}

		return results.Close()
	})
	if err != nil {
		// Begin and commit failures come back from the Transaction helper
		// as plain wrapped errors; they belong to the same commit-failure
		// taxonomy as the statement errors above.
		var conflict *domain.StockConflictError
		var commitErr *domain.CommitError
		if errors.As(err, &conflict) || errors.As(err, &commitErr) {
			return 0, err
		}
		return 0, &domain.CommitError{Err: err}
	}

	sale.SaleID = saleID
	for i := range lines {
		lines[i].SaleID = saleID
	}

	r.logger.InfoContext(ctx, "sale persisted",
		slog.Int64("sale_id", saleID),
		slog.Int("line_count", len(lines)),
		slog.String("subtotal", sale.Subtotal.String()))

	return saleID, nil
}

// FindByID retrieves a committed sale and its lines
func (r *saleRepository) FindByID(ctx context.Context, saleID int64) (*domain.Sale, []domain.SaleLine, error) {
	sale := &domain.Sale{}
	var customerID *string

	err := r.db.QueryRow(ctx, `
		SELECT sale_id, exchange_rate_id, customer_id, employee_id,
			sale_date, subtotal, amount_paid, change
		FROM sale
		WHERE sale_id = $1`, saleID,
	).Scan(
		&sale.SaleID, &sale.ExchangeRateID, &customerID, &sale.EmployeeID,
		&sale.SaleDate, &sale.Subtotal, &sale.AmountPaid, &sale.Change,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to find sale: %w", err)
	}
	if customerID != nil {
		sale.CustomerID = *customerID
	}

	rows, err := r.db.Query(ctx, `
		SELECT sale_id, barcode, quantity, unit_price, line_total
		FROM sale_detail
		WHERE sale_id = $1
		ORDER BY barcode`, saleID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query sale lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.SaleLine
	for rows.Next() {
		var l domain.SaleLine
		if err := rows.Scan(&l.SaleID, &l.Barcode, &l.Quantity, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, nil, fmt.Errorf("failed to scan sale line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read sale lines: %w", err)
	}

	return sale, lines, nil
}

// nullableID maps the empty string to SQL NULL for optional foreign keys.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
