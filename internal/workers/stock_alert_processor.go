// internal/workers/stock_alert_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/sengdao/minipos-be/internal/core/ports"
)

// TypeStockLevelCheck is the task type enqueued after every committed sale.
const TypeStockLevelCheck = "stock:check_levels"

// StockLevelCheckPayload lists the barcodes a sale decremented.
type StockLevelCheckPayload struct {
	Barcodes []string `json:"barcodes"`
}

// NewStockLevelCheckTask builds the task for the given barcodes.
func NewStockLevelCheckTask(barcodes []string) (*asynq.Task, error) {
	payload, err := json.Marshal(StockLevelCheckPayload{Barcodes: barcodes})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stock check payload: %w", err)
	}
	return asynq.NewTask(TypeStockLevelCheck, payload), nil
}

// StockAlertProcessor raises reorder alerts for products whose on-hand
// quantity dropped under their configured minimum after a sale.
type StockAlertProcessor struct {
	catalog ports.ProductCatalog
	logger  *slog.Logger
}

// NewStockAlertProcessor creates a new stock alert processor
func NewStockAlertProcessor(catalog ports.ProductCatalog, logger *slog.Logger) *StockAlertProcessor {
	return &StockAlertProcessor{
		catalog: catalog,
		logger:  logger.With(slog.String("processor", "stock_alert")),
	}
}

// ProcessStockLevelCheck handles TypeStockLevelCheck tasks.
func (p *StockAlertProcessor) ProcessStockLevelCheck(ctx context.Context, t *asynq.Task) error {
	var payload StockLevelCheckPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal stock check payload: %v: %w", err, asynq.SkipRetry)
	}

	if len(payload.Barcodes) == 0 {
		return nil
	}

	low, err := p.catalog.BelowMinimum(ctx, payload.Barcodes)
	if err != nil {
		return fmt.Errorf("failed to check stock levels: %w", err)
	}

	for _, product := range low {
		p.logger.WarnContext(ctx, "stock below reorder threshold",
			slog.String("barcode", product.Barcode),
			slog.String("name", product.Name),
			slog.Int("quantity", product.Quantity),
			slog.Int("quantity_min", product.QuantityMin))
	}

	p.logger.InfoContext(ctx, "stock level check complete",
		slog.Int("checked", len(payload.Barcodes)),
		slog.Int("below_minimum", len(low)))

	return nil
}
