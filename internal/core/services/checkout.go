// internal/core/services/checkout.go
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/core/ports"
	"github.com/sengdao/minipos-be/internal/workers"
)

// commitMarkerTTL bounds how long a committed cart fingerprint blocks an
// identical resubmission of the same session.
const commitMarkerTTL = 15 * time.Minute

// CheckoutOptions carries the tunables of the checkout flow.
type CheckoutOptions struct {
	// DefaultUsdRate and DefaultThbRate are the display-only fallback pair
	// used by CurrentTotals when no snapshot exists. They never flow into a
	// committed sale.
	DefaultUsdRate decimal.Decimal
	DefaultThbRate decimal.Decimal
}

// CheckoutService owns one cart per session and orchestrates the commit.
// The registry mutex guards only the session map; each cart itself is
// single-writer by contract (the session's own call sequence).
type CheckoutService struct {
	catalog ports.ProductCatalog
	sales   ports.SaleRepository
	rates   ports.ExchangeRateProvider
	cache   ports.CacheRepository
	tasks   ports.TaskEnqueuer
	opts    CheckoutOptions
	logger  *slog.Logger

	mu    sync.Mutex
	carts map[string]*domain.Cart
}

// Statically assert that *CheckoutService implements the CheckoutService port.
var _ ports.CheckoutService = (*CheckoutService)(nil)

// NewCheckoutService creates a new checkout service. cache and tasks may be
// nil; idempotency markers and low-stock alerts are then skipped.
func NewCheckoutService(
	catalog ports.ProductCatalog,
	sales ports.SaleRepository,
	rates ports.ExchangeRateProvider,
	cache ports.CacheRepository,
	tasks ports.TaskEnqueuer,
	opts CheckoutOptions,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		catalog: catalog,
		sales:   sales,
		rates:   rates,
		cache:   cache,
		tasks:   tasks,
		opts:    opts,
		logger:  logger.With(slog.String("service", "checkout")),
		carts:   make(map[string]*domain.Cart),
	}
}

// cart returns the session's cart, creating it on first use.
func (s *CheckoutService) cart(sessionID string) *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = domain.NewCart()
		s.carts[sessionID] = c
	}
	return c
}

// AddToCart looks the barcode up in the catalog, validates stock against the
// quantity already carted, and merges the line. The stock check here is
// optimistic UI feedback; the authoritative check happens again inside the
// commit transaction.
func (s *CheckoutService) AddToCart(ctx context.Context, sessionID, barcode string, quantity int) (*domain.CartLine, error) {
	if sessionID == "" {
		return nil, &domain.ValidationError{Field: "session_id", Reason: "is required"}
	}
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	product, err := s.catalog.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup failed: %w", err)
	}
	if product == nil {
		return nil, &domain.NotFoundError{Resource: "product", Key: barcode}
	}

	cart := s.cart(sessionID)

	if err := ValidateStock(product, cart.QuantityOf(barcode)+quantity); err != nil {
		return nil, err
	}

	line, err := cart.AddLine(product.Barcode, product.Name, product.Unit, quantity, product.RetailPrice)
	if err != nil {
		return nil, err
	}

	s.logger.DebugContext(ctx, "cart line added",
		slog.String("session_id", sessionID),
		slog.String("barcode", barcode),
		slog.Int("quantity", line.Quantity))

	return line, nil
}

// RemoveFromCart drops the whole line for the barcode. A missing line is
// reported as NotFound but is non-fatal to the session.
func (s *CheckoutService) RemoveFromCart(ctx context.Context, sessionID, barcode string) error {
	if err := s.cart(sessionID).RemoveLine(barcode); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "cart line removed",
		slog.String("session_id", sessionID),
		slog.String("barcode", barcode))
	return nil
}

// ClearCart empties the session's cart.
func (s *CheckoutService) ClearCart(ctx context.Context, sessionID string) error {
	s.cart(sessionID).Clear()
	s.logger.DebugContext(ctx, "cart cleared", slog.String("session_id", sessionID))
	return nil
}

// CartLines returns a copy of the session's current lines.
func (s *CheckoutService) CartLines(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	return s.cart(sessionID).Lines(), nil
}

// CurrentTotals recomputes the running totals from the cart lines and the
// latest rate snapshot. When no snapshot exists the configured default pair
// is substituted for display and the response is flagged as degraded.
func (s *CheckoutService) CurrentTotals(ctx context.Context, sessionID string) (*ports.Totals, error) {
	cart := s.cart(sessionID)
	subtotal := cart.Subtotal()

	totals := &ports.Totals{
		Subtotal:  subtotal,
		LineCount: cart.Len(),
	}

	rate, err := s.rates.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("exchange rate lookup failed: %w", err)
	}

	usd, thb := s.opts.DefaultUsdRate, s.opts.DefaultThbRate
	if rate != nil {
		usd, thb = rate.UsdRate, rate.ThbRate
		totals.RateID = rate.ID
	} else {
		totals.Degraded = true
		s.logger.WarnContext(ctx, "no exchange rate snapshot, using default pair for display",
			slog.String("session_id", sessionID),
			slog.String("default_usd_rate", usd.String()),
			slog.String("default_thb_rate", thb.String()))
	}

	totals.TotalUsd = domain.ConvertTotal(subtotal, usd)
	totals.TotalThb = domain.ConvertTotal(subtotal, thb)
	return totals, nil
}

// Checkout commits the session's cart as one atomic sale. On any failure the
// cart lines are preserved for retry; on success the cart is cleared, a
// commit marker is written and a low-stock check task is enqueued.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string, payment decimal.Decimal, customerID, employeeID string) (*ports.CheckoutResult, error) {
	if sessionID == "" {
		return nil, &domain.ValidationError{Field: "session_id", Reason: "is required"}
	}
	if payment.IsNegative() {
		return nil, &domain.ValidationError{Field: "payment", Reason: "cannot be negative"}
	}

	cart := s.cart(sessionID)
	if cart.Len() == 0 {
		return nil, &domain.ValidationError{Field: "cart", Reason: "must have at least one line"}
	}
	if payment.LessThan(cart.Subtotal()) {
		// Rejected before any storage interaction; partial payment is not a
		// supported flow.
		return nil, &domain.ValidationError{Field: "payment", Reason: "is below subtotal"}
	}

	fingerprint := cartFingerprint(sessionID, cart.Lines())
	if s.alreadyCommitted(ctx, fingerprint) {
		return nil, &domain.ValidationError{Field: "cart", Reason: "was already committed for this session"}
	}

	rate, err := s.rates.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("exchange rate lookup failed: %w", err)
	}
	if rate == nil {
		// The coordinator never invents a rate; the caller may retry after
		// capturing a snapshot.
		return nil, domain.ErrExchangeRateUnavailable
	}

	if err := cart.BeginCommit(); err != nil {
		return nil, err
	}

	sale, lines := domain.NewSaleFromCart(cart, payment, rate, customerID, employeeID)
	if err := sale.Validate(); err != nil {
		cart.EndCommit(false)
		return nil, err
	}

	saleID, err := s.sales.CommitSale(ctx, sale, lines)
	if err != nil {
		cart.EndCommit(false)

		var conflict *domain.StockConflictError
		if errors.As(err, &conflict) {
			s.logger.WarnContext(ctx, "checkout lost stock race",
				slog.String("session_id", sessionID),
				slog.String("barcode", conflict.Barcode))
			return nil, err
		}

		s.logger.ErrorContext(ctx, "sale commit failed",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return nil, err
	}

	cart.EndCommit(true)
	s.markCommitted(ctx, fingerprint)
	s.enqueueStockCheck(ctx, lines)

	s.logger.InfoContext(ctx, "sale committed",
		slog.String("session_id", sessionID),
		slog.Int64("sale_id", saleID),
		slog.String("subtotal", sale.Subtotal.String()),
		slog.String("change", sale.Change.String()))

	return &ports.CheckoutResult{SaleID: saleID, Change: sale.Change}, nil
}

// cartFingerprint hashes the session id and the cart content. Identical
// resubmissions of a committed cart are rejected; any line change produces a
// fresh fingerprint.
func cartFingerprint(sessionID string, lines []domain.CartLine) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\n", sessionID)
	for _, l := range lines {
		fmt.Fprintf(h, "%s|%d|%s\n", l.Barcode, l.Quantity, l.UnitPrice.String())
	}
	return "checkout:commit:" + hex.EncodeToString(h.Sum(nil))
}

func (s *CheckoutService) alreadyCommitted(ctx context.Context, key string) bool {
	if s.cache == nil {
		return false
	}
	exists, err := s.cache.Exists(ctx, key)
	if err != nil {
		// Best effort: a cache outage must not block sales.
		s.logger.WarnContext(ctx, "idempotency check unavailable",
			slog.String("error", err.Error()))
		return false
	}
	return exists
}

func (s *CheckoutService) markCommitted(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.SetNX(ctx, key, time.Now().Unix(), commitMarkerTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to record commit marker",
			slog.String("error", err.Error()))
	}
}

func (s *CheckoutService) enqueueStockCheck(ctx context.Context, lines []domain.SaleLine) {
	if s.tasks == nil {
		return
	}

	barcodes := make([]string, 0, len(lines))
	for _, l := range lines {
		barcodes = append(barcodes, l.Barcode)
	}

	task, err := workers.NewStockLevelCheckTask(barcodes)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to build stock check task",
			slog.String("error", err.Error()))
		return
	}

	if _, err := s.tasks.EnqueueContext(ctx, task); err != nil {
		s.logger.WarnContext(ctx, "failed to enqueue stock check task",
			slog.String("error", err.Error()))
	}
}
