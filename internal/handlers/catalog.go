// internal/handlers/catalog.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	redis_a "github.com/sengdao/minipos-be/internal/adapters/redis_adapter"
	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/core/ports"
)

const productCacheTTL = 5 * time.Minute

// CatalogHandler serves product lookups and the exchange rate endpoints.
// Single product reads go through the cache; list queries always hit the
// database because filters make the key space unbounded.
type CatalogHandler struct {
	catalog ports.ProductCatalog
	rates   ports.ExchangeRateProvider
	cache   ports.CacheRepository
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	catalog ports.ProductCatalog,
	rates ports.ExchangeRateProvider,
	cache ports.CacheRepository,
	slogger *slog.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		rates:   rates,
		cache:   cache,
		logger:  slogger.With(slog.String("handler", "catalog")),
	}
}

// GetProduct handles GET /api/v1/products/{barcode}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	barcode := r.PathValue("barcode")

	if barcode == "" {
		respondError(w, h.logger, http.StatusBadRequest, "barcode is required")
		return
	}

	product, err := h.lookupProduct(ctx, barcode)

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to look up product",
			slog.String("barcode", barcode),
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	if product == nil {
		respondError(w, h.logger, http.StatusNotFound, "Product not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// lookupProduct reads through the cache when one is configured. Only hits
// are cached: a nil result stays uncached so a product created moments
// after a missed scan is visible on the next lookup.
func (h *CatalogHandler) lookupProduct(ctx context.Context, barcode string) (*domain.Product, error) {
	if h.cache == nil {
		return h.catalog.FindByBarcode(ctx, barcode)
	}

	key := redis_a.BuildKey(redis_a.PrefixCatalog, barcode)

	cached := &domain.Product{}
	cacheErr := h.cache.Get(ctx, key, cached)
	if cacheErr == nil {
		return cached, nil
	}
	if cacheErr != redis_a.ErrCacheMiss {
		h.logger.WarnContext(ctx, "cache read failed",
			slog.String("key", key),
			slog.String("error", cacheErr.Error()))
	}

	product, err := h.catalog.FindByBarcode(ctx, barcode)
	if err != nil || product == nil {
		return product, err
	}

	if setErr := h.cache.SetWithTTL(ctx, key, product, productCacheTTL); setErr != nil {
		h.logger.WarnContext(ctx, "cache write failed",
			slog.String("key", key),
			slog.String("error", setErr.Error()))
	}
	return product, nil
}

// ListProducts handles GET /api/v1/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := h.parseListParams(r)

	result, err := h.catalog.List(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to list products")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetLatestRate handles GET /api/v1/exchange-rates/latest
func (h *CatalogHandler) GetLatestRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rate, err := h.rates.Latest(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load exchange rate",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "Failed to retrieve exchange rate")
		return
	}

	if rate == nil {
		respondError(w, h.logger, http.StatusNotFound, "No exchange rate snapshot available")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, rate)
}

// SaveRateRequest represents the request body for capturing a rate snapshot
type SaveRateRequest struct {
	UsdRate decimal.Decimal `json:"usd_rate"`
	ThbRate decimal.Decimal `json:"thb_rate"`
}

// Validate validates the save-rate request
func (r *SaveRateRequest) Validate() error {
	if !r.UsdRate.IsPositive() {
		return fmt.Errorf("usd_rate must be positive")
	}
	if !r.ThbRate.IsPositive() {
		return fmt.Errorf("thb_rate must be positive")
	}
	return nil
}

// SaveRate handles POST /api/v1/exchange-rates
func (h *CatalogHandler) SaveRate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaveRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	rate := &domain.ExchangeRate{
		UsdRate: req.UsdRate,
		ThbRate: req.ThbRate,
	}

	if err := h.rates.Save(ctx, rate); err != nil {
		h.logger.ErrorContext(ctx, "failed to save exchange rate",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "exchange rate snapshot captured",
		slog.Int64("rate_id", rate.ID),
		slog.String("usd_rate", rate.UsdRate.String()),
		slog.String("thb_rate", rate.ThbRate.String()))

	respondJSON(w, h.logger, http.StatusCreated, rate)
}

// parseListParams parses query parameters for catalog browsing
func (h *CatalogHandler) parseListParams(r *http.Request) ports.CatalogListParams {
	params := ports.CatalogListParams{
		Page:      1,
		PageSize:  20,
		SortBy:    "name",
		SortOrder: "asc",
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	params.Search = r.URL.Query().Get("search")
	params.Status = r.URL.Query().Get("status")
	params.Unit = r.URL.Query().Get("unit")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}

	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}
