// internal/handlers/checkout.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sengdao/minipos-be/internal/core/ports"
	"github.com/sengdao/minipos-be/internal/pkg/logger"
)

// CheckoutHandler exposes the per-session cart and checkout endpoints.
type CheckoutHandler struct {
	service ports.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service ports.CheckoutService, slogger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  slogger.With(slog.String("handler", "checkout")),
	}
}

// AddToCartRequest represents the request body for adding a cart line
type AddToCartRequest struct {
	Barcode  string `json:"barcode"`
	Quantity int    `json:"quantity"`
}

// Validate validates the add-to-cart request
func (r *AddToCartRequest) Validate() error {
	if r.Barcode == "" {
		return fmt.Errorf("barcode is required")
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	return nil
}

// CheckoutRequest represents the request body for committing a sale
type CheckoutRequest struct {
	Payment    decimal.Decimal `json:"payment"`
	CustomerID string          `json:"customer_id,omitempty"`
	EmployeeID string          `json:"employee_id,omitempty"`
}

// AddToCart handles POST /api/v1/sessions/{session}/cart
func (h *CheckoutHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r)

	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	line, err := h.service.AddToCart(ctx, sessionID, req.Barcode, req.Quantity)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to add cart line",
			slog.String("barcode", req.Barcode),
			slog.Int("quantity", req.Quantity),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, line)
}

// RemoveFromCart handles DELETE /api/v1/sessions/{session}/cart/{barcode}
func (h *CheckoutHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r)
	barcode := r.PathValue("barcode")

	if err := h.service.RemoveFromCart(ctx, sessionID, barcode); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"message": "line removed",
		"barcode": barcode,
	})
}

// ClearCart handles DELETE /api/v1/sessions/{session}/cart
func (h *CheckoutHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r)

	if err := h.service.ClearCart(ctx, sessionID); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"message": "cart cleared"})
}

// GetCart handles GET /api/v1/sessions/{session}/cart
func (h *CheckoutHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r)

	lines, err := h.service.CartLines(ctx, sessionID)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"lines":      lines,
	})
}

// GetTotals handles GET /api/v1/sessions/{session}/totals
func (h *CheckoutHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r)

	totals, err := h.service.CurrentTotals(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to compute totals",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, totals)
}

// Checkout handles POST /api/v1/sessions/{session}/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r)

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Checkout(ctx, sessionID, req.Payment, req.CustomerID, req.EmployeeID)
	if err != nil {
		h.logger.WarnContext(ctx, "checkout failed",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "sale committed",
		slog.Int64("sale_id", result.SaleID),
		slog.String("change", result.Change.String()))

	respondJSON(w, h.logger, http.StatusCreated, result)
}

// sessionContext pulls the session id out of the path and attaches it to
// the context so every log record in the request carries it.
func (h *CheckoutHandler) sessionContext(r *http.Request) (context.Context, string) {
	sessionID := r.PathValue("session")
	ctx := context.WithValue(r.Context(), logger.ContextKeySessionID, sessionID)
	return ctx, sessionID
}
