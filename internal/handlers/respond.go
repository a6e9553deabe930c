// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sengdao/minipos-be/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondDomainError maps the typed checkout errors onto HTTP statuses.
// Stock failures are conflicts rather than client errors: the request was
// well formed, the inventory state moved underneath it.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var (
		validationErr *domain.ValidationError
		notFoundErr   *domain.NotFoundError
		stockErr      *domain.InsufficientStockError
		conflictErr   *domain.StockConflictError
		commitErr     *domain.CommitError
	)

	switch {
	case errors.As(err, &validationErr):
		respondError(w, logger, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		respondError(w, logger, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &stockErr):
		respondJSON(w, logger, http.StatusConflict, map[string]interface{}{
			"error":     stockErr.Error(),
			"barcode":   stockErr.Barcode,
			"requested": stockErr.Requested,
			"remaining": stockErr.Remaining,
		})
	case errors.As(err, &conflictErr):
		respondJSON(w, logger, http.StatusConflict, map[string]interface{}{
			"error":   conflictErr.Error(),
			"barcode": conflictErr.Barcode,
		})
	case errors.Is(err, domain.ErrExchangeRateUnavailable):
		respondError(w, logger, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &commitErr):
		respondError(w, logger, http.StatusInternalServerError, "sale commit failed")
	default:
		respondError(w, logger, http.StatusInternalServerError, "internal server error")
	}
}
