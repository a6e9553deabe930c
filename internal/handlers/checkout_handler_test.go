package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/core/ports"
	"github.com/sengdao/minipos-be/internal/handlers"
	"github.com/sengdao/minipos-be/test/helpers"
	"github.com/sengdao/minipos-be/test/mocks"
)

func newCheckoutRequest(t *testing.T, method, target, sessionID string, body interface{}) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.SetPathValue("session", sessionID)
	return req
}

func TestCheckoutHandler_AddToCart(t *testing.T) {
	line := &domain.CartLine{
		Barcode:   "8851234567890",
		Name:      "Drinking Water 600ml",
		Unit:      "bottle",
		Quantity:  2,
		UnitPrice: decimal.NewFromInt(5000),
	}

	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		setupMock      func(*mocks.MockCheckoutService)
		expectedStatus int
		checkBody      func(*testing.T, map[string]interface{})
	}{
		{
			name: "adds_line",
			body: handlers.AddToCartRequest{Barcode: "8851234567890", Quantity: 2},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					AddToCart(gomock.Any(), "pos-1", "8851234567890", 2).
					Return(line, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "8851234567890", body["barcode"])
				assert.Equal(t, float64(2), body["quantity"])
			},
		},
		{
			name: "defaults_quantity_to_one",
			body: handlers.AddToCartRequest{Barcode: "8851234567890"},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					AddToCart(gomock.Any(), "pos-1", "8851234567890", 1).
					Return(line, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects_missing_barcode",
			body:           handlers.AddToCartRequest{Quantity: 1},
			setupMock:      func(m *mocks.MockCheckoutService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_malformed_body",
			rawBody:        "{not json",
			setupMock:      func(m *mocks.MockCheckoutService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "maps_unknown_barcode_to_404",
			body: handlers.AddToCartRequest{Barcode: "0000000000000", Quantity: 1},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					AddToCart(gomock.Any(), "pos-1", "0000000000000", 1).
					Return(nil, &domain.NotFoundError{Resource: "product", Key: "0000000000000"})
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "maps_insufficient_stock_to_409",
			body: handlers.AddToCartRequest{Barcode: "8851234567890", Quantity: 6},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					AddToCart(gomock.Any(), "pos-1", "8851234567890", 6).
					Return(nil, &domain.InsufficientStockError{
						Barcode:   "8851234567890",
						Requested: 6,
						Remaining: 5,
					})
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(6), body["requested"])
				assert.Equal(t, float64(5), body["remaining"])
			},
		},
		{
			name: "maps_storage_failure_to_500",
			body: handlers.AddToCartRequest{Barcode: "8851234567890", Quantity: 1},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					AddToCart(gomock.Any(), "pos-1", "8851234567890", 1).
					Return(nil, fmt.Errorf("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCheckoutService(ctrl)
			tt.setupMock(service)
			handler := handlers.NewCheckoutHandler(service, helpers.TestLogger())

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest("POST", "/api/v1/sessions/pos-1/cart", bytes.NewBufferString(tt.rawBody))
				req.SetPathValue("session", "pos-1")
			} else {
				req = newCheckoutRequest(t, "POST", "/api/v1/sessions/pos-1/cart", "pos-1", tt.body)
			}
			w := httptest.NewRecorder()

			handler.AddToCart(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
		})
	}
}

func TestCheckoutHandler_RemoveFromCart(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockCheckoutService)
		expectedStatus int
	}{
		{
			name: "removes_line",
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					RemoveFromCart(gomock.Any(), "pos-1", "8851234567890").
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing_line_is_404",
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					RemoveFromCart(gomock.Any(), "pos-1", "8851234567890").
					Return(&domain.NotFoundError{Resource: "cart line", Key: "8851234567890"})
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCheckoutService(ctrl)
			tt.setupMock(service)
			handler := handlers.NewCheckoutHandler(service, helpers.TestLogger())

			req := httptest.NewRequest("DELETE", "/api/v1/sessions/pos-1/cart/8851234567890", nil)
			req.SetPathValue("session", "pos-1")
			req.SetPathValue("barcode", "8851234567890")
			w := httptest.NewRecorder()

			handler.RemoveFromCart(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCheckoutHandler_GetCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lines := []domain.CartLine{
		{Barcode: "8851234567890", Name: "Drinking Water 600ml", Quantity: 2, UnitPrice: decimal.NewFromInt(5000)},
		{Barcode: "8859876543210", Name: "Instant Noodles", Quantity: 1, UnitPrice: decimal.NewFromInt(7000)},
	}

	service := mocks.NewMockCheckoutService(ctrl)
	service.EXPECT().
		CartLines(gomock.Any(), "pos-1").
		Return(lines, nil)

	handler := handlers.NewCheckoutHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/sessions/pos-1/cart", nil)
	req.SetPathValue("session", "pos-1")
	w := httptest.NewRecorder()

	handler.GetCart(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "pos-1", body["session_id"])
	assert.Len(t, body["lines"], 2)
}

func TestCheckoutHandler_GetTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCheckoutService(ctrl)
	service.EXPECT().
		CurrentTotals(gomock.Any(), "pos-1").
		Return(&ports.Totals{
			Subtotal:  decimal.NewFromInt(17000),
			TotalUsd:  decimal.RequireFromString("0.74"),
			TotalThb:  decimal.RequireFromString("27.16"),
			RateID:    7,
			LineCount: 2,
		}, nil)

	handler := handlers.NewCheckoutHandler(service, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/sessions/pos-1/totals", nil)
	req.SetPathValue("session", "pos-1")
	w := httptest.NewRecorder()

	handler.GetTotals(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "17000", body["subtotal"])
	assert.Equal(t, "0.74", body["total_usd"])
	assert.Equal(t, float64(7), body["rate_id"])
	assert.Equal(t, float64(2), body["line_count"])
}

func TestCheckoutHandler_Checkout(t *testing.T) {
	tests := []struct {
		name           string
		body           handlers.CheckoutRequest
		setupMock      func(*mocks.MockCheckoutService)
		expectedStatus int
		checkBody      func(*testing.T, map[string]interface{})
	}{
		{
			name: "commits_sale",
			body: handlers.CheckoutRequest{
				Payment:    decimal.NewFromInt(20000),
				EmployeeID: "emp-9",
			},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					Checkout(gomock.Any(), "pos-1", decimal.NewFromInt(20000), "", "emp-9").
					Return(&ports.CheckoutResult{SaleID: 42, Change: decimal.NewFromInt(3000)}, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, float64(42), body["sale_id"])
				assert.Equal(t, "3000", body["change"])
			},
		},
		{
			name: "underpayment_is_400",
			body: handlers.CheckoutRequest{Payment: decimal.NewFromInt(100)},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					Checkout(gomock.Any(), "pos-1", decimal.NewFromInt(100), "", "").
					Return(nil, &domain.ValidationError{Field: "amount_paid", Reason: "is below subtotal"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing_rate_is_503",
			body: handlers.CheckoutRequest{Payment: decimal.NewFromInt(20000)},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					Checkout(gomock.Any(), "pos-1", decimal.NewFromInt(20000), "", "").
					Return(nil, domain.ErrExchangeRateUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name: "stock_conflict_is_409",
			body: handlers.CheckoutRequest{Payment: decimal.NewFromInt(20000)},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					Checkout(gomock.Any(), "pos-1", decimal.NewFromInt(20000), "", "").
					Return(nil, &domain.StockConflictError{Barcode: "8851234567890"})
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "8851234567890", body["barcode"])
			},
		},
		{
			name: "commit_failure_is_500",
			body: handlers.CheckoutRequest{Payment: decimal.NewFromInt(20000)},
			setupMock: func(m *mocks.MockCheckoutService) {
				m.EXPECT().
					Checkout(gomock.Any(), "pos-1", decimal.NewFromInt(20000), "", "").
					Return(nil, &domain.CommitError{Err: fmt.Errorf("insert failed")})
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockCheckoutService(ctrl)
			tt.setupMock(service)
			handler := handlers.NewCheckoutHandler(service, helpers.TestLogger())

			req := newCheckoutRequest(t, "POST", "/api/v1/sessions/pos-1/checkout", "pos-1", tt.body)
			w := httptest.NewRecorder()

			handler.Checkout(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
		})
	}
}
