package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/sengdao/minipos-be/internal/adapters/redis_adapter"
	"github.com/sengdao/minipos-be/internal/core/domain"
	"github.com/sengdao/minipos-be/internal/core/ports"
	"github.com/sengdao/minipos-be/internal/handlers"
	"github.com/sengdao/minipos-be/test/helpers"
	"github.com/sengdao/minipos-be/test/mocks"
)

func newCacheFromClient(t *testing.T, testRedis *helpers.TestRedis) ports.CacheRepository {
	t.Helper()
	return redis_a.NewCache(testRedis.Client, time.Minute, helpers.TestLogger())
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	product := helpers.CreateTestProduct()

	tests := []struct {
		name           string
		barcode        string
		setupMock      func(*mocks.MockProductCatalog)
		expectedStatus int
		checkBody      func(*testing.T, map[string]interface{})
	}{
		{
			name:    "returns_product",
			barcode: product.Barcode,
			setupMock: func(m *mocks.MockProductCatalog) {
				m.EXPECT().
					FindByBarcode(gomock.Any(), product.Barcode).
					Return(product, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, product.Barcode, body["barcode"])
				assert.Equal(t, product.Name, body["name"])
			},
		},
		{
			name:    "unknown_barcode_is_404",
			barcode: "0000000000000",
			setupMock: func(m *mocks.MockProductCatalog) {
				m.EXPECT().
					FindByBarcode(gomock.Any(), "0000000000000").
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "lookup_failure_is_500",
			barcode: product.Barcode,
			setupMock: func(m *mocks.MockProductCatalog) {
				m.EXPECT().
					FindByBarcode(gomock.Any(), product.Barcode).
					Return(nil, fmt.Errorf("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := mocks.NewMockProductCatalog(ctrl)
			rates := mocks.NewMockExchangeRateProvider(ctrl)
			tt.setupMock(catalog)

			handler := handlers.NewCatalogHandler(catalog, rates, nil, helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/products/"+tt.barcode, nil)
			req.SetPathValue("barcode", tt.barcode)
			w := httptest.NewRecorder()

			handler.GetProduct(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				var body map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				tt.checkBody(t, body)
			}
		})
	}
}

func TestCatalogHandler_GetProduct_ReadsThroughCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	product := helpers.CreateTestProduct()

	catalog := mocks.NewMockProductCatalog(ctrl)
	rates := mocks.NewMockExchangeRateProvider(ctrl)

	// One database hit; the second request is served from the cache.
	catalog.EXPECT().
		FindByBarcode(gomock.Any(), product.Barcode).
		Return(product, nil).
		Times(1)

	testRedis := helpers.SetupTestRedis(t)
	cache := newCacheFromClient(t, testRedis)

	handler := handlers.NewCatalogHandler(catalog, rates, cache, helpers.TestLogger())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/api/v1/products/"+product.Barcode, nil)
		req.SetPathValue("barcode", product.Barcode)
		w := httptest.NewRecorder()

		handler.GetProduct(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCatalogHandler_GetProduct_MissIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	product := helpers.CreateTestProduct()

	catalog := mocks.NewMockProductCatalog(ctrl)
	rates := mocks.NewMockExchangeRateProvider(ctrl)

	// The barcode is unknown on the first scan and exists on the second,
	// as when a product is registered right after a failed lookup. The
	// second request must reach the catalog again instead of being served
	// a stale negative entry.
	gomock.InOrder(
		catalog.EXPECT().
			FindByBarcode(gomock.Any(), product.Barcode).
			Return(nil, nil),
		catalog.EXPECT().
			FindByBarcode(gomock.Any(), product.Barcode).
			Return(product, nil),
	)

	testRedis := helpers.SetupTestRedis(t)
	cache := newCacheFromClient(t, testRedis)

	handler := handlers.NewCatalogHandler(catalog, rates, cache, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/products/"+product.Barcode, nil)
	req.SetPathValue("barcode", product.Barcode)
	w := httptest.NewRecorder()
	handler.GetProduct(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/products/"+product.Barcode, nil)
	req.SetPathValue("barcode", product.Barcode)
	w = httptest.NewRecorder()
	handler.GetProduct(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mocks.NewMockProductCatalog(ctrl)
	rates := mocks.NewMockExchangeRateProvider(ctrl)

	catalog.EXPECT().
		List(gomock.Any(), ports.CatalogListParams{
			Search:    "water",
			Status:    "available",
			SortBy:    "name",
			SortOrder: "asc",
			Page:      2,
			PageSize:  10,
		}).
		Return(&ports.CatalogListResult{
			Products:   []*domain.Product{helpers.CreateTestProduct()},
			Page:       2,
			PageSize:   10,
			TotalCount: 11,
			TotalPages: 2,
		}, nil)

	handler := handlers.NewCatalogHandler(catalog, rates, nil, helpers.TestLogger())

	req := httptest.NewRequest("GET", "/api/v1/products?search=water&status=available&page=2&limit=10", nil)
	w := httptest.NewRecorder()

	handler.ListProducts(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(11), body["total_count"])
	assert.Len(t, body["products"], 1)
}

func TestCatalogHandler_GetLatestRate(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockExchangeRateProvider)
		expectedStatus int
	}{
		{
			name: "returns_latest_snapshot",
			setupMock: func(m *mocks.MockExchangeRateProvider) {
				m.EXPECT().
					Latest(gomock.Any()).
					Return(helpers.CreateTestExchangeRate(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "no_snapshot_is_404",
			setupMock: func(m *mocks.MockExchangeRateProvider) {
				m.EXPECT().
					Latest(gomock.Any()).
					Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := mocks.NewMockProductCatalog(ctrl)
			rates := mocks.NewMockExchangeRateProvider(ctrl)
			tt.setupMock(rates)

			handler := handlers.NewCatalogHandler(catalog, rates, nil, helpers.TestLogger())

			req := httptest.NewRequest("GET", "/api/v1/exchange-rates/latest", nil)
			w := httptest.NewRecorder()

			handler.GetLatestRate(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCatalogHandler_SaveRate(t *testing.T) {
	tests := []struct {
		name           string
		body           handlers.SaveRateRequest
		setupMock      func(*mocks.MockExchangeRateProvider)
		expectedStatus int
	}{
		{
			name: "captures_snapshot",
			body: handlers.SaveRateRequest{
				UsdRate: decimal.NewFromInt(21500),
				ThbRate: decimal.NewFromInt(610),
			},
			setupMock: func(m *mocks.MockExchangeRateProvider) {
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, rate *domain.ExchangeRate) error {
						rate.ID = 8
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "rejects_non_positive_rate",
			body: handlers.SaveRateRequest{
				UsdRate: decimal.Zero,
				ThbRate: decimal.NewFromInt(610),
			},
			setupMock:      func(m *mocks.MockExchangeRateProvider) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			catalog := mocks.NewMockProductCatalog(ctrl)
			rates := mocks.NewMockExchangeRateProvider(ctrl)
			tt.setupMock(rates)

			handler := handlers.NewCatalogHandler(catalog, rates, nil, helpers.TestLogger())

			var buf bytes.Buffer
			require.NoError(t, json.NewEncoder(&buf).Encode(tt.body))

			req := httptest.NewRequest("POST", "/api/v1/exchange-rates", &buf)
			w := httptest.NewRecorder()

			handler.SaveRate(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
