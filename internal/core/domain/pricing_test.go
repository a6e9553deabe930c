package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sengdao/minipos-be/internal/core/domain"
)

func TestConvertTotal(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		rate     string
		expected string
	}{
		{
			name:     "usd_conversion",
			subtotal: "46000",
			rate:     "23000",
			expected: "2",
		},
		{
			name:     "thb_conversion_rounds_to_two_places",
			subtotal: "10000",
			rate:     "626",
			expected: "15.97",
		},
		{
			name:     "zero_rate_yields_zero",
			subtotal: "10000",
			rate:     "0",
			expected: "0",
		},
		{
			name:     "negative_rate_yields_zero",
			subtotal: "10000",
			rate:     "-5",
			expected: "0",
		},
		{
			name:     "zero_subtotal",
			subtotal: "0",
			rate:     "23000",
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal := decimal.RequireFromString(tt.subtotal)
			rate := decimal.RequireFromString(tt.rate)
			expected := decimal.RequireFromString(tt.expected)

			got := domain.ConvertTotal(subtotal, rate)
			assert.True(t, got.Equal(expected), "expected %s, got %s", expected, got)
		})
	}
}

func TestComputeChange(t *testing.T) {
	tests := []struct {
		name     string
		payment  string
		subtotal string
		expected string
	}{
		{name: "exact_payment", payment: "10000", subtotal: "10000", expected: "0"},
		{name: "overpayment", payment: "15000", subtotal: "10000", expected: "5000"},
		{name: "underpayment_clamps_to_zero", payment: "8000", subtotal: "10000", expected: "0"},
		{name: "zero_payment_zero_subtotal", payment: "0", subtotal: "0", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeChange(
				decimal.RequireFromString(tt.payment),
				decimal.RequireFromString(tt.subtotal),
			)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"expected %s, got %s", tt.expected, got)
			assert.False(t, got.IsNegative(), "change is never negative")
		})
	}
}
