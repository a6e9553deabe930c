package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sengdao/minipos-be/internal/core/domain"
)

func TestCart_AddLine(t *testing.T) {
	tests := []struct {
		name          string
		barcode       string
		quantity      int
		unitPrice     decimal.Decimal
		wantError     bool
		errorContains string
	}{
		{
			name:      "valid_line",
			barcode:   "A1",
			quantity:  2,
			unitPrice: decimal.NewFromInt(5000),
		},
		{
			name:          "missing_barcode",
			barcode:       "",
			quantity:      1,
			unitPrice:     decimal.NewFromInt(5000),
			wantError:     true,
			errorContains: "barcode",
		},
		{
			name:          "zero_quantity",
			barcode:       "A1",
			quantity:      0,
			unitPrice:     decimal.NewFromInt(5000),
			wantError:     true,
			errorContains: "quantity must be positive",
		},
		{
			name:          "negative_quantity",
			barcode:       "A1",
			quantity:      -3,
			unitPrice:     decimal.NewFromInt(5000),
			wantError:     true,
			errorContains: "quantity must be positive",
		},
		{
			name:          "negative_unit_price",
			barcode:       "A1",
			quantity:      1,
			unitPrice:     decimal.NewFromInt(-1),
			wantError:     true,
			errorContains: "unit_price cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart()
			line, err := cart.AddLine(tt.barcode, "Drinking Water", "bottle", tt.quantity, tt.unitPrice)

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)

				var verr *domain.ValidationError
				assert.ErrorAs(t, err, &verr)
				assert.Equal(t, 0, cart.Len(), "failed add must leave the cart untouched")
			} else {
				require.NoError(t, err)
				require.NotNil(t, line)
				assert.Equal(t, tt.quantity, line.Quantity)
				assert.Equal(t, 1, cart.Len())
			}
		})
	}
}

func TestCart_AddLine_MergesDuplicateBarcodes(t *testing.T) {
	cart := domain.NewCart()
	price := decimal.NewFromInt(5000)

	_, err := cart.AddLine("A1", "Drinking Water", "bottle", 2, price)
	require.NoError(t, err)

	line, err := cart.AddLine("A1", "Drinking Water", "bottle", 3, price)
	require.NoError(t, err)

	assert.Equal(t, 1, cart.Len(), "same barcode must merge, never duplicate")
	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, 5, cart.QuantityOf("A1"))
	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(25000)))
}

func TestCart_RemoveLine(t *testing.T) {
	cart := domain.NewCart()
	_, err := cart.AddLine("A1", "Drinking Water", "bottle", 2, decimal.NewFromInt(5000))
	require.NoError(t, err)
	_, err = cart.AddLine("B2", "Instant Noodles", "pack", 1, decimal.NewFromInt(7000))
	require.NoError(t, err)

	t.Run("removes_whole_line", func(t *testing.T) {
		err := cart.RemoveLine("A1")
		require.NoError(t, err)
		assert.Equal(t, 1, cart.Len())
		assert.Equal(t, 0, cart.QuantityOf("A1"))
	})

	t.Run("missing_line_reports_not_found", func(t *testing.T) {
		err := cart.RemoveLine("ZZ")

		var nferr *domain.NotFoundError
		require.ErrorAs(t, err, &nferr)
		assert.Equal(t, "ZZ", nferr.Key)
		assert.Equal(t, 1, cart.Len(), "not-found removal must not mutate the cart")
	})
}

// Subtotal must stay equal to the sum of quantity*price through any sequence
// of adds and removes.
func TestCart_Subtotal_RecomputedFromLines(t *testing.T) {
	cart := domain.NewCart()

	assert.True(t, cart.Subtotal().IsZero())

	_, err := cart.AddLine("A1", "Drinking Water", "bottle", 2, decimal.NewFromInt(5000))
	require.NoError(t, err)
	_, err = cart.AddLine("B2", "Instant Noodles", "pack", 3, decimal.NewFromInt(7000))
	require.NoError(t, err)
	_, err = cart.AddLine("A1", "Drinking Water", "bottle", 1, decimal.NewFromInt(5000))
	require.NoError(t, err)

	// 3*5000 + 3*7000
	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(36000)))

	require.NoError(t, cart.RemoveLine("B2"))
	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(15000)))

	expected := decimal.Zero
	for _, l := range cart.Lines() {
		expected = expected.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	assert.True(t, cart.Subtotal().Equal(expected))
}

func TestCart_CommitLifecycle(t *testing.T) {
	t.Run("empty_cart_cannot_begin_commit", func(t *testing.T) {
		cart := domain.NewCart()
		err := cart.BeginCommit()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one line")
	})

	t.Run("locked_during_commit", func(t *testing.T) {
		cart := domain.NewCart()
		_, err := cart.AddLine("A1", "Drinking Water", "bottle", 1, decimal.NewFromInt(5000))
		require.NoError(t, err)

		require.NoError(t, cart.BeginCommit())
		assert.Equal(t, domain.PhaseCommitting, cart.Phase())

		_, err = cart.AddLine("B2", "Instant Noodles", "pack", 1, decimal.NewFromInt(7000))
		require.Error(t, err)
		err = cart.RemoveLine("A1")
		require.Error(t, err)

		err = cart.BeginCommit()
		require.Error(t, err, "double begin must fail")
	})

	t.Run("failed_commit_preserves_lines", func(t *testing.T) {
		cart := domain.NewCart()
		_, err := cart.AddLine("A1", "Drinking Water", "bottle", 2, decimal.NewFromInt(5000))
		require.NoError(t, err)

		require.NoError(t, cart.BeginCommit())
		cart.EndCommit(false)

		assert.Equal(t, domain.PhaseDraft, cart.Phase())
		assert.Equal(t, 1, cart.Len(), "lines survive a rolled back commit")
	})

	t.Run("successful_commit_discards_lines", func(t *testing.T) {
		cart := domain.NewCart()
		_, err := cart.AddLine("A1", "Drinking Water", "bottle", 2, decimal.NewFromInt(5000))
		require.NoError(t, err)

		require.NoError(t, cart.BeginCommit())
		cart.EndCommit(true)

		assert.Equal(t, domain.PhaseDraft, cart.Phase())
		assert.Equal(t, 0, cart.Len())
	})
}

func TestCart_Lines_ReturnsCopy(t *testing.T) {
	cart := domain.NewCart()
	_, err := cart.AddLine("A1", "Drinking Water", "bottle", 2, decimal.NewFromInt(5000))
	require.NoError(t, err)

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 2, cart.QuantityOf("A1"), "mutating the returned slice must not touch the cart")
}
