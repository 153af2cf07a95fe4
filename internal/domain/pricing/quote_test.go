//go:build unit

package pricing_test

import (
	"testing"

	"scrap-market/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func metal() pricing.Category {
	return pricing.Category{ID: 3, Name: "Metal", BasePrice: dec("45.0"), Unit: "kg", IsActive: true}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		location string
		override *decimal.Decimal
		want     pricing.Quote
	}{
		{
			name:     "metal 10kg default location",
			quantity: "10",
			location: "default",
			want: pricing.Quote{
				CategoryID: 3, Category: "Metal", Quantity: dec("10"), Unit: "kg",
				BasePrice: dec("45"), Multiplier: dec("1"), TotalPrice: dec("450.00"), Location: "default",
			},
		},
		{
			name:     "metal 120kg gets bulk factor",
			quantity: "120",
			location: "default",
			want: pricing.Quote{
				CategoryID: 3, Category: "Metal", Quantity: dec("120"), Unit: "kg",
				BasePrice: dec("45"), Multiplier: dec("1.05"), TotalPrice: dec("5670.00"), Location: "default",
			},
		},
		{
			name:     "exactly 100 has no bulk factor",
			quantity: "100",
			location: "",
			want: pricing.Quote{
				CategoryID: 3, Category: "Metal", Quantity: dec("100"), Unit: "kg",
				BasePrice: dec("45"), Multiplier: dec("1"), TotalPrice: dec("4500"), Location: "default",
			},
		},
		{
			name:     "location override combines with bulk factor",
			quantity: "150",
			location: "mumbai",
			override: ptr(dec("1.2")),
			want: pricing.Quote{
				CategoryID: 3, Category: "Metal", Quantity: dec("150"), Unit: "kg",
				BasePrice: dec("45"), Multiplier: dec("1.26"), TotalPrice: dec("8505.00"), Location: "mumbai",
			},
		},
		{
			name:     "rounds half away from zero to cents",
			quantity: "0.333",
			location: "default",
			want: pricing.Quote{
				CategoryID: 3, Category: "Metal", Quantity: dec("0.333"), Unit: "kg",
				BasePrice: dec("45"), Multiplier: dec("1"), TotalPrice: dec("14.99"), Location: "default",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Calculate(metal(), dec(tt.quantity), tt.location, tt.override)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, decimalEqual); diff != "" {
				t.Errorf("Quote mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateBulkBound(t *testing.T) {
	cat := metal()
	override := dec("1.1")

	at150, err := pricing.Calculate(cat, dec("150"), "x", &override)
	require.NoError(t, err)
	floor := dec("1.05").Mul(cat.BasePrice).Mul(dec("150")).Mul(override)
	assert.True(t, at150.TotalPrice.GreaterThanOrEqual(floor.Round(2)))

	at50, err := pricing.Calculate(cat, dec("50"), "x", &override)
	require.NoError(t, err)
	exact := cat.BasePrice.Mul(dec("50")).Mul(override)
	assert.True(t, at50.TotalPrice.Equal(exact), "got %s want %s", at50.TotalPrice, exact)
}

func TestCalculateIsDeterministic(t *testing.T) {
	first, err := pricing.Calculate(metal(), dec("37.5"), "default", nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := pricing.Calculate(metal(), dec("37.5"), "default", nil)
		require.NoError(t, err)
		assert.True(t, first.TotalPrice.Equal(again.TotalPrice))
	}
}

func TestCalculateRejects(t *testing.T) {
	_, err := pricing.Calculate(metal(), dec("0"), "default", nil)
	assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)

	_, err = pricing.Calculate(metal(), dec("-3"), "default", nil)
	assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)

	inactive := metal()
	inactive.IsActive = false
	_, err = pricing.Calculate(inactive, dec("1"), "default", nil)
	assert.ErrorIs(t, err, pricing.ErrInactiveCategory)
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }
