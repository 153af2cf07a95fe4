// Package pricing holds the quote calculation. It is pure: the caller
// supplies the category and the location override it looked up.
package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultLocation = "default"

var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrInactiveCategory = errors.New("category is not active")

	bulkThreshold = decimal.NewFromInt(100)
	bulkFactor    = decimal.RequireFromString("1.05")
)

type Category struct {
	ID        int64
	Name      string
	BasePrice decimal.Decimal
	Unit      string
	IsActive  bool
}

type Quote struct {
	CategoryID int64
	Category   string
	Quantity   decimal.Decimal
	Unit       string
	BasePrice  decimal.Decimal
	Multiplier decimal.Decimal
	TotalPrice decimal.Decimal
	Location   string
}

// BulkFactor is 1.05 strictly above 100 units and 1 otherwise.
func BulkFactor(quantity decimal.Decimal) decimal.Decimal {
	if quantity.GreaterThan(bulkThreshold) {
		return bulkFactor
	}
	return decimal.NewFromInt(1)
}

func NormalizeLocation(location string) string {
	location = strings.TrimSpace(location)
	if location == "" {
		return DefaultLocation
	}
	return location
}

// Calculate prices quantity units of cat. A nil override means no
// (category, location) row exists and the multiplier is 1.
func Calculate(cat Category, quantity decimal.Decimal, location string, override *decimal.Decimal) (Quote, error) {
	if !quantity.IsPositive() {
		return Quote{}, ErrInvalidQuantity
	}
	if !cat.IsActive {
		return Quote{}, ErrInactiveCategory
	}

	multiplier := decimal.NewFromInt(1)
	if override != nil {
		multiplier = *override
	}
	multiplier = multiplier.Mul(BulkFactor(quantity))

	total := cat.BasePrice.Mul(quantity).Mul(multiplier).Round(2)

	return Quote{
		CategoryID: cat.ID,
		Category:   cat.Name,
		Quantity:   quantity,
		Unit:       cat.Unit,
		BasePrice:  cat.BasePrice,
		Multiplier: multiplier,
		TotalPrice: total,
		Location:   NormalizeLocation(location),
	}, nil
}
