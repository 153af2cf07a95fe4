package queries

//go:generate mockgen -source=pricing.go -destination=../../testutil/mock/queries/pricing_mock.go -package=queriesmock

import (
	"context"
	"errors"

	"scrap-market/internal/domain/pricing"
	"scrap-market/internal/infra"
	"scrap-market/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type PricingReadStore interface {
	FindCategory(ctx context.Context, id int64) (*pricing.Category, error)
	FindMultiplier(ctx context.Context, categoryID int64, location string) (*decimal.Decimal, error)
}

type QuoteInput struct {
	CategoryID int64
	Quantity   decimal.Decimal
	Location   string
}

type PricingQueries interface {
	Calculate(ctx context.Context, in QuoteInput) (*pricing.Quote, error)
}

type pricingQueriesImpl struct {
	readStore PricingReadStore
}

func NewPricingQueries(readStore PricingReadStore) PricingQueries {
	return &pricingQueriesImpl{readStore: readStore}
}

func (q *pricingQueriesImpl) Calculate(ctx context.Context, in QuoteInput) (*pricing.Quote, error) {
	if in.CategoryID <= 0 {
		return nil, errs.Wrap(errs.ErrInvalidArgument, "category_id is required")
	}
	if !in.Quantity.IsPositive() {
		return nil, errs.Wrap(errs.ErrInvalidArgument, "quantity must be positive")
	}

	cat, err := q.readStore.FindCategory(ctx, in.CategoryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFound, "category %d", in.CategoryID)
		}
		return nil, err
	}

	location := pricing.NormalizeLocation(in.Location)
	override, err := q.readStore.FindMultiplier(ctx, cat.ID, location)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.Calculate(*cat, in.Quantity, location, override)
	switch {
	case err == nil:
		return &quote, nil
	case errors.Is(err, pricing.ErrInactiveCategory):
		return nil, errs.Wrapf(errs.ErrNotFound, "category %d is inactive", in.CategoryID)
	case errors.Is(err, pricing.ErrInvalidQuantity):
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	default:
		return nil, err
	}
}
