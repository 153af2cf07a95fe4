package readstore

import (
	"context"

	"scrap-market/internal/domain/pricing"
	"scrap-market/internal/infra"
	"scrap-market/internal/infra/db"
	"scrap-market/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const (
	getCategoryByID = `SELECT id, name, base_price, unit, is_active FROM scrap_categories WHERE id = $1`

	getLocationMultiplier = `SELECT multiplier FROM dynamic_pricing WHERE category_id = $1 AND location = $2`
)

type PricingReadStore struct {
	db db.DBTX
}

func NewPricingReadStore(db db.DBTX) *PricingReadStore {
	return &PricingReadStore{db: db}
}

func (r *PricingReadStore) FindCategory(ctx context.Context, id int64) (*pricing.Category, error) {
	var (
		c    pricing.Category
		base pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, getCategoryByID, id).Scan(&c.ID, &c.Name, &base, &c.Unit, &c.IsActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get category", err)
	}
	if c.BasePrice, err = pgconv.DecimalFromNumeric(base); err != nil {
		return nil, infra.WrapRepoErr("failed to decode base price", err, infra.KindDBFailure)
	}
	return &c, nil
}

// FindMultiplier returns nil when no override exists for the pair.
func (r *PricingReadStore) FindMultiplier(ctx context.Context, categoryID int64, location string) (*decimal.Decimal, error) {
	var m pgtype.Numeric
	err := r.db.QueryRow(ctx, getLocationMultiplier, categoryID, location).Scan(&m)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get location multiplier", err)
	}
	d, err := pgconv.DecimalFromNumeric(m)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode multiplier", err, infra.KindDBFailure)
	}
	return &d, nil
}
