package response

import (
	"encoding/json"

	"scrap-market/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// copyOption renders money and quantities as JSON numbers with two decimals
// and ids as strings.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: json.Number(""),
			Fn: func(src any) (any, error) {
				return Amount(src.(decimal.Decimal)), nil
			},
		},
		{
			SrcType: &decimal.Decimal{},
			DstType: (*json.Number)(nil),
			Fn: func(src any) (any, error) {
				d, _ := src.(*decimal.Decimal)
				if d == nil {
					return nil, nil
				}
				n := Amount(*d)
				return &n, nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// Amount formats d with exactly two decimals.
func Amount(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

// Number formats d without padding, for factors such as multipliers.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func copyOne[T any](src any) (T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return dst, errs.Wrap(err, "failed to map response")
	}
	return dst, nil
}

// copyList always yields a non-nil slice so that empty lists encode as [].
func copyList[T any](src any, n int) ([]T, error) {
	dst := make([]T, 0, n)
	if n == 0 {
		return dst, nil
	}
	if err := copier.CopyWithOption(&dst, src, copyOption); err != nil {
		return nil, errs.Wrap(err, "failed to map response list")
	}
	return dst, nil
}
