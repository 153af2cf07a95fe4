package request

import (
	"scrap-market/internal/domain/assignment"

	"github.com/shopspring/decimal"
)

type CompleteRequest struct {
	ActualWeight decimal.Decimal `json:"actual_weight"`
	ActualPrice  decimal.Decimal `json:"actual_price"`
	Notes        string          `json:"notes"`
}

func (r *CompleteRequest) ToCompletion() assignment.Completion {
	return assignment.Completion{
		ActualWeight: r.ActualWeight,
		ActualPrice:  r.ActualPrice,
		Notes:        r.Notes,
	}
}
