package request

import (
	"scrap-market/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// CalculateRequest accepts quantity as a JSON number or a numeric string.
type CalculateRequest struct {
	CategoryID int64           `json:"category_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Location   string          `json:"location"`
}

func (r *CalculateRequest) ToInput() queries.QuoteInput {
	return queries.QuoteInput{
		CategoryID: r.CategoryID,
		Quantity:   r.Quantity,
		Location:   r.Location,
	}
}
