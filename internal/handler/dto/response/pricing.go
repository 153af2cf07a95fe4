package response

import (
	"encoding/json"

	"scrap-market/internal/domain/pricing"
)

type QuoteResponse struct {
	Category   string      `json:"category"`
	Quantity   json.Number `json:"quantity"`
	Unit       string      `json:"unit"`
	BasePrice  json.Number `json:"base_price"`
	Multiplier json.Number `json:"multiplier"`
	TotalPrice json.Number `json:"total_price"`
	Location   string      `json:"location"`
}

// FromQuote keeps the effective multiplier unrounded; only money is fixed
// to two decimals.
func FromQuote(q *pricing.Quote) QuoteResponse {
	return QuoteResponse{
		Category:   q.Category,
		Quantity:   Number(q.Quantity),
		Unit:       q.Unit,
		BasePrice:  Amount(q.BasePrice),
		Multiplier: Number(q.Multiplier),
		TotalPrice: Amount(q.TotalPrice),
		Location:   q.Location,
	}
}
