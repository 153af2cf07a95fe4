package client

import (
	"context"
	"net/http"

	"scrap-market/internal/pkg/config"

	"github.com/shopspring/decimal"
)

type calculateRequest struct {
	CategoryID int64           `json:"category_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Location   string          `json:"location,omitempty"`
}

type calculateResponse struct {
	TotalPrice decimal.Decimal `json:"total_price"`
}

type PricingClient struct {
	baseClient
}

func NewPricingClient(cfg config.UpstreamConfig) *PricingClient {
	return &PricingClient{baseClient: newBaseClient(cfg.PricingURL, cfg.Timeout)}
}

func (c *PricingClient) Estimate(ctx context.Context, token string, categoryID int64, quantity decimal.Decimal, location string) (decimal.Decimal, error) {
	resp, err := c.do(ctx, http.MethodPost, "/calculate", token, calculateRequest{
		CategoryID: categoryID,
		Quantity:   quantity,
		Location:   location,
	})
	if err != nil {
		return decimal.Zero, err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, unexpectedStatus(http.MethodPost, "/calculate", resp.StatusCode)
	}

	var out calculateResponse
	if err := decodeJSON(resp, &out); err != nil {
		return decimal.Zero, err
	}
	return out.TotalPrice, nil
}
