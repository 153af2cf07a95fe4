package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"scrap-market/internal/pkg/config"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/usecase/shared"
)

type listRequestsResponse struct {
	Requests []shared.LedgerRequest `json:"requests"`
}

type LedgerClient struct {
	baseClient
}

func NewLedgerClient(cfg config.UpstreamConfig) *LedgerClient {
	return &LedgerClient{baseClient: newBaseClient(cfg.LedgerURL, cfg.Timeout)}
}

func (c *LedgerClient) GetRequest(ctx context.Context, token string, id int64) (*shared.LedgerRequest, error) {
	path := fmt.Sprintf("/requests/%d", id)
	resp, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errs.Wrapf(errs.ErrNotFound, "ledger request %d", id)
	default:
		return nil, unexpectedStatus(http.MethodGet, path, resp.StatusCode)
	}

	var out shared.LedgerRequest
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *LedgerClient) ListAllByStatus(ctx context.Context, token, status string) ([]shared.LedgerRequest, error) {
	path := "/requests/all?status=" + url.QueryEscape(status)
	resp, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(http.MethodGet, path, resp.StatusCode)
	}

	var out listRequestsResponse
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

func (c *LedgerClient) UpdateStatus(ctx context.Context, token string, id int64, update shared.StatusUpdate) (int, error) {
	path := fmt.Sprintf("/requests/%d/status", id)
	resp, err := c.do(ctx, http.MethodPut, path, token, update)
	if err != nil {
		return 0, err
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, unexpectedStatus(http.MethodPut, path, resp.StatusCode)
	}
	return resp.StatusCode, nil
}
