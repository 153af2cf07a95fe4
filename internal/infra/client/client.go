// Package client holds the HTTP clients one service uses to call another.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"scrap-market/internal/pkg/bearer"
	"scrap-market/internal/pkg/errs"
)

// maxErrorBody bounds how much of an error response is read for its code.
const maxErrorBody = 64 * 1024

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type baseClient struct {
	httpClient *http.Client
	baseURL    string
}

func newBaseClient(baseURL string, timeout time.Duration) baseClient {
	return baseClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// do sends one request and returns the response for the caller to close.
// A nil response means the call never got an answer.
func (c *baseClient) do(ctx context.Context, method, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, errs.Wrap(err, "failed to encode upstream payload")
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build upstream request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", bearer.Header(token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "%s %s", method, path), errs.ErrUpstreamUnavailable)
	}
	return resp, nil
}

func decodeJSON(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode upstream response"), errs.ErrUpstreamUnavailable)
	}
	return nil
}

func readErrorCode(resp *http.Response) string {
	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		return ""
	}
	return body.Error.Code
}

// drain lets the transport reuse the connection.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}

func unexpectedStatus(method, path string, status int) error {
	return errs.Mark(errs.Newf("%s %s: unexpected status %d", method, path, status), errs.ErrUpstreamUnavailable)
}
