//go:build unit

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"scrap-market/internal/pkg/config"
	"scrap-market/internal/pkg/errs"
	"scrap-market/internal/pkg/ptr"
	"scrap-market/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T, mux *http.ServeMux) *LedgerClient {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewLedgerClient(config.UpstreamConfig{LedgerURL: srv.URL + "/api/users", Timeout: time.Second})
}

func TestLedgerClient_GetRequest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/requests/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer dealer-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":7,"user_id":3,"category_id":3,"quantity":"10.00","status":"pending","created_at":"2025-05-01T12:00:00Z"}`))
	})
	mux.HandleFunc("/api/users/requests/8", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/api/users/requests/9", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c := newLedger(t, mux)

	got, err := c.GetRequest(context.Background(), "dealer-token", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
	assert.Equal(t, "pending", got.Status)
	assert.True(t, decimal.NewFromInt(10).Equal(got.Quantity))

	_, err = c.GetRequest(context.Background(), "dealer-token", 8)
	assert.True(t, errs.Is(err, errs.ErrNotFound))

	_, err = c.GetRequest(context.Background(), "dealer-token", 9)
	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
}

func TestLedgerClient_ListAllByStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/requests/all", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"requests":[{"id":1,"status":"pending"},{"id":2,"status":"pending"}]}`))
	})
	c := newLedger(t, mux)

	got, err := c.ListAllByStatus(context.Background(), "t", "pending")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestLedgerClient_UpdateStatus(t *testing.T) {
	var received shared.StatusUpdate
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/requests/7/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"message":"Status updated successfully"}`))
	})
	mux.HandleFunc("/api/users/requests/8/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})
	c := newLedger(t, mux)

	code, err := c.UpdateStatus(context.Background(), "t", 7, shared.StatusUpdate{
		Status:           "accepted",
		AssignedDealerID: ptr.Of(int64(11)),
		Notes:            "Updated by dealer 11",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "accepted", received.Status)
	assert.Equal(t, int64(11), *received.AssignedDealerID)

	code, err = c.UpdateStatus(context.Background(), "t", 8, shared.StatusUpdate{Status: "accepted"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, code)
}

func TestPricingClient_Estimate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/pricing/calculate", func(w http.ResponseWriter, r *http.Request) {
		var body calculateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.CategoryID != 3 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"total_price":"450.00"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	c := NewPricingClient(config.UpstreamConfig{PricingURL: srv.URL + "/api/pricing", Timeout: time.Second})

	got, err := c.Estimate(context.Background(), "t", 3, decimal.NewFromInt(10), "default")
	require.NoError(t, err)
	assert.Equal(t, "450.00", got.StringFixed(2))

	_, err = c.Estimate(context.Background(), "t", 99, decimal.NewFromInt(10), "default")
	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
}
