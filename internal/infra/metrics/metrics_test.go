//go:build unit

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordHTTPRequest("coordinator", http.MethodPost, "/api/dealers/requests/:id/accept", http.StatusCreated, 20*time.Millisecond)
	c.RecordHTTPRequest("coordinator", http.MethodPost, "/api/dealers/requests/:id/accept", http.StatusConflict, 5*time.Millisecond)
	c.RecordPropagation("delivered")
	c.RecordPropagation("retry")
	c.RecordPropagation("retry")
	c.RecordPropagationLatency(15 * time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.httpRequests.WithLabelValues("coordinator", http.MethodPost, "/api/dealers/requests/:id/accept", "409")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.propagation.WithLabelValues("retry")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.propagationLatency))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordPropagation("dead")

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `scrap_propagation_attempts_total{outcome="dead"} 1`))
}
