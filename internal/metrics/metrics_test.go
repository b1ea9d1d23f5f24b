package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRendersCounter(t *testing.T) {
	r := NewRegistry()
	r.PageRenders.WithLabelValues("production", "false").Inc()
	r.PageRenders.WithLabelValues("production", "false").Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(r.PageRenders.WithLabelValues("production", "false")))
}

func TestHandlerExposesSiteMetrics(t *testing.T) {
	r := NewRegistry()
	r.RequestDuration.WithLabelValues("/", "GET", "200").Observe(0.01)
	r.Panics.Inc()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "g1site_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "g1site_http_panics_total 1")
	assert.Contains(t, body, "go_goroutines")
}
