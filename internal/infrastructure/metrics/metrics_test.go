package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesCollectors(t *testing.T) {
	HTTPRequestsTotal.WithLabelValues("GET", "/api/posts", "200").Inc()
	TranslationFallbacks.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "renaspress_http_requests_total")
	assert.Contains(t, string(body), "renaspress_translation_fallbacks_total")
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(RateLimitRejections.WithLabelValues("auth"))
	RateLimitRejections.WithLabelValues("auth").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(RateLimitRejections.WithLabelValues("auth")))
}
