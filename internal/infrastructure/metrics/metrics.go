// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts requests by route template, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renaspress_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "renaspress_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// TranslationRequests counts provider calls by operation and outcome
	// (ok, error, disabled).
	TranslationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renaspress_translation_requests_total",
		Help: "Translation provider calls by operation and outcome",
	}, []string{"operation", "outcome"})

	// TranslationFallbacks counts responses that returned the original text.
	TranslationFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renaspress_translation_fallbacks_total",
		Help: "Translations that fell back to the original text",
	})

	// TranslationCacheHits counts post translations served from the store.
	TranslationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renaspress_translation_cache_hits_total",
		Help: "Post translations served from the cache",
	})

	// MediaUploads counts uploads by kind (image, video) and outcome.
	MediaUploads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renaspress_media_uploads_total",
		Help: "Media uploads by kind and outcome",
	}, []string{"kind", "outcome"})

	// MediaUploadBytes records the size of accepted uploads.
	MediaUploadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "renaspress_media_upload_bytes",
		Help:    "Size of uploaded media in bytes",
		Buckets: prometheus.ExponentialBuckets(16*1024, 4, 8),
	}, []string{"kind"})

	// RateLimitRejections counts requests refused by the rate limiter.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renaspress_rate_limit_rejections_total",
		Help: "Requests rejected by the rate limiter",
	}, []string{"scope"})

	// RedisErrors counts Redis failures by operation. The limiter fails open
	// on these.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renaspress_redis_errors_total",
		Help: "Redis errors by operation",
	}, []string{"operation"})

	// PostsPublished counts posts moved to published by bulk publish.
	PostsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renaspress_posts_bulk_published_total",
		Help: "Posts published through bulk publish",
	})

	// NewsImported counts articles imported from the news provider.
	NewsImported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "renaspress_news_articles_total",
		Help: "News provider articles by result (imported, skipped)",
	}, []string{"result"})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
