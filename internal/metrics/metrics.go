package metrics

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// PaywallsCreated counts successfully minted and persisted paywalls.
	PaywallsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "paywalls_created_total",
			Help: "Total number of paywalls minted and persisted",
		},
	)

	// GalleryListings counts gallery listing requests by outcome (success, error).
	GalleryListings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_listings_total",
			Help: "Total number of gallery listings by outcome",
		},
		[]string{"outcome"},
	)
)

var (
	usernamePathSegment = regexp.MustCompile(`(/users/)[^/]+`)
	initOnce            sync.Once
)

func init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestDuration, RequestTotal, PaywallsCreated, GalleryListings)
	})
}

// NormalizePath reduces label cardinality by collapsing the username path
// segment. E.g. /api/v1/users/alice -> /api/v1/users/{username}.
func NormalizePath(path string) string {
	return usernamePathSegment.ReplaceAllString(path, "${1}{username}")
}

// RecordRequest records duration and count for an HTTP request.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}
