package middlewares

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/lnbits-gallery/internal/metrics"
)

// MetricsMiddleware records request duration and count for each request.
// Wrap the handler chain with this after recovery so metrics reflect the
// actual request.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		if r.URL.Path == "/metrics" {
			return
		}
		duration := time.Since(start).Seconds()
		path := r.URL.Path
		if path == "" {
			path = "/"
		}
		metrics.RecordRequest(r.Method, path, rw.statusCode, duration)
	})
}
