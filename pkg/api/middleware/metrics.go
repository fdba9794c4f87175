package middleware

import (
	"net/http"
	"strconv"
	"time"

	"trivium-hq/vesta/pkg/telemetry/metrics"
)

// MetricsMiddleware records request counts and duration into the collector.
// Each request increments the request counter labeled by method, path, and
// final status code, and observes its wall-clock duration.
//
// A nil collector disables recording; the middleware becomes a pass-through.
//
// Example usage:
//
//	handler = MetricsMiddleware(collector)(handler)
func MetricsMiddleware(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if collector == nil {
				next.ServeHTTP(w, r)
				return
			}

			startTime := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			collector.RecordHTTPRequest(
				r.Method,
				r.URL.Path,
				strconv.Itoa(rw.statusCode),
				time.Since(startTime),
			)
		})
	}
}
