package middleware

import (
	"net/http"
	"time"

	"github.com/mcoot/kohlenschlagen/internal/metrics"
)

// RouteNamer labels a request for metrics. It should return a route
// template rather than the raw path.
type RouteNamer func(r *http.Request) string

// Metrics creates middleware that records request latency per route
func Metrics(m *metrics.Metrics, route RouteNamer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := Wrap(w)

			next.ServeHTTP(wrapped, r)

			m.ObserveHTTP(r.Method, route(r), wrapped.Status(), time.Since(start))
		})
	}
}
