package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/hooplog/hooplog/internal/metrics"
)

// Metrics creates middleware that records request durations. The mux route
// template is used as the route label so path parameters do not explode the
// label cardinality.
func Metrics(m metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &ResponseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			m.ObserveRequestDuration(r.Method, route, wrapped.status, time.Since(start).Seconds())
		})
	}
}
