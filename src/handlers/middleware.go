package handlers

import (
	"net/http"
	"time"

	"venue-finder/src/metrics"
)

// Instrument records the request count and duration for a route.
func Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		metrics.RequestsTotal.WithLabelValues(route).Inc()
		next(w, r)
		metrics.RequestDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	}
}
