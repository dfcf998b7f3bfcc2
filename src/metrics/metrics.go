package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "venuefinder_requests_total",
		Help: "Total HTTP requests by route",
	}, []string{"route"})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "venuefinder_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	ChatMessagesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "venuefinder_chat_messages_total",
		Help: "Total chat messages processed",
	})
	ChatActionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "venuefinder_chat_actions_total",
		Help: "Structured actions produced by the intent matcher",
	}, []string{"type"})
	EmptyResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "venuefinder_empty_results_total",
		Help: "Explore queries that matched no venue",
	})
	TranslateCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "venuefinder_translate_cache_hits_total",
		Help: "Translation requests served from the session cache",
	})
	CollaboratorFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "venuefinder_collaborator_failures_total",
		Help: "AI collaborator failures substituted with fallbacks",
	}, []string{"collaborator"})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(ChatMessagesTotal)
	prometheus.MustRegister(ChatActionsTotal)
	prometheus.MustRegister(EmptyResultsTotal)
	prometheus.MustRegister(TranslateCacheHitsTotal)
	prometheus.MustRegister(CollaboratorFailuresTotal)
}

// Handler exposes the registered metrics for scraping; mounted at
// /metrics in main.
func Handler() http.Handler { return promhttp.Handler() }
