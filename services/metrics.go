package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of calls to the diet API",
		},
		[]string{"endpoint", "outcome"},
	)
	viewFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_fallbacks_total",
			Help: "Total number of page loads rendered from sample data",
		},
		[]string{"view"},
	)
)

// Collectors returns the service metrics for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{upstreamRequests, viewFallbacks}
}

// ObserveUpstream counts API calls; pass it to client.WithObserver.
func ObserveUpstream(endpoint, outcome string) {
	upstreamRequests.WithLabelValues(endpoint, outcome).Inc()
}

func recordFallback(view string) {
	viewFallbacks.WithLabelValues(view).Inc()
}
