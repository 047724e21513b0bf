// Package metrics defines Prometheus metrics for ladder searches.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/wordladder/ladder"
)

// Search outcomes used as the "outcome" label.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ladder_searches_total",
			Help: "Total ladder searches by outcome",
		},
		[]string{"outcome"},
	)

	NodesExpanded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ladder_nodes_expanded_total",
			Help: "Total search nodes passed to the neighbor provider",
		},
	)

	PathSteps = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ladder_path_steps",
			Help:    "Number of steps in found ladders",
			Buckets: prometheus.LinearBuckets(0, 1, 12),
		},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ladder_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"path", "status"},
	)
)

func init() {
	prometheus.MustRegister(SearchesTotal, NodesExpanded, PathSteps, RequestsTotal)
}

// Hooks returns search options that feed the expansion counter.
func Hooks() []ladder.Option {
	return []ladder.Option{
		ladder.WithOnExpand(func(string, int) { NodesExpanded.Inc() }),
	}
}

// ObserveSearch records the outcome of one search.
func ObserveSearch(res *ladder.Result, err error) {
	switch {
	case err != nil:
		SearchesTotal.WithLabelValues(OutcomeError).Inc()
	case res.Found():
		SearchesTotal.WithLabelValues(OutcomeFound).Inc()
		PathSteps.Observe(float64(res.Len()))
	default:
		SearchesTotal.WithLabelValues(OutcomeNotFound).Inc()
	}
}
