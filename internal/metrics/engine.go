package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	FilterEvaluationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "papers",
			Name:      "filter_evaluations_total",
			Help:      "Total number of filter engine evaluations",
		},
	)

	SearchQueriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "papers",
			Name:      "search_queries_total",
			Help:      "Total number of fuzzy title searches",
		},
	)

	ExportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "papers",
			Name:      "exports_total",
			Help:      "Total number of CSV exports",
		},
	)

	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "papers",
			Name:      "catalog_size",
			Help:      "Number of papers in the loaded catalog",
		},
	)
)

// RegisterEngineMetrics registers the engine metrics explicitly
// (no init()) so tests and embedders can opt out.
func RegisterEngineMetrics() {
	prometheus.MustRegister(FilterEvaluationsTotal)
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(ExportsTotal)
	prometheus.MustRegister(CatalogSize)
}
