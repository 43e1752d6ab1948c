package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"counsel/internal/domain"
)

// Metrics holds the Prometheus instruments for the strategy engine.
type Metrics struct {
	AnalysesComputed  prometheus.Counter
	DegradedAnalyses  prometheus.Counter
	UnsafeDisclosures prometheus.Counter
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		AnalysesComputed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "counsel_analyses_computed_total",
			Help: "Total number of strategy analyses computed",
		}),
		DegradedAnalyses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "counsel_analyses_degraded_total",
			Help: "Total number of analyses gated on insufficient extracted text",
		}),
		UnsafeDisclosures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "counsel_disclosure_unsafe_total",
			Help: "Total number of analyses that resolved an unsafe disclosure state",
		}),
	}
}

// ObserveAnalysis records the outcome of one computed aggregate.
func (m *Metrics) ObserveAnalysis(a domain.StrategyAnalysis) {
	m.AnalysesComputed.Inc()
	if a.Banner != "" {
		m.DegradedAnalyses.Inc()
	}
	if a.DisclosureState.Status == domain.DisclosureUnsafe {
		m.UnsafeDisclosures.Inc()
	}
}
