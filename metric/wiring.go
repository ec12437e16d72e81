package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Failure reasons recorded by the resolver.
const (
	ReasonNullArgument    = "null_argument"
	ReasonNoCandidate     = "no_candidate"
	ReasonAlreadyWired    = "already_wired"
	ReasonInvalidArgument = "invalid_argument"
)

// WiringMetrics counts resolver outcomes. A nil *WiringMetrics records nothing.
type WiringMetrics struct {
	Binds    *prometheus.CounterVec
	Failures *prometheus.CounterVec
}

// NewWiringMetrics creates unregistered wiring counters.
func NewWiringMetrics() *WiringMetrics {
	return &WiringMetrics{
		Binds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "wiring",
				Name:      "binds_total",
				Help:      "Total number of bindings made by the resolver",
			},
			[]string{"capability", "cardinality"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "wiring",
				Name:      "failures_total",
				Help:      "Total number of failed wiring calls",
			},
			[]string{"reason"},
		),
	}
}

// RecordBind counts one binding.
func (m *WiringMetrics) RecordBind(capability, cardinality string) {
	if m == nil {
		return
	}
	m.Binds.WithLabelValues(capability, cardinality).Inc()
}

// RecordFailure counts one failed call.
func (m *WiringMetrics) RecordFailure(reason string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(reason).Inc()
}
