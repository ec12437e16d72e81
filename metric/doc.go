// Package metric provides Prometheus instrumentation for the wiring phase.
//
// MetricsRegistry owns a private prometheus.Registry preloaded with the wiring
// counters and the Go runtime collectors. Components that want their own metrics
// register them through MetricsRegistrar, keyed by owner and metric name:
//
//	registry := metric.NewMetricsRegistry()
//	resolver := wiring.NewResolver(wiring.WithMetrics(registry.Wiring))
//
// Exported series:
//
//	semwire_wiring_binds_total{capability,cardinality}
//	semwire_wiring_failures_total{reason}
//
// WiringMetrics methods are nil-safe so the resolver can run without instrumentation.
package metric
