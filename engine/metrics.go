package flowengine

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/semwire/metric"
)

// engineMetrics holds Prometheus metrics for graph assembly.
type engineMetrics struct {
	builds     *prometheus.CounterVec // By status (success/failure)
	components *prometheus.GaugeVec   // By factory type, for the last successful build
}

var (
	metricsMu sync.Mutex
	shared    = make(map[*metric.MetricsRegistry]*engineMetrics)
)

// newEngineMetrics returns the engine metrics registered with registry. A nil
// registry disables metrics.
func newEngineMetrics(registry *metric.MetricsRegistry) (*engineMetrics, error) {
	if registry == nil {
		return nil, nil // Metrics disabled
	}

	metricsMu.Lock()
	defer metricsMu.Unlock()

	if m, ok := shared[registry]; ok {
		return m, nil
	}

	m := &engineMetrics{
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metric.Namespace,
			Subsystem: "engine",
			Name:      "builds_total",
			Help:      "Total number of graph builds",
		}, []string{"status"}),

		components: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metric.Namespace,
			Subsystem: "engine",
			Name:      "components",
			Help:      "Components created by the last successful build",
		}, []string{"type"}),
	}

	if err := registry.RegisterCounterVec("engine", "builds", m.builds); err != nil {
		return nil, err
	}
	if err := registry.RegisterGaugeVec("engine", "components", m.components); err != nil {
		return nil, err
	}
	shared[registry] = m
	return m, nil
}

func (m *engineMetrics) recordBuild(success bool, types map[string]int) {
	if m == nil {
		return
	}
	if !success {
		m.builds.WithLabelValues("failure").Inc()
		return
	}
	m.builds.WithLabelValues("success").Inc()
	m.components.Reset()
	for t, n := range types {
		m.components.WithLabelValues(t).Set(float64(n))
	}
}
