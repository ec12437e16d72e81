package adc

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360/semwire/metric"
)

// sampleMetrics counts readings per simulator instance.
type sampleMetrics struct {
	samples *prometheus.CounterVec
}

var (
	sharedMu sync.Mutex
	shared   = make(map[*metric.MetricsRegistry]*sampleMetrics)
)

// metricsFor returns the sample counter registered with registry, registering it on
// first use. All simulators built against one registry share the collector. A nil
// registry disables metrics.
func metricsFor(registry *metric.MetricsRegistry) (*sampleMetrics, error) {
	if registry == nil {
		return nil, nil
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()

	if m, ok := shared[registry]; ok {
		return m, nil
	}

	m := &sampleMetrics{
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semwire",
			Subsystem: "adc",
			Name:      "samples_total",
			Help:      "Total number of readings taken by simulated ADCs",
		}, []string{"component"}),
	}
	if err := registry.RegisterCounterVec("adc", "samples", m.samples); err != nil {
		return nil, err
	}
	shared[registry] = m
	return m, nil
}

func (m *sampleMetrics) recordSample(instance string) {
	if m == nil {
		return
	}
	m.samples.WithLabelValues(instance).Inc()
}
