package metric

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/errors"
)

func TestNewMetricsRegistry(t *testing.T) {
	registry := NewMetricsRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.PrometheusRegistry())
	require.NotNil(t, registry.Wiring)
}

func TestMetricsRegistry_RegisterCounterVec(t *testing.T) {
	registry := NewMetricsRegistry()

	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "test_samples_total",
		Help: "A test counter vector",
	}, []string{"source"})

	require.NoError(t, registry.RegisterCounterVec("adc", "samples", counterVec))
	counterVec.WithLabelValues("adc").Add(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(counterVec.WithLabelValues("adc")))

	metricFamilies, err := registry.PrometheusRegistry().Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range metricFamilies {
		if mf.GetName() == "test_samples_total" {
			found = true
			break
		}
	}
	assert.True(t, found, "Counter vector should be registered in Prometheus registry")
}

func TestMetricsRegistry_DuplicateRegistration(t *testing.T) {
	registry := NewMetricsRegistry()

	gaugeVec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "test_level",
		Help: "A test gauge vector",
	}, []string{"source"})

	require.NoError(t, registry.RegisterGaugeVec("adc", "level", gaugeVec))

	err := registry.RegisterGaugeVec("adc", "level", gaugeVec)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
	assert.True(t, errors.Is(err, errors.ErrDuplicateName))

	other := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "test_level",
		Help: "A test gauge vector",
	}, []string{"source"})
	err = registry.RegisterGaugeVec("other", "level", other)
	require.Error(t, err, "prometheus rejects the same fully-qualified name")
	assert.True(t, errors.IsInvalid(err))
}

func TestMetricsRegistry_Unregister(t *testing.T) {
	registry := NewMetricsRegistry()

	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "test_unregister_total",
		Help: "A test counter vector",
	}, []string{"source"})
	require.NoError(t, registry.RegisterCounterVec("adc", "unregister", counterVec))

	assert.True(t, registry.Unregister("adc", "unregister"))
	assert.False(t, registry.Unregister("adc", "unregister"))
	require.NoError(t, registry.RegisterCounterVec("adc", "unregister", counterVec))
}

func TestWiringMetrics(t *testing.T) {
	registry := NewMetricsRegistry()
	m := registry.Wiring

	m.RecordBind("dataflow.Int", "singular")
	m.RecordBind("dataflow.Int", "singular")
	m.RecordBind("dataflow.Float64", "list")
	m.RecordFailure(ReasonNoCandidate)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Binds.WithLabelValues("dataflow.Int", "singular")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Binds.WithLabelValues("dataflow.Float64", "list")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Failures.WithLabelValues(ReasonNoCandidate)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.Binds))
}

func TestWiringMetrics_NilSafe(t *testing.T) {
	var m *WiringMetrics
	assert.NotPanics(t, func() {
		m.RecordBind("x", "singular")
		m.RecordFailure(ReasonAlreadyWired)
	})
}

func TestMetricsRegistry_WriteText(t *testing.T) {
	registry := NewMetricsRegistry()
	registry.Wiring.RecordBind("dataflow.Int", "singular")
	registry.Wiring.RecordFailure(ReasonNoCandidate)

	var buf bytes.Buffer
	require.NoError(t, registry.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE semwire_wiring_binds_total counter")
	assert.Contains(t, out, `semwire_wiring_binds_total{capability="dataflow.Int",cardinality="singular"} 1`)
	assert.Contains(t, out, `semwire_wiring_failures_total{reason="no_candidate"} 1`)
	assert.NotContains(t, out, "go_goroutines", "runtime collectors are not dumped")
}
