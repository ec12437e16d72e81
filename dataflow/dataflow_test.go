package dataflow

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/diagnostic"
	"github.com/c360/semwire/wiring"
)

func newResolver() *wiring.Resolver {
	return wiring.NewResolver(wiring.WithSink(diagnostic.NewSink()))
}

func record[T any](r *[]T) func(T) {
	return func(v T) { *r = append(*r, v) }
}

func TestFanout(t *testing.T) {
	r := newResolver()
	f := NewFanout[float64]("split", Float64)

	var order []string
	a := NewExternalPort("a", Float64, func(float64) { order = append(order, "a") })
	b := NewExternalPort("b", Float64, func(float64) { order = append(order, "b") })
	last := NewExternalPort("last", Float64, func(float64) { order = append(order, "last") })

	_, err := r.WireTo(f, last, "last")
	require.NoError(t, err)
	_, err = r.WireTo(f, a)
	require.NoError(t, err)
	_, err = r.WireTo(f, b)
	require.NoError(t, err)

	f.Push(2.5)
	assert.Equal(t, []string{"a", "b", "last"}, order)
	assert.Equal(t, 2.5, f.Pull())
}

func TestFanout_UnwiredIsSilent(t *testing.T) {
	f := NewFanout[int]("", Int)
	assert.NotPanics(t, func() { f.Push(1) })
	assert.Equal(t, 1, f.Pull())
}

func TestFanout_SingularSlotWinsFirstWire(t *testing.T) {
	r := newResolver()
	f := NewFanout[float64]("", Float64)
	_, err := r.WireTo(f, NewExternalPort("", Float64, func(float64) {}))
	require.NoError(t, err)

	last, _ := f.Slot("last")
	fan, _ := f.Slot("fanout")
	assert.True(t, last.IsBound(), "unbound singular slot takes precedence over the list")
	assert.False(t, fan.IsBound())
}

func TestConvert(t *testing.T) {
	r := newResolver()
	var got []float64
	sink := NewExternalPort("", Float64, record(&got))

	conv := NewIntToFloat("")
	_, err := r.WireTo(conv, sink)
	require.NoError(t, err)

	conv.Push(3)
	assert.Equal(t, []float64{3}, got)
	assert.Equal(t, "IntToFloat", conv.Info().Type)
}

func TestRelabel(t *testing.T) {
	r := newResolver()
	var onB []float64
	sinkA := NewExternalPort("a", Float64, func(float64) { t.Fatal("relabel must not reach the primary port") })
	sinkB := NewExternalPort("b", Float64B, record(&onB))

	relabel := NewRelabel("")
	_, err := r.WireTo(relabel, sinkA)
	require.Error(t, err)
	_, err = r.WireTo(relabel, sinkB)
	require.NoError(t, err)

	relabel.Push(1.25)
	assert.Equal(t, []float64{1.25}, onB)
}

func TestInitializer(t *testing.T) {
	r := newResolver()
	var got []float64
	i := NewInitializer[float64]("", Float64).WithInitial(20)
	_, err := r.WireTo(i, NewExternalPort("", Float64, record(&got)))
	require.NoError(t, err)

	i.Start()
	i.Push(21)
	assert.Equal(t, []float64{20, 21}, got)

	assert.NotPanics(t, NewInitializer[float64]("", Float64).Start)
}

func TestDebugOutput(t *testing.T) {
	r := newResolver()
	var reports []string
	var got []int
	d := NewDebugOutput[int]("", Int, record(&reports))
	_, err := r.WireTo(d, NewExternalPort("", Int, record(&got)))
	require.NoError(t, err)

	d.Push(7)
	assert.Equal(t, []string{"7"}, reports)
	assert.Equal(t, []int{7}, got)
}

func TestDescriptorsAreShared(t *testing.T) {
	a := NewFanout[float64]("", Float64)
	b := NewFanout[float64]("", Float64)
	c := NewFanout[int]("", Int)
	assert.Same(t, a.Descriptor(), b.Descriptor())
	assert.NotSame(t, a.Descriptor(), c.Descriptor())
}

func TestRegister(t *testing.T) {
	registry := component.NewRegistry()
	require.NoError(t, Register(registry))
	assert.Equal(t, []string{"debug_output", "fanout", "initializer", "int_to_float", "relabel"}, registry.ListFactories())

	var logs bytes.Buffer
	deps := component.Dependencies{Logger: slog.New(slog.NewTextHandler(&logs, nil))}

	c, err := registry.Create("debug_output", "dbg", nil, deps)
	require.NoError(t, err)
	c.(*DebugOutput[float64]).Push(1.5)
	assert.Contains(t, logs.String(), "value=1.5")

	c, err = registry.Create("initializer", "init", initialConfig(20), deps)
	require.NoError(t, err)
	var got []float64
	_, err = newResolver().WireTo(c, NewExternalPort("", Float64, record(&got)))
	require.NoError(t, err)
	c.(*Initializer[float64]).Start()
	assert.Equal(t, []float64{20}, got)
}

type initialConfig float64

func (v initialConfig) Decode(out any) error {
	f := float64(v)
	out.(*initializerConfig).Initial = &f
	return nil
}
