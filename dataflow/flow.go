package dataflow

import (
	"sync"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
)

// Data flow capabilities. Float64B carries float64 values like Float64 but is a
// distinct port, so a component can take two float inputs.
const (
	Int      capability.ID = "dataflow.Int"
	Float64  capability.ID = "dataflow.Float64"
	Float64B capability.ID = "dataflow.Float64B"
)

func init() {
	catalog := capability.Default()
	catalog.MustDefine(Int)
	catalog.MustDefine(Float64)
	catalog.MustDefine(Float64B)
}

// Flow receives pushed values.
type Flow[T any] interface {
	Push(T)
}

// FlowFunc adapts a function to Flow.
type FlowFunc[T any] func(T)

// Push calls f.
func (f FlowFunc[T]) Push(v T) { f(v) }

// Emit pushes v to the flow bound to a singular slot. Unbound slots drop v.
func Emit[T any](s *component.Slot, v T) {
	if f, ok := component.Get[Flow[T]](s); ok {
		f.Push(v)
	}
}

// EmitAll pushes v to every flow bound to s, in bind order.
func EmitAll[T any](s *component.Slot, v T) {
	for _, f := range component.All[Flow[T]](s) {
		f.Push(v)
	}
}

var descriptors sync.Map // key -> *component.Descriptor

// describeOnce returns the descriptor cached under key, building it on first use.
// Generic connectors get one descriptor per capability combination.
func describeOnce(key string, build func() *component.Descriptor) *component.Descriptor {
	if d, ok := descriptors.Load(key); ok {
		return d.(*component.Descriptor)
	}
	d, _ := descriptors.LoadOrStore(key, build())
	return d.(*component.Descriptor)
}
