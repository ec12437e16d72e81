// Package scale provides a linear transform for float data flows.
package scale

import (
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
)

var descriptor = component.MustDescribe("OffsetAndScale",
	component.Single("output", dataflow.Float64),
	component.Provides(dataflow.Float64),
)

// OffsetAndScale emits (x + offset) * scale. On an x,y plot -offset is the x
// intercept and scale is the slope.
type OffsetAndScale struct {
	*component.Base
	output *component.Slot

	offset float64
	scale  float64
}

// New creates the transform.
func New(name string, offset, scale float64) *OffsetAndScale {
	o := &OffsetAndScale{offset: offset, scale: scale}
	o.Base = component.NewBase(descriptor, name, o)
	o.output = o.MustSlot("output")
	return o
}

// Apply returns the transformed value without emitting it.
func (o *OffsetAndScale) Apply(x float64) float64 {
	return (x + o.offset) * o.scale
}

// Push implements dataflow.Flow.
func (o *OffsetAndScale) Push(x float64) {
	dataflow.Emit(o.output, o.Apply(x))
}
