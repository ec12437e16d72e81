package dataflow

import (
	"fmt"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
)

// ExternalPort lets a composite component expose an internal output through one of
// its own slots. The internal chain is wired to the port during construction, before
// the outer slot is bound; the port forwards through fn at push time.
//
//	port := dataflow.NewExternalPort("", dataflow.Float64, func(v float64) {
//		dataflow.Emit(f.output, v)
//	})
type ExternalPort[T any] struct {
	*component.Base
	fn func(T)
}

// NewExternalPort creates a port providing id.
func NewExternalPort[T any](name string, id capability.ID, fn func(T)) *ExternalPort[T] {
	d := describeOnce("ExternalPort/"+string(id), func() *component.Descriptor {
		return component.MustDescribe("ExternalPort", component.Provides(id))
	})
	p := &ExternalPort[T]{fn: fn}
	p.Base = component.NewBase(d, name, p)
	return p
}

// Push implements Flow.
func (p *ExternalPort[T]) Push(v T) {
	if p.fn != nil {
		p.fn(v)
	}
}

// Initializer is the head of a chain that is driven from code: Push sends a value
// down "output". It also accepts pushes from upstream. An initial value, when set,
// is pushed by Start.
type Initializer[T any] struct {
	*component.Base
	output  *component.Slot
	initial *T
}

// NewInitializer creates an initializer for capability id.
func NewInitializer[T any](name string, id capability.ID) *Initializer[T] {
	d := describeOnce("Initializer/"+string(id), func() *component.Descriptor {
		return component.MustDescribe("Initializer",
			component.Single("output", id),
			component.Provides(id),
		)
	})
	i := &Initializer[T]{}
	i.Base = component.NewBase(d, name, i)
	i.output = i.MustSlot("output")
	return i
}

// WithInitial sets the value pushed by Start.
func (i *Initializer[T]) WithInitial(v T) *Initializer[T] {
	i.initial = &v
	return i
}

// Start pushes the initial value, if any.
func (i *Initializer[T]) Start() {
	if i.initial != nil {
		i.Push(*i.initial)
	}
}

// Push forwards v to output.
func (i *Initializer[T]) Push(v T) {
	Emit(i.output, v)
}

// DebugOutput reports every value it passes through to a text callback.
type DebugOutput[T any] struct {
	*component.Base
	output *component.Slot
	report func(string)
}

// NewDebugOutput creates a pass-through for capability id. A nil report discards text.
func NewDebugOutput[T any](name string, id capability.ID, report func(string)) *DebugOutput[T] {
	d := describeOnce("DebugOutput/"+string(id), func() *component.Descriptor {
		return component.MustDescribe("DebugOutput",
			component.Single("output", id),
			component.Provides(id),
		)
	})
	o := &DebugOutput[T]{report: report}
	o.Base = component.NewBase(d, name, o)
	o.output = o.MustSlot("output")
	return o
}

// Push reports v and forwards it.
func (o *DebugOutput[T]) Push(v T) {
	if o.report != nil {
		o.report(fmt.Sprint(v))
	}
	Emit(o.output, v)
}

// Convert maps values of one capability to another with fn.
type Convert[In, Out any] struct {
	*component.Base
	output *component.Slot
	fn     func(In) Out
}

// NewConvert creates a converter from capability in to capability out. typeName
// names the instance type in diagnostics.
func NewConvert[In, Out any](typeName, name string, in, out capability.ID, fn func(In) Out) *Convert[In, Out] {
	d := describeOnce(typeName+"/"+string(in)+"/"+string(out), func() *component.Descriptor {
		return component.MustDescribe(typeName,
			component.Single("output", out),
			component.Provides(in),
		)
	})
	c := &Convert[In, Out]{fn: fn}
	c.Base = component.NewBase(d, name, c)
	c.output = c.MustSlot("output")
	return c
}

// Push converts v and forwards it.
func (c *Convert[In, Out]) Push(v In) {
	Emit(c.output, c.fn(v))
}

// NewIntToFloat converts Int readings to Float64.
func NewIntToFloat(name string) *Convert[int, float64] {
	return NewConvert("IntToFloat", name, Int, Float64, func(v int) float64 { return float64(v) })
}

// NewRelabel moves Float64 values onto the Float64B port.
func NewRelabel(name string) *Convert[float64, float64] {
	return NewConvert("Relabel", name, Float64, Float64B, func(v float64) float64 { return v })
}
