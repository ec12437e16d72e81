// Package lowpass provides smoothing filters for float data flows.
//
// Filter averages with a fixed weight and emits one output per Strength inputs.
// Exponential weights each input by a fractional strength and emits when the
// accumulated strength passes one, so lower strengths filter harder and emit less.
package lowpass

import (
	"fmt"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
	"github.com/c360/semwire/errors"
)

var filterDescriptor = component.MustDescribe("LowPassFilter",
	component.Single("output", dataflow.Float64),
	component.Provides(dataflow.Float64),
)

// Filter is a resampling low-pass filter.
type Filter struct {
	*component.Base
	output *component.Slot

	strength int
	last     float64
	counter  int
}

// New creates a filter. strength must be at least 1; the first input is emitted
// immediately, then every strength-th input.
func New(name string, strength int, initial float64) (*Filter, error) {
	if strength < 1 {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: strength %d, want >= 1", errors.ErrInvalidConfig, strength),
			"LowPassFilter", "New", "strength check")
	}
	f := &Filter{strength: strength, last: initial}
	f.Base = component.NewBase(filterDescriptor, name, f)
	f.output = f.MustSlot("output")
	return f, nil
}

// Push implements dataflow.Flow.
func (f *Filter) Push(v float64) {
	f.last = (v + float64(f.strength)*f.last) / float64(f.strength+1)
	if f.counter == 0 {
		f.counter += f.strength
		dataflow.Emit(f.output, f.last)
	}
	f.counter--
}

var exponentialDescriptor = component.MustDescribe("Filter",
	component.Single("output", dataflow.Float64),
	component.Provides(dataflow.Float64),
)

// Exponential is an exponential moving average with proportional resampling.
type Exponential struct {
	*component.Base
	output *component.Slot

	strength float64
	state    float64
	slow     float64
}

// NewExponential creates the filter. strength is in (0, 1].
func NewExponential(name string, strength float64) (*Exponential, error) {
	if strength <= 0 || strength > 1 {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: strength %g outside (0, 1]", errors.ErrInvalidConfig, strength),
			"Filter", "NewExponential", "strength check")
	}
	e := &Exponential{strength: strength}
	e.Base = component.NewBase(exponentialDescriptor, name, e)
	e.output = e.MustSlot("output")
	return e, nil
}

// Push implements dataflow.Flow.
func (e *Exponential) Push(v float64) {
	e.state = e.strength*v + (1-e.strength)*e.state
	e.slow += e.strength
	if e.slow > 1.0 {
		e.slow -= 1.0
		dataflow.Emit(e.output, e.state)
	}
}
