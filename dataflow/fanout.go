package dataflow

import (
	"sync"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
)

// Fanout forwards each value to every flow in its "fanout" list, then to "last".
// Chaining fanouts through "last" makes the delivery order explicit. The most recent
// value is kept for Pull.
type Fanout[T any] struct {
	*component.Base
	fanout *component.Slot
	last   *component.Slot

	mu   sync.RWMutex
	data T
}

// NewFanout creates a fanout for values of capability id.
func NewFanout[T any](name string, id capability.ID) *Fanout[T] {
	d := describeOnce("Fanout/"+string(id), func() *component.Descriptor {
		return component.MustDescribe("Fanout",
			component.Many("fanout", id),
			component.Single("last", id),
			component.Provides(id),
		)
	})
	f := &Fanout[T]{}
	f.Base = component.NewBase(d, name, f)
	f.fanout = f.MustSlot("fanout")
	f.last = f.MustSlot("last")
	return f
}

// Push implements Flow.
func (f *Fanout[T]) Push(v T) {
	f.mu.Lock()
	f.data = v
	f.mu.Unlock()

	EmitAll(f.fanout, v)
	Emit(f.last, v)
}

// Pull returns the most recent value.
func (f *Fanout[T]) Pull() T {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.data
}
