// Package add sums two float data flows.
package add

import (
	"sync"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
)

var descriptor = component.MustDescribe("Add",
	component.Single("output", dataflow.Float64),
	component.Provides(dataflow.Float64, dataflow.Float64B),
)

// Add has two inputs: the Float64 port is the first operand and the Float64B port
// the second. Nothing is emitted until both operands have been seen; afterwards
// each input emits the new sum.
//
// Wire a Float64 producer to the second operand through dataflow.NewRelabel.
type Add struct {
	*component.Base
	output *component.Slot

	mu       sync.Mutex
	operand1 *float64
	operand2 *float64
}

// New creates the adder.
func New(name string) *Add {
	a := &Add{}
	a.Base = component.NewBase(descriptor, name, a)
	a.output = a.MustSlot("output")
	a.Implement(dataflow.Float64, dataflow.FlowFunc[float64](a.pushFirst))
	a.Implement(dataflow.Float64B, dataflow.FlowFunc[float64](a.pushSecond))
	return a
}

func (a *Add) pushFirst(v float64) {
	a.mu.Lock()
	a.operand1 = &v
	sum, ok := a.sumLocked()
	a.mu.Unlock()
	if ok {
		dataflow.Emit(a.output, sum)
	}
}

func (a *Add) pushSecond(v float64) {
	a.mu.Lock()
	a.operand2 = &v
	sum, ok := a.sumLocked()
	a.mu.Unlock()
	if ok {
		dataflow.Emit(a.output, sum)
	}
}

func (a *Add) sumLocked() (float64, bool) {
	if a.operand1 == nil || a.operand2 == nil {
		return 0, false
	}
	return *a.operand1 + *a.operand2, true
}
