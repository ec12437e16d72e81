package diagnostic

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
)

// Operation names the resolver call that produced an event.
type Operation string

const (
	OpWireTo Operation = "WireTo"
	OpWireIn Operation = "WireIn"
)

// Endpoint identifies one side of a binding.
type Endpoint struct {
	Type     string `json:"type"`
	Instance string `json:"instance"`
}

// String renders "Type[instance]", substituting NoInstanceName for empty instances.
func (e Endpoint) String() string {
	return component.Info{Type: e.Type, Name: e.Instance}.String()
}

// EndpointOf captures the identity of a component.
func EndpointOf(c component.Wireable) Endpoint {
	info := c.Info()
	return Endpoint{Type: info.Type, Instance: info.InstanceName()}
}

// Event describes one completed binding.
type Event struct {
	ID          string                 `json:"id"`
	Time        time.Time              `json:"time"`
	Operation   Operation              `json:"operation"`
	Source      Endpoint               `json:"source"`
	Target      Endpoint               `json:"target"`
	Slot        string                 `json:"slot"`
	Capability  capability.ID          `json:"capability"`
	Cardinality capability.Cardinality `json:"-"`
	List        bool                   `json:"list"`
	Position    int                    `json:"position"`
}

// NewEvent builds the event for binding b, made by op on slot.
func NewEvent(op Operation, slot *component.Slot, b component.Binding) Event {
	card := capability.Singular
	if slot != nil {
		card = slot.Cardinality()
	}
	return Event{
		ID:          uuid.NewString(),
		Time:        time.Now().UTC(),
		Operation:   op,
		Source:      EndpointOf(b.Consumer),
		Target:      EndpointOf(b.Provider),
		Slot:        b.Slot,
		Capability:  b.Capability,
		Cardinality: card,
		List:        card == capability.List,
		Position:    b.Position,
	}
}

// String renders the human-readable message:
//
//	WireTo ADCSimulator[adc].output ---> LowPassFilter[No InstanceName] : dataflow.Int
//
// List bindings append the position, e.g. "fanout[1]".
func (e Event) String() string {
	slot := e.Slot
	if e.List {
		slot = fmt.Sprintf("%s[%d]", e.Slot, e.Position)
	}
	return fmt.Sprintf("%s %s.%s ---> %s : %s", e.Operation, e.Source, slot, e.Target, e.Capability)
}
