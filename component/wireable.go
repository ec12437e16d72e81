package component

import (
	"fmt"

	"github.com/c360/semwire/capability"
)

// NoInstanceName labels components created without an instance name.
const NoInstanceName = "No InstanceName"

// Wireable is a component instance the resolver can connect.
//
// Slots and Capabilities are fixed at construction. Slots returns the live slot values
// in declaration order, base-first; the resolver reads them on every call.
type Wireable interface {
	Info() Info
	Slots() []*Slot
	Capabilities() []capability.ID
	// Provide returns the value implementing id, used as the handle of a binding.
	Provide(id capability.ID) (any, bool)
}

// Info identifies a component instance for diagnostics.
type Info struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
}

// InstanceName returns the instance name or NoInstanceName.
func (i Info) InstanceName() string {
	if i.Name == "" {
		return NoInstanceName
	}
	return i.Name
}

// String renders the instance as Type[name].
func (i Info) String() string {
	return fmt.Sprintf("%s[%s]", i.Type, i.InstanceName())
}
