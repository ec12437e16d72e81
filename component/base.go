package component

import (
	"fmt"
	"slices"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/errors"
)

// Base implements Wireable from a Descriptor. Domain components embed *Base and keep
// the slots they consume in unexported fields. A component that exposes several
// same-shaped ports registers a separate handle per capability with Implement.
//
//	type Filter struct {
//		*component.Base
//		output *component.Slot
//	}
//
//	func New(name string) *Filter {
//		f := &Filter{}
//		f.Base = component.NewBase(filterDescriptor, name, f)
//		f.output = f.MustSlot("output")
//		f.Implement(dataflow.Float64, f)
//		return f
//	}
type Base struct {
	descriptor *Descriptor
	name       string
	self       Wireable
	slots      []*Slot
	handles    map[capability.ID]any
}

// NewBase builds the slot set of one instance. owner is the embedding component and
// becomes the provider/consumer of its bindings; nil means the Base itself.
// The descriptor must have been validated (Describe or MustDescribe).
func NewBase(descriptor *Descriptor, name string, owner Wireable) *Base {
	if descriptor == nil {
		panic(errors.WrapFatal(errors.ErrNullArgument, "Base", "NewBase", "descriptor presence"))
	}
	b := &Base{
		descriptor: descriptor,
		name:       name,
		handles:    make(map[capability.ID]any),
	}
	b.self = owner
	if b.self == nil {
		b.self = b
	}
	for _, spec := range descriptor.AllSlots() {
		b.slots = append(b.slots, newSlot(spec, b.self))
	}
	return b
}

// Info returns type and instance name.
func (b *Base) Info() Info {
	return Info{Type: b.descriptor.Type, Name: b.name}
}

// Descriptor returns the type descriptor.
func (b *Base) Descriptor() *Descriptor {
	return b.descriptor
}

// Slots returns the declared slots in declaration order.
func (b *Base) Slots() []*Slot {
	return slices.Clone(b.slots)
}

// Capabilities returns the implemented capabilities in declaration order.
func (b *Base) Capabilities() []capability.ID {
	return b.descriptor.AllProvides()
}

// Provide returns the handle registered for id. A declared capability without a
// registered handle is provided by the owning component itself.
func (b *Base) Provide(id capability.ID) (any, bool) {
	if h, ok := b.handles[id]; ok {
		return h, true
	}
	if b.descriptor.Implements(id) {
		return b.self, true
	}
	return nil, false
}

// Implement registers the handle for a declared capability.
func (b *Base) Implement(id capability.ID, handle any) {
	if !b.descriptor.Implements(id) {
		panic(errors.WrapInvalid(
			fmt.Errorf("%w: %s does not declare %s", errors.ErrUnknownCapability, b.descriptor.Type, id),
			"Base", "Implement", "capability declaration check"))
	}
	if handle == nil {
		panic(errors.WrapFatal(errors.ErrNullArgument, "Base", "Implement", "handle presence"))
	}
	b.handles[id] = handle
}

// Slot looks up a declared slot by name.
func (b *Base) Slot(name string) (*Slot, bool) {
	for _, s := range b.slots {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// MustSlot is Slot for constructors, where a missing name is a programming error.
func (b *Base) MustSlot(name string) *Slot {
	s, ok := b.Slot(name)
	if !ok {
		panic(errors.WrapFatal(
			fmt.Errorf("%w: %s has no slot %q", errors.ErrInvalidDescriptor, b.descriptor.Type, name),
			"Base", "MustSlot", "slot lookup"))
	}
	return s
}
