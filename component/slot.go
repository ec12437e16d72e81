package component

import (
	"fmt"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/errors"
)

// Binding is a realized connection from a provider's capability to a consumer's slot.
// Bindings are immutable once made.
type Binding struct {
	Provider   Wireable
	Capability capability.ID
	Handle     any
	Consumer   Wireable
	Slot       string
	// Position is the index inside a list slot, 0 for singular slots.
	Position int
}

// Slot is a typed attachment point on a component instance.
//
// A singular slot is bound at most once. A list slot is nil until its first bind and
// afterwards only grows. Slots are not safe for concurrent binding.
type Slot struct {
	spec  SlotSpec
	owner Wireable
	bound *Binding
	list  []Binding
}

func newSlot(spec SlotSpec, owner Wireable) *Slot {
	return &Slot{spec: spec, owner: owner}
}

// Name returns the slot name.
func (s *Slot) Name() string { return s.spec.Name }

// Capability returns the declared capability, or the element capability of a list.
func (s *Slot) Capability() capability.ID { return s.spec.Capability }

// Cardinality returns singular or list.
func (s *Slot) Cardinality() capability.Cardinality { return s.spec.Cardinality }

// Spec returns the declaration the slot was built from.
func (s *Slot) Spec() SlotSpec { return s.spec }

// Owner returns the component declaring the slot.
func (s *Slot) Owner() Wireable { return s.owner }

// IsList reports whether the slot accepts many providers.
func (s *Slot) IsList() bool { return s.spec.Cardinality == capability.List }

// IsBound reports whether a singular slot is bound or a list slot has been initialized.
func (s *Slot) IsBound() bool {
	if s.IsList() {
		return s.list != nil
	}
	return s.bound != nil
}

// Len returns the number of providers bound to the slot.
func (s *Slot) Len() int {
	if s.IsList() {
		return len(s.list)
	}
	if s.bound != nil {
		return 1
	}
	return 0
}

// State renders the bound state for diagnostics.
func (s *Slot) State() string {
	switch {
	case s.IsList() && s.list == nil:
		return "unassigned"
	case s.IsList():
		return fmt.Sprintf("assigned(%d)", len(s.list))
	case s.bound == nil:
		return "unassigned"
	default:
		return "assigned"
	}
}

// Binding returns the binding of a singular slot.
func (s *Slot) Binding() (Binding, bool) {
	if s.IsList() || s.bound == nil {
		return Binding{}, false
	}
	return *s.bound, true
}

// Bindings returns a copy of the bindings in bind order.
func (s *Slot) Bindings() []Binding {
	if s.IsList() {
		if s.list == nil {
			return nil
		}
		out := make([]Binding, len(s.list))
		copy(out, s.list)
		return out
	}
	if s.bound == nil {
		return nil
	}
	return []Binding{*s.bound}
}

// Handle returns the handle bound to a singular slot, nil when unbound.
func (s *Slot) Handle() any {
	if b, ok := s.Binding(); ok {
		return b.Handle
	}
	return nil
}

// Bind attaches provider to the slot. It is called by the wiring resolver; the
// binding's Consumer, Slot and Position fields are filled in here.
//
// A singular slot that is already bound returns errors.ErrSlotAlreadyWired.
func (s *Slot) Bind(b Binding) (Binding, error) {
	if b.Provider == nil {
		return Binding{}, errors.WrapFatal(errors.ErrNullArgument, "Slot", "Bind", "provider presence")
	}
	b.Consumer = s.owner
	b.Slot = s.spec.Name
	b.Capability = firstNonEmpty(b.Capability, s.spec.Capability)

	if s.IsList() {
		if s.list == nil {
			s.list = make([]Binding, 0, 1)
		}
		b.Position = len(s.list)
		s.list = append(s.list, b)
		return b, nil
	}

	if s.bound != nil {
		return Binding{}, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrSlotAlreadyWired, s.spec.Name),
			"Slot", "Bind", "singular slot check")
	}
	b.Position = 0
	s.bound = &b
	return b, nil
}

func firstNonEmpty(ids ...capability.ID) capability.ID {
	for _, id := range ids {
		if id != "" {
			return id
		}
	}
	return ""
}

// Get returns the handle bound to a singular slot as T.
func Get[T any](s *Slot) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	h, ok := s.Handle().(T)
	if !ok {
		return zero, false
	}
	return h, true
}

// All returns the handles bound to a slot as T, in bind order. Handles that are not a T
// are skipped.
func All[T any](s *Slot) []T {
	if s == nil {
		return nil
	}
	bindings := s.Bindings()
	out := make([]T, 0, len(bindings))
	for _, b := range bindings {
		if h, ok := b.Handle.(T); ok {
			out = append(out, h)
		}
	}
	return out
}
