package component

import (
	"fmt"
	"slices"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/errors"
)

// SlotSpec declares one attachment point of a component type.
type SlotSpec struct {
	Name        string
	Capability  capability.ID
	Cardinality capability.Cardinality
}

// Descriptor is the static capability metadata of a component type: the slots it
// declares and the capabilities it implements, both in declaration order.
//
// A Descriptor with a Base inherits the base's slots and capabilities; they come
// first in every listing.
type Descriptor struct {
	Type     string
	Base     *Descriptor
	Slots    []SlotSpec
	Provides []capability.ID
}

// DescriptorOption configures a Descriptor built by Describe.
type DescriptorOption func(*Descriptor)

// Extends sets the base descriptor.
func Extends(base *Descriptor) DescriptorOption {
	return func(d *Descriptor) {
		d.Base = base
	}
}

// Single declares a singular slot.
func Single(name string, id capability.ID) DescriptorOption {
	return func(d *Descriptor) {
		d.Slots = append(d.Slots, SlotSpec{Name: name, Capability: id, Cardinality: capability.Singular})
	}
}

// Many declares a list slot whose elements provide id.
func Many(name string, id capability.ID) DescriptorOption {
	return func(d *Descriptor) {
		d.Slots = append(d.Slots, SlotSpec{Name: name, Capability: id, Cardinality: capability.List})
	}
}

// Provides declares implemented capabilities.
func Provides(ids ...capability.ID) DescriptorOption {
	return func(d *Descriptor) {
		d.Provides = append(d.Provides, ids...)
	}
}

// Describe builds and validates the descriptor of a component type.
func Describe(typeName string, opts ...DescriptorOption) (*Descriptor, error) {
	d := &Descriptor{Type: typeName}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// MustDescribe is Describe for package-level descriptor variables.
func MustDescribe(typeName string, opts ...DescriptorOption) *Descriptor {
	d, err := Describe(typeName, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate checks names, ids and slot name uniqueness across the whole base chain.
func (d *Descriptor) Validate() error {
	if d == nil {
		return errors.WrapFatal(errors.ErrNullArgument, "Descriptor", "Validate", "descriptor presence")
	}
	if d.Type == "" {
		return errors.WrapInvalid(errors.ErrInvalidDescriptor, "Descriptor", "Validate", "type name validation")
	}

	seen := make(map[string]bool)
	for _, spec := range d.AllSlots() {
		if spec.Name == "" || spec.Capability == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: %s has a slot without name or capability", errors.ErrInvalidDescriptor, d.Type),
				"Descriptor", "Validate", "slot spec validation")
		}
		if spec.Cardinality != capability.Singular && spec.Cardinality != capability.List {
			return errors.WrapInvalid(
				fmt.Errorf("%w: %s.%s has cardinality %d", errors.ErrInvalidDescriptor, d.Type, spec.Name, spec.Cardinality),
				"Descriptor", "Validate", "cardinality validation")
		}
		if seen[spec.Name] {
			return errors.WrapInvalid(
				fmt.Errorf("%w: %s declares slot %q twice", errors.ErrDuplicateName, d.Type, spec.Name),
				"Descriptor", "Validate", "slot name uniqueness")
		}
		seen[spec.Name] = true
	}

	for _, id := range d.AllProvides() {
		if id == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: %s provides an empty capability", errors.ErrInvalidDescriptor, d.Type),
				"Descriptor", "Validate", "capability validation")
		}
	}
	return nil
}

// AllSlots lists the declared slots base-first.
func (d *Descriptor) AllSlots() []SlotSpec {
	if d == nil {
		return nil
	}
	return append(d.Base.AllSlots(), d.Slots...)
}

// AllProvides lists implemented capabilities base-first, without duplicates.
func (d *Descriptor) AllProvides() []capability.ID {
	if d == nil {
		return nil
	}
	result := d.Base.AllProvides()
	for _, id := range d.Provides {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	return result
}

// Implements reports whether the type provides id.
func (d *Descriptor) Implements(id capability.ID) bool {
	return slices.Contains(d.AllProvides(), id)
}
