// Package component provides the component model consumed by the wiring resolver:
// static capability descriptors, slot values, an embeddable Wireable implementation
// and a factory registry.
//
// # Overview
//
// A component type declares, once, which slots it consumes and which capabilities it
// provides. The declaration is a Descriptor, built at package level:
//
//	var descriptor = component.MustDescribe("OffsetAndScale",
//		component.Single("output", dataflow.Float64),
//		component.Provides(dataflow.Float64),
//	)
//
// Every instance gets its own Slot values built from the descriptor. Slots hold the
// bound state; the descriptor never changes.
//
// # Slots
//
// A singular slot is bound exactly once and never rebound. A list slot starts
// uninitialized, becomes an empty ordered sequence on its first bind and only grows.
// Consumers read what was bound through the typed helpers:
//
//	if out, ok := component.Get[dataflow.Flow[float64]](s.output); ok {
//		out.Push(v)
//	}
//	for _, f := range component.All[dataflow.Flow[float64]](s.fanout) {
//		f.Push(v)
//	}
//
// # Inheritance
//
// Extends makes a descriptor inherit the slots and capabilities of a base type.
// Inherited entries come first, so declaration order stays base-first.
//
// # Capabilities and handles
//
// Capabilities are nominal (see package capability). When a component provides two
// capabilities with the same Go shape, for example both operands of an adder, it
// registers one handle per capability with Base.Implement; the resolver binds the
// handle, not the component.
//
// # Component Registration Pattern
//
// Config-driven graphs are built from factories registered explicitly by each
// component package (Register(*Registry) error) and orchestrated by
// componentregistry.Register. Factories construct only; wiring happens afterwards in
// an explicit wiring phase (see packages wiring and engine).
package component
