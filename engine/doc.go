// Package flowengine assembles a component graph from configuration.
//
// # Overview
//
// Build translates a config.Graph into running components: every declared
// component is created through its registered factory, in declaration order, and
// then every wire is applied in order with the wiring resolver. Nothing is wired by
// name lookup alone; the resolver matches the source's slots against the target's
// capabilities, and a wire's slot only narrows the choice.
//
//	┌──────────────┐    Create     ┌────────────────────┐
//	│ config.Graph │ ────────────> │ component.Registry │
//	└──────┬───────┘               └────────────────────┘
//	       │ wires (to | in)
//	       ▼
//	┌──────────────┐   Observe     ┌────────────────────┐
//	│   Resolver   │ ────────────> │ flowgraph.FlowGraph│
//	└──────┬───────┘               └────────────────────┘
//	       │ Publish
//	       ▼
//	┌──────────────┐
//	│  Diagnostics │
//	└──────────────┘
//
// The returned Assembly owns the components and the realized graph. Composite
// components (features) receive the same resolver through
// component.Dependencies.Wirer, so their internal bindings are published and
// observed like any other.
//
// # Running
//
// The engine never schedules work. Assembly.Start calls Start on every component
// that has one, and Assembly.Sample(n) drives every source n times:
//
//	asm, err := flowengine.Build(cfg, registry, deps, wiring.WithSink(sink))
//	if err != nil {
//		return err
//	}
//	asm.Start()
//	asm.Sample(10)
//
// # Errors
//
// The first failing factory or wire aborts the build. Wiring failures keep their
// wiring payload (NoCandidateError, SlotWiredError), so callers can use errors.As
// to print the considered slots.
package flowengine
