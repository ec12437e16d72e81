// Package semwire assembles independently written components into a dataflow graph
// by matching capabilities instead of registering connections by hand.
//
// # Model
//
// A component declares, through a component.Descriptor, the slots it consumes and
// the capabilities it implements. Slots are singular (bound once) or lists (grow on
// every bind). Capabilities are nominal ids from package capability, so two ports
// that carry the same Go type are still told apart.
//
// # Wiring
//
// The wiring.Resolver binds the first eligible unbound slot of a source to a
// target:
//
//	r := wiring.NewResolver(wiring.WithSink(diagnostic.Init()))
//	_, err := r.WireTo(adc, filter)          // adc.output <- filter
//	err = r.Chain(adc).In(filter).In(display).Err()
//
// Singular slots are matched exactly before list slots are matched covariantly.
// A slot name narrows the choice. Every successful bind publishes a
// diagnostic.Event; failures return wiring.NoCandidateError or
// wiring.SlotWiredError with the slots that were considered.
//
// # Packages
//
//   - capability, component, wiring, diagnostic: the wiring core
//   - component/flowgraph: realized bindings and connectivity analysis
//   - config, engine, componentregistry, apps: graphs assembled from YAML
//   - dataflow, input/adc, processor/..., output/display, feature/...: the
//     sensor components of the thermometer demo
//   - metric: Prometheus counters for binds and failures
//   - cmd/thermometer: the demo binary
package semwire
