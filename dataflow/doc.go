// Package dataflow defines the push-based data flow used by the example components
// and the generic connectors that glue them together.
//
// A consumer keeps an unexported *component.Slot per output and pushes with Emit
// (singular) or EmitAll (list). A provider implements Flow[T] for the capability it
// declares; Float64 and Float64B are both Flow[float64] but distinct capabilities.
//
// Connectors:
//
//	Fanout        list "fanout" plus singular "last"; Pull returns the latest value
//	ExternalPort  forwards to a function, used to expose a composite's output slot
//	Initializer   chain head driven from code
//	DebugOutput   pass-through that reports each value as text
//	Convert       maps one capability to another (IntToFloat, Relabel)
package dataflow
