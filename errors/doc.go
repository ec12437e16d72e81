// Package errors provides standardized error handling for the semwire wiring core.
//
// # Overview
//
// Wiring is fail-fast: nothing in this module retries. Errors are therefore split into
// two classes that tell the host application how to report them:
//
//   - Invalid: the graph or its configuration is wrong (no candidate slot, double wiring,
//     unknown factory, malformed config). The operator fixes the wiring.
//   - Fatal: a programmer error such as passing a nil component to the resolver.
//
// Both classes abort startup in the reference application.
//
// # Standard Errors
//
// Wiring sentinels are shared by the component, wiring and engine packages so they can be
// matched with errors.Is without importing each other:
//
//	if errors.Is(err, errors.ErrNoCandidateSlot) { ... }
//	if errors.Is(err, errors.ErrSlotAlreadyWired) { ... }
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Use WrapInvalid or WrapFatal to attach a class:
//
//	if name == "" {
//	    return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "RegisterFactory", "factory name validation")
//	}
//
// The wrapped chain keeps errors.Is and errors.As working, so rich payload types such as
// wiring.NoCandidateError remain reachable through errors.As after wrapping.
package errors
