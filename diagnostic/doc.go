// Package diagnostic carries the notifications published after every successful binding.
//
// A Sink is an append-only list of listeners. Publish delivers one Event to every
// listener synchronously, in attachment order, outside the sink's lock. A sink with
// no listeners is valid and drops events.
//
// The process-wide sink is returned by Default and rebuilt by Init or Reset. Tests
// that observe diagnostics should call Reset (or build their own Sink and hand it to
// the resolver) so cases do not see each other's listeners.
//
// Listener adapters:
//
//	diagnostic.OnDiagnostic(func(msg string) { fmt.Println(msg) })
//	diagnostic.Default().Attach(diagnostic.LogListener(logger))
//	diagnostic.Default().Attach(diagnostic.NewNATSPublisher(nc, logger))
package diagnostic
