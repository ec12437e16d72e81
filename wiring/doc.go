// Package wiring binds components by capability matching.
//
// WireTo(source, target) looks at the slots of source in declaration order and binds
// the first one that can accept target:
//
//  1. singular slots that are unbound and whose capability the target provides exactly;
//  2. only when no singular slot matched, list slots whose element capability is
//     assignable from a target capability (equal, or refined through the catalog).
//
// A slot name restricts matching to that slot. When nothing matches, the error is a
// *NoCandidateError listing every slot considered and the target's capabilities; when
// the named singular slot is already bound it is a *SlotWiredError instead. Both
// unwrap to the sentinels in package errors.
//
// WireIn is the same operation returning target, so a graph reads left to right:
//
//	r := wiring.NewResolver(wiring.WithLogger(logger))
//	if err := r.Chain(adc).In(toFloat).In(filter).In(scale).Err(); err != nil {
//		return err
//	}
//
// Every successful binding publishes one diagnostic.Event, synchronously, to the
// resolver's sink (the process-wide sink unless WithSink is given). Failures publish
// nothing. The resolver takes no locks and does no I/O.
package wiring
