package wiring

import (
	"sync"

	"github.com/c360/semwire/component"
)

var (
	defaultMu       sync.RWMutex
	defaultResolver = NewResolver()
)

// Default returns the package-level resolver.
func Default() *Resolver {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultResolver
}

// SetDefault replaces the package-level resolver.
func SetDefault(r *Resolver) {
	if r == nil {
		return
	}
	defaultMu.Lock()
	defaultResolver = r
	defaultMu.Unlock()
}

// WireTo wires on the default resolver.
func WireTo(source, target component.Wireable, slotName ...string) (component.Wireable, error) {
	return Default().WireTo(source, target, slotName...)
}

// WireIn wires on the default resolver.
func WireIn(source, target component.Wireable, slotName ...string) (component.Wireable, error) {
	return Default().WireIn(source, target, slotName...)
}

// In wires source to target on the default resolver and returns target with its
// concrete type.
//
//	filter, err := wiring.In(adc, lowpass.New("", 4))
func In[T component.Wireable](source component.Wireable, target T, slotName ...string) (T, error) {
	return InWith(Default(), source, target, slotName...)
}

// InWith is In on an explicit resolver.
func InWith[T component.Wireable](r *Resolver, source component.Wireable, target T, slotName ...string) (T, error) {
	_, err := r.WireIn(source, target, slotName...)
	return target, err
}
