package component

import (
	"fmt"
	"slices"
	"sync"

	"github.com/c360/semwire/errors"
)

// MaxStringLength bounds component and factory names.
const MaxStringLength = 256

// RawConfig is the undecoded per-instance configuration handed to a factory.
// *yaml.Node satisfies it.
type RawConfig interface {
	Decode(v any) error
}

// EmptyConfig is a RawConfig with no settings; decoding leaves v untouched.
type EmptyConfig struct{}

// Decode implements RawConfig.
func (EmptyConfig) Decode(any) error { return nil }

// Factory creates a component instance from configuration.
// Factories only construct; they never wire the instance to other components.
type Factory func(instanceName string, raw RawConfig, deps Dependencies) (Wireable, error)

// Registration holds factory and metadata for a component type
type Registration struct {
	Name        string      `json:"name"`        // Factory name (e.g., "lowpass-filter")
	Kind        string      `json:"kind"`        // "input", "processor", "output", "connector", "feature"
	Description string      `json:"description"` // Human-readable description
	Version     string      `json:"version"`     // Component version
	Descriptor  *Descriptor `json:"-"`           // Static slots and capabilities of the type
	Factory     Factory     `json:"-"`           // Factory function (not serializable)
}

// Registry manages component factories by name.
type Registry struct {
	factories map[string]*Registration
	mu        sync.RWMutex
}

// NewRegistry creates a new empty component registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]*Registration),
	}
}

// Register adds a factory. Returns an error if the name is taken or the
// registration is incomplete.
func (r *Registry) Register(registration *Registration) error {
	if registration == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "Register", "registration validation")
	}
	if err := ValidateComponentName(registration.Name); err != nil {
		return errors.Wrap(err, "Registry", "Register", "factory name validation")
	}
	if registration.Factory == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Registry", "Register", "factory function validation")
	}
	if registration.Descriptor == nil {
		return errors.WrapInvalid(errors.ErrInvalidDescriptor, "Registry", "Register", "descriptor validation")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[registration.Name]; exists {
		msg := fmt.Errorf("%w: factory '%s' is already registered", errors.ErrDuplicateName, registration.Name)
		return errors.WrapInvalid(msg, "Registry", "Register", "duplicate factory check")
	}

	r.factories[registration.Name] = registration
	return nil
}

// Create builds an instance with the named factory.
func (r *Registry) Create(factoryName, instanceName string, raw RawConfig, deps Dependencies) (Wireable, error) {
	if err := ValidateComponentName(instanceName); err != nil {
		return nil, errors.Wrap(err, "Registry", "Create", "instance name validation")
	}

	r.mu.RLock()
	registration, exists := r.factories[factoryName]
	r.mu.RUnlock()

	if !exists {
		msg := fmt.Errorf("%w '%s'", errors.ErrUnknownFactory, factoryName)
		return nil, errors.WrapInvalid(msg, "Registry", "Create", "factory lookup")
	}
	if raw == nil {
		raw = EmptyConfig{}
	}

	instance, err := registration.Factory(instanceName, raw, deps)
	if err != nil {
		return nil, errors.Wrap(err, "Registry", "Create", fmt.Sprintf("%s factory execution", factoryName))
	}
	if instance == nil {
		return nil, errors.WrapFatal(errors.ErrNullArgument, "Registry", "Create", "factory result")
	}
	return instance, nil
}

// Lookup returns the registration for a factory name.
func (r *Registry) Lookup(factoryName string) (*Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.factories[factoryName]
	return reg, ok
}

// ListFactories returns registered factory names in sorted order.
func (r *Registry) ListFactories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ValidateComponentName validates factory and instance names
func ValidateComponentName(name string) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "ConfigValidator", "ValidateComponentName", "empty name")
	}
	if len(name) > MaxStringLength {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "ConfigValidator", "ValidateComponentName", "name too long")
	}
	// Allow alphanumeric, dash, underscore, dot
	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.') {
			return errors.WrapInvalid(
				errors.ErrInvalidConfig, "ConfigValidator", "ValidateComponentName",
				"invalid name characters")
		}
	}
	return nil
}
