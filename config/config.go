package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// Wire modes.
const (
	ModeTo = "to"
	ModeIn = "in"
)

// Graph describes the components of an application and the wires between them.
// Wires are applied in file order.
type Graph struct {
	Runtime    RuntimeConfig     `yaml:"runtime"`
	Components []ComponentConfig `yaml:"components"`
	Wires      []WireConfig      `yaml:"wires"`
}

// RuntimeConfig holds settings for the host process.
type RuntimeConfig struct {
	Samples int    `yaml:"samples"`
	NATSURL string `yaml:"nats_url"`
}

// ComponentConfig declares one component instance.
type ComponentConfig struct {
	Name   string    `yaml:"name"`
	Type   string    `yaml:"type"`
	Config yaml.Node `yaml:"config"`
}

// Raw returns the per-type settings for the factory. A missing config section
// decodes as empty.
func (c *ComponentConfig) Raw() component.RawConfig {
	if c.Config.Kind == 0 {
		return component.EmptyConfig{}
	}
	return &c.Config
}

// WireConfig declares one WireTo or WireIn call.
type WireConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Slot string `yaml:"slot,omitempty"`
	Mode string `yaml:"mode,omitempty"`
}

// EffectiveMode returns the mode, defaulting to "to".
func (w WireConfig) EffectiveMode() string {
	if w.Mode == "" {
		return ModeTo
	}
	return w.Mode
}

func (w WireConfig) String() string {
	s := fmt.Sprintf("%s -> %s", w.From, w.To)
	if w.Slot != "" {
		s += " (" + w.Slot + ")"
	}
	return s
}

// Validate checks names, references and modes.
func (g *Graph) Validate() error {
	if g == nil {
		return errors.WrapFatal(errors.ErrNullArgument, "Graph", "Validate", "graph presence")
	}
	if len(g.Components) == 0 {
		return errors.WrapInvalid(fmt.Errorf("%w: no components", errors.ErrMissingConfig),
			"Graph", "Validate", "component check")
	}
	if g.Runtime.Samples < 0 {
		return errors.WrapInvalid(fmt.Errorf("%w: runtime.samples must be >= 0", errors.ErrInvalidConfig),
			"Graph", "Validate", "runtime check")
	}

	names := make(map[string]bool, len(g.Components))
	for i, c := range g.Components {
		if err := component.ValidateComponentName(c.Name); err != nil {
			return errors.WrapInvalid(fmt.Errorf("%w: components[%d]: %v", errors.ErrInvalidConfig, i, err),
				"Graph", "Validate", "component name check")
		}
		if c.Type == "" {
			return errors.WrapInvalid(fmt.Errorf("%w: component %s has no type", errors.ErrInvalidConfig, c.Name),
				"Graph", "Validate", "component type check")
		}
		if names[c.Name] {
			return errors.WrapInvalid(fmt.Errorf("%w: component %s", errors.ErrDuplicateName, c.Name),
				"Graph", "Validate", "component name check")
		}
		names[c.Name] = true
	}

	for i, w := range g.Wires {
		if !names[w.From] {
			return errors.WrapInvalid(fmt.Errorf("%w: wires[%d] from unknown component %q", errors.ErrInvalidConfig, i, w.From),
				"Graph", "Validate", "wire reference check")
		}
		if !names[w.To] {
			return errors.WrapInvalid(fmt.Errorf("%w: wires[%d] to unknown component %q", errors.ErrInvalidConfig, i, w.To),
				"Graph", "Validate", "wire reference check")
		}
		if mode := w.EffectiveMode(); mode != ModeTo && mode != ModeIn {
			return errors.WrapInvalid(fmt.Errorf("%w: wires[%d] mode %q, want to or in", errors.ErrInvalidConfig, i, w.Mode),
				"Graph", "Validate", "wire mode check")
		}
	}
	return nil
}

// Component returns the declaration named name.
func (g *Graph) Component(name string) (ComponentConfig, bool) {
	for _, c := range g.Components {
		if c.Name == name {
			return c, true
		}
	}
	return ComponentConfig{}, false
}
