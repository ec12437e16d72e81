package lowpass

import (
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// Config holds configuration for the resampling filter
type Config struct {
	Strength int     `yaml:"strength"`
	Initial  float64 `yaml:"initial"`
}

// ExponentialConfig holds configuration for the exponential filter
type ExponentialConfig struct {
	Strength float64 `yaml:"strength"`
}

// Register registers both filters with the component registry
func Register(registry *component.Registry) error {
	if err := registry.Register(&component.Registration{
		Name:        "lowpass",
		Kind:        "processor",
		Description: "Resampling low-pass filter emitting once per strength inputs",
		Version:     "1.0.0",
		Descriptor:  filterDescriptor,
		Factory: func(name string, raw component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
			cfg := Config{Strength: 10}
			if err := raw.Decode(&cfg); err != nil {
				return nil, errors.WrapInvalid(err, "lowpass", "factory", "decode config")
			}
			return New(name, cfg.Strength, cfg.Initial)
		},
	}); err != nil {
		return err
	}

	return registry.Register(&component.Registration{
		Name:        "exponential",
		Kind:        "processor",
		Description: "Exponential moving average with proportional resampling",
		Version:     "1.0.0",
		Descriptor:  exponentialDescriptor,
		Factory: func(name string, raw component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
			cfg := ExponentialConfig{Strength: 0.1}
			if err := raw.Decode(&cfg); err != nil {
				return nil, errors.WrapInvalid(err, "exponential", "factory", "decode config")
			}
			return NewExponential(name, cfg.Strength)
		},
	})
}
