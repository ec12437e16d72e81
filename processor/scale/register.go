package scale

import (
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// Config holds configuration for OffsetAndScale
type Config struct {
	Offset float64 `yaml:"offset"`
	Scale  float64 `yaml:"scale"`
}

// Register registers OffsetAndScale with the component registry
func Register(registry *component.Registry) error {
	return registry.Register(&component.Registration{
		Name:        "offset_and_scale",
		Kind:        "processor",
		Description: "Linear transform y = (x + offset) * scale",
		Version:     "1.0.0",
		Descriptor:  descriptor,
		Factory: func(name string, raw component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
			cfg := Config{Scale: 1}
			if err := raw.Decode(&cfg); err != nil {
				return nil, errors.WrapInvalid(err, "offset_and_scale", "factory", "decode config")
			}
			return New(name, cfg.Offset, cfg.Scale), nil
		},
	})
}
