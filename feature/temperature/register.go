package temperature

import (
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// Register registers the temperature feature with the component registry
func Register(registry *component.Registry) error {
	return registry.Register(&component.Registration{
		Name:        "temperature",
		Kind:        "feature",
		Description: "Filtered, scaled temperature with console display and Float64 output",
		Version:     "1.0.0",
		Descriptor:  descriptor,
		Factory: func(name string, raw component.RawConfig, deps component.Dependencies) (component.Wireable, error) {
			cfg := DefaultConfig()
			if err := raw.Decode(&cfg); err != nil {
				return nil, errors.WrapInvalid(err, "temperature", "factory", "decode config")
			}
			return New(name, deps.Wirer, deps.GetOutput(), cfg)
		},
	})
}
