package display

import (
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// Register registers the numeric display with the component registry
func Register(registry *component.Registry) error {
	return registry.Register(&component.Registration{
		Name:        "display",
		Kind:        "output",
		Description: "Console display of Float64 or Int values",
		Version:     "1.0.0",
		Descriptor:  descriptor,
		Factory: func(name string, raw component.RawConfig, deps component.Dependencies) (component.Wireable, error) {
			var cfg Config
			if err := raw.Decode(&cfg); err != nil {
				return nil, errors.WrapInvalid(err, "display", "factory", "decode config")
			}
			n, err := New(name, cfg, deps.GetOutput())
			if err != nil {
				return nil, errors.WrapInvalid(err, "display", "factory", "create display")
			}
			return n, nil
		},
	})
}
