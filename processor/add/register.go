package add

import (
	"github.com/c360/semwire/component"
)

// Register registers Add with the component registry
func Register(registry *component.Registry) error {
	return registry.Register(&component.Registration{
		Name:        "add",
		Kind:        "processor",
		Description: "Sums the Float64 and Float64B inputs once both have been seen",
		Version:     "1.0.0",
		Descriptor:  descriptor,
		Factory: func(name string, _ component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
			return New(name), nil
		},
	})
}
