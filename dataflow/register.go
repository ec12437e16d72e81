package dataflow

import (
	"github.com/c360/semwire/component"
)

type initializerConfig struct {
	Initial *float64 `yaml:"initial"`
}

// Register registers the float64 connectors with the component registry.
func Register(registry *component.Registry) error {
	registrations := []*component.Registration{
		{
			Name:        "fanout",
			Kind:        "connector",
			Description: "Forwards float values to many consumers, then to last",
			Version:     "1.0.0",
			Descriptor:  NewFanout[float64]("", Float64).Descriptor(),
			Factory: func(name string, _ component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
				return NewFanout[float64](name, Float64), nil
			},
		},
		{
			Name:        "int_to_float",
			Kind:        "connector",
			Description: "Converts integer readings to float values",
			Version:     "1.0.0",
			Descriptor:  NewIntToFloat("").Descriptor(),
			Factory: func(name string, _ component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
				return NewIntToFloat(name), nil
			},
		},
		{
			Name:        "relabel",
			Kind:        "connector",
			Description: "Moves float values onto the secondary float port",
			Version:     "1.0.0",
			Descriptor:  NewRelabel("").Descriptor(),
			Factory: func(name string, _ component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
				return NewRelabel(name), nil
			},
		},
		{
			Name:        "initializer",
			Kind:        "connector",
			Description: "Chain head that pushes an optional initial float value on start",
			Version:     "1.0.0",
			Descriptor:  NewInitializer[float64]("", Float64).Descriptor(),
			Factory: func(name string, raw component.RawConfig, _ component.Dependencies) (component.Wireable, error) {
				var cfg initializerConfig
				if err := raw.Decode(&cfg); err != nil {
					return nil, err
				}
				i := NewInitializer[float64](name, Float64)
				if cfg.Initial != nil {
					i.WithInitial(*cfg.Initial)
				}
				return i, nil
			},
		},
		{
			Name:        "debug_output",
			Kind:        "connector",
			Description: "Logs float values passing through",
			Version:     "1.0.0",
			Descriptor:  NewDebugOutput[float64]("", Float64, nil).Descriptor(),
			Factory: func(name string, _ component.RawConfig, deps component.Dependencies) (component.Wireable, error) {
				logger := deps.GetLoggerWithComponent("debug_output")
				return NewDebugOutput[float64](name, Float64, func(s string) {
					logger.Info("Data flow value", "instance", name, "value", s)
				}), nil
			},
		},
	}

	for _, r := range registrations {
		if err := registry.Register(r); err != nil {
			return err
		}
	}
	return nil
}
