package adc

import (
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

// Register registers the simulated ADC with the component registry
func Register(registry *component.Registry) error {
	return registry.Register(&component.Registration{
		Name:        "adc",
		Kind:        "input",
		Description: "Simulated 10-bit ADC producing integer readings on Sample",
		Version:     "1.0.0",
		Descriptor:  descriptor,
		Factory:     factory,
	})
}

func factory(name string, raw component.RawConfig, deps component.Dependencies) (component.Wireable, error) {
	cfg := DefaultConfig()
	if err := raw.Decode(&cfg); err != nil {
		return nil, errors.WrapInvalid(err, "adc", "factory", "decode config")
	}
	s, err := New(name, cfg)
	if err != nil {
		return nil, err
	}
	if s.metrics, err = metricsFor(deps.MetricsRegistry); err != nil {
		deps.GetLoggerWithComponent("adc").Warn("ADC metrics disabled", "error", err)
	}
	return s, nil
}
