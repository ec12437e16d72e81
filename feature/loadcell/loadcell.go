// Package loadcell provides a temperature-compensated load measurement feature.
// Its Float64 input takes the ambient temperature, for example from the
// temperature feature's output slot.
package loadcell

import (
	"io"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
	"github.com/c360/semwire/errors"
	"github.com/c360/semwire/input/adc"
	"github.com/c360/semwire/output/display"
	"github.com/c360/semwire/processor/add"
	"github.com/c360/semwire/processor/scale"
	"github.com/c360/semwire/wiring"
)

var descriptor = component.MustDescribe("LoadCell",
	component.Provides(dataflow.Float64),
)

// Config holds configuration for the load cell feature
type Config struct {
	ADC adc.Config `yaml:"adc"`
	// Load calibration: load = (counts + Offset) * Scale
	Offset float64 `yaml:"offset"`
	Scale  float64 `yaml:"scale"`
	// Compensation: correction = (temperature + CompensationOffset) * CompensationScale
	CompensationOffset float64 `yaml:"compensation_offset"`
	CompensationScale  float64 `yaml:"compensation_scale"`
	// Temperature assumed until the input receives a value
	InitialTemperature float64        `yaml:"initial_temperature"`
	Display            display.Config `yaml:"display"`
}

// DefaultConfig returns the load cell calibration of the demo board
func DefaultConfig() Config {
	return Config{
		ADC:                adc.Config{Channel: 3, Level: 200},
		Scale:              0.5,
		CompensationOffset: -20,
		CompensationScale:  -0.1,
		InitialTemperature: 20,
		Display:            display.Config{Label: "Load", Units: "kg", Decimals: 1},
	}
}

// Feature sums the scaled load reading and a temperature correction and displays
// the result:
//
//	adc -> IntToFloat -> OffsetAndScale -> Add(Float64) -> display
//	input/initializer -> OffsetAndScale -> Relabel -> Add(Float64B)
type Feature struct {
	*component.Base

	adc         *adc.Simulator
	initializer *dataflow.Initializer[float64]
	display     *display.Numeric
}

// New builds and wires the feature's internals with w. A nil w uses the default
// resolver; a nil out writes to os.Stdout.
func New(name string, w component.Wirer, out io.Writer, cfg Config) (*Feature, error) {
	f := &Feature{}
	f.Base = component.NewBase(descriptor, name, f)

	var err error
	if f.adc, err = adc.New(name+".adc", cfg.ADC); err != nil {
		return nil, errors.WrapInvalid(err, "LoadCell", "New", "create adc")
	}
	if f.display, err = display.New(name+".display", cfg.Display, out); err != nil {
		return nil, errors.WrapInvalid(err, "LoadCell", "New", "create display")
	}
	sum := add.New(name + ".sum")
	compensation := scale.New(name+".compensation", cfg.CompensationOffset, cfg.CompensationScale)
	f.initializer = dataflow.NewInitializer[float64](name+".initial", dataflow.Float64).
		WithInitial(cfg.InitialTemperature)

	err = wiring.NewChain(w, f.adc).
		In(dataflow.NewIntToFloat(name + ".counts")).
		In(scale.New(name+".scale", cfg.Offset, cfg.Scale)).
		In(sum).
		In(f.display).
		Err()
	if err != nil {
		return nil, errors.Wrap(err, "LoadCell", "New", "wire load path")
	}
	err = wiring.NewChain(w, f.initializer).
		In(compensation).
		In(dataflow.NewRelabel(name + ".relabel")).
		In(sum).
		Err()
	if err != nil {
		return nil, errors.Wrap(err, "LoadCell", "New", "wire compensation path")
	}

	// Temperature arriving on the feature's input goes straight to the compensation.
	f.Implement(dataflow.Float64, compensation)
	return f, nil
}

// Start pushes the initial temperature so the display updates before the first
// temperature arrives.
func (f *Feature) Start() {
	f.initializer.Start()
}

// Sample takes one load reading.
func (f *Feature) Sample() {
	f.adc.Sample()
}

// ADC returns the simulated load sensor.
func (f *Feature) ADC() *adc.Simulator { return f.adc }

// Display returns the console display.
func (f *Feature) Display() *display.Numeric { return f.display }
