// Package temperature provides a composite feature that samples a simulated
// thermistor, filters and scales it to degrees, shows it on the console and exposes
// the value on its own output slot.
package temperature

import (
	"io"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
	"github.com/c360/semwire/errors"
	"github.com/c360/semwire/input/adc"
	"github.com/c360/semwire/output/display"
	"github.com/c360/semwire/processor/lowpass"
	"github.com/c360/semwire/processor/scale"
	"github.com/c360/semwire/wiring"
)

var descriptor = component.MustDescribe("Temperature",
	component.Single("output", dataflow.Float64),
)

// Config holds configuration for the temperature feature
type Config struct {
	ADC      adc.Config     `yaml:"adc"`
	Strength int            `yaml:"strength"` // Low-pass strength
	Offset   float64        `yaml:"offset"`
	Scale    float64        `yaml:"scale"`
	Display  display.Config `yaml:"display"`
}

// DefaultConfig returns the thermistor calibration of the demo board
func DefaultConfig() Config {
	return Config{
		ADC:      adc.Config{Channel: 2, Level: 400, Noise: 100},
		Strength: 10,
		Offset:   -200,
		Scale:    0.2,
		Display:  display.Config{Label: "Temperature", Units: "C", Decimals: 1},
	}
}

// Feature is adc -> IntToFloat -> LowPassFilter -> OffsetAndScale -> Fanout, with
// the fanout feeding the display and the feature's "output" slot.
type Feature struct {
	*component.Base
	output *component.Slot

	adc     *adc.Simulator
	display *display.Numeric
}

// New builds and wires the feature's internals with w. A nil w uses the default
// resolver; a nil out writes to os.Stdout.
func New(name string, w component.Wirer, out io.Writer, cfg Config) (*Feature, error) {
	f := &Feature{}
	f.Base = component.NewBase(descriptor, name, f)
	f.output = f.MustSlot("output")

	var err error
	if f.adc, err = adc.New(name+".adc", cfg.ADC); err != nil {
		return nil, errors.WrapInvalid(err, "Temperature", "New", "create adc")
	}
	filter, err := lowpass.New(name+".filter", cfg.Strength, float64(cfg.ADC.Level))
	if err != nil {
		return nil, errors.WrapInvalid(err, "Temperature", "New", "create filter")
	}
	if f.display, err = display.New(name+".display", cfg.Display, out); err != nil {
		return nil, errors.WrapInvalid(err, "Temperature", "New", "create display")
	}
	port := dataflow.NewExternalPort(name+".output", dataflow.Float64, func(v float64) {
		dataflow.Emit(f.output, v)
	})

	err = wiring.NewChain(w, f.adc).
		In(dataflow.NewIntToFloat(name + ".counts")).
		In(filter).
		In(scale.New(name+".scale", cfg.Offset, cfg.Scale)).
		In(dataflow.NewFanout[float64](name+".fanout", dataflow.Float64)).
		To(f.display).
		To(port).
		Err()
	if err != nil {
		return nil, errors.Wrap(err, "Temperature", "New", "wire internals")
	}
	return f, nil
}

// Sample takes one ADC reading and pushes it through the chain.
func (f *Feature) Sample() {
	f.adc.Sample()
}

// ADC returns the simulated sensor.
func (f *Feature) ADC() *adc.Simulator { return f.adc }

// Display returns the console display.
func (f *Feature) Display() *display.Numeric { return f.display }
