// Package componentregistry registers every component type shipped with semwire.
package componentregistry

import (
	"errors"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
	pkgerrors "github.com/c360/semwire/errors"
	"github.com/c360/semwire/feature/loadcell"
	"github.com/c360/semwire/feature/temperature"
	"github.com/c360/semwire/input/adc"
	"github.com/c360/semwire/output/display"
	"github.com/c360/semwire/processor/add"
	"github.com/c360/semwire/processor/lowpass"
	"github.com/c360/semwire/processor/scale"
)

// Register registers all component types with the provided registry:
//
// Connectors:
//   - fanout, int_to_float, relabel, initializer, debug_output
//
// Inputs and processors:
//   - adc (simulated 10-bit ADC)
//   - lowpass, exponential (filters)
//   - offset_and_scale, add
//
// Outputs:
//   - display (console numeric display)
//
// Features (composites that wire their own internals):
//   - temperature, loadcell
func Register(registry *component.Registry) error {
	// Nil registry is a programming error (fatal), not invalid input
	if registry == nil {
		return pkgerrors.WrapFatal(
			errors.New("registry cannot be nil"),
			"ComponentRegistry", "Register", "registry validation")
	}

	if err := dataflow.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "dataflow connector registration")
	}

	if err := adc.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "ADC input component registration")
	}

	if err := lowpass.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "low-pass processor component registration")
	}

	if err := scale.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "OffsetAndScale processor component registration")
	}

	if err := add.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "Add processor component registration")
	}

	if err := display.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "display output component registration")
	}

	if err := temperature.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "temperature feature registration")
	}

	if err := loadcell.Register(registry); err != nil {
		return pkgerrors.WrapInvalid(err, "ComponentRegistry", "Register", "load cell feature registration")
	}

	return nil
}
