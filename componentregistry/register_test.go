package componentregistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/errors"
)

func TestRegister(t *testing.T) {
	registry := component.NewRegistry()
	require.NoError(t, Register(registry))

	for _, name := range []string{
		"adc", "add", "debug_output", "display", "exponential", "fanout", "initializer",
		"int_to_float", "loadcell", "lowpass", "offset_and_scale", "relabel", "temperature",
	} {
		reg, ok := registry.Lookup(name)
		if assert.True(t, ok, name) {
			assert.NotNil(t, reg.Descriptor, name)
		}
	}
	assert.Len(t, registry.ListFactories(), 13)
}

func TestRegister_Twice(t *testing.T) {
	registry := component.NewRegistry()
	require.NoError(t, Register(registry))
	err := Register(registry)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))
}

func TestRegister_NilRegistry(t *testing.T) {
	err := Register(nil)
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}
