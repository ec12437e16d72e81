package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semwire/errors"
)

type strengthConfig struct {
	Strength int `yaml:"strength"`
}

type mapConfig map[string]int

func (m mapConfig) Decode(v any) error {
	if c, ok := v.(*strengthConfig); ok {
		c.Strength = m["strength"]
	}
	return nil
}

func recorderRegistration() *Registration {
	return &Registration{
		Name:        "recorder",
		Kind:        "output",
		Description: "records pushed values",
		Version:     "1.0.0",
		Descriptor:  recorderDescriptor,
		Factory: func(name string, raw RawConfig, _ Dependencies) (Wireable, error) {
			var cfg strengthConfig
			if err := raw.Decode(&cfg); err != nil {
				return nil, err
			}
			r := newRecorder(name)
			r.got = append(r.got, float64(cfg.Strength))
			return r, nil
		},
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("register and create", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(recorderRegistration()))

		c, err := r.Create("recorder", "rec-1", mapConfig{"strength": 3}, Dependencies{})
		require.NoError(t, err)
		assert.Equal(t, "rec-1", c.Info().Name)
		assert.Equal(t, []float64{3}, c.(*recorder).got)
	})

	t.Run("nil config decodes as empty", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(recorderRegistration()))

		c, err := r.Create("recorder", "rec-1", nil, Dependencies{})
		require.NoError(t, err)
		assert.Equal(t, []float64{0}, c.(*recorder).got)
	})

	t.Run("duplicate factory", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(recorderRegistration()))
		err := r.Register(recorderRegistration())
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrDuplicateName))
	})

	t.Run("incomplete registration", func(t *testing.T) {
		r := NewRegistry()
		assert.Error(t, r.Register(nil))
		assert.Error(t, r.Register(&Registration{Name: "x", Descriptor: recorderDescriptor}))
		assert.Error(t, r.Register(&Registration{Name: "x", Factory: recorderRegistration().Factory}))
		assert.Error(t, r.Register(&Registration{Name: "bad name", Factory: recorderRegistration().Factory}))
	})

	t.Run("unknown factory", func(t *testing.T) {
		_, err := NewRegistry().Create("nope", "x", nil, Dependencies{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnknownFactory))
	})

	t.Run("invalid instance name", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(recorderRegistration()))
		_, err := r.Create("recorder", "bad/name", nil, Dependencies{})
		assert.Error(t, err)
	})

	t.Run("list factories sorted", func(t *testing.T) {
		r := NewRegistry()
		second := recorderRegistration()
		second.Name = "alpha"
		require.NoError(t, r.Register(recorderRegistration()))
		require.NoError(t, r.Register(second))
		assert.Equal(t, []string{"alpha", "recorder"}, r.ListFactories())

		reg, ok := r.Lookup("alpha")
		require.True(t, ok)
		assert.Equal(t, "Recorder", reg.Descriptor.Type)
	})
}

func TestValidateComponentName(t *testing.T) {
	assert.NoError(t, ValidateComponentName("adc-2.main_1"))
	assert.Error(t, ValidateComponentName(""))
	assert.Error(t, ValidateComponentName("has space"))
}
