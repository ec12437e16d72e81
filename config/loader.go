package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/c360/semwire/errors"
)

// DefaultEnvPrefix prefixes environment overrides.
const DefaultEnvPrefix = "THERMOMETER"

// Loader handles graph loading with environment overrides
type Loader struct {
	envPrefix  string
	validation bool
}

// NewLoader creates a loader that validates what it loads
func NewLoader() *Loader {
	return &Loader{
		envPrefix:  DefaultEnvPrefix,
		validation: true,
	}
}

// WithEnvPrefix changes the environment variable prefix
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = prefix
	return l
}

// EnableValidation enables or disables graph validation
func (l *Loader) EnableValidation(enable bool) *Loader {
	l.validation = enable
	return l
}

// LoadFile loads a graph from a YAML or JSON file
func (l *Loader) LoadFile(path string) (*Graph, error) {
	data, err := safeReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "Loader", "LoadFile", "read graph file")
	}
	g, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes a graph document. Unknown fields are rejected.
func (l *Loader) Parse(data []byte) (*Graph, error) {
	var g Graph
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err),
			"Loader", "Parse", "decode graph")
	}

	if err := l.applyEnvOverrides(&g); err != nil {
		return nil, err
	}

	if l.validation {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}
	return &g, nil
}

// applyEnvOverrides applies environment variable overrides
func (l *Loader) applyEnvOverrides(g *Graph) error {
	if val := os.Getenv(l.envPrefix + "_NATS_URL"); val != "" {
		g.Runtime.NATSURL = val
	}
	if val := os.Getenv(l.envPrefix + "_SAMPLES"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.WrapInvalid(fmt.Errorf("%w: %s_SAMPLES=%q", errors.ErrInvalidConfig, l.envPrefix, val),
				"Loader", "applyEnvOverrides", "parse samples")
		}
		g.Runtime.Samples = n
	}
	return nil
}

// Load loads path with the default loader.
func Load(path string) (*Graph, error) {
	return NewLoader().LoadFile(path)
}
