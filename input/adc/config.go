package adc

import (
	"fmt"

	"github.com/c360/semwire/errors"
)

// MaxReading is the largest 10-bit reading.
const MaxReading = 1023

// Config holds configuration for the simulated ADC
type Config struct {
	Channel int    `yaml:"channel"` // Unused by the simulator; kept for real drivers
	Level   int    `yaml:"level"`   // Simulated reading, 0..1023
	Noise   int    `yaml:"noise"`   // Noise amplitude, 0..1023
	Seed    uint64 `yaml:"seed"`    // Noise seed; 0 picks one at construction
}

// DefaultConfig returns mid-scale with no noise
func DefaultConfig() Config {
	return Config{Level: 512}
}

// Validate checks the reading ranges
func (c Config) Validate() error {
	if c.Level < 0 || c.Level > MaxReading {
		return errors.WrapInvalid(fmt.Errorf("%w: level %d outside 0..%d", errors.ErrInvalidConfig, c.Level, MaxReading),
			"Config", "Validate", "level check")
	}
	if c.Noise < 0 || c.Noise > MaxReading {
		return errors.WrapInvalid(fmt.Errorf("%w: noise %d outside 0..%d", errors.ErrInvalidConfig, c.Noise, MaxReading),
			"Config", "Validate", "noise check")
	}
	return nil
}
