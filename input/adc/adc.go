// Package adc provides a simulated 10-bit analog to digital converter used as the
// data source of the example graphs.
package adc

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
)

var descriptor = component.MustDescribe("ADCSimulator",
	component.Single("output", dataflow.Int),
)

// Descriptor returns the slots and capabilities of the simulator type.
func Descriptor() *component.Descriptor { return descriptor }

// Simulator produces readings around a level with uniform noise, clamped to
// 0..MaxReading. It does not run on its own; the host calls Sample.
type Simulator struct {
	*component.Base
	output *component.Slot

	mu      sync.Mutex
	cfg     Config
	rng     *rand.Rand
	metrics *sampleMetrics
}

// New creates a simulator.
func New(name string, cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Simulator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	s.Base = component.NewBase(descriptor, name, s)
	s.output = s.MustSlot("output")
	return s, nil
}

// SetLevel changes the simulated reading. Values are clamped to 0..MaxReading.
func (s *Simulator) SetLevel(level int) {
	s.mu.Lock()
	s.cfg.Level = clamp(level)
	s.mu.Unlock()
}

// SetNoise changes the noise amplitude.
func (s *Simulator) SetNoise(noise int) {
	s.mu.Lock()
	s.cfg.Noise = clamp(noise)
	s.mu.Unlock()
}

// Sample takes one reading and pushes it to output.
func (s *Simulator) Sample() {
	s.Read()
}

// Read takes one reading, pushes it to output and returns it.
func (s *Simulator) Read() int {
	s.mu.Lock()
	reading := s.cfg.Level
	if s.cfg.Noise > 0 {
		reading += s.rng.IntN(s.cfg.Noise) - s.cfg.Noise/2
	}
	reading = clamp(reading)
	s.mu.Unlock()

	s.metrics.recordSample(s.Info().InstanceName())
	dataflow.Emit(s.output, reading)
	return reading
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxReading {
		return MaxReading
	}
	return v
}
