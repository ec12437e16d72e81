// Package config loads application graphs.
//
// A graph file lists component instances and the wires between them:
//
//	runtime:
//	  samples: 20
//	components:
//	  - name: adc
//	    type: adc
//	    config: {level: 512, noise: 8}
//	  - name: filter
//	    type: lowpass
//	    config: {resample_count: 4}
//	wires:
//	  - {from: adc, to: filter}
//	  - {from: filter, to: scale, mode: in}
//
// Each component's config section is kept as a yaml.Node and decoded by the
// factory registered for its type. JSON is accepted since it is valid YAML.
//
// Environment variables override runtime settings: THERMOMETER_NATS_URL and
// THERMOMETER_SAMPLES (the prefix is configurable on the Loader).
//
// Loader validates by default: component names are unique and well-formed, every
// wire references a declared component, and modes are "to" or "in".
package config
