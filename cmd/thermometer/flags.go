package main

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/c360/semwire/apps"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	App         string
	ConfigPath  string
	Samples     int
	NATSURL     string
	LogLevel    string
	LogFormat   string
	Diagnostics bool
	Metrics     bool
	ShowVersion bool
	ShowHelp    bool
	Validate    bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*CLIConfig, error) {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	fs.StringVar(&cfg.App, "app",
		getEnv("THERMOMETER_APP", "features"),
		"Built-in application graph: features, thermometer (env: THERMOMETER_APP)")

	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("THERMOMETER_CONFIG", ""),
		"Path to a graph file, overrides -app (env: THERMOMETER_CONFIG)")

	fs.StringVar(&cfg.ConfigPath, "c",
		getEnv("THERMOMETER_CONFIG", ""),
		"Path to a graph file, overrides -app (env: THERMOMETER_CONFIG)")

	fs.IntVar(&cfg.Samples, "samples",
		getEnvInt("THERMOMETER_SAMPLES", -1),
		"Sample rounds to run, -1 uses the graph's runtime.samples (env: THERMOMETER_SAMPLES)")

	fs.StringVar(&cfg.NATSURL, "nats-url",
		getEnv("THERMOMETER_NATS_URL", ""),
		"Publish wiring diagnostics to this NATS server (env: THERMOMETER_NATS_URL)")

	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("THERMOMETER_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: THERMOMETER_LOG_LEVEL)")

	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("THERMOMETER_LOG_FORMAT", "text"),
		"Log format: json, text (env: THERMOMETER_LOG_FORMAT)")

	fs.BoolVar(&cfg.Diagnostics, "diagnostics",
		getEnvBool("THERMOMETER_DIAGNOSTICS", true),
		"Print wiring diagnostics to stderr (env: THERMOMETER_DIAGNOSTICS)")

	fs.BoolVar(&cfg.Metrics, "metrics",
		getEnvBool("THERMOMETER_METRICS", false),
		"Write wiring and engine metrics to stderr on exit (env: THERMOMETER_METRICS)")

	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	fs.BoolVar(&cfg.Validate, "validate", false, "Wire the graph, print its analysis and exit")

	// Custom usage
	fs.Usage = func() {
		printDetailedHelp(fs)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath == "" && !slices.Contains(apps.Names(), cfg.App) {
		return fmt.Errorf("unknown app: %s", cfg.App)
	}

	if cfg.Samples < -1 {
		return fmt.Errorf("invalid samples: %d", cfg.Samples)
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !slices.Contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func printDetailedHelp(fs *flag.FlagSet) {
	w := fs.Output()
	_, _ = fmt.Fprintf(w, `%s - capability-wired sensor graphs

Usage: %s [options]

Options:
`, appName, os.Args[0])
	fs.PrintDefaults()
	_, _ = fmt.Fprintf(w, `
Examples:
  # Run the temperature and load cell features
  %s --app=features --samples=20

  # Run a custom graph with debug logging
  %s --config=graph.yaml --log-level=debug

  # Check that a graph wires cleanly
  %s --config=graph.yaml --validate

  # Dump wiring and engine counters after the run
  %s --app=thermometer --metrics

  # Publish wiring diagnostics to NATS
  export THERMOMETER_NATS_URL=nats://localhost:4222
  %s

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
