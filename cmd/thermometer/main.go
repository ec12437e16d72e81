// Package main implements the thermometer demo: it assembles a sensor graph by
// capability matching, prints the wiring diagnostics and drives the sources for a
// number of sample rounds.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360/semwire/apps"
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/componentregistry"
	"github.com/c360/semwire/config"
	"github.com/c360/semwire/diagnostic"
	flowengine "github.com/c360/semwire/engine"
	"github.com/c360/semwire/metric"
	"github.com/c360/semwire/pkg/retry"
	"github.com/c360/semwire/wiring"
)

// Build information constants
const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "thermometer"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	// Run application with proper error handling
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("Application failed", "error", err, "exit_code", 1)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cliCfg, err := parseFlags(fs, args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if err := validateFlags(cliCfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if cliCfg.ShowVersion {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", appName, Version)
		return nil
	}
	if cliCfg.ShowHelp {
		printDetailedHelp(fs)
		return nil
	}

	logger := setupLogger(cliCfg.LogLevel, cliCfg.LogFormat, stderr)
	slog.SetDefault(logger)

	graph, err := loadGraph(cliCfg)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	logger.Info("Starting thermometer",
		"version", Version,
		"build_time", BuildTime,
		"app", cliCfg.App,
		"config_path", cliCfg.ConfigPath,
		"components", len(graph.Components))

	sink := setupDiagnostics(cliCfg, logger, stderr)
	if nc := connectNATS(natsURL(cliCfg, graph), logger); nc != nil {
		defer func() { _ = nc.Drain() }()
		sink.Attach(diagnostic.NewNATSPublisher(nc, logger))
	}

	metricsRegistry := metric.NewMetricsRegistry()
	if cliCfg.Metrics {
		defer func() {
			if err := metricsRegistry.WriteText(stderr); err != nil {
				logger.Warn("Failed to write metrics", "error", err)
			}
		}()
	}
	componentRegistry := component.NewRegistry()
	if err := componentregistry.Register(componentRegistry); err != nil {
		return fmt.Errorf("register components: %w", err)
	}
	factories := componentRegistry.ListFactories()
	logger.Debug("Component factories registered", "count", len(factories), "factories", factories)

	deps := component.Dependencies{
		Logger:          logger,
		Output:          stdout,
		MetricsRegistry: metricsRegistry,
	}
	asm, err := flowengine.Build(graph, componentRegistry, deps,
		wiring.WithSink(sink),
		wiring.WithMetrics(metricsRegistry.Wiring))
	if err != nil {
		return fmt.Errorf("wire graph: %w", err)
	}

	result := asm.Graph().AnalyzeConnectivity()
	printAnalysis(stderr, result)

	if cliCfg.Validate {
		logger.Info("Graph is valid", "status", result.ValidationStatus)
		return nil
	}

	samples := graph.Runtime.Samples
	if cliCfg.Samples >= 0 {
		samples = cliCfg.Samples
	}

	start := time.Now()
	asm.Start()
	asm.Sample(samples)
	logger.Info("Thermometer finished", "samples", samples, "duration", time.Since(start))
	return nil
}

// loadGraph reads -config when given, else the built-in -app graph.
func loadGraph(cliCfg *CLIConfig) (*config.Graph, error) {
	loader := config.NewLoader()
	if cliCfg.ConfigPath != "" {
		return loader.LoadFile(cliCfg.ConfigPath)
	}
	return apps.Load(cliCfg.App, loader)
}

// setupDiagnostics re-initializes the process sink and attaches the console listeners.
func setupDiagnostics(cliCfg *CLIConfig, logger *slog.Logger, stderr io.Writer) *diagnostic.Sink {
	sink := diagnostic.Init()
	sink.Attach(diagnostic.LogListener(logger))
	if cliCfg.Diagnostics {
		sink.Attach(diagnostic.WriterListener(stderr))
	}
	return sink
}

func natsURL(cliCfg *CLIConfig, graph *config.Graph) string {
	if cliCfg.NATSURL != "" {
		return cliCfg.NATSURL
	}
	return graph.Runtime.NATSURL
}

// connectNATS returns nil when url is empty or the server is unreachable;
// diagnostics publishing is best effort.
func connectNATS(url string, logger *slog.Logger) *nats.Conn {
	if url == "" {
		return nil
	}
	logger.Info("Connecting to NATS", "url", url)
	nc, err := retry.DoWithResult(context.Background(), retry.Quick(), func() (*nats.Conn, error) {
		return nats.Connect(url,
			nats.Name(appName),
			nats.Timeout(2*time.Second),
			nats.MaxReconnects(3))
	})
	if err != nil {
		logger.Warn("NATS unavailable, diagnostics stay local", "url", url, "error", err)
		return nil
	}
	return nc
}
