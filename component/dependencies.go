package component

import (
	"io"
	"log/slog"
	"os"

	"github.com/c360/semwire/metric"
)

// Wirer connects components. It is satisfied by *wiring.Resolver and lets composite
// components wire their internals without importing the resolver package.
type Wirer interface {
	WireTo(source, target Wireable, slotName ...string) (Wireable, error)
	WireIn(source, target Wireable, slotName ...string) (Wireable, error)
}

// Dependencies provides all external dependencies needed by component factories.
type Dependencies struct {
	Wirer  Wirer        // Resolver used by composite components (required for features)
	Logger *slog.Logger // Structured logger (can be nil, defaults to slog.Default())
	Output io.Writer    // Console sink for display components (can be nil, defaults to os.Stdout)

	MetricsRegistry *metric.MetricsRegistry // Component metrics (can be nil, metrics disabled)
}

// GetLogger returns the configured logger or a default logger if none is provided
func (d *Dependencies) GetLogger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

// GetLoggerWithComponent returns a logger configured with component context
func (d *Dependencies) GetLoggerWithComponent(componentName string) *slog.Logger {
	return d.GetLogger().With("component", componentName)
}

// GetOutput returns the configured console writer or stdout
func (d *Dependencies) GetOutput() io.Writer {
	if d.Output != nil {
		return d.Output
	}
	return os.Stdout
}
