// Package display renders numeric data flows on a console writer.
package display

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/dataflow"
)

var descriptor = component.MustDescribe("DisplayNumeric",
	component.Provides(dataflow.Float64, dataflow.Int),
)

// Config holds configuration for a numeric display
type Config struct {
	Label    string `yaml:"label"`
	Units    string `yaml:"units"`
	Decimals int    `yaml:"decimals"`
}

// Numeric writes one line per value: the bold label, the value with a fixed number
// of decimals and the units.
type Numeric struct {
	*component.Base

	cfg   Config
	out   io.Writer
	label lipgloss.Style
	last  string
}

// New creates a display writing to w. A nil w writes to os.Stdout.
func New(name string, cfg Config, w io.Writer) (*Numeric, error) {
	if cfg.Decimals < 0 || cfg.Decimals > 12 {
		return nil, fmt.Errorf("display: decimals must be between 0 and 12, got %d", cfg.Decimals)
	}
	if w == nil {
		w = os.Stdout
	}
	n := &Numeric{
		cfg:   cfg,
		out:   w,
		label: lipgloss.NewRenderer(w).NewStyle().Bold(true),
	}
	n.Base = component.NewBase(descriptor, name, n)
	n.Implement(dataflow.Int, dataflow.FlowFunc[int](func(v int) { n.Push(float64(v)) }))
	return n, nil
}

// Push implements dataflow.Flow for Float64.
func (n *Numeric) Push(v float64) {
	n.last = n.Format(v)
	if n.cfg.Label != "" {
		fmt.Fprintf(n.out, "%s: %s\n", n.label.Render(n.cfg.Label), n.last)
		return
	}
	fmt.Fprintln(n.out, n.last)
}

// Format renders v with the configured decimals and units.
func (n *Numeric) Format(v float64) string {
	s := strconv.FormatFloat(v, 'f', n.cfg.Decimals, 64)
	if n.cfg.Units != "" {
		s += " " + n.cfg.Units
	}
	return s
}

// Last returns the most recently displayed text, without the label.
func (n *Numeric) Last() string {
	return n.last
}
