package flowengine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/c360/semwire/component"
	"github.com/c360/semwire/component/flowgraph"
	"github.com/c360/semwire/config"
	"github.com/c360/semwire/errors"
	"github.com/c360/semwire/wiring"
)

// Starter is implemented by components that push an initial value once wiring is
// complete.
type Starter interface {
	Start()
}

// Sampler is implemented by source components.
type Sampler interface {
	Sample()
}

// Assembly is a built component graph.
type Assembly struct {
	components map[string]component.Wireable
	order      []string
	graph      *flowgraph.FlowGraph
	resolver   *wiring.Resolver
	logger     *slog.Logger
}

// Build creates every component declared in cfg and applies its wires in order.
// The resolver is built from opts and also serves as deps.Wirer, so composite
// components wire their internals through it.
func Build(cfg *config.Graph, registry *component.Registry, deps component.Dependencies, opts ...wiring.Option) (*Assembly, error) {
	start := time.Now()
	logger := deps.GetLoggerWithComponent("flowengine")

	metrics, err := newEngineMetrics(deps.MetricsRegistry)
	if err != nil {
		logger.Error("Failed to initialize flow engine metrics", "error", err)
		metrics = nil // Continue without metrics
	}

	if registry == nil {
		return nil, errors.WrapFatal(fmt.Errorf("%w: registry", errors.ErrNullArgument), "flowengine", "Build", "argument check")
	}
	if err := cfg.Validate(); err != nil {
		metrics.recordBuild(false, nil)
		return nil, errors.Wrap(err, "flowengine", "Build", "graph validation")
	}

	graph := flowgraph.NewFlowGraph()
	if deps.Logger != nil {
		opts = append([]wiring.Option{wiring.WithLogger(deps.Logger)}, opts...)
	}
	resolver := wiring.NewResolver(append(opts, wiring.WithObserver(graph))...)
	deps.Wirer = resolver

	a := &Assembly{
		components: make(map[string]component.Wireable, len(cfg.Components)),
		graph:      graph,
		resolver:   resolver,
		logger:     logger,
	}

	types := make(map[string]int)
	for i := range cfg.Components {
		c := &cfg.Components[i]
		instance, err := registry.Create(c.Type, c.Name, c.Raw(), deps)
		if err != nil {
			metrics.recordBuild(false, nil)
			return nil, errors.Wrap(err, "flowengine", "Build", fmt.Sprintf("create component %s", c.Name))
		}
		if err := graph.AddComponentNode(c.Name, instance); err != nil {
			metrics.recordBuild(false, nil)
			return nil, errors.Wrap(err, "flowengine", "Build", fmt.Sprintf("add component %s", c.Name))
		}
		a.components[c.Name] = instance
		a.order = append(a.order, c.Name)
		types[c.Type]++
		logger.Debug("Created component", "name", c.Name, "type", c.Type)
	}

	for _, w := range cfg.Wires {
		if err := a.apply(w); err != nil {
			metrics.recordBuild(false, nil)
			return nil, errors.Wrap(err, "flowengine", "Build", fmt.Sprintf("wire %s", w))
		}
	}

	metrics.recordBuild(true, types)
	logger.Info("Graph assembled",
		"components", len(a.order),
		"wires", len(cfg.Wires),
		"duration", time.Since(start))
	return a, nil
}

func (a *Assembly) apply(w config.WireConfig) error {
	from, to := a.components[w.From], a.components[w.To]
	var slot []string
	if w.Slot != "" {
		slot = []string{w.Slot}
	}
	if w.EffectiveMode() == config.ModeIn {
		_, err := a.resolver.WireIn(from, to, slot...)
		return err
	}
	_, err := a.resolver.WireTo(from, to, slot...)
	return err
}

// Component returns the component declared under name.
func (a *Assembly) Component(name string) (component.Wireable, bool) {
	c, ok := a.components[name]
	return c, ok
}

// Components returns the declared components in declaration order.
func (a *Assembly) Components() []component.Wireable {
	out := make([]component.Wireable, 0, len(a.order))
	for _, name := range a.order {
		out = append(out, a.components[name])
	}
	return out
}

// Graph returns the realized binding graph, including composite internals.
func (a *Assembly) Graph() *flowgraph.FlowGraph { return a.graph }

// Resolver returns the resolver that wired the assembly. It can wire further
// components into the graph.
func (a *Assembly) Resolver() *wiring.Resolver { return a.resolver }

// Start calls Start on every Starter in declaration order.
func (a *Assembly) Start() {
	for _, name := range a.order {
		if s, ok := a.components[name].(Starter); ok {
			a.logger.Debug("Starting component", "name", name)
			s.Start()
		}
	}
}

// Sample drives every Sampler n times. Each round samples the sources in
// declaration order.
func (a *Assembly) Sample(n int) {
	for i := 0; i < n; i++ {
		for _, name := range a.order {
			if s, ok := a.components[name].(Sampler); ok {
				s.Sample()
			}
		}
	}
}
