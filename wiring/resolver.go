package wiring

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/c360/semwire/capability"
	"github.com/c360/semwire/component"
	"github.com/c360/semwire/diagnostic"
	"github.com/c360/semwire/errors"
	"github.com/c360/semwire/metric"
)

// Observer is told about every binding after it is made and before diagnostics are
// published.
type Observer interface {
	Observe(component.Binding)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCatalog sets the catalog used for list covariance. Default: capability.Default().
func WithCatalog(c *capability.Catalog) Option {
	return func(r *Resolver) { r.catalog = c }
}

// WithSink publishes diagnostics to s instead of the process-wide sink.
func WithSink(s *diagnostic.Sink) Option {
	return func(r *Resolver) { r.sink = s }
}

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) { r.logger = l }
}

// WithMetrics records outcomes in m.
func WithMetrics(m *metric.WiringMetrics) Option {
	return func(r *Resolver) { r.metrics = m }
}

// WithObserver adds an observer. Observers are called in the order added.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// Resolver binds component slots to capabilities by matching.
//
// A Resolver holds no per-call state. Calls that touch the same source must be
// serialized by the caller.
type Resolver struct {
	catalog   *capability.Catalog
	sink      *diagnostic.Sink
	logger    *slog.Logger
	metrics   *metric.WiringMetrics
	observers []Observer
}

// NewResolver builds a resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.catalog == nil {
		r.catalog = capability.Default()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	r.logger = r.logger.With("component", "wiring")
	return r
}

// WireTo binds the first eligible slot of source to target and returns source.
// A slot name restricts the candidates to slots with exactly that name; an
// empty name matches no slot.
func (r *Resolver) WireTo(source, target component.Wireable, slotName ...string) (component.Wireable, error) {
	if err := r.wire(diagnostic.OpWireTo, source, target, slotName); err != nil {
		return source, err
	}
	return source, nil
}

// WireIn binds like WireTo and returns target.
func (r *Resolver) WireIn(source, target component.Wireable, slotName ...string) (component.Wireable, error) {
	if err := r.wire(diagnostic.OpWireIn, source, target, slotName); err != nil {
		return target, err
	}
	return target, nil
}

func (r *Resolver) wire(op diagnostic.Operation, source, target component.Wireable, slotName []string) error {
	method := "Resolver." + string(op)

	if isNil(source) {
		return r.fail(metric.ReasonNullArgument,
			errors.WrapFatal(fmt.Errorf("%w: source", errors.ErrNullArgument), "Resolver", string(op), "argument check"))
	}
	if isNil(target) {
		return r.fail(metric.ReasonNullArgument,
			errors.WrapFatal(fmt.Errorf("%w: target", errors.ErrNullArgument), "Resolver", string(op), "argument check"))
	}
	if len(slotName) > 1 {
		return r.fail(metric.ReasonInvalidArgument,
			errors.WrapInvalid(fmt.Errorf("%w: at most one slot name, got %d", errors.ErrInvalidArgument, len(slotName)),
				"Resolver", string(op), "argument check"))
	}

	hint, hinted := "", len(slotName) == 1
	if hinted {
		hint = slotName[0]
	}

	candidates := source.Slots()
	if hinted {
		candidates = filterByName(candidates, hint)
	}
	targetCaps := target.Capabilities()

	slot, id, ok := matchSingular(candidates, targetCaps)
	if !ok {
		slot, id, ok = r.matchList(candidates, targetCaps)
	}
	if !ok {
		return r.fail(metric.ReasonNoCandidate, r.noMatch(source, target, hint, candidates, targetCaps))
	}

	handle, provided := target.Provide(id)
	if !provided || handle == nil {
		handle = target
	}
	b, err := slot.Bind(component.Binding{Provider: target, Capability: id, Handle: handle})
	if err != nil {
		return r.fail(metric.ReasonAlreadyWired, errors.Wrap(err, "Resolver", string(op), "slot binding"))
	}

	r.logger.Debug("Wired slot",
		"method", method,
		"source", source.Info().String(),
		"slot", b.Slot,
		"target", target.Info().String(),
		"capability", string(id),
		"cardinality", slot.Cardinality().String(),
		"position", b.Position)
	r.metrics.RecordBind(string(id), slot.Cardinality().String())

	for _, o := range r.observers {
		o.Observe(b)
	}
	r.diagnostics().Publish(diagnostic.NewEvent(op, slot, b))
	return nil
}

// matchSingular finds the first unbound singular slot whose capability is provided
// exactly by the target.
func matchSingular(candidates []*component.Slot, targetCaps []capability.ID) (*component.Slot, capability.ID, bool) {
	for _, s := range candidates {
		if s.IsList() || s.IsBound() {
			continue
		}
		for _, id := range targetCaps {
			if id == s.Capability() {
				return s, id, true
			}
		}
	}
	return nil, "", false
}

// matchList finds the first list slot whose element capability is assignable from a
// target capability. The first assignable target capability supplies the handle.
func (r *Resolver) matchList(candidates []*component.Slot, targetCaps []capability.ID) (*component.Slot, capability.ID, bool) {
	for _, s := range candidates {
		if !s.IsList() {
			continue
		}
		for _, id := range targetCaps {
			if r.catalog.Assignable(s.Capability(), id) {
				return s, id, true
			}
		}
	}
	return nil, "", false
}

func (r *Resolver) noMatch(source, target component.Wireable, hint string, candidates []*component.Slot, targetCaps []capability.ID) error {
	if hint != "" && len(candidates) == 1 {
		s := candidates[0]
		if b, bound := s.Binding(); bound {
			return &SlotWiredError{
				Source:   source.Info(),
				Target:   target.Info(),
				Slot:     s.Name(),
				Existing: b.Provider.Info(),
			}
		}
	}
	return &NoCandidateError{
		Source:             source.Info(),
		Target:             target.Info(),
		SlotHint:           hint,
		Considered:         snapshot(candidates),
		TargetCapabilities: targetCaps,
	}
}

func (r *Resolver) fail(reason string, err error) error {
	if reason == metric.ReasonNoCandidate {
		var wired *SlotWiredError
		if errors.As(err, &wired) {
			reason = metric.ReasonAlreadyWired
		}
	}
	r.logger.Warn("Wiring failed", "reason", reason, "error", err)
	r.metrics.RecordFailure(reason)
	return err
}

func (r *Resolver) diagnostics() *diagnostic.Sink {
	if r.sink != nil {
		return r.sink
	}
	return diagnostic.Default()
}

func filterByName(slots []*component.Slot, name string) []*component.Slot {
	for _, s := range slots {
		if s.Name() == name {
			return []*component.Slot{s}
		}
	}
	return nil
}

// isNil catches both untyped nil and typed nil pointers inside the interface.
func isNil(c component.Wireable) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
