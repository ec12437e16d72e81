package diagnostic

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// LogListener forwards events to logger at Info level.
func LogListener(logger *slog.Logger) Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return ListenerFunc(func(e Event) {
		logger.Info(e.String(),
			"event_id", e.ID,
			"operation", string(e.Operation),
			"source", e.Source.String(),
			"target", e.Target.String(),
			"slot", e.Slot,
			"capability", e.Capability.String(),
			"cardinality", e.Cardinality.String())
	})
}

// WriterListener writes one rendered message per line to w. Write errors are dropped.
func WriterListener(w io.Writer) Listener {
	return ListenerFunc(func(e Event) {
		_, _ = fmt.Fprintln(w, e.String())
	})
}

// Recorder keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// OnEvent records e.
func (r *Recorder) OnEvent(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events in delivery order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Messages returns the rendered messages in delivery order.
func (r *Recorder) Messages() []string {
	events := r.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.String()
	}
	return out
}
