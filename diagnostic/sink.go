package diagnostic

import "sync"

// Listener receives events. A panicking listener propagates the panic to the caller
// of Publish; later listeners are not called for that event.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f.
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Sink is an append-only, multicast list of listeners.
type Sink struct {
	mu        sync.RWMutex
	listeners []Listener
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Attach appends l. Nil listeners are ignored.
func (s *Sink) Attach(l Listener) {
	if l == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// OnDiagnostic attaches fn as a listener of rendered messages.
func (s *Sink) OnDiagnostic(fn func(message string)) {
	if fn == nil {
		return
	}
	s.Attach(ListenerFunc(func(e Event) { fn(e.String()) }))
}

// Publish delivers e to every listener attached before the call.
func (s *Sink) Publish(e Event) {
	s.mu.RLock()
	snapshot := make([]Listener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.RUnlock()

	for _, l := range snapshot {
		l.OnEvent(e)
	}
}

// Len returns the number of attached listeners.
func (s *Sink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

var (
	defaultMu   sync.RWMutex
	defaultSink = NewSink()
)

// Default returns the process-wide sink.
func Default() *Sink {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSink
}

// Init replaces the process-wide sink with a fresh one and returns it.
func Init() *Sink {
	s := NewSink()
	defaultMu.Lock()
	defaultSink = s
	defaultMu.Unlock()
	return s
}

// Reset drops every listener on the process-wide sink.
func Reset() {
	Init()
}

// OnDiagnostic attaches fn to the process-wide sink.
func OnDiagnostic(fn func(message string)) {
	Default().OnDiagnostic(fn)
}
