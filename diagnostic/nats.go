package diagnostic

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// SubjectPrefix is prepended to the source type to form the publish subject.
const SubjectPrefix = "diagnostics.wiring"

// Publisher is the subset of *nats.Conn used by NATSPublisher.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes every event as JSON to diagnostics.wiring.<source type>.
// Publishing is best effort: failures are logged and the binding is unaffected.
type NATSPublisher struct {
	nc     Publisher
	logger *slog.Logger
}

// NewNATSPublisher returns a listener publishing through nc.
func NewNATSPublisher(nc Publisher, logger *slog.Logger) *NATSPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NATSPublisher{nc: nc, logger: logger.With("component", "diagnostic")}
}

// Subject returns the subject an event is published to.
func Subject(e Event) string {
	token := strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t':
			return '_'
		}
		return r
	}, e.Source.Type)
	if token == "" {
		token = "_"
	}
	return SubjectPrefix + "." + token
}

// OnEvent publishes e.
func (p *NATSPublisher) OnEvent(e Event) {
	if p == nil || p.nc == nil {
		return
	}
	data, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("Failed to marshal diagnostic event", "error", err)
		return
	}
	subject := Subject(e)
	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error("Failed to publish diagnostic to NATS", "error", err, "subject", subject)
	}
}
