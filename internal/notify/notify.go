// Package notify delivers short user-facing feedback messages. Delivery is
// fire-and-forget: sinks must not block and the caller never waits for an
// acknowledgment.
package notify

import "github.com/rs/zerolog"

// Severity classifies a notification for presentation.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a (title, description, severity) tuple shown to the user.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Sink receives notifications.
type Sink interface {
	Notify(n Notification)
}

// Func adapts a plain function into a Sink.
type Func func(n Notification)

// Notify implements Sink.
func (f Func) Notify(n Notification) { f(n) }

// LogSink writes notifications to a zerolog logger, mapping severity to the
// matching log level.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink creates a LogSink tagged with a notifier component field.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "notifier").Logger()}
}

// Notify implements Sink.
func (s *LogSink) Notify(n Notification) {
	ev := s.log.Info()
	if n.Severity == SeverityError {
		ev = s.log.Warn()
	}
	ev.Str("severity", string(n.Severity)).
		Str("title", n.Title).
		Msg(n.Description)
}

// Multi fans a notification out to several sinks in order.
type Multi []Sink

// Notify implements Sink.
func (m Multi) Notify(n Notification) {
	for _, s := range m {
		s.Notify(n)
	}
}
