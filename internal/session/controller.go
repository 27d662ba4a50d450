package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/crispai/interview-assistant/internal/intake"
	"github.com/crispai/interview-assistant/internal/model"
	"github.com/crispai/interview-assistant/internal/notify"
)

// Controller owns one live interview session. It serializes all events
// through a single mutex (the Go rendition of the browser's single-threaded
// event loop), executes machine effects, and forwards notifications to the
// sink. One Controller hosts one candidate flow at a time.
type Controller struct {
	machine  *Machine
	parser   *intake.Parser
	sink     notify.Sink
	log      zerolog.Logger
	interval time.Duration
	observer func(model.InterviewSession)

	mu           sync.Mutex
	sess         model.InterviewSession
	timer        *countdown
	timerGen     uint64
	intakeCancel context.CancelFunc
}

// Option configures a Controller.
type Option func(*Controller)

// WithTickInterval overrides the one second countdown cadence. Tests use a
// short interval to drive the timer quickly.
func WithTickInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// WithObserver registers a callback invoked with a snapshot after every
// successful transition. The callback runs outside the controller lock but
// on the dispatching goroutine; it must not block.
func WithObserver(fn func(model.InterviewSession)) Option {
	return func(c *Controller) { c.observer = fn }
}

// NewController creates a Controller with a fresh session in the upload
// phase.
func NewController(machine *Machine, parser *intake.Parser, sink notify.Sink, log zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		machine:  machine,
		parser:   parser,
		sink:     sink,
		log:      log.With().Str("component", "session_controller").Logger(),
		interval: time.Second,
		sess:     model.NewInterviewSession(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() model.InterviewSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.Clone()
}

// Dispatch applies a user event to the session. Validation errors are
// reported to the notification sink and returned; the session is unchanged
// on error.
func (c *Controller) Dispatch(ev Event) error {
	return c.apply(ev, 0, false)
}

// SubmitResume validates the candidate file and, on success, schedules the
// simulated resume parse. The eventual ResumeAccepted event is delivered
// asynchronously; Reset cancels a parse still in flight so a stale profile
// can never land on a fresh session.
func (c *Controller) SubmitResume(path string) error {
	if err := c.parser.Inspect(path); err != nil {
		verr := intakeValidationError(err)
		c.sink.Notify(verr.Notification())
		return verr
	}

	ctx, cancel := context.WithCancel(context.Background())

	c.mu.Lock()
	if c.intakeCancel != nil {
		c.intakeCancel()
	}
	c.intakeCancel = cancel
	c.mu.Unlock()

	go func() {
		profile, ok := c.parser.Parse(ctx, path)
		if !ok {
			return
		}
		if err := c.Dispatch(ResumeAccepted{Profile: profile}); err != nil {
			c.log.Debug().Err(err).Msg("resume result arrived in wrong phase")
		}
	}()

	return nil
}

// Reset cancels any pending resume parse, disarms the countdown and starts
// a fresh session in the upload phase.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.intakeCancel != nil {
		c.intakeCancel()
		c.intakeCancel = nil
	}
	c.mu.Unlock()

	_ = c.Dispatch(ResetRequested{})
}

// Close disarms the countdown and cancels pending intake work. The
// controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.intakeCancel != nil {
		c.intakeCancel()
		c.intakeCancel = nil
	}
	c.disarmLocked()
	c.mu.Unlock()
}

// apply is the single mutation path. Tick events carry the generation of
// the countdown that produced them; a tick from a stopped runner that was
// already blocked on the lock is dropped instead of draining a second from
// the wrong question.
func (c *Controller) apply(ev Event, gen uint64, checkGen bool) error {
	c.mu.Lock()

	if checkGen && gen != c.timerGen {
		c.mu.Unlock()
		return nil
	}

	next, effects, err := c.machine.Apply(c.sess, ev)
	if err != nil {
		c.mu.Unlock()
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.sink.Notify(verr.Notification())
		}
		return err
	}

	c.sess = next

	var notifications []notify.Notification
	for _, eff := range effects {
		switch e := eff.(type) {
		case ArmTimer:
			c.armLocked()
		case DisarmTimer:
			c.disarmLocked()
		case Announce:
			notifications = append(notifications, announceNotification(e))
		}
	}

	snapshot := c.sess.Clone()
	c.mu.Unlock()

	for _, n := range notifications {
		c.sink.Notify(n)
	}
	if c.observer != nil {
		c.observer(snapshot)
	}
	return nil
}

func (c *Controller) armLocked() {
	c.disarmLocked()
	gen := c.timerGen
	c.timer = newCountdown(c.interval, func() {
		_ = c.apply(Tick{}, gen, true)
	})
}

func (c *Controller) disarmLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	// Bump the generation so in-flight ticks from the old runner are dropped.
	c.timerGen++
}

func announceNotification(a Announce) notify.Notification {
	sev := notify.SeverityInfo
	if a.Success {
		sev = notify.SeveritySuccess
	}
	return notify.Notification{Title: a.Title, Description: a.Description, Severity: sev}
}

func intakeValidationError(err error) *ValidationError {
	switch {
	case errors.Is(err, intake.ErrUnsupportedType):
		return NewValidationError(ErrUnsupportedResume)
	case errors.Is(err, intake.ErrTooLarge):
		return NewValidationError(ErrResumeTooLarge)
	default:
		return NewValidationError(ErrResumeUnreadable)
	}
}
