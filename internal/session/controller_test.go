package session

import (
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crispai/interview-assistant/internal/intake"
	"github.com/crispai/interview-assistant/internal/model"
	"github.com/crispai/interview-assistant/internal/notify"
	"github.com/crispai/interview-assistant/internal/questionbank"
)

// captureSink records notifications for assertions.
type captureSink struct {
	mu    sync.Mutex
	notes []notify.Notification
}

func (s *captureSink) Notify(n notify.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, n)
}

func (s *captureSink) titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.notes))
	for i, n := range s.notes {
		out[i] = n.Title
	}
	return out
}

func newTestController(t *testing.T, parseDelay time.Duration, opts ...Option) (*Controller, *captureSink) {
	t.Helper()

	sink := &captureSink{}
	machine := NewMachine(questionbank.Default(), rand.New(rand.NewSource(1)))
	parser := intake.NewParser(parseDelay, 0, zerolog.Nop())

	opts = append([]Option{WithTickInterval(5 * time.Millisecond)}, opts...)
	c := NewController(machine, parser, sink, zerolog.Nop(), opts...)
	t.Cleanup(c.Close)
	return c, sink
}

func startInterview(t *testing.T, c *Controller) {
	t.Helper()
	require.NoError(t, c.Dispatch(ResumeAccepted{Profile: model.CandidateProfile{Name: "Jane Doe"}}))
	require.NoError(t, c.Dispatch(ProfileSubmitted{Profile: fullProfile()}))
}

func TestControllerCountdownRuns(t *testing.T) {
	c, _ := newTestController(t, 0)
	startInterview(t, c)

	require.Eventually(t, func() bool {
		return c.Snapshot().TimeRemaining < 20
	}, time.Second, time.Millisecond, "armed countdown must drain")
}

func TestControllerAutoAdvanceOnTimeout(t *testing.T) {
	c, sink := newTestController(t, 0)
	startInterview(t, c)

	require.Eventually(t, func() bool {
		return c.Snapshot().CurrentIndex >= 1
	}, 2*time.Second, time.Millisecond, "expired question must advance on its own")

	snap := c.Snapshot()
	q := snap.Questions[0]
	assert.Empty(t, q.Answer)
	require.NotNil(t, q.TimeUsed)
	assert.Equal(t, 20, *q.TimeUsed)

	assert.Contains(t, sink.titles(), "Time up!")
}

func TestControllerPauseStopsTicks(t *testing.T) {
	c, _ := newTestController(t, 0)
	startInterview(t, c)

	require.NoError(t, c.Dispatch(PauseToggled{}))
	frozen := c.Snapshot().TimeRemaining

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, frozen, c.Snapshot().TimeRemaining)
	assert.True(t, c.Snapshot().Paused)

	require.NoError(t, c.Dispatch(PauseToggled{}))
	require.Eventually(t, func() bool {
		return c.Snapshot().TimeRemaining < frozen
	}, time.Second, time.Millisecond, "countdown must resume where it stopped")
}

func TestControllerRunsInterviewToCompletion(t *testing.T) {
	c, sink := newTestController(t, 0, WithTickInterval(time.Millisecond))
	startInterview(t, c)

	require.Eventually(t, func() bool {
		return c.Snapshot().Phase == model.PhaseCompleted
	}, 10*time.Second, 5*time.Millisecond, "all six questions must expire")

	snap := c.Snapshot()
	require.NotNil(t, snap.FinalScore)
	for _, q := range snap.Questions {
		assert.True(t, q.Answered())
	}
	assert.Contains(t, sink.titles(), "Interview completed!")

	// No countdown survives completion.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().TimeRemaining)
}

func TestControllerValidationErrorsReachSink(t *testing.T) {
	c, sink := newTestController(t, 0)

	err := c.Dispatch(AnswerSubmitted{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrInvalidPhase, verr.Code)
	assert.Contains(t, sink.titles(), "Invalid action")
}

func TestControllerSubmitResume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jane_doe.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	c, _ := newTestController(t, time.Millisecond)
	require.NoError(t, c.SubmitResume(path))

	require.Eventually(t, func() bool {
		return c.Snapshot().Phase == model.PhaseInfoCollection
	}, time.Second, time.Millisecond)
	assert.Equal(t, "Jane Doe", c.Snapshot().Profile.Name)
}

func TestControllerSubmitResumeRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o600))

	c, sink := newTestController(t, time.Millisecond)

	err := c.SubmitResume(path)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrUnsupportedResume, verr.Code)
	assert.Contains(t, sink.titles(), "Invalid file type")
	assert.Equal(t, model.PhaseUpload, c.Snapshot().Phase)
}

func TestControllerResetCancelsPendingParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jane_doe.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	c, _ := newTestController(t, 100*time.Millisecond)
	require.NoError(t, c.SubmitResume(path))
	c.Reset()

	// The cancelled parse must never land its profile on the new session.
	assert.Never(t, func() bool {
		return c.Snapshot().Phase != model.PhaseUpload
	}, 300*time.Millisecond, 10*time.Millisecond)
}

func TestControllerObserverSeesSnapshots(t *testing.T) {
	var (
		mu     sync.Mutex
		phases []model.Phase
	)
	observer := func(s model.InterviewSession) {
		mu.Lock()
		defer mu.Unlock()
		phases = append(phases, s.Phase)
	}

	c, _ := newTestController(t, 0, WithObserver(observer))
	startInterview(t, c)

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(phases), 2)
	assert.Equal(t, model.PhaseInfoCollection, phases[0])
	assert.Equal(t, model.PhaseInProgress, phases[1])
}

func TestControllerCloseIsIdempotent(t *testing.T) {
	c, _ := newTestController(t, 0)
	startInterview(t, c)

	c.Close()
	c.Close()

	remaining := c.Snapshot().TimeRemaining
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, remaining, c.Snapshot().TimeRemaining, "no ticks after close")
}
