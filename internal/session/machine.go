// Package session implements the interview lifecycle state machine: upload,
// info collection, the timed question loop with pause/resume, and completion.
//
// The machine itself is pure: Apply maps (session, event) to (session,
// effects) without touching clocks or goroutines. The Controller owns a live
// session, serializes events, and executes effects (countdown arm/disarm,
// notifications), which keeps every transition deterministically testable.
package session

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/crispai/interview-assistant/internal/model"
	"github.com/crispai/interview-assistant/internal/questionbank"
	"github.com/crispai/interview-assistant/internal/scoring"
	"github.com/crispai/interview-assistant/internal/validator"
)

// Machine applies events to interview sessions. It is not safe for
// concurrent use; the Controller serializes access.
type Machine struct {
	bank *questionbank.Bank
	rng  *rand.Rand
	now  func() time.Time
}

// NewMachine creates a Machine drawing prompts from bank and randomness
// from rng. Pass a seeded rng to make question picks and score bonuses
// reproducible.
func NewMachine(bank *questionbank.Bank, rng *rand.Rand) *Machine {
	return &Machine{bank: bank, rng: rng, now: time.Now}
}

// Apply performs one transition. On error the returned session equals the
// input and no effects are produced; every error is a *ValidationError and
// leaves the session locally recoverable.
func (m *Machine) Apply(s model.InterviewSession, ev Event) (model.InterviewSession, []Effect, error) {
	switch e := ev.(type) {
	case ResumeAccepted:
		return m.applyResumeAccepted(s, e)
	case ProfileSubmitted:
		return m.applyProfileSubmitted(s, e)
	case DraftUpdated:
		return m.applyDraftUpdated(s, e)
	case AnswerSubmitted:
		return m.applyAnswerSubmitted(s)
	case Tick:
		return m.applyTick(s)
	case PauseToggled:
		return m.applyPauseToggled(s)
	case ResetRequested:
		return model.NewInterviewSession(), []Effect{DisarmTimer{}}, nil
	default:
		return s, nil, NewValidationError(ErrInvalidPhase)
	}
}

func (m *Machine) applyResumeAccepted(s model.InterviewSession, e ResumeAccepted) (model.InterviewSession, []Effect, error) {
	if s.Phase != model.PhaseUpload {
		return s, nil, NewValidationError(ErrInvalidPhase)
	}

	next := s.Clone()
	next.Phase = model.PhaseInfoCollection
	next.Profile = e.Profile.Trimmed()

	return next, []Effect{Announce{
		Title:       "Resume uploaded successfully!",
		Description: "Please verify your information below.",
		Success:     true,
	}}, nil
}

func (m *Machine) applyProfileSubmitted(s model.InterviewSession, e ProfileSubmitted) (model.InterviewSession, []Effect, error) {
	if s.Phase != model.PhaseInfoCollection {
		return s, nil, NewValidationError(ErrInvalidPhase)
	}

	profile := e.Profile.Trimmed()
	if fields := validator.Struct(profile); fields != nil {
		return s, nil, &ValidationError{Code: ErrMissingFields, Fields: fields}
	}

	next := s.Clone()
	next.Profile = profile
	next.Questions = m.buildQuestions()
	next.CurrentIndex = 0
	next.Phase = model.PhaseInProgress
	next.TimeRemaining = next.Questions[0].TimeLimit
	now := m.now()
	next.StartedAt = &now

	return next, []Effect{ArmTimer{}, Announce{
		Title:       "Interview started!",
		Description: "Answer each question within the time limit.",
		Success:     true,
	}}, nil
}

func (m *Machine) applyDraftUpdated(s model.InterviewSession, e DraftUpdated) (model.InterviewSession, []Effect, error) {
	if s.Phase != model.PhaseInProgress {
		return s, nil, NewValidationError(ErrInvalidPhase)
	}
	if s.Paused {
		return s, nil, NewValidationError(ErrSessionPaused)
	}

	next := s.Clone()
	next.Draft = e.Text
	return next, nil, nil
}

func (m *Machine) applyAnswerSubmitted(s model.InterviewSession) (model.InterviewSession, []Effect, error) {
	if s.Phase != model.PhaseInProgress {
		return s, nil, NewValidationError(ErrInvalidPhase)
	}
	if s.Paused {
		return s, nil, NewValidationError(ErrSessionPaused)
	}
	if strings.TrimSpace(s.Draft) == "" {
		return s, nil, NewValidationError(ErrAnswerRequired)
	}

	next, effects := m.finalizeCurrent(s.Clone(), s.Draft, false)
	return next, effects, nil
}

func (m *Machine) applyTick(s model.InterviewSession) (model.InterviewSession, []Effect, error) {
	// Stale or irrelevant ticks are harmless no-ops: the countdown only
	// moves while the interview is running and unpaused.
	if s.Phase != model.PhaseInProgress || s.Paused {
		return s, nil, nil
	}

	next := s.Clone()
	next.TimeRemaining--
	if next.TimeRemaining > 0 {
		return next, nil, nil
	}
	next.TimeRemaining = 0

	// Countdown expiry submits whatever draft is present, even empty text.
	next, effects := m.finalizeCurrent(next, next.Draft, true)
	return next, effects, nil
}

func (m *Machine) applyPauseToggled(s model.InterviewSession) (model.InterviewSession, []Effect, error) {
	if s.Phase != model.PhaseInProgress {
		// Toggling has no effect outside the question loop.
		return s, nil, nil
	}

	next := s.Clone()
	next.Paused = !s.Paused

	if next.Paused {
		return next, []Effect{DisarmTimer{}, Announce{Title: "Interview paused"}}, nil
	}
	return next, []Effect{ArmTimer{}, Announce{Title: "Interview resumed"}}, nil
}

// finalizeCurrent records the answer, time used and score for the current
// question, then advances to the next question or completes the session.
// The session must already be a clone owned by the caller.
func (m *Machine) finalizeCurrent(s model.InterviewSession, answer string, expired bool) (model.InterviewSession, []Effect) {
	q := &s.Questions[s.CurrentIndex]
	used := q.TimeLimit - s.TimeRemaining
	score := scoring.Score(m.rng, answer, q.Difficulty)
	q.Answer = answer
	q.TimeUsed = &used
	q.Score = &score
	s.Draft = ""

	var effects []Effect
	if expired {
		effects = append(effects, Announce{
			Title:       "Time up!",
			Description: "Moving to next question.",
		})
	}

	if s.CurrentIndex == len(s.Questions)-1 {
		s.Phase = model.PhaseCompleted
		s.Paused = false
		s.TimeRemaining = 0
		final := scoring.FinalScore(collectScores(s.Questions))
		s.FinalScore = &final
		now := m.now()
		s.FinishedAt = &now

		effects = append(effects, DisarmTimer{}, Announce{
			Title:       "Interview completed!",
			Description: fmt.Sprintf("Your final score: %d/100", final),
			Success:     true,
		})
		return s, effects
	}

	s.CurrentIndex++
	s.TimeRemaining = s.Questions[s.CurrentIndex].TimeLimit
	effects = append(effects, ArmTimer{})
	return s, effects
}

// buildQuestions draws the fixed-order question list for a new interview.
func (m *Machine) buildQuestions() []model.Question {
	seq := questionbank.Sequence()
	questions := make([]model.Question, len(seq))
	for i, d := range seq {
		questions[i] = model.Question{
			ID:         fmt.Sprintf("q%d", i+1),
			Difficulty: d,
			Prompt:     m.bank.Pick(m.rng, d),
			TimeLimit:  m.bank.TimeLimit(d),
		}
	}
	return questions
}

func collectScores(questions []model.Question) []int {
	scores := make([]int, 0, len(questions))
	for _, q := range questions {
		if q.Score != nil {
			scores = append(scores, *q.Score)
		}
	}
	return scores
}
