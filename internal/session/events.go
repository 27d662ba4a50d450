package session

import "github.com/crispai/interview-assistant/internal/model"

// Event is an input to the session state machine. Events originate from the
// user (upload, form submit, answer, pause) or from the countdown runner
// (Tick); the machine itself never produces events.
type Event interface {
	isEvent()
}

// ResumeAccepted fires after the resume intake collaborator validated the
// file and extracted a (partial) candidate profile.
type ResumeAccepted struct {
	Profile model.CandidateProfile
}

// ProfileSubmitted carries the completed candidate form.
type ProfileSubmitted struct {
	Profile model.CandidateProfile
}

// DraftUpdated replaces the in-progress answer text for the current
// question. The draft is what a countdown expiry submits.
type DraftUpdated struct {
	Text string
}

// AnswerSubmitted finalizes the current question with the session draft.
// Requires a non-empty (trimmed) draft; expiry has no such requirement.
type AnswerSubmitted struct{}

// Tick advances the countdown by one interval. Ignored while paused or
// outside the in-progress phase.
type Tick struct{}

// PauseToggled flips the pause flag. No effect outside the in-progress phase.
type PauseToggled struct{}

// ResetRequested discards the session and starts over from the upload phase.
type ResetRequested struct{}

func (ResumeAccepted) isEvent()   {}
func (ProfileSubmitted) isEvent() {}
func (DraftUpdated) isEvent()     {}
func (AnswerSubmitted) isEvent()  {}
func (Tick) isEvent()             {}
func (PauseToggled) isEvent()     {}
func (ResetRequested) isEvent()   {}

// Effect is a side effect requested by a transition. The controller executes
// effects; the machine stays pure.
type Effect interface {
	isEffect()
}

// ArmTimer starts (or restarts) the countdown runner. The session's
// TimeRemaining has already been set by the transition.
type ArmTimer struct{}

// DisarmTimer stops the countdown runner. Idempotent.
type DisarmTimer struct{}

// Announce emits a user-facing notification.
type Announce struct {
	Title       string
	Description string
	Success     bool
}

func (ArmTimer) isEffect()    {}
func (DisarmTimer) isEffect() {}
func (Announce) isEffect()    {}
