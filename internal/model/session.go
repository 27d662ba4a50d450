package model

import (
	"time"

	"github.com/google/uuid"
)

// Phase enumerates the coarse lifecycle stages of an interview session.
type Phase string

const (
	PhaseUpload         Phase = "UPLOAD"
	PhaseInfoCollection Phase = "INFO_COLLECTION"
	PhaseInProgress     Phase = "IN_PROGRESS"
	PhaseCompleted      Phase = "COMPLETED"
)

// InterviewSession is the full state of one candidate interview. It is a
// plain value: transitions produce a new session rather than mutating the
// old one, so snapshots handed to observers stay stable.
//
// Invariants:
//   - CurrentIndex is a valid index into Questions while Phase is IN_PROGRESS.
//   - Once Phase is COMPLETED every question is answered and FinalScore is set.
//   - Paused is only meaningful while Phase is IN_PROGRESS.
type InterviewSession struct {
	ID            uuid.UUID        `json:"id"`
	Profile       CandidateProfile `json:"profile"`
	Questions     []Question       `json:"questions"`
	CurrentIndex  int              `json:"current_index"`
	Phase         Phase            `json:"phase"`
	Paused        bool             `json:"paused"`
	TimeRemaining int              `json:"time_remaining"` // seconds left for the current question
	Draft         string           `json:"draft"`          // answer text typed so far, submitted on expiry
	StartedAt     *time.Time       `json:"started_at,omitempty"`
	FinishedAt    *time.Time       `json:"finished_at,omitempty"`
	FinalScore    *int             `json:"final_score,omitempty"` // 0..100
}

// NewInterviewSession returns a fresh session in the upload phase.
func NewInterviewSession() InterviewSession {
	return InterviewSession{
		ID:    uuid.New(),
		Phase: PhaseUpload,
	}
}

// CurrentQuestion returns the active question, or nil outside IN_PROGRESS.
func (s *InterviewSession) CurrentQuestion() *Question {
	if s.Phase != PhaseInProgress || s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// Clone returns a deep copy of the session. The questions slice is copied so
// the clone can be finalized without aliasing the original.
func (s InterviewSession) Clone() InterviewSession {
	out := s
	out.Questions = make([]Question, len(s.Questions))
	copy(out.Questions, s.Questions)
	return out
}
