package model

import "time"

// CandidateStatus is the dashboard-facing status of a candidate record.
type CandidateStatus string

const (
	StatusCompleted  CandidateStatus = "completed"
	StatusInProgress CandidateStatus = "in-progress"
)

// CandidateRecord is the interviewer-facing read model of a completed or
// partial interview. Records are supplied externally (fixture files or
// finished sessions) and are never mutated by the dashboard.
type CandidateRecord struct {
	ID         string           `json:"id" yaml:"id"`
	Profile    CandidateProfile `json:"profile" yaml:"profile"`
	Status     CandidateStatus  `json:"status" yaml:"status"`
	FinalScore *int             `json:"final_score,omitempty" yaml:"final_score,omitempty"` // 0..100
	Summary    string           `json:"summary,omitempty" yaml:"summary,omitempty"`
	Interview  InterviewData    `json:"interview_data" yaml:"interview_data"`
}

// InterviewData carries the per-question detail of a recorded interview.
type InterviewData struct {
	StartTime time.Time  `json:"start_time" yaml:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}
