// Package dashboard derives the interviewer-facing views: filtered and
// sorted candidate listings plus aggregate counts. All projections are pure
// reads over an immutable record collection.
package dashboard

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/crispai/interview-assistant/internal/model"
	"github.com/crispai/interview-assistant/internal/scoring"
)

// SortKey selects the listing order.
type SortKey string

const (
	SortByScore  SortKey = "score"  // final score, descending
	SortByName   SortKey = "name"   // name, ascending
	SortByStatus SortKey = "status" // status, ascending
)

// Stats aggregates the record collection for the dashboard header.
type Stats struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	InProgress   int `json:"in_progress"`
	AverageScore int `json:"average_score"` // over records with a final score; 0 when none
}

// Service holds the candidate records and serves projections over them.
// Records are never mutated; Append only grows the collection.
type Service struct {
	mu      sync.RWMutex
	records []model.CandidateRecord
}

// NewService creates a Service over a copy of the given records.
func NewService(records []model.CandidateRecord) *Service {
	s := &Service{records: make([]model.CandidateRecord, len(records))}
	copy(s.records, records)
	return s
}

// Append adds a record, typically projected from a finished live session.
func (s *Service) Append(r model.CandidateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// List returns the records whose name or email contains filter
// (case-insensitive substring; empty matches all), ordered by key.
func (s *Service) List(filter string, key SortKey) []model.CandidateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]model.CandidateRecord, 0, len(s.records))
	for _, r := range s.records {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.Profile.Name), needle) ||
			strings.Contains(strings.ToLower(r.Profile.Email), needle) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortByName:
			return out[i].Profile.Name < out[j].Profile.Name
		case SortByStatus:
			return out[i].Status < out[j].Status
		default:
			return scoreOrZero(out[i]) > scoreOrZero(out[j])
		}
	})

	return out
}

// Get looks a record up by ID.
func (s *Service) Get(id string) (model.CandidateRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return model.CandidateRecord{}, false
}

// Stats computes the aggregate counts over all records.
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Total: len(s.records)}
	sum, scored := 0, 0
	for _, r := range s.records {
		switch r.Status {
		case model.StatusCompleted:
			st.Completed++
		case model.StatusInProgress:
			st.InProgress++
		}
		if r.FinalScore != nil {
			sum += *r.FinalScore
			scored++
		}
	}
	if scored > 0 {
		st.AverageScore = int(math.Round(float64(sum) / float64(scored)))
	}
	return st
}

func scoreOrZero(r model.CandidateRecord) int {
	if r.FinalScore == nil {
		return 0
	}
	return *r.FinalScore
}

// RecordFromSession projects a live interview session into a dashboard
// record. Completed sessions carry their final score and a generated
// assessment summary; anything still running projects as in-progress.
func RecordFromSession(sess model.InterviewSession) model.CandidateRecord {
	rec := model.CandidateRecord{
		ID:      sess.ID.String(),
		Profile: sess.Profile,
		Status:  model.StatusInProgress,
	}
	if sess.StartedAt != nil {
		rec.Interview.StartTime = *sess.StartedAt
	}
	rec.Interview.Questions = append(rec.Interview.Questions, sess.Questions...)

	if sess.Phase == model.PhaseCompleted {
		rec.Status = model.StatusCompleted
		rec.FinalScore = sess.FinalScore
		rec.Summary = scoring.Summary(sess.Questions)
		rec.Interview.EndTime = sess.FinishedAt
	}
	return rec
}

// FormatDuration renders the interview duration in whole minutes, or "N/A"
// when the interview has not finished.
func FormatDuration(start time.Time, end *time.Time) string {
	if start.IsZero() || end == nil {
		return "N/A"
	}
	return fmt.Sprintf("%d min", int(end.Sub(start).Minutes()))
}
