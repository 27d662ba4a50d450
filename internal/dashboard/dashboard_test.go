package dashboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crispai/interview-assistant/internal/model"
)

func TestStatsOverDefaultFixtures(t *testing.T) {
	s := NewService(Default())

	st := s.Stats()
	assert.Equal(t, 3, st.Total)
	assert.Equal(t, 2, st.Completed)
	assert.Equal(t, 1, st.InProgress)
	// (85 + 72) / 2 rounds to 79; the in-progress record has no score yet.
	assert.Equal(t, 79, st.AverageScore)
}

func TestStatsEmpty(t *testing.T) {
	s := NewService(nil)

	st := s.Stats()
	assert.Equal(t, 0, st.Total)
	assert.Equal(t, 0, st.AverageScore)
}

func TestListFiltersByNameAndEmail(t *testing.T) {
	s := NewService(Default())

	byName := s.List("alex", SortByScore)
	require.Len(t, byName, 1)
	assert.Equal(t, "Alex Rodriguez", byName[0].Profile.Name)

	byEmail := s.List("MAYA.PATEL", SortByScore)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Maya Patel", byEmail[0].Profile.Name)

	assert.Len(t, s.List("", SortByScore), 3)
	assert.Empty(t, s.List("nobody", SortByScore))
}

func TestListSortOrders(t *testing.T) {
	s := NewService(Default())

	names := func(records []model.CandidateRecord) []string {
		out := make([]string, len(records))
		for i, r := range records {
			out[i] = r.Profile.Name
		}
		return out
	}

	// Highest score first; a record without one sorts last.
	assert.Equal(t, []string{"Sarah Chen", "Alex Rodriguez", "Maya Patel"}, names(s.List("", SortByScore)))
	assert.Equal(t, []string{"Alex Rodriguez", "Maya Patel", "Sarah Chen"}, names(s.List("", SortByName)))

	byStatus := s.List("", SortByStatus)
	assert.Equal(t, model.StatusCompleted, byStatus[0].Status)
	assert.Equal(t, model.StatusInProgress, byStatus[2].Status)
}

func TestGet(t *testing.T) {
	s := NewService(Default())

	r, ok := s.Get("candidate-2")
	require.True(t, ok)
	assert.Equal(t, "Alex Rodriguez", r.Profile.Name)

	_, ok = s.Get("candidate-99")
	assert.False(t, ok)
}

func TestAppend(t *testing.T) {
	s := NewService(nil)
	score := 90

	s.Append(model.CandidateRecord{
		ID:         "live-1",
		Profile:    model.CandidateProfile{Name: "Jane Doe", Email: "jane@email.com"},
		Status:     model.StatusCompleted,
		FinalScore: &score,
	})

	st := s.Stats()
	assert.Equal(t, 1, st.Total)
	assert.Equal(t, 90, st.AverageScore)
}

func TestRecordFromCompletedSession(t *testing.T) {
	started := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	finished := started.Add(11 * time.Minute)
	final := 90

	sess := model.NewInterviewSession()
	sess.Phase = model.PhaseCompleted
	sess.Profile = model.CandidateProfile{Name: "Jane Doe", Email: "jane@email.com", Phone: "+1"}
	sess.StartedAt = &started
	sess.FinishedAt = &finished
	sess.FinalScore = &final
	for i := 0; i < 6; i++ {
		score, used := 9, 10
		sess.Questions = append(sess.Questions, model.Question{
			ID:         "q1",
			Difficulty: model.DifficultyEasy,
			Answer:     "answer",
			Score:      &score,
			TimeUsed:   &used,
		})
	}

	rec := RecordFromSession(sess)

	assert.Equal(t, sess.ID.String(), rec.ID)
	assert.Equal(t, model.StatusCompleted, rec.Status)
	require.NotNil(t, rec.FinalScore)
	assert.Equal(t, 90, *rec.FinalScore)
	assert.NotEmpty(t, rec.Summary)
	assert.Equal(t, started, rec.Interview.StartTime)
	require.NotNil(t, rec.Interview.EndTime)
	assert.Len(t, rec.Interview.Questions, 6)
}

func TestRecordFromRunningSession(t *testing.T) {
	sess := model.NewInterviewSession()
	sess.Phase = model.PhaseInProgress
	sess.Profile = model.CandidateProfile{Name: "Jane Doe"}

	rec := RecordFromSession(sess)

	assert.Equal(t, model.StatusInProgress, rec.Status)
	assert.Nil(t, rec.FinalScore)
	assert.Empty(t, rec.Summary)
	assert.Nil(t, rec.Interview.EndTime)
}

func TestFormatDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(12*time.Minute + 30*time.Second)

	assert.Equal(t, "12 min", FormatDuration(start, &end))
	assert.Equal(t, "N/A", FormatDuration(start, nil))
	assert.Equal(t, "N/A", FormatDuration(time.Time{}, &end))
}

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidates.yaml")
	data := `
- id: fixture-1
  profile:
    name: Jane Doe
    email: jane@email.com
    phone: "+1-555-000-1111"
  status: completed
  final_score: 88
  summary: Great candidate.
  interview_data:
    start_time: 2026-03-01T09:00:00Z
    end_time: 2026-03-01T09:12:00Z
    questions:
      - id: q1
        difficulty: easy
        prompt: What are JavaScript closures?
        time_limit: 20
        answer: A closure captures its lexical scope.
        score: 9
        time_used: 15
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	records, err := LoadFixtures(path)
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "fixture-1", r.ID)
	assert.Equal(t, model.StatusCompleted, r.Status)
	require.NotNil(t, r.FinalScore)
	assert.Equal(t, 88, *r.FinalScore)
	require.Len(t, r.Interview.Questions, 1)
	assert.Equal(t, model.DifficultyEasy, r.Interview.Questions[0].Difficulty)
}

func TestLoadFixturesRejectsBadRecords(t *testing.T) {
	dir := t.TempDir()

	noID := filepath.Join(dir, "noid.yaml")
	require.NoError(t, os.WriteFile(noID, []byte("- status: completed\n"), 0o600))
	_, err := LoadFixtures(noID)
	assert.ErrorContains(t, err, "no id")

	badStatus := filepath.Join(dir, "badstatus.yaml")
	require.NoError(t, os.WriteFile(badStatus, []byte("- id: x\n  status: archived\n"), 0o600))
	_, err = LoadFixtures(badStatus)
	assert.ErrorContains(t, err, "unknown status")

	_, err = LoadFixtures(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
