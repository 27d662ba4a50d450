package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterviewSession(t *testing.T) {
	s := NewInterviewSession()

	assert.Equal(t, PhaseUpload, s.Phase)
	assert.NotEqual(t, NewInterviewSession().ID, s.ID)
	assert.Nil(t, s.CurrentQuestion())
}

func TestCurrentQuestion(t *testing.T) {
	s := NewInterviewSession()
	s.Questions = []Question{{ID: "q1"}, {ID: "q2"}}
	s.CurrentIndex = 1

	assert.Nil(t, s.CurrentQuestion(), "no current question outside the interview")

	s.Phase = PhaseInProgress
	q := s.CurrentQuestion()
	require.NotNil(t, q)
	assert.Equal(t, "q2", q.ID)

	s.CurrentIndex = 5
	assert.Nil(t, s.CurrentQuestion())
}

func TestCloneIsDeep(t *testing.T) {
	s := NewInterviewSession()
	s.Questions = []Question{{ID: "q1", Answer: "original"}}

	c := s.Clone()
	c.Questions[0].Answer = "changed"

	assert.Equal(t, "original", s.Questions[0].Answer)
}

func TestProfileTrimmedAndComplete(t *testing.T) {
	p := CandidateProfile{Name: "  Jane Doe ", Email: " jane@email.com", Phone: ""}

	trimmed := p.Trimmed()
	assert.Equal(t, "Jane Doe", trimmed.Name)
	assert.Equal(t, "jane@email.com", trimmed.Email)

	assert.False(t, p.Complete())
	p.Phone = "+1-555-000-1111"
	assert.True(t, p.Complete())
}
