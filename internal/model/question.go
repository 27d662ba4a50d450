package model

// Difficulty determines a question's time limit and prompt pool.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Question is a single interview question. Answer, Score and TimeUsed stay
// unset until the question is finalized, which happens exactly once, on
// submission or on countdown expiry.
type Question struct {
	ID         string     `json:"id" yaml:"id"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Prompt     string     `json:"prompt" yaml:"prompt"`
	TimeLimit  int        `json:"time_limit" yaml:"time_limit"` // seconds
	Answer     string     `json:"answer" yaml:"answer"`
	Score      *int       `json:"score,omitempty" yaml:"score,omitempty"`         // 0..10
	TimeUsed   *int       `json:"time_used,omitempty" yaml:"time_used,omitempty"` // seconds
}

// Answered reports whether the question has been finalized.
func (q Question) Answered() bool {
	return q.Score != nil && q.TimeUsed != nil
}
