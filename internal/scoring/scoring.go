// Package scoring is the local stand-in for AI answer assessment. Scores are
// deterministic in everything except a random 0-or-1 bonus, so callers must
// not assume repeatability; tests inject a seeded RNG.
package scoring

import (
	"math"
	"math/rand"
	"strings"

	"github.com/crispai/interview-assistant/internal/model"
)

// baseScore maps difficulty to the floor of the scoring formula.
var baseScore = map[model.Difficulty]int{
	model.DifficultyEasy:   7,
	model.DifficultyMedium: 6,
	model.DifficultyHard:   5,
}

// Score rates an answer on a 0..10 scale: difficulty base, plus up to 3
// points for answer length (one per 50 characters, trimmed), plus a random
// 0-or-1 bonus, capped at 10.
func Score(rng *rand.Rand, answer string, d model.Difficulty) int {
	base := baseScore[d]
	lengthBonus := len(strings.TrimSpace(answer)) / 50
	if lengthBonus > 3 {
		lengthBonus = 3
	}
	total := base + lengthBonus + rng.Intn(2)
	if total > 10 {
		total = 10
	}
	return total
}

// FinalScore aggregates per-question scores into a 0..100 result:
// round(mean * 10). Returns 0 for an empty slice.
func FinalScore(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	mean := float64(sum) / float64(len(scores))
	return int(math.Round(mean * 10))
}

// Canned assessment summaries by performance band.
const (
	summaryHigh   = "Exceptional candidate with strong technical skills and excellent problem-solving abilities. Ready for senior-level responsibilities."
	summaryMedium = "Solid candidate with good fundamentals and room for growth. Would benefit from mentorship in advanced concepts."
	summaryLow    = "Entry-level candidate with basic understanding. Requires significant training and development."
)

// Summary produces an assessment blurb from the answered questions' average
// score: >= 8 high, >= 6 medium, below that low.
func Summary(questions []model.Question) string {
	var sum, n int
	for _, q := range questions {
		if q.Score != nil {
			sum += *q.Score
			n++
		}
	}
	if n == 0 {
		return summaryLow
	}
	avg := float64(sum) / float64(n)
	switch {
	case avg >= 8:
		return summaryHigh
	case avg >= 6:
		return summaryMedium
	default:
		return summaryLow
	}
}
