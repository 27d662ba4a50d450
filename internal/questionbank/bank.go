// Package questionbank supplies interview prompts by difficulty tier.
// Selection is uniform-random within the tier's pool and makes no attempt
// to avoid repeats across questions.
package questionbank

import (
	"fmt"
	"math/rand"

	"github.com/crispai/interview-assistant/internal/model"
)

// defaultTimeLimits maps each tier to its countdown, in seconds.
var defaultTimeLimits = map[model.Difficulty]int{
	model.DifficultyEasy:   20,
	model.DifficultyMedium: 60,
	model.DifficultyHard:   120,
}

var defaultPools = map[model.Difficulty][]string{
	model.DifficultyEasy: {
		"What is the difference between let, const, and var in JavaScript?",
		"Explain the concept of React components.",
		"What is the Virtual DOM in React?",
		"What are JavaScript closures?",
	},
	model.DifficultyMedium: {
		"How does React hooks work? Explain useState and useEffect.",
		"What is middleware in Express.js and how do you implement it?",
		"Explain the concept of async/await in JavaScript.",
		"What is the difference between SQL and NoSQL databases?",
	},
	model.DifficultyHard: {
		"Design a system for real-time chat application. What technologies would you use?",
		"Explain database indexing and when you would use different types of indexes.",
		"How would you optimize a React application for better performance?",
		"Design a scalable microservices architecture for an e-commerce platform.",
	},
}

// Sequence returns the fixed difficulty order of a full interview.
func Sequence() []model.Difficulty {
	return []model.Difficulty{
		model.DifficultyEasy, model.DifficultyEasy,
		model.DifficultyMedium, model.DifficultyMedium,
		model.DifficultyHard, model.DifficultyHard,
	}
}

// Bank holds the prompt pools and per-tier time limits.
type Bank struct {
	pools  map[model.Difficulty][]string
	limits map[model.Difficulty]int
}

// Default returns a bank backed by the built-in prompt pools.
func Default() *Bank {
	return &Bank{pools: defaultPools, limits: defaultTimeLimits}
}

// Pick selects a prompt for the given tier uniformly at random.
func (b *Bank) Pick(rng *rand.Rand, d model.Difficulty) string {
	pool := b.pools[d]
	return pool[rng.Intn(len(pool))]
}

// TimeLimit returns the countdown, in seconds, for the given tier.
func (b *Bank) TimeLimit(d model.Difficulty) int {
	return b.limits[d]
}

// Prompts returns the full pool for a tier.
func (b *Bank) Prompts(d model.Difficulty) []string {
	return b.pools[d]
}

// validate checks that every tier has at least one prompt and a positive
// time limit.
func (b *Bank) validate() error {
	for _, d := range []model.Difficulty{model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard} {
		if len(b.pools[d]) == 0 {
			return fmt.Errorf("difficulty %q has no prompts", d)
		}
		if b.limits[d] <= 0 {
			return fmt.Errorf("difficulty %q has non-positive time limit %d", d, b.limits[d])
		}
	}
	return nil
}
