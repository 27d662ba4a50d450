package dashboard

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/crispai/interview-assistant/internal/model"
)

// LoadFixtures reads seed candidate records from a YAML file. The file holds
// a list of records in the CandidateRecord shape.
func LoadFixtures(path string) ([]model.CandidateRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures file: %w", err)
	}

	var records []model.CandidateRecord
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse fixtures file: %w", err)
	}
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("fixtures: record %d has no id", i)
		}
		if r.Status != model.StatusCompleted && r.Status != model.StatusInProgress {
			return nil, fmt.Errorf("fixtures: record %q has unknown status %q", r.ID, r.Status)
		}
	}
	return records, nil
}

// Default returns the built-in seed records used when no fixtures file is
// configured. They give the dashboard something to show before any live
// interview has finished.
func Default() []model.CandidateRecord {
	return []model.CandidateRecord{
		{
			ID: "candidate-1",
			Profile: model.CandidateProfile{
				Name:  "Sarah Chen",
				Email: "sarah.chen@email.com",
				Phone: "+1-234-567-8901",
			},
			Status:     model.StatusCompleted,
			FinalScore: intPtr(85),
			Summary:    "Strong candidate with excellent React and Node.js knowledge. Demonstrated good problem-solving skills and clean coding practices.",
			Interview: model.InterviewData{
				StartTime: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
				EndTime:   timePtr(time.Date(2024, 1, 15, 10, 12, 30, 0, time.UTC)),
				Questions: []model.Question{
					fixtureQuestion("q1", model.DifficultyEasy, "What is the difference between let, const, and var in JavaScript?",
						"let and const are block-scoped while var is function-scoped. const cannot be reassigned after declaration.", 18, 9),
					fixtureQuestion("q2", model.DifficultyEasy, "Explain the concept of React components.",
						"React components are reusable pieces of UI that can be functional or class-based. They take props as input and return JSX.", 19, 8),
					fixtureQuestion("q3", model.DifficultyMedium, "How does React hooks work? Explain useState and useEffect.",
						"useState manages component state, useEffect handles side effects. They allow functional components to have state and lifecycle methods.", 45, 8),
					fixtureQuestion("q4", model.DifficultyMedium, "What is middleware in Express.js and how do you implement it?",
						"Middleware functions execute during request-response cycle. They can modify req/res objects or end the cycle.", 52, 7),
					fixtureQuestion("q5", model.DifficultyHard, "Design a system for real-time chat application. What technologies would you use?",
						"I would use WebSocket for real-time communication, Redis for message caching, and MongoDB for persistence. Load balancing with Socket.IO.", 110, 9),
					fixtureQuestion("q6", model.DifficultyHard, "Explain database indexing and when you would use different types of indexes.",
						"Indexes speed up queries but slow down writes. B-tree for range queries, hash for equality, compound indexes for multiple fields.", 95, 8),
				},
			},
		},
		{
			ID: "candidate-2",
			Profile: model.CandidateProfile{
				Name:  "Alex Rodriguez",
				Email: "alex.r@email.com",
				Phone: "+1-555-123-4567",
			},
			Status:     model.StatusCompleted,
			FinalScore: intPtr(72),
			Summary:    "Good understanding of fundamentals but needs improvement in advanced concepts. Shows potential for growth.",
			Interview: model.InterviewData{
				StartTime: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
				EndTime:   timePtr(time.Date(2024, 1, 15, 14, 11, 45, 0, time.UTC)),
				Questions: []model.Question{
					fixtureQuestion("q1", model.DifficultyEasy, "What is the difference between let, const, and var in JavaScript?",
						"var is older, let and const are newer. const is for constants.", 15, 6),
					fixtureQuestion("q2", model.DifficultyEasy, "Explain the concept of React components.",
						"Components are like building blocks in React. You can reuse them.", 12, 7),
					fixtureQuestion("q3", model.DifficultyMedium, "How does React hooks work? Explain useState and useEffect.",
						"useState is for state management, useEffect is for side effects like API calls.", 35, 7),
					fixtureQuestion("q4", model.DifficultyMedium, "What is middleware in Express.js and how do you implement it?",
						"Middleware runs between requests. You use app.use() to implement it.", 40, 6),
					fixtureQuestion("q5", model.DifficultyHard, "Design a system for real-time chat application. What technologies would you use?",
						"I would use Socket.IO for real-time features and maybe MongoDB for storing messages.", 85, 6),
					fixtureQuestion("q6", model.DifficultyHard, "Explain database indexing and when you would use different types of indexes.",
						"Indexes make queries faster. You use them on columns you search frequently.", 60, 5),
				},
			},
		},
		{
			ID: "candidate-3",
			Profile: model.CandidateProfile{
				Name:  "Maya Patel",
				Email: "maya.patel@email.com",
				Phone: "+1-987-654-3210",
			},
			Status: model.StatusInProgress,
			Interview: model.InterviewData{
				StartTime: time.Now().UTC(),
				Questions: []model.Question{
					fixtureQuestion("q1", model.DifficultyEasy, "What is the difference between let, const, and var in JavaScript?",
						"let and const are block-scoped, var is function-scoped. const creates immutable bindings.", 16, 9),
					fixtureQuestion("q2", model.DifficultyEasy, "Explain the concept of React components.",
						"Components are independent, reusable pieces of UI. They can be functional or class-based.", 18, 9),
					fixtureQuestion("q3", model.DifficultyMedium, "How does React hooks work? Explain useState and useEffect.",
						"Hooks let you use state and lifecycle features in functional components. useState manages local state.", 50, 8),
				},
			},
		},
	}
}

func fixtureQuestion(id string, d model.Difficulty, prompt, answer string, timeUsed, score int) model.Question {
	return model.Question{
		ID:         id,
		Difficulty: d,
		Prompt:     prompt,
		TimeLimit:  defaultLimit(d),
		Answer:     answer,
		TimeUsed:   intPtr(timeUsed),
		Score:      intPtr(score),
	}
}

func defaultLimit(d model.Difficulty) int {
	switch d {
	case model.DifficultyEasy:
		return 20
	case model.DifficultyMedium:
		return 60
	default:
		return 120
	}
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }
