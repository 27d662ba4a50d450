package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel  string
	LogFormat string

	// TickInterval is the countdown cadence. One second in production;
	// tests shrink it to drive the timer quickly.
	TickInterval time.Duration

	// ResumeParseDelay simulates the latency of the resume parsing
	// collaborator before it yields a partial profile.
	ResumeParseDelay time.Duration

	// MaxResumeBytes caps accepted resume file size.
	MaxResumeBytes int64

	// QuestionBankPath optionally points at a YAML prompt pool file.
	// Empty means the built-in pools are used.
	QuestionBankPath string

	// FixturesPath optionally points at a YAML candidate fixture file for
	// the interviewer dashboard. Empty means the built-in fixture set.
	FixturesPath string

	// RandomSeed seeds the scoring/question RNG. Zero means time-seeded.
	RandomSeed int64
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "pretty"),
		TickInterval:     time.Duration(getEnvInt("TICK_INTERVAL_MS", 1000)) * time.Millisecond,
		ResumeParseDelay: time.Duration(getEnvInt("RESUME_PARSE_DELAY_MS", 1500)) * time.Millisecond,
		MaxResumeBytes:   int64(getEnvInt("MAX_RESUME_SIZE_MB", 10)) * 1024 * 1024,
		QuestionBankPath: getEnv("QUESTION_BANK_PATH", ""),
		FixturesPath:     getEnv("FIXTURES_PATH", ""),
		RandomSeed:       int64(getEnvInt("RANDOM_SEED", 0)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
