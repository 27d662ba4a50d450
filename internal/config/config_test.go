package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LOG_LEVEL", "LOG_FORMAT",
		"TICK_INTERVAL_MS", "RESUME_PARSE_DELAY_MS", "MAX_RESUME_SIZE_MB",
		"QUESTION_BANK_PATH", "FIXTURES_PATH", "RANDOM_SEED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 1500*time.Millisecond, cfg.ResumeParseDelay)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxResumeBytes)
	assert.Empty(t, cfg.QuestionBankPath)
	assert.Empty(t, cfg.FixturesPath)
	assert.Zero(t, cfg.RandomSeed)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TICK_INTERVAL_MS", "50")
	t.Setenv("MAX_RESUME_SIZE_MB", "1")
	t.Setenv("RANDOM_SEED", "42")

	cfg := Load()

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, int64(1024*1024), cfg.MaxResumeBytes)
	assert.Equal(t, int64(42), cfg.RandomSeed)
}

func TestLoadIgnoresMalformedInts(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICK_INTERVAL_MS", "soon")

	cfg := Load()
	assert.Equal(t, time.Second, cfg.TickInterval)
}
