package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/crispai/interview-assistant/internal/config"
	"github.com/crispai/interview-assistant/internal/dashboard"
	"github.com/crispai/interview-assistant/internal/intake"
	"github.com/crispai/interview-assistant/internal/logger"
	"github.com/crispai/interview-assistant/internal/model"
	"github.com/crispai/interview-assistant/internal/notify"
	"github.com/crispai/interview-assistant/internal/questionbank"
	"github.com/crispai/interview-assistant/internal/session"
	"github.com/crispai/interview-assistant/internal/tui"
	"github.com/crispai/interview-assistant/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("log_level", cfg.LogLevel).
		Dur("tick_interval", cfg.TickInterval).
		Msg("Starting Interview Assistant")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Load Question Bank ────────────────────────────────────────────
	bank := questionbank.Default()
	if cfg.QuestionBankPath != "" {
		loaded, err := questionbank.LoadFile(cfg.QuestionBankPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.QuestionBankPath).Msg("Failed to load question bank")
		}
		bank = loaded
	}

	// ─── Seed RNG ──────────────────────────────────────────────────────
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// ─── Load Dashboard Fixtures ───────────────────────────────────────
	records := dashboard.Default()
	if cfg.FixturesPath != "" {
		loaded, err := dashboard.LoadFixtures(cfg.FixturesPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.FixturesPath).Msg("Failed to load dashboard fixtures")
		}
		records = loaded
	}
	board := dashboard.NewService(records)

	// ─── Wire Session Engine ───────────────────────────────────────────
	parser := intake.NewParser(cfg.ResumeParseDelay, cfg.MaxResumeBytes, log)
	machine := session.NewMachine(bank, rng)

	app := tui.NewApp(board, os.Stdin, os.Stdout, log)
	sink := notify.Multi{notify.NewLogSink(log), app.Sink()}

	// Finished interviews land on the dashboard next to the fixtures.
	observer := func(s model.InterviewSession) {
		if s.Phase == model.PhaseCompleted {
			board.Append(dashboard.RecordFromSession(s))
		}
		app.Observe(s)
	}

	ctrl := session.NewController(machine, parser, sink, log,
		session.WithTickInterval(cfg.TickInterval),
		session.WithObserver(observer),
	)
	defer ctrl.Close()
	app.SetController(ctrl)

	// ─── Run Terminal UI ───────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Terminal UI error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
