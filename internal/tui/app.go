// Package tui is the terminal front end of the interview assistant. It
// drives the candidate flow and the interviewer dashboard over a simple
// read-eval-print loop.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/crispai/interview-assistant/internal/dashboard"
	"github.com/crispai/interview-assistant/internal/model"
	"github.com/crispai/interview-assistant/internal/notify"
	"github.com/crispai/interview-assistant/internal/session"
)

// App wires the session controller and the dashboard read model to the
// terminal. Session updates arrive on a buffered channel so the controller
// never blocks on a slow screen.
type App struct {
	ctrl  *session.Controller
	board *dashboard.Service
	in    io.Reader
	out   io.Writer
	log   zerolog.Logger

	updates chan model.InterviewSession
	lines   chan string
}

// NewApp creates an App reading from in and writing to out. The session
// controller is attached afterwards with SetController: the app's sink and
// observer are part of the controller's wiring, so the app must exist first.
func NewApp(board *dashboard.Service, in io.Reader, out io.Writer, log zerolog.Logger) *App {
	return &App{
		board:   board,
		in:      in,
		out:     out,
		log:     log.With().Str("component", "tui").Logger(),
		updates: make(chan model.InterviewSession, 16),
		lines:   make(chan string),
	}
}

// SetController attaches the session controller. Must be called before Run.
func (a *App) SetController(ctrl *session.Controller) {
	a.ctrl = ctrl
}

// Observe receives session snapshots from the controller. The send never
// blocks; when the screen lags behind, older snapshots are dropped in favor
// of newer ones.
func (a *App) Observe(s model.InterviewSession) {
	for {
		select {
		case a.updates <- s:
			return
		default:
		}
		select {
		case <-a.updates:
		default:
		}
	}
}

// Sink returns a notification sink that renders toasts inline.
func (a *App) Sink() notify.Sink {
	return notify.Func(func(n notify.Notification) {
		fmt.Fprintf(a.out, "\n[%s] %s %s\n", strings.ToUpper(string(n.Severity)), n.Title, n.Description)
	})
}

// Run starts the root command loop. It returns when the user exits, stdin
// is closed, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	go a.readInput(ctx)

	fmt.Fprintln(a.out, "AI Interview Assistant (type 'help' for commands)")
	for {
		line, err := a.readLine(ctx, "interview > ")
		if err != nil {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue

		case "help":
			fmt.Fprintln(a.out, "Available commands: candidate, dashboard, exit")

		case "candidate", "interviewee":
			a.runInterviewee(ctx)

		case "dashboard", "interviewer":
			a.runInterviewer(ctx)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return nil

		default:
			fmt.Fprintln(a.out, "Unknown command:", strings.TrimSpace(line))
		}
	}
}

func (a *App) drainUpdates() {
	for {
		select {
		case <-a.updates:
		default:
			return
		}
	}
}
