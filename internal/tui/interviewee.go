package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/crispai/interview-assistant/internal/model"
	"github.com/crispai/interview-assistant/internal/session"
)

// runInterviewee drives the candidate flow from whatever phase the session
// is currently in. Re-entering the flow after leaving it resumes where the
// candidate left off.
func (a *App) runInterviewee(ctx context.Context) {
	for {
		snap := a.ctrl.Snapshot()
		var done bool
		switch snap.Phase {
		case model.PhaseUpload:
			done = a.stepUpload(ctx)
		case model.PhaseInfoCollection:
			done = a.stepProfile(ctx, snap)
		case model.PhaseInProgress:
			done = a.stepQuestions(ctx)
		case model.PhaseCompleted:
			a.showCompleted(snap)
			done = !a.askRestart(ctx)
		}
		if done {
			return
		}
	}
}

// stepUpload asks for a resume file and waits for the simulated parse to
// move the session forward. Returns true when the user backs out.
func (a *App) stepUpload(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n--- Resume upload ---")
	fmt.Fprintln(a.out, "Provide a PDF or DOCX resume ('back' to return to the menu).")

	for {
		path, err := a.readLine(ctx, "resume path > ")
		if err != nil {
			return true
		}
		path = strings.TrimSpace(path)
		switch path {
		case "":
			continue
		case "back":
			return true
		}

		if err := a.ctrl.SubmitResume(path); err != nil {
			continue // already toasted by the sink
		}

		fmt.Fprintln(a.out, "Analyzing resume...")
		a.drainUpdates()
		for {
			select {
			case <-ctx.Done():
				return true
			case s := <-a.updates:
				if s.Phase != model.PhaseUpload {
					return false
				}
			}
		}
	}
}

// stepProfile collects the missing candidate fields, prefilled with
// whatever the resume parse extracted.
func (a *App) stepProfile(ctx context.Context, snap model.InterviewSession) bool {
	fmt.Fprintln(a.out, "\n--- Candidate details ---")
	fmt.Fprintln(a.out, "Confirm or fill in your contact information.")

	profile := snap.Profile
	for {
		var err error
		if profile.Name, err = a.promptText(ctx, "Name", profile.Name); err != nil {
			return true
		}
		if profile.Email, err = a.promptText(ctx, "Email", profile.Email); err != nil {
			return true
		}
		if profile.Phone, err = a.promptText(ctx, "Phone", profile.Phone); err != nil {
			return true
		}

		// On validation failure the sink has already shown which fields
		// are missing; re-run the form keeping what the user typed.
		if err := a.ctrl.Dispatch(session.ProfileSubmitted{Profile: profile}); err == nil {
			return false
		}
	}
}

// stepQuestions runs the timed question loop. Typed lines accumulate into
// the answer draft; an empty line submits, "/pause" toggles the countdown
// and "/quit" leaves the flow with the interview still running.
func (a *App) stepQuestions(ctx context.Context) bool {
	snap := a.ctrl.Snapshot()
	a.printQuestion(snap)

	shown := snap.CurrentIndex
	var draft []string

	for {
		select {
		case <-ctx.Done():
			return true

		case s := <-a.updates:
			switch {
			case s.Phase == model.PhaseCompleted:
				a.clearCountdown()
				return false
			case s.Phase != model.PhaseInProgress:
				return false
			case s.CurrentIndex != shown:
				shown = s.CurrentIndex
				draft = draft[:0]
				a.clearCountdown()
				a.printQuestion(s)
			default:
				a.printCountdown(s)
			}

		case line, ok := <-a.lines:
			if !ok {
				return true
			}
			switch strings.TrimSpace(line) {
			case "/pause":
				_ = a.ctrl.Dispatch(session.PauseToggled{})
			case "/quit":
				return true
			case "":
				if err := a.ctrl.Dispatch(session.AnswerSubmitted{}); err == nil {
					draft = draft[:0]
				}
			default:
				draft = append(draft, line)
				_ = a.ctrl.Dispatch(session.DraftUpdated{Text: strings.Join(draft, "\n")})
			}
		}
	}
}

func (a *App) printQuestion(s model.InterviewSession) {
	q := s.CurrentQuestion()
	if q == nil {
		return
	}
	fmt.Fprintf(a.out, "\n--- Question %d of %d [%s, %ds] ---\n", s.CurrentIndex+1, len(s.Questions), q.Difficulty, q.TimeLimit)
	fmt.Fprintln(a.out, q.Prompt)
	fmt.Fprintln(a.out, "(type your answer, empty line to submit, '/pause' to pause, '/quit' to leave)")
}

// printCountdown redraws the remaining time in place when stdout is a
// terminal, and stays quiet otherwise so piped output is not flooded with
// one line per second.
func (a *App) printCountdown(s model.InterviewSession) {
	if !a.interactive() {
		return
	}
	state := ""
	if s.Paused {
		state = " (paused)"
	}
	fmt.Fprintf(a.out, "\r%3ds remaining%s ", s.TimeRemaining, state)
}

func (a *App) clearCountdown() {
	if a.interactive() {
		fmt.Fprint(a.out, "\r\033[K")
	}
}

func (a *App) interactive() bool {
	f, ok := a.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (a *App) showCompleted(s model.InterviewSession) {
	fmt.Fprintln(a.out, "\n--- Interview complete ---")
	if s.FinalScore != nil {
		fmt.Fprintf(a.out, "Final score: %d/100\n", *s.FinalScore)
	}
	for i, q := range s.Questions {
		score, used := 0, 0
		if q.Score != nil {
			score = *q.Score
		}
		if q.TimeUsed != nil {
			used = *q.TimeUsed
		}
		fmt.Fprintf(a.out, "  Q%d [%s] %d/10 in %ds\n", i+1, q.Difficulty, score, used)
	}
}

// askRestart offers a fresh run after a finished interview.
func (a *App) askRestart(ctx context.Context) bool {
	line, err := a.readLine(ctx, "Start a new interview? [y/N] > ")
	if err != nil {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(line), "y") {
		a.ctrl.Reset()
		a.drainUpdates()
		return true
	}
	return false
}
