package tui

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/crispai/interview-assistant/internal/dashboard"
)

// runInterviewer is the dashboard sub-loop: a filtered, sorted candidate
// listing with a per-candidate detail view.
func (a *App) runInterviewer(ctx context.Context) {
	filter := ""
	key := dashboard.SortByScore

	for {
		a.printDashboard(filter, key)
		line, err := a.readLine(ctx, "dashboard > ")
		if err != nil {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: search <text>, clear, sort score|name|status, view <id>, back")

		case "search":
			filter = strings.Join(args, " ")

		case "clear":
			filter = ""

		case "sort":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: sort score|name|status")
				continue
			}
			switch dashboard.SortKey(args[0]) {
			case dashboard.SortByScore, dashboard.SortByName, dashboard.SortByStatus:
				key = dashboard.SortKey(args[0])
			default:
				fmt.Fprintln(a.out, "Unknown sort key:", args[0])
			}

		case "view":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: view <id>")
				continue
			}
			a.printRecord(args[0])

		case "back", "exit":
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printDashboard(filter string, key dashboard.SortKey) {
	stats := a.board.Stats()
	fmt.Fprintf(a.out, "\n--- Candidates: %d total, %d completed, %d in progress, average %d/100 ---\n",
		stats.Total, stats.Completed, stats.InProgress, stats.AverageScore)
	if filter != "" {
		fmt.Fprintf(a.out, "filter: %q, sort: %s\n", filter, key)
	}

	records := a.board.List(filter, key)
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No candidates match.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS\tSCORE")
	for _, r := range records {
		score := "-"
		if r.FinalScore != nil {
			score = fmt.Sprintf("%d", *r.FinalScore)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Profile.Name, r.Profile.Email, r.Status, score)
	}
	w.Flush()
}

func (a *App) printRecord(id string) {
	r, ok := a.board.Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No candidate with id:", id)
		return
	}

	fmt.Fprintf(a.out, "\n%s <%s> %s\n", r.Profile.Name, r.Profile.Email, r.Profile.Phone)
	fmt.Fprintf(a.out, "status: %s, duration: %s\n", r.Status, dashboard.FormatDuration(r.Interview.StartTime, r.Interview.EndTime))
	if r.FinalScore != nil {
		fmt.Fprintf(a.out, "final score: %d/100\n", *r.FinalScore)
	}
	if r.Summary != "" {
		fmt.Fprintln(a.out, "summary:", r.Summary)
	}

	for i, q := range r.Interview.Questions {
		fmt.Fprintf(a.out, "\nQ%d [%s] %s\n", i+1, q.Difficulty, q.Prompt)
		if q.Answer != "" {
			fmt.Fprintln(a.out, "  answer:", q.Answer)
		}
		if q.Answered() {
			fmt.Fprintf(a.out, "  score: %d/10, time: %ds of %ds\n", *q.Score, *q.TimeUsed, q.TimeLimit)
		}
	}
}
