package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// errInputClosed reports that stdin was closed or the context ended while
// waiting for the user.
var errInputClosed = fmt.Errorf("input closed")

// readInput is the single stdin reader. All prompts consume from the lines
// channel, so the question loop can select between user input and session
// updates without a second reader racing on the same stream.
func (a *App) readInput(ctx context.Context) {
	defer close(a.lines)

	reader := bufio.NewReader(a.in)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil {
			if err == io.EOF && line != "" {
				select {
				case a.lines <- line:
				case <-ctx.Done():
				}
			}
			return
		}
		select {
		case a.lines <- line:
		case <-ctx.Done():
			return
		}
	}
}

// readLine prints a prompt and waits for one line of input.
func (a *App) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	select {
	case line, ok := <-a.lines:
		if !ok {
			return "", errInputClosed
		}
		return line, nil
	case <-ctx.Done():
		return "", errInputClosed
	}
}

// promptText asks for a value with an optional preset shown in brackets.
// An empty reply keeps the preset.
func (a *App) promptText(ctx context.Context, label, preset string) (string, error) {
	prompt := label + ": "
	if preset != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, preset)
	}
	line, err := a.readLine(ctx, prompt)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return preset, nil
	}
	return line, nil
}
