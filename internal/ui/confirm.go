package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// DefaultCommitPrompt is shown before the single confirmation read
const DefaultCommitPrompt = "\n❓ Create this commit? [Y/n]: "

// IsAffirmative reports whether a typed answer accepts the default-yes prompt.
// Empty input, "y" and "yes" accept (trimmed, case-insensitive); anything else declines.
func IsAffirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}

// ConfirmOnce prints the prompt and reads exactly one line.
// It blocks until a line is entered; there is no timeout.
// Input that ends before anything is typed counts as a decline.
func ConfirmOnce(prompt string, input io.Reader, output io.Writer) (bool, error) {
	if _, err := fmt.Fprint(output, prompt); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, err
		}
		if line == "" {
			_, _ = fmt.Fprintln(output)
			return false, nil
		}
	}

	return IsAffirmative(line), nil
}

// ConsoleConfirmer asks on the interactive console
type ConsoleConfirmer struct {
	Prompt string
	Input  io.Reader
	Output io.Writer
}

// NewConsoleConfirmer creates a ConsoleConfirmer using the default commit prompt
func NewConsoleConfirmer(input io.Reader, output io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{
		Prompt: DefaultCommitPrompt,
		Input:  input,
		Output: output,
	}
}

// Confirm performs the blocking console read
func (c *ConsoleConfirmer) Confirm() (bool, error) {
	return ConfirmOnce(c.Prompt, c.Input, c.Output)
}

// AutoConfirmer accepts without asking
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm() (bool, error) {
	return true, nil
}

// ShowCommitMessage displays a formatted commit message
func ShowCommitMessage(subject, body string, output io.Writer) error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)

	if _, err := bold.Fprintln(output, "\n📝 Generated commit message:"); err != nil {
		return err
	}

	if _, err := cyan.Fprintln(output, "─────────────────────────────"); err != nil {
		return err
	}

	if _, err := bold.Fprintln(output, subject); err != nil {
		return err
	}

	if body != "" {
		if _, err := fmt.Fprintf(output, "\n%s\n", body); err != nil {
			return err
		}
	}

	_, err := cyan.Fprintln(output, "─────────────────────────────")
	return err
}
