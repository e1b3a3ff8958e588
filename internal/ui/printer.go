package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// ExecutionStats holds statistics about a model call
type ExecutionStats struct {
	StartTime        time.Time
	EndTime          time.Time
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Duration returns the execution duration
func (s *ExecutionStats) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// PrinterOption is a functional option for Printer
type PrinterOption func(*Printer)

// WithColor enables or disables color output
func WithColor(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.colorEnabled = enabled
	}
}

// WithSpinner enables the animated indicator for long waits.
// Only enable it when the writer is a terminal.
func WithSpinner(enabled bool) PrinterOption {
	return func(p *Printer) {
		p.spinnerEnabled = enabled
	}
}

// Printer writes workflow progress to the terminal
type Printer struct {
	writer         io.Writer
	colorEnabled   bool
	spinnerEnabled bool
}

// NewPrinter creates a new Printer
func NewPrinter(writer io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		writer:       writer,
		colorEnabled: true,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.writer
}

func (p *Printer) printf(attr color.Attribute, format string, args ...interface{}) error {
	if p.colorEnabled {
		_, err := color.New(attr).Fprintf(p.writer, format, args...)
		return err
	}
	_, err := fmt.Fprintf(p.writer, format, args...)
	return err
}

// PrintStep prints one stage of the workflow with its icon
func (p *Printer) PrintStep(icon, message string) error {
	return p.printf(color.FgBlue, "%s %s\n", icon, message)
}

// PrintInfo prints an info message
func (p *Printer) PrintInfo(message string) error {
	return p.printf(color.FgCyan, "ℹ️  %s\n", message)
}

// PrintSuccess prints a success message
func (p *Printer) PrintSuccess(message string) error {
	return p.printf(color.FgGreen, "✅ %s\n", message)
}

// PrintWarning prints a warning message
func (p *Printer) PrintWarning(message string) error {
	return p.printf(color.FgYellow, "⚠️  %s\n", message)
}

// PrintCancelled prints a message for a run the user declined
func (p *Printer) PrintCancelled(message string) error {
	return p.printf(color.FgYellow, "❌ %s\n", message)
}

// PrintError prints an error message
func (p *Printer) PrintError(message string) error {
	return p.printf(color.FgRed, "❌ Error: %s\n", message)
}

// PrintHint prints advice attached to an error
func (p *Printer) PrintHint(message string) error {
	return p.printf(color.FgHiBlack, "💡 %s\n", message)
}

// PrintStats prints model call statistics
func (p *Printer) PrintStats(stats *ExecutionStats) error {
	if stats == nil {
		return nil
	}

	if stats.TotalTokens == 0 {
		return p.printf(color.FgHiBlack, "📊 Time: %s\n", formatDuration(stats.Duration()))
	}
	return p.printf(color.FgHiBlack, "📊 Stats: %d tokens (prompt: %d, completion: %d) | Time: %s\n",
		stats.TotalTokens, stats.PromptTokens, stats.CompletionTokens, formatDuration(stats.Duration()))
}

// StartSpinner shows message while a blocking call runs and returns the function that stops it.
// Without a spinner the message is printed once as a step.
func (p *Printer) StartSpinner(icon, message string) (stop func()) {
	if !p.spinnerEnabled {
		_ = p.PrintStep(icon, message)
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Writer = p.writer
	s.Prefix = icon + " "
	s.Suffix = " " + message
	s.FinalMSG = fmt.Sprintf("%s %s\n", icon, message)
	s.Start()

	return s.Stop
}

// formatDuration formats a duration in a human-readable format
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
