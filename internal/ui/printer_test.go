package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrinter(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)
	require.NotNil(t, printer)
	assert.Same(t, &buf, printer.Writer())
}

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name  string
		print func(p *Printer) error
		want  string
	}{
		{name: "step", print: func(p *Printer) error { return p.PrintStep("📊", "Reading staged changes...") }, want: "📊 Reading staged changes...\n"},
		{name: "info", print: func(p *Printer) error { return p.PrintInfo("hello") }, want: "ℹ️  hello\n"},
		{name: "success", print: func(p *Printer) error { return p.PrintSuccess("done") }, want: "✅ done\n"},
		{name: "warning", print: func(p *Printer) error { return p.PrintWarning("careful") }, want: "⚠️  careful\n"},
		{name: "cancelled", print: func(p *Printer) error { return p.PrintCancelled("Commit cancelled by user") }, want: "❌ Commit cancelled by user\n"},
		{name: "error", print: func(p *Printer) error { return p.PrintError("boom") }, want: "❌ Error: boom\n"},
		{name: "hint", print: func(p *Printer) error { return p.PrintHint("try again") }, want: "💡 try again\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printer := NewPrinter(&buf, WithColor(false))

			require.NoError(t, tt.print(printer))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_PrintStats(t *testing.T) {
	start := time.Now()

	t.Run("with tokens", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, WithColor(false))

		err := printer.PrintStats(&ExecutionStats{
			StartTime:        start,
			EndTime:          start.Add(1500 * time.Millisecond),
			PromptTokens:     120,
			CompletionTokens: 30,
			TotalTokens:      150,
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "150 tokens")
		assert.Contains(t, buf.String(), "1.50s")
	})

	t.Run("without usage", func(t *testing.T) {
		var buf bytes.Buffer
		printer := NewPrinter(&buf, WithColor(false))

		err := printer.PrintStats(&ExecutionStats{StartTime: start, EndTime: start.Add(250 * time.Millisecond)})
		require.NoError(t, err)
		assert.Equal(t, "📊 Time: 250ms\n", buf.String())
	})

	t.Run("nil stats", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewPrinter(&buf).PrintStats(nil))
		assert.Empty(t, buf.String())
	})
}

func TestPrinter_StartSpinnerDisabled(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, WithColor(false))

	stop := printer.StartSpinner("🤖", "Generating commit message with AI...")
	stop()

	assert.Equal(t, "🤖 Generating commit message with AI...\n", buf.String())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ms", formatDuration(500*time.Millisecond))
	assert.Equal(t, "2.00s", formatDuration(2*time.Second))
}
