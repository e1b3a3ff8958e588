package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	debugMode           = false
	output    io.Writer = os.Stderr
)

// SetDebugMode enables or disables debug mode
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// IsDebugMode returns whether debug mode is enabled
func IsDebugMode() bool {
	return debugMode
}

// SetOutput sets the output writer for log messages
func SetOutput(w io.Writer) {
	output = w
}

// Debug prints debug messages (only in debug mode)
func Debug(format string, args ...interface{}) {
	if debugMode {
		gray := color.New(color.FgHiBlack)
		gray.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// DebugConfig prints configuration details in debug mode.
// Secrets must be excluded by the value's json tags.
func DebugConfig(label string, config interface{}) {
	if debugMode {
		gray := color.New(color.FgHiBlack)
		data, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			gray.Fprintf(output, "[DEBUG] %s: (failed to serialize: %v)\n", label, err)
			return
		}
		gray.Fprintf(output, "[DEBUG] %s:\n%s\n", label, string(data))
	}
}

// DebugPrompt logs a message sent to the model, truncated to keep large diffs readable
func DebugPrompt(role, content string) {
	if debugMode {
		cyan := color.New(color.FgCyan)
		cyan.Fprintf(output, "[DEBUG] Prompt (%s, %d bytes):\n", role, len(content))
		fmt.Fprintf(output, "%s\n", truncate(content, 2000))
	}
}

// DebugReply logs the raw model reply in debug mode
func DebugReply(content string) {
	if debugMode {
		green := color.New(color.FgGreen)
		green.Fprintf(output, "[DEBUG] Reply:\n")
		fmt.Fprintf(output, "%s\n", content)
	}
}

// DebugTokenUsage logs token usage in debug mode
func DebugTokenUsage(promptTokens, completionTokens, totalTokens int) {
	if debugMode {
		magenta := color.New(color.FgMagenta)
		magenta.Fprintf(output, "[DEBUG] Token Usage: prompt=%d, completion=%d, total=%d\n",
			promptTokens, completionTokens, totalTokens)
	}
}

// DebugDuration logs execution duration in debug mode
func DebugDuration(operation string, duration time.Duration) {
	if debugMode {
		blue := color.New(color.FgBlue)
		blue.Fprintf(output, "[DEBUG] %s took %v\n", operation, duration)
	}
}

// Info prints informational messages
func Info(format string, args ...interface{}) {
	fmt.Fprintf(output, format+"\n", args...)
}

// Error prints error messages
func Error(format string, args ...interface{}) {
	red := color.New(color.FgRed)
	red.Fprintf(output, "Error: "+format+"\n", args...)
}

// Warn prints warning messages
func Warn(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(output, "Warning: "+format+"\n", args...)
}

// truncate truncates a string to the specified length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
