package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, debug bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetDebugMode(debug)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetDebugMode(false)
	})
	return &buf
}

func TestDebug_OnlyInDebugMode(t *testing.T) {
	buf := captureOutput(t, false)
	Debug("hidden %d", 1)
	DebugTokenUsage(1, 2, 3)
	assert.Empty(t, buf.String())

	SetDebugMode(true)
	Debug("shown %d", 2)
	DebugTokenUsage(10, 5, 15)
	assert.Contains(t, buf.String(), "[DEBUG] shown 2")
	assert.Contains(t, buf.String(), "prompt=10, completion=5, total=15")
}

func TestDebugConfig_UsesJSONTags(t *testing.T) {
	buf := captureOutput(t, true)

	DebugConfig("Model", struct {
		Name   string `json:"name"`
		Secret string `json:"-"`
	}{Name: "deepseek", Secret: "sk-123"})

	assert.Contains(t, buf.String(), `"name": "deepseek"`)
	assert.NotContains(t, buf.String(), "sk-123")
}

func TestDebugPrompt_Truncates(t *testing.T) {
	buf := captureOutput(t, true)

	long := bytes.Repeat([]byte("x"), 3000)
	DebugPrompt("user", string(long))

	assert.Contains(t, buf.String(), "Prompt (user, 3000 bytes)")
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), string(long))
}

func TestInfoWarnError(t *testing.T) {
	buf := captureOutput(t, false)

	Info("hello %s", "world")
	Warn("careful")
	Error("broken")

	out := buf.String()
	assert.Contains(t, out, "hello world\n")
	assert.Contains(t, out, "Warning: careful")
	assert.Contains(t, out, "Error: broken")
}
