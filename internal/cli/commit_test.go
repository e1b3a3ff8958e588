package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huimingz/aicommit/internal/commitmsg"
	"github.com/huimingz/aicommit/internal/config"
	"github.com/huimingz/aicommit/internal/ui"
	"github.com/huimingz/aicommit/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name                  string
		auto, generate, stage bool
		want                  mode
	}{
		{"no flags defaults to auto", false, false, false, modeAuto},
		{"auto only", true, false, false, modeAuto},
		{"generate only", false, true, false, modeGenerate},
		{"stage only", false, false, true, modeStage},
		{"auto wins over generate", true, true, false, modeAuto},
		{"auto wins over stage", true, false, true, modeAuto},
		{"generate wins over stage", false, true, true, modeGenerate},
		{"all flags", true, true, true, modeAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectMode(tt.auto, tt.generate, tt.stage))
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "auto", modeAuto.String())
	assert.Equal(t, "generate", modeGenerate.String())
	assert.Equal(t, "stage", modeStage.String())
}

func TestRootCmd_Flags(t *testing.T) {
	for name, short := range map[string]string{
		"auto":     "a",
		"generate": "g",
		"stage":    "s",
		"yes":      "y",
	} {
		flag := rootCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "flag --%s should exist", name)
		assert.Equal(t, short, flag.Shorthand)
		assert.Equal(t, "false", flag.DefValue)
	}

	assert.NotNil(t, rootCmd.Flags().Lookup("verbosity"))
	assert.NotNil(t, rootCmd.Flags().Lookup("language"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))

	model := rootCmd.PersistentFlags().Lookup("model")
	require.NotNil(t, model)
	assert.Equal(t, "m", model.Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["init"])
	assert.True(t, names["models"])
	assert.True(t, names["version"])
}

func TestWriteConfigTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)

	require.NoError(t, writeConfigTemplate(path, false))

	cfg, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "deepseek", cfg.DefaultModel)
	assert.Equal(t, config.VerbosityNormal, cfg.Verbosity)
	assert.Equal(t, "main", cfg.GetDefaultBranch())
	assert.Equal(t, "origin", cfg.GetRemote())
	assert.Equal(t, "en", cfg.Language)
	require.Contains(t, cfg.Models, "deepseek")
	assert.Equal(t, "deepseek-chat", cfg.Models["deepseek"].Model)
}

func TestWriteConfigTemplate_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("custom: true\n"), 0600))

	err := writeConfigTemplate(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom: true\n", string(data))

	require.NoError(t, writeConfigTemplate(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfigTemplate, string(data))
}

func TestPrintModels(t *testing.T) {
	cfg := &config.Config{
		DefaultModel: "local",
		Models: map[string]config.ModelConfig{
			"remote": {Provider: "openai", Model: "gpt-4o-mini"},
			"local":  {Provider: "ollama", Model: "llama3.2", BaseURL: "http://localhost:11434/v1"},
		},
	}

	var buf bytes.Buffer
	printModels(&buf, cfg)
	out := buf.String()

	assert.Contains(t, out, "✓ local (default)")
	assert.Contains(t, out, "    remote")
	assert.Contains(t, out, "Base URL: http://localhost:11434/v1")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("local")), bytes.Index(buf.Bytes(), []byte("remote")))
}

func TestPrintModels_Empty(t *testing.T) {
	var buf bytes.Buffer
	printModels(&buf, &config.Config{})
	assert.Contains(t, buf.String(), "No models configured.")
	assert.Contains(t, buf.String(), "aicommit init")
}

// recordingGit is an in-memory git.Executor that records the calls it receives
type recordingGit struct {
	calls []string
}

func (g *recordingGit) Add(ctx context.Context, paths []string) error {
	g.calls = append(g.calls, "add "+strings.Join(paths, " "))
	return nil
}

func (g *recordingGit) HasStagedChanges(ctx context.Context) (bool, error) {
	g.calls = append(g.calls, "has-staged")
	return true, nil
}

func (g *recordingGit) DiffCached(ctx context.Context) (string, error) {
	g.calls = append(g.calls, "diff")
	return "diff --git a/main.go b/main.go\n", nil
}

func (g *recordingGit) Commit(ctx context.Context, subject, body string) error {
	g.calls = append(g.calls, "commit "+subject)
	return nil
}

func (g *recordingGit) CurrentBranch(ctx context.Context) (string, error) {
	g.calls = append(g.calls, "branch")
	return "feature", nil
}

func (g *recordingGit) Push(ctx context.Context, branch string) error {
	g.calls = append(g.calls, "push "+branch)
	return nil
}

type staticGenerator struct{}

func (staticGenerator) Generate(ctx context.Context, diff string) (*commitmsg.Response, error) {
	return &commitmsg.Response{Message: commitmsg.Message{Subject: "feat: add greeting"}}, nil
}

func newModeFixture(t *testing.T) (*workflow.Workflow, *recordingGit, *ui.Printer, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	printer := ui.NewPrinter(&out, ui.WithColor(false))
	g := &recordingGit{}

	wf, err := workflow.New(workflow.Options{
		Git:       g,
		Generator: staticGenerator{},
		Confirmer: ui.AutoConfirmer{},
		Printer:   printer,
	})
	require.NoError(t, err)
	return wf, g, printer, &out
}

func TestRunMode(t *testing.T) {
	files := []string{"main.go", "README.md"}

	t.Run("auto stages, commits and pushes", func(t *testing.T) {
		wf, g, p, _ := newModeFixture(t)

		run, err := runMode(context.Background(), wf, p, modeAuto, files)
		require.NoError(t, err)
		assert.Equal(t, workflow.OutcomePushed, run.Outcome)
		assert.Equal(t, files, run.Files)
		assert.Equal(t, []string{
			"add main.go README.md", "has-staged", "diff", "commit feat: add greeting", "branch", "push feature",
		}, g.calls)
	})

	t.Run("stage stages and commits without pushing", func(t *testing.T) {
		wf, g, p, _ := newModeFixture(t)

		run, err := runMode(context.Background(), wf, p, modeStage, files)
		require.NoError(t, err)
		assert.Equal(t, workflow.OutcomeCommitted, run.Outcome)
		assert.Equal(t, files, run.Files)
		assert.Equal(t, []string{"add main.go README.md", "has-staged", "diff", "commit feat: add greeting"}, g.calls)
	})

	t.Run("generate ignores files with a warning", func(t *testing.T) {
		wf, g, p, out := newModeFixture(t)

		run, err := runMode(context.Background(), wf, p, modeGenerate, files)
		require.NoError(t, err)
		assert.Equal(t, workflow.OutcomeCommitted, run.Outcome)
		assert.Equal(t, []string{"has-staged", "diff", "commit feat: add greeting"}, g.calls)
		assert.Contains(t, out.String(), "--generate ignores the file list [main.go README.md]")
	})

	t.Run("generate without files prints no warning", func(t *testing.T) {
		wf, g, p, out := newModeFixture(t)

		_, err := runMode(context.Background(), wf, p, modeGenerate, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"has-staged", "diff", "commit feat: add greeting"}, g.calls)
		assert.NotContains(t, out.String(), "ignores the file list")
	})
}
