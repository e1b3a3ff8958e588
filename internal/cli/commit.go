package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/huimingz/aicommit/internal/commitmsg"
	"github.com/huimingz/aicommit/internal/config"
	"github.com/huimingz/aicommit/internal/git"
	"github.com/huimingz/aicommit/internal/llm"
	"github.com/huimingz/aicommit/internal/log"
	"github.com/huimingz/aicommit/internal/ui"
	"github.com/huimingz/aicommit/internal/workflow"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	autoMode      bool
	generateMode  bool
	stageMode     bool
	commitAutoYes bool
	verbosityFlag string
	languageFlag  string
)

// mode selects which workflow operation a run performs
type mode int

const (
	modeAuto mode = iota
	modeGenerate
	modeStage
)

func (m mode) String() string {
	switch m {
	case modeGenerate:
		return "generate"
	case modeStage:
		return "stage"
	default:
		return "auto"
	}
}

// selectMode resolves the mode flags. Precedence is auto, generate, stage;
// no flag at all means auto.
func selectMode(auto, generate, stage bool) mode {
	switch {
	case auto:
		return modeAuto
	case generate:
		return modeGenerate
	case stage:
		return modeStage
	default:
		return modeAuto
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&autoMode, "auto", "a", false, "Stage files, commit and push (default)")
	rootCmd.Flags().BoolVarP(&generateMode, "generate", "g", false, "Commit already staged changes without pushing")
	rootCmd.Flags().BoolVarP(&stageMode, "stage", "s", false, "Stage the given files and commit without pushing")
	rootCmd.Flags().BoolVarP(&commitAutoYes, "yes", "y", false, "Auto-confirm the commit without prompting")
	rootCmd.Flags().StringVar(&verbosityFlag, "verbosity", "", "Message detail: quiet, normal or verbose (overrides config)")
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language of the commit message, e.g. en, zh, ja (overrides config)")
}

func runCommit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := config.LoadEnvFile(".env"); err != nil {
		log.Warn("%v", err)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.WithHint(errors.Wrap(err, "invalid configuration"), "Run 'aicommit init --force' to start from a fresh template.")
	}

	log.DebugConfig("Configuration", cfg)

	verbosity, err := cfg.GetVerbosity(verbosityFlag)
	if err != nil {
		return err
	}
	language, err := cfg.GetLanguage(languageFlag)
	if err != nil {
		return err
	}

	chatModel, provider, err := llm.NewProviderFactory().NewChatModel(ctx, cfg, modelName)
	if err != nil {
		return errors.Wrap(err, "failed to create LLM provider")
	}
	log.Debug("Using model: %s (provider: %s, verbosity: %s, language: %s)", provider.GetConfig().Model, provider.Name(), verbosity, language)

	generator, err := commitmsg.NewGenerator(commitmsg.Options{
		Model:     chatModel,
		Verbosity: verbosity,
		Language:  language,
	})
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	printer := ui.NewPrinter(os.Stdout,
		ui.WithSpinner(!debugMode && isatty.IsTerminal(os.Stdout.Fd())),
	)

	var confirmer workflow.Confirmer = ui.NewConsoleConfirmer(os.Stdin, os.Stdout)
	if commitAutoYes {
		confirmer = ui.AutoConfirmer{}
	}

	wf, err := workflow.New(workflow.Options{
		Git:           git.NewExecutor(cwd, git.WithRemote(cfg.GetRemote())),
		Generator:     generator,
		Confirmer:     confirmer,
		Printer:       printer,
		DefaultBranch: cfg.GetDefaultBranch(),
	})
	if err != nil {
		return err
	}

	m := selectMode(autoMode, generateMode, stageMode)
	log.Debug("Mode: %s, files: %v", m, args)

	run, err := runMode(ctx, wf, printer, m, args)
	if err != nil {
		return err
	}

	log.Debug("Run finished: %s", run.Outcome)
	return nil
}

// runMode dispatches to the workflow operation for m.
// Generate mode never stages, so a file list is reported and dropped.
func runMode(ctx context.Context, wf *workflow.Workflow, p *ui.Printer, m mode, args []string) (*workflow.Run, error) {
	switch m {
	case modeGenerate:
		if len(args) > 0 {
			_ = p.PrintWarning(fmt.Sprintf("--generate ignores the file list %v; stage files with --stage instead", args))
		}
		return wf.GenerateMessageOnly(ctx)
	case modeStage:
		return wf.StageAndGenerate(ctx, args)
	default:
		return wf.AutoCommitAndPush(ctx, args)
	}
}
