package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/huimingz/aicommit/internal/log"
	"github.com/huimingz/aicommit/internal/ui"
	"github.com/huimingz/aicommit/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debugMode  bool
	configFile string
	modelName  string

	// Version info
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

// rootCmd represents the base command; without a subcommand it runs the commit workflow
var rootCmd = &cobra.Command{
	Use:   "aicommit [files...]",
	Short: "Generate a commit message with AI, commit and push",
	Long: `aicommit stages your changes, asks a language model for a conventional
commit message, shows it for confirmation, commits, and pushes.

Modes:
  --auto, -a       stage files, commit and push (default)
  --generate, -g   commit what is already staged, do not push
  --stage, -s      stage the given files, commit, do not push

Examples:
  aicommit
  aicommit main.go README.md
  aicommit -g
  aicommit -s internal/ --verbosity verbose`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
	RunE: runCommit,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Errors are reported here, together with any hints they carry.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		reportError(ui.NewPrinter(os.Stderr), err)
	}
	return err
}

// reportError prints err with its hints. Nothing staged is a precondition
// the user fixes, so it is reported as information rather than an error.
func reportError(p *ui.Printer, err error) {
	if workflow.IsNothingStaged(err) {
		_ = p.PrintInfo(err.Error())
	} else {
		_ = p.PrintError(err.Error())
	}
	if hints := errors.FlattenHints(err); hints != "" {
		_ = p.PrintHint(hints)
	}
	if log.IsDebugMode() {
		log.Debug("%+v", err)
	}
}

// SetVersionInfo sets version information from build flags
func SetVersionInfo(v, commit, time string) {
	version = v
	gitCommit = commit
	buildTime = time
}

// GetVersionInfo returns version information
func GetVersionInfo() (string, string, string) {
	return version, gitCommit, buildTime
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode for verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file path (default: ./.aicommit.yaml, then ~/.aicommit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&modelName, "model", "m", "", "LLM model to use (overrides config)")
}
