package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/huimingz/aicommit/internal/config"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Manage LLM models",
	Long:  `Commands for inspecting the configured LLM models.`,
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured models",
	Long:  `List all LLM models configured in the configuration file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		printModels(cmd.OutOrStdout(), cfg)
		return nil
	},
}

// printModels lists models sorted by name, marking the default one
func printModels(w io.Writer, cfg *config.Config) {
	if len(cfg.Models) == 0 {
		fmt.Fprintln(w, "No models configured.")
		fmt.Fprintln(w, "\nRun 'aicommit init' to create a configuration file.")
		return
	}

	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	names := make([]string, 0, len(cfg.Models))
	for name := range cfg.Models {
		names = append(names, name)
	}
	sort.Strings(names)

	bold.Fprintln(w, "Configured Models:")
	fmt.Fprintln(w)

	for _, name := range names {
		model := cfg.Models[name]
		if name == cfg.DefaultModel {
			green.Fprintf(w, "  ✓ %s (default)\n", name)
		} else {
			fmt.Fprintf(w, "    %s\n", name)
		}

		cyan.Fprintf(w, "      Provider: %s\n", model.Provider)
		cyan.Fprintf(w, "      Model:    %s\n", model.Model)
		if model.BaseURL != "" {
			cyan.Fprintf(w, "      Base URL: %s\n", model.BaseURL)
		}
		fmt.Fprintln(w)
	}
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	rootCmd.AddCommand(modelsCmd)
}
