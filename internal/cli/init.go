package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/huimingz/aicommit/internal/config"
	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `# aicommit configuration file

# Model used when --model and AICOMMIT_MODEL are not set
default_model: deepseek

# Message style: quiet (one line), normal (subject + short body), verbose
verbosity: normal

# Language of the generated message (en, zh, zh-tw, ja, ko, de, fr, es)
language: en

# Branch pushed to when the current branch cannot be determined
default_branch: main

# Remote that commits are pushed to
remote: origin

models:
  deepseek:
    provider: deepseek
    api_key: ${DEEPSEEK_API_KEY}
    model: deepseek-chat
    # base_url: https://api.deepseek.com

  # openai:
  #   provider: openai
  #   api_key: ${OPENAI_API_KEY}
  #   model: gpt-4o-mini

  # ollama:
  #   provider: ollama
  #   model: llama3.2
  #   base_url: http://localhost:11434/v1

  # gemini:
  #   provider: gemini
  #   api_key: ${GOOGLE_API_KEY}
  #   model: gemini-2.0-flash

  # grok:
  #   provider: grok
  #   api_key: ${XAI_API_KEY}
  #   model: grok-beta
`

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize aicommit configuration",
	Long: `Create a default configuration file (~/.aicommit.yaml).

The template contains example settings for each supported provider.
Edit the file to add your API keys and pick a default model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get home directory")
		}

		configPath := filepath.Join(homeDir, config.FileName)
		if err := writeConfigTemplate(configPath, initForce); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Configuration file created: %s\n", configPath)
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintln(out, "  1. Edit the config file and add your API keys")
		fmt.Fprintln(out, "  2. Set environment variables for sensitive keys (recommended)")
		fmt.Fprintln(out, "  3. Stage some changes and run 'aicommit'")

		return nil
	},
}

// writeConfigTemplate writes the default template, refusing to overwrite unless force is set
func writeConfigTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("config file already exists: %s", path),
			"Use --force to overwrite it",
		)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
