package commitmsg

import (
	"fmt"

	"github.com/huimingz/aicommit/internal/config"
	"github.com/huimingz/aicommit/pkg/lang"
)

// SystemPrompt establishes the assistant's role for every request
const SystemPrompt = "You are a helpful assistant that writes clear, concise Git commit messages following conventional commit format."

// userPromptTemplate takes the style directive and the staged diff
const userPromptTemplate = "Write %s Git commit message for these staged changes. Follow conventional commit format.\n\nChanges:\n%s"

// Style directives, one per verbosity
const (
	StyleQuiet   = "a very brief, one-line"
	StyleNormal  = "a concise subject plus short body"
	StyleVerbose = "a detailed subject and explanatory body"
)

// StyleDirective maps a verbosity to the wording used in the prompt.
// Unknown values fall back to the normal style.
func StyleDirective(v config.Verbosity) string {
	switch v {
	case config.VerbosityQuiet:
		return StyleQuiet
	case config.VerbosityVerbose:
		return StyleVerbose
	default:
		return StyleNormal
	}
}

// languageInstruction is prepended to the user prompt for non-English output
const languageInstruction = "Write the commit message in %s, keeping the conventional commit type in English.\n\n"

// BuildPrompt embeds the style directive and the diff, unmodified, into the user prompt
func BuildPrompt(diff string, v config.Verbosity) string {
	return fmt.Sprintf(userPromptTemplate, StyleDirective(v), diff)
}

// BuildLocalizedPrompt is BuildPrompt with an output language.
// English, or an empty language, yields exactly BuildPrompt.
func BuildLocalizedPrompt(diff string, v config.Verbosity, l lang.Language) string {
	prompt := BuildPrompt(diff, v)
	if l == "" || l == lang.English {
		return prompt
	}
	return fmt.Sprintf(languageInstruction, l.Name()) + prompt
}
