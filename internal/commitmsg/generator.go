package commitmsg

import (
	"context"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/cockroachdb/errors"
	"github.com/huimingz/aicommit/internal/config"
	"github.com/huimingz/aicommit/internal/llm"
	"github.com/huimingz/aicommit/internal/log"
	"github.com/huimingz/aicommit/pkg/lang"
)

// Completion limits. Commit messages are short and should be stable across runs.
const (
	MaxTokens   = 200
	Temperature = float32(0.3)
)

// ErrNoResponse is returned when the model call succeeds but carries no reply
var ErrNoResponse = errors.New("no response from language model")

// Response is the generated commit message plus call statistics
type Response struct {
	Message          Message
	Raw              string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Duration         time.Duration
}

// Options contains configuration for Generator
type Options struct {
	Model     model.BaseChatModel
	Verbosity config.Verbosity
	Language  lang.Language // Output language (default: en)
}

// Validate validates the options and sets defaults
func (o *Options) Validate() error {
	if o.Model == nil {
		return errors.New("chat model is required")
	}
	if o.Verbosity == "" {
		o.Verbosity = config.VerbosityNormal
	}
	if _, err := config.ParseVerbosity(string(o.Verbosity)); err != nil {
		return err
	}
	l, err := lang.Parse(string(o.Language))
	if err != nil {
		return err
	}
	o.Language = l
	return nil
}

// Generator drafts commit messages from staged diffs
type Generator struct {
	opts Options
}

// NewGenerator creates a new Generator
func NewGenerator(opts Options) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid generator options")
	}
	return &Generator{opts: opts}, nil
}

// Verbosity returns the verbosity the generator was built with
func (g *Generator) Verbosity() config.Verbosity {
	return g.opts.Verbosity
}

// Messages builds the system and user messages sent for a diff
func (g *Generator) Messages(diff string) []*schema.Message {
	return []*schema.Message{
		schema.SystemMessage(SystemPrompt),
		schema.UserMessage(BuildLocalizedPrompt(diff, g.opts.Verbosity, g.opts.Language)),
	}
}

// Generate asks the model for a commit message describing diff.
// It makes exactly one request and does not retry.
func (g *Generator) Generate(ctx context.Context, diff string) (*Response, error) {
	messages := g.Messages(diff)
	for _, m := range messages {
		log.DebugPrompt(string(m.Role), m.Content)
	}

	start := time.Now()
	reply, err := g.opts.Model.Generate(ctx, messages,
		model.WithMaxTokens(MaxTokens),
		model.WithTemperature(Temperature),
	)
	elapsed := time.Since(start)
	log.DebugDuration("Model request", elapsed)

	if err != nil {
		wrapped := errors.Wrap(err, "language model request failed")
		if hint := llm.Hint(err); hint != "" {
			wrapped = errors.WithHint(wrapped, hint)
		}
		return nil, wrapped
	}
	if reply == nil {
		return nil, ErrNoResponse
	}

	log.DebugReply(reply.Content)

	resp := &Response{
		Message:  Parse(reply.Content),
		Raw:      reply.Content,
		Duration: elapsed,
	}
	if reply.ResponseMeta != nil && reply.ResponseMeta.Usage != nil {
		usage := reply.ResponseMeta.Usage
		resp.PromptTokens = usage.PromptTokens
		resp.CompletionTokens = usage.CompletionTokens
		resp.TotalTokens = usage.TotalTokens
		log.DebugTokenUsage(usage.PromptTokens, usage.CompletionTokens, usage.TotalTokens)
	}

	return resp, nil
}
