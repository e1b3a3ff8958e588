package workflow

import (
	"context"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/huimingz/aicommit/internal/commitmsg"
	"github.com/huimingz/aicommit/internal/git"
	"github.com/huimingz/aicommit/internal/log"
	"github.com/huimingz/aicommit/internal/ui"
)

const (
	hintStageOrPass = "Add files with 'git add' or pass them as arguments: aicommit <file>..."
	hintStageFirst  = "Add files with 'git add' first."
)

// MessageGenerator drafts a commit message from a staged diff
type MessageGenerator interface {
	Generate(ctx context.Context, diff string) (*commitmsg.Response, error)
}

// Confirmer asks the user whether to create the commit.
// Implementations may block indefinitely.
type Confirmer interface {
	Confirm() (bool, error)
}

// Options contains the collaborators of a Workflow
type Options struct {
	Git           git.Executor
	Generator     MessageGenerator
	Confirmer     Confirmer
	Printer       *ui.Printer // optional, output is discarded when nil
	DefaultBranch string      // pushed to when the current branch cannot be resolved
}

// Validate validates the options and sets defaults
func (o *Options) Validate() error {
	if o.Git == nil {
		return errors.New("git executor is required")
	}
	if o.Generator == nil {
		return errors.New("message generator is required")
	}
	if o.Confirmer == nil {
		return errors.New("confirmer is required")
	}
	if o.Printer == nil {
		o.Printer = ui.NewPrinter(io.Discard)
	}
	if o.DefaultBranch == "" {
		o.DefaultBranch = "main"
	}
	return nil
}

// Workflow drives one stage, generate, confirm, commit and push cycle
type Workflow struct {
	opts Options
}

// New creates a new Workflow
func New(opts Options) (*Workflow, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid workflow options")
	}
	return &Workflow{opts: opts}, nil
}

// AutoCommitAndPush stages files (if any), commits the staged changes with a
// generated message once the user confirms, and pushes the current branch.
func (w *Workflow) AutoCommitAndPush(ctx context.Context, files []string) (*Run, error) {
	p := w.opts.Printer
	run := &Run{Files: files}

	_ = p.PrintStep("🔄", "Starting automated commit workflow...")

	if err := w.stage(ctx, files); err != nil {
		return run, err
	}

	if err := w.commitStaged(ctx, run, hintStageOrPass); err != nil || run.Cancelled() {
		return run, err
	}

	_ = p.PrintStep("🚀", "Pushing to remote...")
	branch, err := w.opts.Git.CurrentBranch(ctx)
	if err != nil {
		log.Debug("Could not resolve current branch (%v), falling back to %s", err, w.opts.DefaultBranch)
		branch = w.opts.DefaultBranch
	}
	run.Branch = branch

	if err := w.opts.Git.Push(ctx, branch); err != nil {
		return run, errors.Wrapf(err, "failed to push %s to remote", branch)
	}
	run.Outcome = OutcomePushed

	_ = p.PrintSuccess("Workflow completed successfully!")
	return run, nil
}

// GenerateMessageOnly commits what is already staged without pushing
func (w *Workflow) GenerateMessageOnly(ctx context.Context) (*Run, error) {
	run := &Run{}
	if err := w.commitStaged(ctx, run, hintStageFirst); err != nil || run.Cancelled() {
		return run, err
	}

	_ = w.opts.Printer.PrintSuccess("Commit created successfully!")
	return run, nil
}

// StageAndGenerate stages files (if any) and then behaves like GenerateMessageOnly
func (w *Workflow) StageAndGenerate(ctx context.Context, files []string) (*Run, error) {
	if err := w.stage(ctx, files); err != nil {
		return &Run{Files: files}, err
	}

	run, err := w.GenerateMessageOnly(ctx)
	run.Files = files
	return run, err
}

func (w *Workflow) stage(ctx context.Context, files []string) error {
	if len(files) == 0 {
		return nil
	}

	_ = w.opts.Printer.PrintStep("📁", "Adding files to staging area...")
	log.Debug("Staging %d file(s): %v", len(files), files)

	if err := w.opts.Git.Add(ctx, files); err != nil {
		return errors.Wrap(err, "failed to add files to staging area")
	}
	return nil
}

// commitStaged runs has-staged, diff, generate, confirm and commit.
// A declined confirmation sets OutcomeCancelled and returns nil.
func (w *Workflow) commitStaged(ctx context.Context, run *Run, emptyHint string) error {
	p := w.opts.Printer

	staged, err := w.opts.Git.HasStagedChanges(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to check for staged changes")
	}
	if !staged {
		return nothingStaged(emptyHint)
	}

	_ = p.PrintStep("📊", "Reading staged changes...")
	diff, err := w.opts.Git.DiffCached(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get staged diff")
	}
	log.Debug("Staged diff is %d bytes", len(diff))

	start := time.Now()
	stop := p.StartSpinner("🤖", "Generating commit message with AI...")
	resp, err := w.opts.Generator.Generate(ctx, diff)
	stop()
	if err == nil && resp == nil {
		err = commitmsg.ErrNoResponse
	}
	if err != nil {
		return errors.Wrap(err, "failed to generate commit message")
	}

	msg := resp.Message
	run.Message = &msg
	run.Stats = &ui.ExecutionStats{
		StartTime:        start,
		EndTime:          time.Now(),
		PromptTokens:     resp.PromptTokens,
		CompletionTokens: resp.CompletionTokens,
		TotalTokens:      resp.TotalTokens,
	}

	// An empty subject is passed through; git refuses to commit it.
	if msg.Subject == "" {
		log.Debug("Model reply produced an empty subject")
	}

	if err := ui.ShowCommitMessage(msg.Subject, msg.Body, p.Writer()); err != nil {
		return errors.Wrap(err, "failed to display commit message")
	}
	_ = p.PrintStats(run.Stats)

	ok, err := w.opts.Confirmer.Confirm()
	if err != nil {
		return errors.Wrap(err, "failed to read confirmation")
	}
	if !ok {
		run.Outcome = OutcomeCancelled
		_ = p.PrintCancelled("Commit cancelled by user")
		return nil
	}

	_ = p.PrintStep("💾", "Creating commit...")
	if err := w.opts.Git.Commit(ctx, msg.Subject, msg.Body); err != nil {
		return errors.Wrap(err, "failed to create commit")
	}
	run.Outcome = OutcomeCommitted
	return nil
}
