package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Executor defines the interface for the git operations a commit cycle needs
type Executor interface {
	// Add stages the given paths
	Add(ctx context.Context, paths []string) error

	// HasStagedChanges reports whether the index differs from HEAD
	HasStagedChanges(ctx context.Context) (bool, error)

	// DiffCached returns the diff of staged changes
	DiffCached(ctx context.Context) (string, error)

	// Commit creates a commit from the subject and an optional body
	Commit(ctx context.Context, subject, body string) error

	// CurrentBranch returns the current branch name
	CurrentBranch(ctx context.Context) (string, error)

	// Push publishes the branch to the configured remote.
	// An empty branch pushes with git's own defaults.
	Push(ctx context.Context, branch string) error
}

// ExecutorOption is a functional option for DefaultExecutor
type ExecutorOption func(*DefaultExecutor)

// WithRemote sets the remote used by Push
func WithRemote(remote string) ExecutorOption {
	return func(e *DefaultExecutor) {
		e.remote = remote
	}
}

// DefaultExecutor is the default implementation of Executor
type DefaultExecutor struct {
	workDir string
	remote  string
}

// NewExecutor creates a new DefaultExecutor
func NewExecutor(workDir string, opts ...ExecutorOption) *DefaultExecutor {
	e := &DefaultExecutor{workDir: workDir, remote: "origin"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// runGit runs a git command and returns its stdout unmodified
func (e *DefaultExecutor) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = e.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.String(), nil
}

// CommandError is returned when a git invocation exits unsuccessfully
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, or -1 if git did not exit normally
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Add stages the given paths
func (e *DefaultExecutor) Add(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	_, err := e.runGit(ctx, args...)
	return err
}

// HasStagedChanges reports whether anything is staged.
// git diff --cached --quiet exits 1 when there are differences.
func (e *DefaultExecutor) HasStagedChanges(ctx context.Context) (bool, error) {
	_, err := e.runGit(ctx, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1 {
		return true, nil
	}
	return false, err
}

// DiffCached returns the diff of staged changes exactly as git prints it
func (e *DefaultExecutor) DiffCached(ctx context.Context) (string, error) {
	return e.runGit(ctx, "diff", "--cached")
}

// Commit executes a git commit. A non-empty body becomes a second paragraph.
func (e *DefaultExecutor) Commit(ctx context.Context, subject, body string) error {
	args := []string{"commit", "-m", subject}
	if body != "" {
		args = append(args, "-m", body)
	}
	_, err := e.runGit(ctx, args...)
	return err
}

// CurrentBranch returns the current branch name
func (e *DefaultExecutor) CurrentBranch(ctx context.Context) (string, error) {
	out, err := e.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(out)
	if branch == "" || branch == "HEAD" {
		return "", fmt.Errorf("not on a branch (detached HEAD)")
	}
	return branch, nil
}

// Push pushes the branch to the configured remote
func (e *DefaultExecutor) Push(ctx context.Context, branch string) error {
	args := []string{"push"}
	if branch != "" {
		args = append(args, e.remote, branch)
	}
	_, err := e.runGit(ctx, args...)
	return err
}
