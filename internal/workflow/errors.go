package workflow

import "github.com/cockroachdb/errors"

// ErrNothingStaged is returned when there is nothing to commit.
// It is a precondition failure the user can fix, not a bug.
var ErrNothingStaged = errors.New("no staged changes found")

func nothingStaged(hint string) error {
	return errors.WithHint(errors.WithStack(ErrNothingStaged), hint)
}

// IsNothingStaged reports whether err is (or wraps) ErrNothingStaged
func IsNothingStaged(err error) bool {
	return errors.Is(err, ErrNothingStaged)
}
