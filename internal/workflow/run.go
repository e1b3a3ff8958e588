package workflow

import (
	"github.com/huimingz/aicommit/internal/commitmsg"
	"github.com/huimingz/aicommit/internal/ui"
)

// Outcome is how a run ended when it did not fail
type Outcome int

const (
	// OutcomeNone means the run stopped on an error before reaching an outcome
	OutcomeNone Outcome = iota
	// OutcomeCancelled means the user declined the commit; nothing was committed
	OutcomeCancelled
	// OutcomeCommitted means a local commit was created and not pushed
	OutcomeCommitted
	// OutcomePushed means the commit was created and pushed
	OutcomePushed
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeCommitted:
		return "committed"
	case OutcomePushed:
		return "pushed"
	default:
		return "none"
	}
}

// Run records one invocation of the workflow.
// On failure it holds whatever was done before the failing step.
type Run struct {
	Files   []string
	Message *commitmsg.Message
	Branch  string
	Stats   *ui.ExecutionStats
	Outcome Outcome
}

// Cancelled reports whether the user declined the commit
func (r *Run) Cancelled() bool {
	return r.Outcome == OutcomeCancelled
}
