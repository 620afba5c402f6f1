package pipeline

import (
	"errors"
	"fmt"
)

// ErrAgentUnavailable is reported once per run when no LLM provider answers
// the availability probe. The run continues on heuristic scores alone.
var ErrAgentUnavailable = errors.New("AGENT_UNAVAILABLE: tie-break agent unreachable")

// InputError marks a malformed extracted statement. Unlike stage errors it
// aborts the run: the caller handed over a record the pipeline cannot
// interpret.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("INPUT_ERROR: %s", e.Reason)
}

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// stageError tags a recoverable per-stage failure for the run's warning
// list. The pipeline degrades (skips the stage's contribution) instead of
// aborting.
func stageError(stage string, err error) string {
	return fmt.Sprintf("STAGE_ERROR: %s: %v", stage, err)
}
