package core

import "errors"

// Exit codes. Verbose mode substitutes the failing step's own exit code
// for ExitFailure so scripts can tell steps apart.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitRejected = 2
)

var (
	// ErrUserAbort is returned when the user cancels at a confirmation
	// prompt. Remaining plan steps are skipped without side effects.
	ErrUserAbort = errors.New("aborted by user")

	// ErrConfigConflict is returned when resolved flags contradict each
	// other before any command is synthesized.
	ErrConfigConflict = errors.New("conflicting configuration")
)
