package fsrs

import "errors"

var (
	// ErrPrecondition is returned by Schedule for malformed card input.
	ErrPrecondition = errors.New("fsrs: precondition violated")
	// ErrInvalidParameters is returned by NewScheduler for a bad configuration.
	ErrInvalidParameters = errors.New("fsrs: invalid parameters")
)
