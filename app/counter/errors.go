package counter

import "errors"

var (
	// ErrLimitReached is the failure delivered on Model.Status when the
	// configured number of taps is reached.
	ErrLimitReached = errors.New("tap limit reached")

	// ErrUnknownAction is returned by ParseAction for unrecognized input.
	ErrUnknownAction = errors.New("unknown action")
)
