package dispatch

import "errors"

var (
	// ErrQueueAlreadyStarted is returned when Start is called on a running queue.
	ErrQueueAlreadyStarted = errors.New("dispatch queue already started")

	// ErrQueueNotStarted is returned when Stop is called on a queue that never started.
	ErrQueueNotStarted = errors.New("dispatch queue not started")

	// ErrQueueStopped is returned when Start is called on a queue that was stopped.
	ErrQueueStopped = errors.New("dispatch queue stopped")

	// ErrQueueNotRunning is reported by Healthcheck when the loop is not running.
	ErrQueueNotRunning = errors.New("dispatch queue not running")

	// ErrHealthcheckFailed wraps every healthcheck failure.
	ErrHealthcheckFailed = errors.New("healthcheck failed")

	// ErrShutdownTimeout is returned by Stop when pending work did not finish in time.
	ErrShutdownTimeout = errors.New("dispatch queue shutdown timeout exceeded")
)
