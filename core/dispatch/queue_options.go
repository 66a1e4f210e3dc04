package dispatch

import (
	"log/slog"
	"time"
)

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithQueueName sets the name used in log records.
func WithQueueName(name string) QueueOption {
	return func(q *Queue) {
		if name != "" {
			q.name = name
		}
	}
}

// WithQueueLogger configures structured logging for the queue.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithQueueLogger(logger *slog.Logger) QueueOption {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// WithShutdownTimeout bounds how long Stop waits for queued work to finish.
func WithShutdownTimeout(d time.Duration) QueueOption {
	return func(q *Queue) {
		if d > 0 {
			q.shutdownTimeout = d
		}
	}
}
