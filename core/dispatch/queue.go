package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Queue runs dispatched work one item at a time, in FIFO order, on a single
// goroutine owned by Start. It plays the role of a UI-affinity context:
// everything dispatched to it is serialized and off the producer's goroutine.
//
// Dispatch never blocks; the mailbox is unbounded. Work dispatched before
// Start runs once the loop starts. Work dispatched after Stop is dropped.
type Queue struct {
	id     uuid.UUID
	name   string
	logger *slog.Logger

	shutdownTimeout time.Duration

	mu      sync.Mutex
	mailbox []func()
	signal  chan struct{}
	cancel  context.CancelFunc
	done    chan struct{}
	stopped bool

	executed       atomic.Int64
	dropped        atomic.Int64
	panicked       atomic.Int64
	lastActivityAt atomic.Int64
}

// QueueStats provides observability metrics for monitoring and debugging.
type QueueStats struct {
	Executed       int64
	Dropped        int64
	Panicked       int64
	Pending        int
	IsRunning      bool
	LastActivityAt time.Time
}

// NewQueue creates a stopped queue. Call Start or Run to begin executing work.
//
// Example:
//
//	ui := dispatch.NewQueue(dispatch.WithQueueName("ui"))
//	eg.Go(ui.Run(ctx))
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{
		id:              uuid.New(),
		name:            "dispatch",
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: 30 * time.Second,
		signal:          make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Dispatch appends fn to the mailbox.
func (q *Queue) Dispatch(fn func()) {
	if fn == nil {
		return
	}

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		q.dropped.Add(1)
		q.logger.Debug("dispatch queue stopped, work dropped",
			slog.String("queue", q.name))
		return
	}
	q.mailbox = append(q.mailbox, fn)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// Start runs the loop until the context is cancelled or Stop is called.
// This is a blocking operation. Use Run() for errgroup pattern or call this in a goroutine.
// Work still in the mailbox when the loop ends is executed before Start returns.
func (q *Queue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrQueueStopped
	}
	if q.cancel != nil {
		q.mu.Unlock()
		return ErrQueueAlreadyStarted
	}

	ctx, q.cancel = context.WithCancel(ctx)
	done := make(chan struct{})
	q.done = done
	q.mu.Unlock()

	defer close(done)

	q.logger.InfoContext(ctx, "dispatch queue started",
		slog.String("queue", q.name),
		slog.String("queue_id", q.id.String()))

	for {
		q.runPending()

		select {
		case <-ctx.Done():
			q.mu.Lock()
			q.stopped = true
			q.mu.Unlock()

			q.runPending()
			q.logger.Info("dispatch queue stopped",
				slog.String("queue", q.name),
				slog.Int64("executed", q.executed.Load()))
			return ctx.Err()
		case <-q.signal:
		}
	}
}

// Stop cancels the loop and waits for pending work to finish, bounded by the
// shutdown timeout. Dispatch calls after Stop are dropped.
func (q *Queue) Stop() error {
	q.mu.Lock()
	if q.cancel == nil {
		q.mu.Unlock()
		return ErrQueueNotStarted
	}

	cancel := q.cancel
	done := q.done
	q.cancel = nil
	q.stopped = true
	q.mu.Unlock()

	cancel()

	select {
	case <-done:
		return nil
	case <-time.After(q.shutdownTimeout):
		q.logger.Warn("dispatch queue shutdown timeout exceeded",
			slog.String("queue", q.name),
			slog.Duration("timeout", q.shutdownTimeout))
		return fmt.Errorf("%w after %s", ErrShutdownTimeout, q.shutdownTimeout)
	}
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Returns a function that starts the queue, monitors context cancellation,
// and performs graceful shutdown when the context is cancelled.
func (q *Queue) Run(ctx context.Context) func() error {
	return func() error {
		errCh := make(chan error, 1)
		go func() {
			errCh <- q.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			stopErr := q.Stop()
			err := <-errCh
			if errors.Is(stopErr, ErrShutdownTimeout) {
				return stopErr
			}
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		case err := <-errCh:
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Stats returns current queue statistics.
func (q *Queue) Stats() QueueStats {
	q.mu.Lock()
	pending := len(q.mailbox)
	running := q.cancel != nil && !q.stopped
	q.mu.Unlock()

	var last time.Time
	if ts := q.lastActivityAt.Load(); ts > 0 {
		last = time.Unix(0, ts)
	}

	return QueueStats{
		Executed:       q.executed.Load(),
		Dropped:        q.dropped.Load(),
		Panicked:       q.panicked.Load(),
		Pending:        pending,
		IsRunning:      running,
		LastActivityAt: last,
	}
}

// Healthcheck validates that the queue loop is running.
func (q *Queue) Healthcheck(ctx context.Context) error {
	if !q.Stats().IsRunning {
		return errors.Join(ErrHealthcheckFailed, ErrQueueNotRunning)
	}
	return nil
}

func (q *Queue) runPending() {
	for {
		q.mu.Lock()
		if len(q.mailbox) == 0 {
			q.mailbox = nil
			q.mu.Unlock()
			return
		}
		fn := q.mailbox[0]
		q.mailbox[0] = nil
		q.mailbox = q.mailbox[1:]
		q.mu.Unlock()

		q.execute(fn)
	}
}

func (q *Queue) execute(fn func()) {
	defer func() {
		q.lastActivityAt.Store(time.Now().UnixNano())
		if r := recover(); r != nil {
			q.panicked.Add(1)
			q.logger.Error("dispatched work panicked",
				slog.String("queue", q.name),
				slog.Any("panic", r))
			return
		}
		q.executed.Add(1)
	}()

	fn()
}
