package counter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/reactive/core/logger"
	"github.com/dmitrymomot/reactive/core/subject"
)

// Model owns the subjects of the counter screen. It is the only producer for
// all of them; consumers subscribe and never emit.
type Model struct {
	// Actions is the intake for user intents.
	Actions *subject.Broadcast[Action]
	// Count is the number of taps since the last reset.
	Count *subject.Property[int]
	// Title is a human readable summary. It completes when the limit is hit.
	Title *subject.Stateful[string]
	// Status reports progress and fails with ErrLimitReached.
	Status *subject.Fallible[string, error]

	intake *subject.Token
	logger *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithLogger configures structured logging for the model and its subjects.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a model and subscribes it to its own action intake.
func New(cfg Config, opts ...Option) *Model {
	m := &Model{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}

	log := m.logger.With(logger.Component("counter"))
	m.Actions = subject.NewBroadcast[Action](subject.WithName("counter.actions"), subject.WithLogger(log))
	m.Count = subject.NewProperty(0, subject.WithName("counter.count"), subject.WithLogger(log))
	m.Title = subject.NewStateful(cfg.Placeholder, subject.WithName("counter.title"), subject.WithLogger(log))
	m.Status = subject.NewFallible[string, error](cfg.Placeholder, subject.WithName("counter.status"), subject.WithLogger(log))

	// The reducer captures the output subjects only, never the model or its consumers.
	r := &reducer{
		limit:  cfg.Limit,
		count:  m.Count,
		title:  m.Title,
		status: m.Status,
		logger: log,
	}
	m.intake = m.Actions.Subscribe(r.handle, nil)

	return m
}

// Send pushes an action into the intake.
func (m *Model) Send(a Action) {
	m.Actions.Emit(a)
}

// Close tears every subject down silently. Subscribers receive no completion.
func (m *Model) Close() {
	m.intake.Cancel()
	m.Actions.Close()
	m.Count.Subject().Close()
	m.Title.Close()
	m.Status.Close()
}

type reducer struct {
	limit  int
	count  *subject.Property[int]
	title  *subject.Stateful[string]
	status *subject.Fallible[string, error]
	logger *slog.Logger
}

func (r *reducer) handle(a Action) {
	if _, done := r.status.Completion(); done {
		r.logger.Warn("action ignored, counter exhausted",
			logger.Action(string(a.Kind)),
			logger.ID("action_id", a.ID))
		return
	}

	switch a.Kind {
	case ActionTap:
		n := r.count.Get() + 1
		r.count.Set(n)
		r.title.Emit(title(n))

		if r.limit > 0 && n >= r.limit {
			err := fmt.Errorf("%w after %d taps", ErrLimitReached, n)
			r.status.Fail(err)
			r.title.Complete()
			r.logger.Info("counter exhausted",
				logger.Event("limit_reached"),
				logger.Count("taps", n),
				logger.Error(err))
			return
		}
		r.status.Emit(progress(n, r.limit))

	case ActionReset:
		r.count.Set(0)
		r.title.Emit(title(0))
		r.status.Emit(progress(0, r.limit))
	}

	r.logger.Debug("action handled",
		logger.Action(string(a.Kind)),
		logger.ID("action_id", a.ID),
		logger.Count("taps", r.count.Get()))
}

func title(n int) string {
	if n == 1 {
		return "Tapped 1 time"
	}
	return fmt.Sprintf("Tapped %d times", n)
}

func progress(n, limit int) string {
	if limit <= 0 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%d of %d", n, limit)
}
