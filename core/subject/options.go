package subject

import (
	"io"
	"log/slog"
)

// Option configures a subject.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithName sets the name reported in log records of the subject.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger configures structured logging for the subject.
// Panics raised by subscriber callbacks are recovered and logged here.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
