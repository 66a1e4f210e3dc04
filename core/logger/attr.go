package logger

import (
	"log/slog"
	"runtime"
	"time"
)

// Helpers return the empty Attr for nil or empty input, which slog drops,
// so they can be passed unconditionally.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Failure renders the failure carried by a completion. Non-error failures
// are logged with their %v form.
func Failure(failure any) slog.Attr {
	if failure == nil {
		return slog.Attr{}
	}
	if err, ok := failure.(error); ok {
		return slog.String("failure", err.Error())
	}
	return slog.Any("failure", failure)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ID creates an identifier attribute with a custom key.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Component names the part of the application emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a lifecycle event such as "startup" or "completed".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Action names the action being handled.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Count records a counter under a custom key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Value records an emitted value.
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}

// Subscribers records the number of live subscribers.
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}

// Caller records the file and line of the function calling Caller.
func Caller() slog.Attr {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return slog.Attr{}
	}
	return slog.Group("caller",
		slog.String("file", file),
		slog.Int("line", line))
}
