package subject

import (
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/reactive/core/dispatch"
)

// Source is anything that can be subscribed to: every subject variant and
// every operator result. Operators are plain functions over Source and never
// modify the upstream subject.
type Source[T, F any] interface {
	Subscribe(onValue func(T), onComplete func(Completion[F])) *Token
}

// Map returns a source whose values are transformed by fn.
// Completions, including failures, pass through unchanged.
//
// Example:
//
//	labels := subject.Map(count, func(n int) string { return strconv.Itoa(n) })
func Map[T, U, F any](src Source[T, F], fn func(T) U) Source[U, F] {
	return &mapSource[T, U, F]{src: src, fn: fn}
}

type mapSource[T, U, F any] struct {
	src Source[T, F]
	fn  func(T) U
}

func (m *mapSource[T, U, F]) Subscribe(onValue func(U), onComplete func(Completion[F])) *Token {
	var forward func(T)
	if onValue != nil {
		forward = func(v T) { onValue(m.fn(v)) }
	}
	return m.src.Subscribe(forward, onComplete)
}

// ObserveOn returns a source that hands every delivery, values and the
// completion, to ctx instead of running it on the emitting goroutine.
// Per-subscriber order is kept as long as ctx runs work in FIFO order.
// Deliveries still queued on ctx are dropped once the token is cancelled.
func ObserveOn[T, F any](src Source[T, F], ctx dispatch.Context) Source[T, F] {
	if ctx == nil {
		ctx = dispatch.Immediate
	}
	return &observeOnSource[T, F]{src: src, ctx: ctx}
}

type observeOnSource[T, F any] struct {
	src Source[T, F]
	ctx dispatch.Context
}

func (o *observeOnSource[T, F]) Subscribe(onValue func(T), onComplete func(Completion[F])) *Token {
	var cancelled atomic.Bool

	var forwardValue func(T)
	if onValue != nil {
		forwardValue = func(v T) {
			o.ctx.Dispatch(func() {
				if !cancelled.Load() {
					onValue(v)
				}
			})
		}
	}

	var forwardCompletion func(Completion[F])
	if onComplete != nil {
		forwardCompletion = func(c Completion[F]) {
			o.ctx.Dispatch(func() {
				if !cancelled.Load() {
					onComplete(c)
				}
			})
		}
	}

	upstream := o.src.Subscribe(forwardValue, forwardCompletion)
	return NewToken(func() {
		cancelled.Store(true)
		upstream.Cancel()
	})
}

// Assign writes every value into target through setter.
// Completions are dropped: assignment has no error channel, so a failure or
// finish upstream simply stops the updates.
//
// Example:
//
//	token := subject.Assign(title, label, (*Label).SetText)
func Assign[T, F, R any](src Source[T, F], target R, setter func(R, T)) *Token {
	return src.Subscribe(func(v T) { setter(target, v) }, nil)
}

// Sink subscribes both callbacks at the end of a chain. Either may be nil.
// onComplete fires at most once, whatever the upstream source does.
func Sink[T, F any](src Source[T, F], onValue func(T), onComplete func(Completion[F])) *Token {
	if onComplete == nil {
		return src.Subscribe(onValue, nil)
	}

	var once sync.Once
	return src.Subscribe(onValue, func(c Completion[F]) {
		once.Do(func() { onComplete(c) })
	})
}
