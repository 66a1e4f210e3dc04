package dispatch

// Context decides where a piece of delivery work runs.
type Context interface {
	// Dispatch schedules fn. It must not block the caller.
	Dispatch(fn func())
}

// Func adapts a plain function to Context.
type Func func(fn func())

// Dispatch calls f(fn).
func (f Func) Dispatch(fn func()) {
	f(fn)
}

// Immediate runs work synchronously on the calling goroutine.
var Immediate Context = immediate{}

type immediate struct{}

func (immediate) Dispatch(fn func()) {
	fn()
}
