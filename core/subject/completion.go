package subject

// Never is the failure type of subjects that cannot fail.
// No operation accepts a Never, so a non-fallible subscriber only ever
// observes a successful completion.
type Never struct{}

// Completion is the terminal event of a subject.
// It either reports success or carries a failure of type F.
type Completion[F any] struct {
	failure F
	failed  bool
}

// Finished returns a successful completion.
func Finished[F any]() Completion[F] {
	return Completion[F]{}
}

// Failed returns a completion carrying the given failure.
func Failed[F any](failure F) Completion[F] {
	return Completion[F]{failure: failure, failed: true}
}

// IsFailure reports whether the stream ended with a failure.
func (c Completion[F]) IsFailure() bool {
	return c.failed
}

// Failure returns the failure value and true if the stream failed.
func (c Completion[F]) Failure() (F, bool) {
	return c.failure, c.failed
}
