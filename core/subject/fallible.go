package subject

// Fallible is a stateful subject with a typed failure channel.
// A failure ends the stream permanently; the last value stays readable.
type Fallible[T, F any] struct {
	core *core[T, F]
}

// NewFallible creates an active fallible subject holding initial.
func NewFallible[T, F any](initial T, opts ...Option) *Fallible[T, F] {
	return &Fallible[T, F]{core: newCore[T, F](true, initial, opts)}
}

// Subscribe registers the callbacks and replays the current value to onValue
// before returning. After a failure only the completion is delivered.
func (s *Fallible[T, F]) Subscribe(onValue func(T), onComplete func(Completion[F])) *Token {
	return s.core.subscribe(onValue, onComplete)
}

// Emit stores v as the current value and forwards it to every subscriber.
// It is a no-op once the subject completed, failed or was closed.
func (s *Fallible[T, F]) Emit(v T) {
	s.core.emit(v)
}

// Complete finishes the stream successfully. Only the first terminal call
// (Complete or Fail) has an effect.
func (s *Fallible[T, F]) Complete() {
	s.core.complete(Finished[F]())
}

// Fail ends the stream with failure. Only the first terminal call has an
// effect.
func (s *Fallible[T, F]) Fail(failure F) {
	s.core.complete(Failed(failure))
}

// Value returns the current value. It stays defined after a failure.
func (s *Fallible[T, F]) Value() T {
	return s.core.current()
}

// Completion returns the terminal event and whether the stream has ended.
func (s *Fallible[T, F]) Completion() (Completion[F], bool) {
	return s.core.completion()
}

// Len returns the number of live subscribers.
func (s *Fallible[T, F]) Len() int {
	return s.core.len()
}

// Close detaches all subscribers silently, without a completion.
func (s *Fallible[T, F]) Close() {
	s.core.close()
}
