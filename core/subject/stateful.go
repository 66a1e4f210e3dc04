package subject

// Stateful holds a current value that is replayed to every new subscriber.
// It has no failure channel.
type Stateful[T any] struct {
	core *core[T, Never]
}

// NewStateful creates an active stateful subject holding initial.
func NewStateful[T any](initial T, opts ...Option) *Stateful[T] {
	return &Stateful[T]{core: newCore[T, Never](true, initial, opts)}
}

// Subscribe registers the callbacks and replays the current value to onValue
// before returning. A completed subject replays the value and then the
// completion, keeping no live registration.
func (s *Stateful[T]) Subscribe(onValue func(T), onComplete func(Completion[Never])) *Token {
	return s.core.subscribe(onValue, onComplete)
}

// Emit stores v as the current value and forwards it to every subscriber.
// It is a no-op once the subject completed or was closed.
func (s *Stateful[T]) Emit(v T) {
	s.core.emit(v)
}

// Complete finishes the stream. Only the first call has an effect.
func (s *Stateful[T]) Complete() {
	s.core.complete(Finished[Never]())
}

// Value returns the current value.
func (s *Stateful[T]) Value() T {
	return s.core.current()
}

// Completed reports whether Complete was called.
func (s *Stateful[T]) Completed() bool {
	_, done := s.core.completion()
	return done
}

// Len returns the number of live subscribers.
func (s *Stateful[T]) Len() int {
	return s.core.len()
}

// Close detaches all subscribers silently, without a completion.
func (s *Stateful[T]) Close() {
	s.core.close()
}
