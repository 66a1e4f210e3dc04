package subject

// Broadcast is a subject without stored state.
// Values reach only the subscribers registered at the time of the emit;
// late subscribers see nothing but a completion that already happened.
type Broadcast[T any] struct {
	core *core[T, Never]
}

// NewBroadcast creates an active broadcast subject.
func NewBroadcast[T any](opts ...Option) *Broadcast[T] {
	var zero T
	return &Broadcast[T]{core: newCore[T, Never](false, zero, opts)}
}

// Subscribe registers the callbacks. Either callback may be nil.
// If the subject already completed, onComplete is invoked immediately and no
// live registration is kept.
func (b *Broadcast[T]) Subscribe(onValue func(T), onComplete func(Completion[Never])) *Token {
	return b.core.subscribe(onValue, onComplete)
}

// Emit forwards v to every subscriber in registration order.
// It is a no-op once the subject completed or was closed.
func (b *Broadcast[T]) Emit(v T) {
	b.core.emit(v)
}

// Complete finishes the stream. Only the first call has an effect.
func (b *Broadcast[T]) Complete() {
	b.core.complete(Finished[Never]())
}

// Completed reports whether Complete was called.
func (b *Broadcast[T]) Completed() bool {
	_, done := b.core.completion()
	return done
}

// Len returns the number of live subscribers.
func (b *Broadcast[T]) Len() int {
	return b.core.len()
}

// Close detaches all subscribers silently, without a completion.
func (b *Broadcast[T]) Close() {
	b.core.close()
}
