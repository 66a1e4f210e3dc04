package subject

// Property is a field whose writes are broadcast.
// It replaces a plain field with an explicit Stateful subject: Set emits,
// Get reads the current value and Subject exposes the stream.
type Property[T any] struct {
	subject *Stateful[T]
}

// NewProperty creates a property holding initial.
func NewProperty[T any](initial T, opts ...Option) *Property[T] {
	return &Property[T]{subject: NewStateful(initial, opts...)}
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.subject.Value()
}

// Set stores v and notifies subscribers.
func (p *Property[T]) Set(v T) {
	p.subject.Emit(v)
}

// Update applies fn to the current value and stores the result.
// It is not atomic across goroutines.
func (p *Property[T]) Update(fn func(T) T) {
	p.subject.Emit(fn(p.subject.Value()))
}

// Subject returns the underlying stream for subscribing and composing.
func (p *Property[T]) Subject() *Stateful[T] {
	return p.subject
}
