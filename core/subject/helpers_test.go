package subject_test

import (
	"sync"

	"github.com/dmitrymomot/reactive/core/subject"
)

// recorder collects deliveries of one subscriber.
type recorder[T, F any] struct {
	mu          sync.Mutex
	values      []T
	completions []subject.Completion[F]
}

func (r *recorder[T, F]) onValue(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *recorder[T, F]) onComplete(c subject.Completion[F]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions = append(r.completions, c)
}

func (r *recorder[T, F]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

func (r *recorder[T, F]) Completions() []subject.Completion[F] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]subject.Completion[F](nil), r.completions...)
}

// manualContext queues work until Run is called.
type manualContext struct {
	mu   sync.Mutex
	work []func()
}

func (m *manualContext) Dispatch(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.work = append(m.work, fn)
}

func (m *manualContext) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.work)
}

func (m *manualContext) Run() {
	for {
		m.mu.Lock()
		if len(m.work) == 0 {
			m.mu.Unlock()
			return
		}
		fn := m.work[0]
		m.work = m.work[1:]
		m.mu.Unlock()
		fn()
	}
}
