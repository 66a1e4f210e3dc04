package subject_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reactive/core/subject"
)

func TestToken_CancelIsIdempotent(t *testing.T) {
	t.Parallel()

	b := subject.NewBroadcast[int]()
	rec := &recorder[int, subject.Never]{}
	token := b.Subscribe(rec.onValue, rec.onComplete)
	other := &recorder[int, subject.Never]{}
	b.Subscribe(other.onValue, other.onComplete)
	require.Equal(t, 2, b.Len())

	token.Cancel()
	token.Cancel()

	assert.True(t, token.Cancelled())
	assert.Equal(t, 1, b.Len())

	b.Emit(1)
	assert.Empty(t, rec.Values())
	assert.Equal(t, []int{1}, other.Values())
}

func TestToken_CancelAfterTerminalStates(t *testing.T) {
	t.Parallel()

	t.Run("after complete", func(t *testing.T) {
		t.Parallel()

		s := subject.NewFallible[int, error](0)
		token := s.Subscribe(nil, nil)
		s.Fail(errExhausted)

		assert.NotPanics(t, func() {
			token.Cancel()
			token.Cancel()
		})
	})

	t.Run("after close", func(t *testing.T) {
		t.Parallel()

		s := subject.NewStateful(0)
		token := s.Subscribe(nil, nil)
		s.Close()

		assert.NotPanics(t, token.Cancel)
	})

	t.Run("after the subject is unreachable", func(t *testing.T) {
		t.Parallel()

		token := func() *subject.Token {
			b := subject.NewBroadcast[int]()
			return b.Subscribe(func(int) {}, nil)
		}()
		runtime.GC()

		assert.NotPanics(t, token.Cancel)
		assert.True(t, token.Cancelled())
	})

	t.Run("nil token", func(t *testing.T) {
		t.Parallel()

		var token *subject.Token
		assert.NotPanics(t, token.Cancel)
		assert.True(t, token.Cancelled())
	})
}

func TestToken_CancelFromCallback(t *testing.T) {
	t.Parallel()

	t.Run("self", func(t *testing.T) {
		t.Parallel()

		b := subject.NewBroadcast[int]()
		var got []int
		var token *subject.Token
		token = b.Subscribe(func(v int) {
			got = append(got, v)
			token.Cancel()
		}, nil)

		b.Emit(1)
		b.Emit(2)

		assert.Equal(t, []int{1}, got)
		assert.Equal(t, 0, b.Len())
	})

	t.Run("subscriber not yet visited is skipped", func(t *testing.T) {
		t.Parallel()

		b := subject.NewBroadcast[int]()
		var second *subject.Token
		b.Subscribe(func(int) { second.Cancel() }, nil)
		rec := &recorder[int, subject.Never]{}
		second = b.Subscribe(rec.onValue, rec.onComplete)

		b.Emit(1)

		assert.Empty(t, rec.Values())
		assert.Equal(t, 1, b.Len())
	})
}

func TestNewToken(t *testing.T) {
	t.Parallel()

	calls := 0
	token := subject.NewToken(func() { calls++ })
	assert.False(t, token.Cancelled())

	token.Cancel()
	token.Cancel()

	assert.Equal(t, 1, calls)
	assert.True(t, token.Cancelled())
}

func TestBag(t *testing.T) {
	t.Parallel()

	title := subject.NewStateful("t")
	status := subject.NewFallible[string, error]("s")
	actions := subject.NewBroadcast[int]()

	var bag subject.Bag
	t1 := title.Subscribe(nil, nil)
	t2 := status.Subscribe(nil, nil)
	t3 := actions.Subscribe(nil, nil)
	bag.Add(t1, t2, nil, t3)
	require.Equal(t, 3, bag.Len())

	bag.Cancel()

	assert.Equal(t, 0, bag.Len())
	for _, token := range []*subject.Token{t1, t2, t3} {
		assert.True(t, token.Cancelled())
	}
	assert.Equal(t, 0, title.Len())
	assert.Equal(t, 0, status.Len())
	assert.Equal(t, 0, actions.Len())

	// Reusable after cancel.
	t4 := actions.Subscribe(nil, nil)
	bag.Add(t4)
	assert.Equal(t, 1, bag.Len())
	bag.Cancel()
	assert.True(t, t4.Cancelled())

	// Cancelling an empty bag or a token twice is harmless.
	assert.NotPanics(t, bag.Cancel)
}
