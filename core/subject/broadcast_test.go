package subject_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reactive/core/subject"
)

func TestBroadcast_DeliversInOrderToEverySubscriber(t *testing.T) {
	t.Parallel()

	b := subject.NewBroadcast[int]()
	recs := make([]*recorder[int, subject.Never], 3)
	for i := range recs {
		recs[i] = &recorder[int, subject.Never]{}
		b.Subscribe(recs[i].onValue, recs[i].onComplete)
	}
	require.Equal(t, 3, b.Len())

	for v := 1; v <= 5; v++ {
		b.Emit(v)
	}

	for _, r := range recs {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, r.Values())
		assert.Empty(t, r.Completions())
	}
}

func TestBroadcast_LateSubscriberGetsNoReplay(t *testing.T) {
	t.Parallel()

	b := subject.NewBroadcast[string]()
	b.Emit("missed")

	rec := &recorder[string, subject.Never]{}
	b.Subscribe(rec.onValue, rec.onComplete)
	b.Emit("seen")

	assert.Equal(t, []string{"seen"}, rec.Values())
}

func TestBroadcast_Complete(t *testing.T) {
	t.Parallel()

	t.Run("delivered once and clears the table", func(t *testing.T) {
		t.Parallel()

		b := subject.NewBroadcast[int]()
		rec := &recorder[int, subject.Never]{}
		b.Subscribe(rec.onValue, rec.onComplete)

		b.Emit(1)
		b.Complete()
		b.Complete()
		b.Emit(2)

		assert.Equal(t, []int{1}, rec.Values())
		require.Len(t, rec.Completions(), 1)
		assert.False(t, rec.Completions()[0].IsFailure())
		assert.True(t, b.Completed())
		assert.Equal(t, 0, b.Len())
	})

	t.Run("late subscriber receives only the completion", func(t *testing.T) {
		t.Parallel()

		b := subject.NewBroadcast[int]()
		b.Emit(1)
		b.Complete()

		rec := &recorder[int, subject.Never]{}
		token := b.Subscribe(rec.onValue, rec.onComplete)
		b.Emit(2)

		assert.Empty(t, rec.Values())
		assert.Len(t, rec.Completions(), 1)
		assert.Equal(t, 0, b.Len())
		assert.NotPanics(t, token.Cancel)
	})
}

func TestBroadcast_CloseIsSilent(t *testing.T) {
	t.Parallel()

	b := subject.NewBroadcast[int]()
	rec := &recorder[int, subject.Never]{}
	token := b.Subscribe(rec.onValue, rec.onComplete)

	b.Close()
	b.Emit(1)
	b.Complete()

	assert.Empty(t, rec.Values())
	assert.Empty(t, rec.Completions())
	assert.Equal(t, 0, b.Len())
	assert.NotPanics(t, token.Cancel)

	late := &recorder[int, subject.Never]{}
	lateToken := b.Subscribe(late.onValue, late.onComplete)
	assert.True(t, lateToken.Cancelled())
	assert.Empty(t, late.Values())
	assert.Empty(t, late.Completions())
}

func TestBroadcast_NilCallbacks(t *testing.T) {
	t.Parallel()

	b := subject.NewBroadcast[int]()
	b.Subscribe(nil, nil)

	assert.NotPanics(t, func() {
		b.Emit(1)
		b.Complete()
	})
}

func TestBroadcast_RecoversPanickingSubscriber(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	b := subject.NewBroadcast[int](subject.WithName("faulty"), subject.WithLogger(log))

	b.Subscribe(func(int) { panic("boom") }, nil)
	rec := &recorder[int, subject.Never]{}
	b.Subscribe(rec.onValue, rec.onComplete)

	assert.NotPanics(t, func() { b.Emit(7) })
	assert.Equal(t, []int{7}, rec.Values())
	assert.Contains(t, buf.String(), "subscriber callback panicked")
	assert.Contains(t, buf.String(), "component=faulty")

	// The subject keeps working after a recovered panic.
	b.Emit(8)
	assert.Equal(t, []int{7, 8}, rec.Values())
}
