package subject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reactive/core/subject"
)

func TestStateful_ReplaysCurrentValueFirst(t *testing.T) {
	t.Parallel()

	s := subject.NewStateful("v0")
	rec := &recorder[string, subject.Never]{}
	s.Subscribe(rec.onValue, rec.onComplete)

	// Replay happens before Subscribe returns.
	require.Equal(t, []string{"v0"}, rec.Values())

	s.Emit("v1")
	s.Emit("v2")

	assert.Equal(t, []string{"v0", "v1", "v2"}, rec.Values())
	assert.Equal(t, "v2", s.Value())
}

func TestStateful_LateSubscriberSeesLatestValue(t *testing.T) {
	t.Parallel()

	s := subject.NewStateful(0)
	s.Emit(1)
	s.Emit(2)

	rec := &recorder[int, subject.Never]{}
	s.Subscribe(rec.onValue, rec.onComplete)

	assert.Equal(t, []int{2}, rec.Values())
}

func TestStateful_CompletedReplaysValueThenCompletion(t *testing.T) {
	t.Parallel()

	s := subject.NewStateful(10)
	s.Emit(11)
	s.Complete()
	s.Emit(12)

	assert.Equal(t, 11, s.Value())
	assert.True(t, s.Completed())

	var order []string
	s.Subscribe(
		func(v int) { order = append(order, "value") },
		func(c subject.Completion[subject.Never]) { order = append(order, "complete") },
	)

	assert.Equal(t, []string{"value", "complete"}, order)
	assert.Equal(t, 0, s.Len())
}

func TestStateful_CloseReleasesSubscribers(t *testing.T) {
	t.Parallel()

	s := subject.NewStateful("x")
	rec := &recorder[string, subject.Never]{}
	s.Subscribe(rec.onValue, rec.onComplete)
	require.Equal(t, 1, s.Len())

	s.Close()
	s.Emit("y")

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{"x"}, rec.Values())
	assert.Empty(t, rec.Completions())
	assert.Equal(t, "x", s.Value())
}
