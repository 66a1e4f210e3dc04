package counter_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reactive/app/counter"
)

func TestParseAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    counter.ActionKind
		wantErr error
	}{
		{in: "tap", want: counter.ActionTap},
		{in: "", want: counter.ActionTap},
		{in: "  TAP ", want: counter.ActionTap},
		{in: "reset", want: counter.ActionReset},
		{in: "quit", want: counter.ActionQuit},
		{in: "jump", wantErr: counter.ErrUnknownAction},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			a, err := counter.ParseAction(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Kind)
			assert.NotEqual(t, uuid.Nil, a.ID)
			assert.False(t, a.CreatedAt.IsZero())
		})
	}
}

func TestNewAction_UniqueIDs(t *testing.T) {
	t.Parallel()

	a := counter.NewAction(counter.ActionTap)
	b := counter.NewAction(counter.ActionTap)
	assert.NotEqual(t, a.ID, b.ID)
}
