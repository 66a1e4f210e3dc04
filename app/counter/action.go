package counter

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActionKind identifies what the user asked for.
type ActionKind string

const (
	ActionTap   ActionKind = "tap"
	ActionReset ActionKind = "reset"
	ActionQuit  ActionKind = "quit"
)

// Action is one user intent sent to the model's intake.
type Action struct {
	ID        uuid.UUID
	Kind      ActionKind
	CreatedAt time.Time
}

// NewAction creates an action with a fresh ID and timestamp.
func NewAction(kind ActionKind) Action {
	return Action{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: time.Now(),
	}
}

// ParseAction turns a line of input into an action.
// An empty line is a tap.
func ParseAction(s string) (Action, error) {
	switch kind := ActionKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case "", ActionTap:
		return NewAction(ActionTap), nil
	case ActionReset, ActionQuit:
		return NewAction(kind), nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}
