package subject

import (
	"sync"
	"sync/atomic"
)

// Token is the handle of one subscription.
// Cancelling it detaches the subscriber; it is safe to cancel more than once,
// concurrently with an emit, and after the subject completed or was closed.
type Token struct {
	once      sync.Once
	cancelled atomic.Bool
	release   func()
}

// NewToken returns a token that runs release once on the first Cancel.
// Operators built outside this package use it to tie their own cleanup to a
// subscription.
func NewToken(release func()) *Token {
	return &Token{release: release}
}

func cancelledToken() *Token {
	t := &Token{}
	t.Cancel()
	return t
}

// Cancel detaches the subscriber. Only the first call has an effect.
func (t *Token) Cancel() {
	if t == nil {
		return
	}
	t.once.Do(func() {
		t.cancelled.Store(true)
		if t.release != nil {
			t.release()
			t.release = nil
		}
	})
}

// Cancelled reports whether Cancel was called.
func (t *Token) Cancelled() bool {
	return t == nil || t.cancelled.Load()
}

// Bag collects tokens so they can be released together, typically when the
// owner detaches. The zero value is ready to use.
type Bag struct {
	mu     sync.Mutex
	tokens []*Token
}

// Add stores tokens in the bag. Nil tokens are ignored.
func (b *Bag) Add(tokens ...*Token) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, t := range tokens {
		if t != nil {
			b.tokens = append(b.tokens, t)
		}
	}
}

// Cancel cancels every stored token and empties the bag.
// The bag can be reused afterwards.
func (b *Bag) Cancel() {
	b.mu.Lock()
	tokens := b.tokens
	b.tokens = nil
	b.mu.Unlock()

	for _, t := range tokens {
		t.Cancel()
	}
}

// Len returns the number of stored tokens.
func (b *Bag) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tokens)
}
