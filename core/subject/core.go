package subject

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"weak"

	"github.com/petermattis/goid"
)

type deliveryKind uint8

const (
	deliverValue deliveryKind = iota
	deliverCompletion
)

// entry is one registered subscriber. Entries are owned by the core table;
// tokens refer to them by id only.
type entry[T, F any] struct {
	id         uint64
	joined     uint64 // sequence number at registration
	onValue    func(T)
	onComplete func(Completion[F])
	cancelled  atomic.Bool
	finished   atomic.Bool
}

type delivery[T, F any] struct {
	kind       deliveryKind
	ticket     uint64 // position in the delivery queue
	seq        uint64
	value      T
	completion Completion[F]
	target     *entry[T, F] // nil means fan-out to the table
}

// core is the multicast engine shared by every subject variant.
//
// Producer calls append to a FIFO queue and then take a delivery turn on their
// own goroutine. Only one goroutine delivers at a time; a caller from another
// goroutine waits for the running turn and then delivers whatever is left up
// to its own item, so every call returns after its own delivery has run.
// A turn is bounded: it stops at the caller's item plus the items its own
// callbacks queue. A callback that calls back into the same subject only
// enqueues; the running turn delivers it after the current fan-out.
// Callbacks are never invoked with mu held.
type core[T, F any] struct {
	mu       sync.Mutex
	idle     *sync.Cond
	entries  []*entry[T, F]
	pending  []delivery[T, F]
	nextID   uint64
	ticket   uint64
	seq      uint64
	draining bool
	owner    int64  // goroutine id of the delivering turn
	mark     uint64 // last ticket of the delivering turn
	done     bool
	closed   bool
	result   Completion[F]

	stateful bool
	value    T

	name   string
	logger *slog.Logger
}

func newCore[T, F any](stateful bool, initial T, opts []Option) *core[T, F] {
	o := newOptions(opts)
	c := &core[T, F]{
		stateful: stateful,
		value:    initial,
		name:     o.name,
		logger:   o.logger,
	}
	c.idle = sync.NewCond(&c.mu)
	return c
}

func (c *core[T, F]) subscribe(onValue func(T), onComplete func(Completion[F])) *Token {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return cancelledToken()
	}

	c.nextID++
	e := &entry[T, F]{
		id:         c.nextID,
		joined:     c.seq,
		onValue:    onValue,
		onComplete: onComplete,
	}

	var last uint64
	// A failed stream hands out no values, not even the stored one.
	if c.stateful && !c.result.failed {
		last = c.enqueue(delivery[T, F]{kind: deliverValue, value: c.value, target: e})
	}
	if c.done {
		// Terminal subjects replay the completion and keep no live slot.
		last = c.enqueue(delivery[T, F]{kind: deliverCompletion, completion: c.result, target: e})
	} else {
		c.entries = append(c.entries, e)
	}
	token := newToken(c, e.id)

	if last == 0 {
		c.mu.Unlock()
		return token
	}
	c.flush(last)
	return token
}

func (c *core[T, F]) emit(v T) {
	c.mu.Lock()
	if c.done || c.closed {
		c.mu.Unlock()
		return
	}
	if c.stateful {
		c.value = v
	}
	c.seq++
	c.flush(c.enqueue(delivery[T, F]{kind: deliverValue, seq: c.seq, value: v}))
}

func (c *core[T, F]) complete(result Completion[F]) {
	c.mu.Lock()
	if c.done || c.closed {
		c.mu.Unlock()
		return
	}
	c.done = true
	c.result = result
	c.seq++
	c.flush(c.enqueue(delivery[T, F]{kind: deliverCompletion, seq: c.seq, completion: result}))
}

// enqueue appends d to the queue and returns its ticket. mu must be held.
func (c *core[T, F]) enqueue(d delivery[T, F]) uint64 {
	c.ticket++
	d.ticket = c.ticket
	c.pending = append(c.pending, d)
	return c.ticket
}

func (c *core[T, F]) current() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *core[T, F]) completion() (Completion[F], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result, c.done
}

func (c *core[T, F]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// close releases every entry without delivering a completion.
func (c *core[T, F]) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	for _, e := range c.entries {
		e.cancelled.Store(true)
	}
	for _, d := range c.pending {
		if d.target != nil {
			d.target.cancelled.Store(true)
		}
	}
	c.entries = nil
	c.pending = nil
}

// remove detaches the entry with the given id. Entries still waiting for a
// queued replay are marked so the replay is skipped.
func (c *core[T, F]) remove(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.entries {
		if e.id == id {
			e.cancelled.Store(true)
			c.entries = append(c.entries[:i:i], c.entries[i+1:]...)
			break
		}
	}
	for _, d := range c.pending {
		if d.target != nil && d.target.id == id {
			d.target.cancelled.Store(true)
		}
	}
}

// flush runs a delivery turn that ends once ticket has been delivered.
// mu must be held on entry; it is released on return.
func (c *core[T, F]) flush(ticket uint64) {
	gid := goid.Get()
	if c.draining && c.owner == gid {
		// Called from a callback of the running turn.
		c.mark = max(c.mark, ticket)
		c.mu.Unlock()
		return
	}

	for c.draining {
		c.idle.Wait()
	}
	if len(c.pending) == 0 || c.pending[0].ticket > ticket {
		// An earlier turn already delivered it.
		c.mu.Unlock()
		return
	}

	c.draining = true
	c.owner = gid
	c.mark = ticket
	c.mu.Unlock()

	defer c.release()
	for {
		d, targets, ok := c.next()
		if !ok {
			return
		}
		for _, e := range targets {
			c.deliver(e, d)
		}
	}
}

// next pops the head of the queue if it belongs to the running turn and
// resolves its targets.
func (c *core[T, F]) next() (delivery[T, F], []*entry[T, F], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 || c.pending[0].ticket > c.mark {
		return delivery[T, F]{}, nil, false
	}
	d := c.pending[0]
	c.pending[0] = delivery[T, F]{}
	c.pending = c.pending[1:]
	if len(c.pending) == 0 {
		c.pending = nil
	}

	if d.target != nil {
		return d, []*entry[T, F]{d.target}, true
	}

	targets := make([]*entry[T, F], 0, len(c.entries))
	for _, e := range c.entries {
		if e.joined < d.seq {
			targets = append(targets, e)
		}
	}
	if d.kind == deliverCompletion {
		c.entries = nil
	}
	return d, targets, true
}

// release ends the running turn. It also runs when a callback exits the
// goroutine, so the subject never stays locked in a turn.
func (c *core[T, F]) release() {
	c.mu.Lock()
	c.draining = false
	c.owner = 0
	c.mark = 0
	c.mu.Unlock()
	c.idle.Broadcast()
}

func (c *core[T, F]) deliver(e *entry[T, F], d delivery[T, F]) {
	if e.cancelled.Load() {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("subscriber callback panicked",
				slog.String("component", c.name),
				slog.Uint64("subscriber_id", e.id),
				slog.Any("panic", r))
		}
	}()

	switch d.kind {
	case deliverValue:
		if e.onValue != nil {
			e.onValue(d.value)
		}
	case deliverCompletion:
		if e.finished.CompareAndSwap(false, true) && e.onComplete != nil {
			e.onComplete(d.completion)
		}
	}
}

// newToken returns a token that removes entry id from c when cancelled.
// The token keeps only a weak reference, so it never extends the lifetime
// of the subject.
func newToken[T, F any](c *core[T, F], id uint64) *Token {
	ref := weak.Make(c)
	return &Token{release: func() {
		if c := ref.Value(); c != nil {
			c.remove(id)
		}
	}}
}
