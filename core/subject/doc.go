// Package subject provides generic multicast primitives: values that act as
// event sinks for a single producer and as event sources for any number of
// subscribers.
//
// # Variants
//
// Three independent subject types exist:
//
//   - Broadcast[T]: fire-and-forget stream, nothing is replayed.
//   - Stateful[T]: always holds a current value, replayed to new subscribers. Cannot fail.
//   - Fallible[T, F]: like Stateful, plus a typed failure that ends the stream.
//
// Non-fallible variants complete with Completion[Never]. They expose Complete
// but no Fail, so a failure cannot reach their subscribers.
//
// # Basic Usage
//
//	status := subject.NewFallible[string, error]("---")
//	defer status.Close()
//
//	token := status.Subscribe(
//		func(v string) { fmt.Println("status:", v) },
//		func(c subject.Completion[error]) {
//			if err, failed := c.Failure(); failed {
//				fmt.Println("failed:", err)
//			}
//		},
//	)
//	defer token.Cancel()
//
//	status.Emit("X")                     // status: X
//	status.Fail(errors.New("exhausted")) // failed: exhausted
//	status.Emit("Y")                     // ignored
//
// # Completion
//
// Complete and Fail move a subject to its terminal state exactly once. Later
// terminal calls and later emits are silently ignored. Subscribers registered
// after that receive the stored completion immediately and hold no live slot.
// A stateful subject that finished successfully replays its value first; a
// failed one delivers only the failure.
//
// Close is teardown, not completion: subscribers are released and no
// completion callback runs.
//
// # Operators
//
// Operators are functions over Source and compose by nesting, left to right
// from the innermost call:
//
//	token := subject.Sink(
//		subject.ObserveOn(
//			subject.Map(count.Subject(), strconv.Itoa),
//			uiQueue,
//		),
//		func(s string) { label.SetText(s) },
//		nil,
//	)
//
// Assign is the declarative terminal: it writes values into a target and
// deliberately drops completions. Use Sink when the completion matters.
//
// # Ordering and Re-entrancy
//
// Each subscriber observes deliveries in exactly the order they were produced.
// Emit, Complete, Fail and Subscribe deliver synchronously on the caller's
// goroutine and return once their own delivery, including the replay of a
// stateful subject, has run. A callback that calls back into the same subject
// does not recurse: the nested call is queued and delivered after the current
// fan-out finishes, before the outer call returns.
//
// Only one goroutine delivers for a subject at a time. A call from another
// goroutine waits for the running delivery to end and then delivers its own
// item. A delivery never takes on work queued by other goroutines after its
// own item, so a steady producer cannot keep another caller busy.
//
// A callback must not wait for another goroutine that calls into the same
// subject, and two subjects must not feed each other from different
// goroutines: both deadlock. Route one direction through ObserveOn with a
// dispatch.Queue instead.
//
// # Thread Safety
//
// All types are safe for concurrent use. A Token may be cancelled while an emit
// is in flight; the subscriber is then skipped if it was not reached yet, and
// never receives a delivery twice. Tokens hold only a weak reference to their
// subject.
package subject
