// Package counter is a small application built on the subject package: a
// model that counts taps until a limit, and a presenter that renders it.
//
// The model owns an action intake (Broadcast), a count (Property), a title
// (Stateful) and a status (Fallible). When the limit is reached the status
// fails with ErrLimitReached and the title completes. The presenter redirects
// deliveries to a dispatch context, renders labels, and releases all of its
// tokens on Detach.
//
//	m := counter.New(counter.DefaultConfig())
//	defer m.Close()
//
//	p := counter.NewPresenter(os.Stdout)
//	p.Attach(m, dispatch.Immediate)
//	defer p.Detach()
//
//	m.Send(counter.NewAction(counter.ActionTap))
package counter
