// Package dispatch provides execution contexts for redirected delivery.
//
// Immediate runs work on the caller's goroutine. Queue is a serialized FIFO
// executor with its own goroutine and an errgroup-friendly lifecycle:
//
//	ui := dispatch.NewQueue(
//		dispatch.WithQueueName("ui"),
//		dispatch.WithQueueLogger(logger),
//	)
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(ui.Run(ctx))
//
//	ui.Dispatch(func() { render() })
package dispatch
