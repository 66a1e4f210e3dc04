package counter

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/dmitrymomot/reactive/core/logger"
)

// Drive reads one action per line from r and sends it to the model.
// It returns nil on end of input, on a quit action or when ctx is done.
// Unknown input is logged and skipped. The reader goroutine ends with Drive,
// unless it is blocked inside r.Read; closing r releases it.
func (m *Model) Drive(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errCh <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errCh:
					return err
				default:
					return nil
				}
			}

			action, err := ParseAction(line)
			if errors.Is(err, ErrUnknownAction) {
				m.logger.Warn("skipping input", logger.Component("counter.input"), logger.Error(err))
				continue
			}
			if action.Kind == ActionQuit {
				return nil
			}
			m.Send(action)
		}
	}
}
