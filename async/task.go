// Package async runs fetches whose results must not be committed after the
// caller has gone away. The context is checked before the result commit, so
// a response that lands after cancellation is discarded.
package async

import "context"

type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn in a goroutine and delivers its result on the returned channel.
// If ctx is done by the time fn returns, the value is dropped and the
// context's error is delivered instead. The channel is buffered; the sender
// never blocks.
func Go[T any](ctx context.Context, fn func() (T, error)) chan Result[T] {
	out := make(chan Result[T], 1)

	go func() {
		value, err := fn()
		if ctxErr := ctx.Err(); ctxErr != nil {
			out <- Result[T]{Err: ctxErr}
			return
		}
		out <- Result[T]{Value: value, Err: err}
	}()

	return out
}
