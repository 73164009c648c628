package fpcoll

import (
	"context"
)

// Publisher is an asynchronous source of elements, e.g. a message subscription.
// Subscribe calls onNext for every element, in order, and returns when the
// publisher has completed (nil) or failed. If onNext returns an error, the
// publisher is expected to stop and return it.
//
// Publishers may be infinite; it is up to them (or to ctx) to end the stream.
type Publisher[T any] interface {
	Subscribe(ctx context.Context, onNext func(T) error) error
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc[T any] func(ctx context.Context, onNext func(T) error) error

// Subscribe calls f.
func (f PublisherFunc[T]) Subscribe(ctx context.Context, onNext func(T) error) error {
	return f(ctx, onNext)
}

// Drain subscribes to p and buffers every element until p completes.
// Containers are constructed from the result, never from a live publisher.
// If p fails or ctx is done, the elements received so far are discarded and
// the error is returned.
func Drain[T any](ctx context.Context, p Publisher[T]) ([]T, error) {
	var buf []T
	err := p.Subscribe(ctx, func(x T) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		buf = append(buf, x)
		return nil
	})
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// DrainChannel reads ch until it is closed. If ctx is done before,
// the elements read so far are discarded and ctx.Err() is returned.
func DrainChannel[T any](ctx context.Context, ch <-chan T) ([]T, error) {
	var buf []T
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case x, ok := <-ch:
			if !ok {
				return buf, nil
			}
			buf = append(buf, x)
		}
	}
}
