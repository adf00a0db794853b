// Package workers runs client operations in the background and delivers
// their outcome exactly once.
//
// A [Future] is created by [Go]. Its result can be consumed by blocking
// ([Future.Await]), by selecting on [Future.Done], or by registering a
// callback with [Future.Then]. Each registered callback fires exactly once,
// whether it was registered before or after completion.
package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic is wrapped into the result of an operation that panicked.
var ErrPanic = errors.New("operation panicked")

// Future holds the eventual result of one background operation.
type Future[T any] struct {
	done chan struct{}

	mu        sync.Mutex
	completed bool
	value     T
	err       error
	callbacks []func(T, error)
}

// Go starts fn in a new goroutine with ctx and returns a [Future] for its
// result. A panic in fn is recovered and reported as an error wrapping
// [ErrPanic], so the future always completes.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		var (
			value T
			err   error
		)
		defer func() {
			if r := recover(); r != nil {
				var zero T
				value, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
			}
			f.complete(value, err)
		}()

		value, err = fn(ctx)
	}()

	return f
}

// complete stores the result and runs the pending callbacks. Only the first
// call has an effect.
func (f *Future[T]) complete(value T, err error) {
	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		return
	}
	f.completed = true
	f.value, f.err = value, err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb(value, err)
	}
}

// Done returns a channel that is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is available or ctx is done. In the latter
// case it returns ctx.Err(); the operation keeps running with its own
// context and its result is still delivered to callbacks.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		f.mu.Lock()
		defer f.mu.Unlock()
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then registers cb to receive the result. If the future has already
// completed, cb runs immediately on the calling goroutine; otherwise it runs
// on the operation's goroutine after completion. Then returns f for
// chaining.
func (f *Future[T]) Then(cb func(T, error)) *Future[T] {
	if cb == nil {
		return f
	}

	f.mu.Lock()
	if !f.completed {
		f.callbacks = append(f.callbacks, cb)
		f.mu.Unlock()
		return f
	}
	value, err := f.value, f.err
	f.mu.Unlock()

	cb(value, err)
	return f
}
