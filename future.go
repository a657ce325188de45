package enterprise

import "context"

// Future is the pending result of an asynchronous call. It resolves exactly
// once, to a value or an error, and may be awaited from any goroutine.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolvedFuture returns a Future that is already complete.
func resolvedFuture[T any](value T, err error) *Future[T] {
	f := newFuture[T]()
	f.resolve(value, err)
	return f
}

func (f *Future[T]) resolve(value T, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the call has finished and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitContext is Await bounded by ctx. When ctx ends first the call keeps
// running under its own context and a transport error carrying ctx's
// cancellation cause is returned.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, transportError(ctx, ctx.Err(), "stopped waiting for result")
	}
}

// mapFuture returns a Future resolving to fn applied to the value of f.
// Errors pass through unchanged.
func mapFuture[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	out := newFuture[U]()
	go func() {
		v, err := f.Await()
		if err != nil {
			var zero U
			out.resolve(zero, err)
			return
		}
		out.resolve(fn(v), nil)
	}()
	return out
}
