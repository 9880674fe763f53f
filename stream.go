package pullstreams

import (
	"context"
	"iter"
)

// Stream wraps a Source and exposes the pull contract on top of it.
// Stream itself implements Source, Returner and Thrower, so a Stream can be wrapped by another Stream,
// which is how stages are composed.
type Stream[T any] struct {
	src Source[T]
}

// New returns a stream that pulls its elements from src.
func New[T any](src Source[T]) *Stream[T] {
	return &Stream[T]{src: src}
}

// Next pulls the next element from the underlying source.
func (s *Stream[T]) Next(ctx context.Context) (Result[T], error) {
	return s.src.Next(ctx)
}

// Return requests early completion of the underlying source.
// If the source does not implement Returner, Return reports completion with the zero value without
// touching the source.
func (s *Stream[T]) Return(ctx context.Context, value T) (Result[T], error) {
	ret, ok := s.src.(Returner[T])
	if !ok {
		return done[T](), nil
	}

	return ret.Return(ctx, value)
}

// Throw injects err into the underlying source.
// If the source does not implement Thrower, err is returned to the caller instead.
// A nil err is replaced by ErrAborted.
func (s *Stream[T]) Throw(ctx context.Context, err error) (Result[T], error) {
	if err == nil {
		err = ErrAborted
	}

	thr, ok := s.src.(Thrower[T])
	if !ok {
		return Result[T]{}, err
	}

	return thr.Throw(ctx, err)
}

// All returns an iterator over the remaining elements of s.
// Iteration stops at the first error, which is yielded together with the zero value.
// Breaking out of the loop early calls Return on s.
func (s *Stream[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			res, err := s.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)

				return
			}

			if res.Done {
				return
			}

			if !yield(res.Value, nil) {
				var zero T
				_, _ = s.Return(ctx, zero)

				return
			}
		}
	}
}
