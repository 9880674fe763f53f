package pullstreams

import (
	"context"
	"errors"

	"golang.org/x/exp/constraints"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type ConsumerFunc[T any] func(ctx context.Context, elem T, index uint64) error

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type AccumulatorFunc[T any, A any] func(ctx context.Context, elem T, index uint64, acc A) (A, error)

// ForEach calls each for each element produced by s, in order, until s is exhausted.
// If each returns an error, s is terminated and the error is returned. ErrShortCircuit is not reported,
// but an error terminating s is.
// If ctx is done before s is exhausted, it returns the cause of the cancelation.
func ForEach[T any](ctx context.Context, s *Stream[T], each ConsumerFunc[T]) error {
	index := uint64(0)

	for {
		if err := contextErr(ctx); err != nil {
			return err
		}

		res, err := s.Next(ctx)
		if err != nil {
			return err
		}

		if res.Done {
			return nil
		}

		if err := each(ctx, res.Value, index); err != nil {
			var zero T
			_, returnErr := s.Return(ctx, zero)

			if errors.Is(err, ErrShortCircuit) {
				return returnErr
			}

			return err
		}

		index++
	}
}

// Reduce calls reduce for each element produced by s, folding it into accumulator acc, returning the final
// accumulator.
// If s or reduce fail, it returns the accumulator so far, and the error.
func Reduce[T any, A any](ctx context.Context, s *Stream[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := ForEach(ctx, s, func(ctx context.Context, elem T, index uint64) error {
		var err error
		acc, err = reduce(ctx, elem, index, acc)

		return err
	})

	return acc, err
}

// Collect returns all elements produced by s, in order.
// The returned slice is empty, but not nil, if s produces no elements.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	return Reduce(ctx, s, []T{}, CollectSlice[T]())
}

// Drain consumes all elements produced by s, discarding them.
func Drain[T any](ctx context.Context, s *Stream[T]) error {
	return ForEach(ctx, s, func(_ context.Context, _ T, _ uint64) error {
		return nil
	})
}

// First pulls exactly one element from s and returns it.
// It returns false if s is already exhausted. The remaining elements are left in s.
func First[T any](ctx context.Context, s *Stream[T]) (T, bool, error) {
	var zero T

	if err := contextErr(ctx); err != nil {
		return zero, false, err
	}

	res, err := s.Next(ctx)
	if err != nil {
		return zero, false, err
	}

	if res.Done {
		return zero, false, nil
	}

	return res.Value, true, nil
}

// Last consumes all elements produced by s and returns the last one.
// It returns false if s produces no elements.
func Last[T any](ctx context.Context, s *Stream[T]) (T, bool, error) {
	var (
		last T
		seen bool
	)

	err := ForEach(ctx, s, func(_ context.Context, elem T, _ uint64) error {
		last = elem
		seen = true

		return nil
	})

	return last, seen, err
}

// Count returns the number of elements produced by s.
func Count[T any](ctx context.Context, s *Stream[T]) (uint64, error) {
	count := uint64(0)

	err := ForEach(ctx, s, func(_ context.Context, _ T, _ uint64) error {
		count++
		return nil
	})

	return count, err
}

// Sum returns the sum of all elements produced by s.
func Sum[T constraints.Integer | constraints.Float](ctx context.Context, s *Stream[T]) (T, error) {
	return Reduce(ctx, s, T(0), func(_ context.Context, elem T, _ uint64, acc T) (T, error) {
		return acc + elem, nil
	})
}

// AnyMatch returns true as soon as pred returns true for an element produced by s, that is, an element
// matches. If an element matches, s is terminated.
func AnyMatch[T any](ctx context.Context, s *Stream[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := ForEach(ctx, s, func(ctx context.Context, elem T, index uint64) error {
		match, err := pred(ctx, elem, index)
		if err != nil {
			return err
		}

		if !match {
			return nil
		}

		anyMatch = true

		return ErrShortCircuit
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements produced by s, that is, all elements match.
// If any element does not match, s is terminated.
func AllMatch[T any](ctx context.Context, s *Stream[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := ForEach(ctx, s, func(ctx context.Context, elem T, index uint64) error {
		match, err := pred(ctx, elem, index)
		if err != nil {
			return err
		}

		if match {
			return nil
		}

		allMatch = false

		return ErrShortCircuit
	})

	return allMatch, err
}
