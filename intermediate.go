package pullstreams

import (
	"context"

	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type MapperFunc[T any, U any] func(ctx context.Context, elem T, index uint64) (U, error)

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type PredicateFunc[T any] func(ctx context.Context, elem T, index uint64) (bool, error)

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(_ context.Context, elem T, _ uint64) (U, error) {
		return mapp(elem), nil
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred Function[T, bool]) PredicateFunc[T] {
	return func(_ context.Context, elem T, _ uint64) (bool, error) {
		return pred(elem), nil
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, elem T, _ uint64) (T, error) {
		return elem, nil
	}
}

// Map returns a stream that calls mapp for each element produced by s, mapping it to type U.
// If mapp returns an error, the returned stream finishes and the error is returned by the pull that
// called mapp.
func Map[T any, U any](s *Stream[T], mapp MapperFunc[T, U]) *Stream[U] {
	return New[U](&mapStage[T, U]{
		stage: stage[T, U]{up: s},
		mapp:  mapp,
	})
}

// Filter returns a stream that calls filter for each element produced by s, and only produces elements
// for which filter returns true.
// The index passed to filter counts every element produced by s, whether it was accepted or not.
func Filter[T any](s *Stream[T], filter PredicateFunc[T]) *Stream[T] {
	return New[T](&filterStage[T]{
		stage:  stage[T, T]{up: s},
		filter: filter,
	})
}

// Peek returns a stream that calls peek for each element produced by s, in order, and produces the same
// elements.
func Peek[T any](s *Stream[T], peek ConsumerFunc[T]) *Stream[T] {
	return Map(s, func(ctx context.Context, elem T, index uint64) (T, error) {
		return elem, peek(ctx, elem, index)
	})
}

// Skip returns a stream that produces the same elements as s, in order, skipping the first num elements.
// If s produces fewer than num elements, the returned stream is empty.
// It returns a ValidationError if num is negative.
func Skip[T any](s *Stream[T], num int) (*Stream[T], error) {
	if err := nonNegative("skip", "num", num); err != nil {
		return nil, err
	}

	return New[T](&skipStage[T]{
		stage:     stage[T, T]{up: s},
		remaining: num,
	}), nil
}

// Take returns a stream that produces the same elements as s, in order, up to max elements.
// Once max elements have been produced, the returned stream finishes without pulling s again,
// leaving s positioned at the next element.
//
// If max is 0, s itself is returned: no stage is added and nothing is pulled.
// It returns a ValidationError if max is negative.
func Take[T any](s *Stream[T], max int) (*Stream[T], error) {
	if err := nonNegative("take", "max", max); err != nil {
		return nil, err
	}

	if max == 0 {
		return s, nil
	}

	return New[T](&takeStage[T]{
		stage:     stage[T, T]{up: s},
		remaining: max,
	}), nil
}

// TakeLast returns a stream that produces the last num elements of s, in order.
// All of s is consumed before the first element is produced, keeping a window of at most num elements.
// If s produces fewer than num elements, all of them are produced.
// It returns a ValidationError if num is not positive.
func TakeLast[T any](s *Stream[T], num int) (*Stream[T], error) {
	if err := positive("takeLast", "num", num); err != nil {
		return nil, err
	}

	return New[T](&takeLastStage[T]{
		stage:  stage[T, T]{up: s},
		window: newWindow[T](num),
	}), nil
}

// Sort returns a stream that consumes all elements of s, sorts them using less, and produces them in
// sorted order.
func Sort[T any](s *Stream[T], less LessFunc[T]) *Stream[T] {
	return New[T](&sortStage[T]{
		stage: stage[T, T]{up: s},
		less:  less,
	})
}

type mapStage[T any, U any] struct {
	stage[T, U]

	mapp  MapperFunc[T, U]
	index uint64
}

// Next implements Source.
func (m *mapStage[T, U]) Next(ctx context.Context) (Result[U], error) {
	elem, ok, err := m.pull(ctx)
	if err != nil {
		return Result[U]{}, err
	}

	if !ok {
		return m.finish()
	}

	out, err := m.mapp(ctx, elem, m.index)
	if err != nil {
		return m.fail(ctx, err)
	}

	m.index++

	return Item(out), nil
}

type filterStage[T any] struct {
	stage[T, T]

	filter PredicateFunc[T]
	index  uint64
}

// Next implements Source.
func (f *filterStage[T]) Next(ctx context.Context) (Result[T], error) {
	for {
		elem, ok, err := f.pull(ctx)
		if err != nil {
			return Result[T]{}, err
		}

		if !ok {
			return f.finish()
		}

		match, err := f.filter(ctx, elem, f.index)
		if err != nil {
			return f.fail(ctx, err)
		}

		f.index++

		if match {
			return Item(elem), nil
		}
	}
}

type skipStage[T any] struct {
	stage[T, T]

	remaining int
}

// Next implements Source.
func (s *skipStage[T]) Next(ctx context.Context) (Result[T], error) {
	for s.remaining > 0 {
		_, ok, err := s.pull(ctx)
		if err != nil {
			return Result[T]{}, err
		}

		if !ok {
			return s.finish()
		}

		s.remaining--
	}

	elem, ok, err := s.pull(ctx)
	if err != nil {
		return Result[T]{}, err
	}

	if !ok {
		return s.finish()
	}

	return Item(elem), nil
}

type takeStage[T any] struct {
	stage[T, T]

	remaining int
}

// Next implements Source.
func (t *takeStage[T]) Next(ctx context.Context) (Result[T], error) {
	if t.remaining == 0 {
		return t.finish()
	}

	elem, ok, err := t.pull(ctx)
	if err != nil {
		return Result[T]{}, err
	}

	if !ok {
		return t.finish()
	}

	t.remaining--

	return Item(elem), nil
}

type takeLastStage[T any] struct {
	stage[T, T]

	window *window[T]
}

// Next implements Source.
func (t *takeLastStage[T]) Next(ctx context.Context) (Result[T], error) {
	if t.finished {
		return done[T](), nil
	}

	for {
		elem, ok, err := t.pull(ctx)
		if err != nil {
			return Result[T]{}, err
		}

		if !ok {
			break
		}

		t.window.push(elem)
	}

	elem, ok := t.window.shift()
	if !ok {
		return t.finish()
	}

	return Item(elem), nil
}

type sortStage[T any] struct {
	stage[T, T]

	less   LessFunc[T]
	sorted []T
}

// Next implements Source.
func (s *sortStage[T]) Next(ctx context.Context) (Result[T], error) {
	if s.finished {
		return done[T](), nil
	}

	if !s.exhausted {
		elems := []T{}

		for {
			elem, ok, err := s.pull(ctx)
			if err != nil {
				return Result[T]{}, err
			}

			if !ok {
				break
			}

			elems = append(elems, elem)
		}

		slices.SortFunc(elems, s.less)

		s.sorted = elems
	}

	if len(s.sorted) == 0 {
		return s.finish()
	}

	elem := s.sorted[0]
	s.sorted = s.sorted[1:]

	return Item(elem), nil
}
