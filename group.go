package pullstreams

import (
	"context"
	"reflect"

	"golang.org/x/exp/slices"
)

// Pack returns a stream that groups the elements of s into slices of exactly size elements, in order.
// A group is produced as soon as it is full. When s is exhausted, the remaining elements (if any) are
// produced as one final, shorter group. An empty s produces no groups.
// It returns a ValidationError if size is not positive.
func Pack[T any](s *Stream[T], size int) (*Stream[[]T], error) {
	if err := positive("pack", "size", size); err != nil {
		return nil, err
	}

	return New[[]T](&packStage[T]{
		stage: stage[T, []T]{up: s},
		size:  size,
	}), nil
}

// Repack returns a stream that regroups the groups produced by s into slices of exactly size elements.
// Consecutive groups are concatenated and re-sliced; full groups are produced greedily, and the remaining
// elements (if any) are produced as one final, shorter group once s is exhausted.
// It returns a ValidationError if size is not positive.
func Repack[T any](s *Stream[[]T], size int) (*Stream[[]T], error) {
	if err := positive("repack", "size", size); err != nil {
		return nil, err
	}

	return New[[]T](newRegroupStage(s, size, sliceGroup[T])), nil
}

// Flat returns a stream that produces every element of every group produced by s, in order.
// Exactly one level of nesting is removed.
func Flat[T any](s *Stream[[]T]) *Stream[T] {
	return New[T](newFlatStage(s, sliceGroup[T]))
}

// FlatMap returns a stream that maps each element produced by s to a slice using mapp, and produces the
// elements of those slices, in order.
func FlatMap[T any, U any](s *Stream[T], mapp MapperFunc[T, []U]) *Stream[U] {
	return Flat(Map(s, mapp))
}

// RepackAny is like Repack, but accepts a stream of arbitrary elements.
// Every element produced by s must be a slice or an array; otherwise the pull that received it fails with
// a ShapeError. Groups produced by the returned stream are of type []any.
// It returns a ValidationError if size is not positive.
func RepackAny(s *Stream[any], size int) (*Stream[any], error) {
	if err := positive("repack", "size", size); err != nil {
		return nil, err
	}

	groups := New[[]any](newRegroupStage(s, size, anyGroup("repack")))

	return Map(groups, FuncMapper(func(group []any) any {
		return group
	})), nil
}

// FlatAny is like Flat, but accepts a stream of arbitrary elements.
// Every element produced by s must be a slice or an array; otherwise the pull that received it fails with
// a ShapeError. Elements produced before the offending one remain valid.
func FlatAny(s *Stream[any]) *Stream[any] {
	return New[any](newFlatStage(s, anyGroup("flat")))
}

// groupFunc returns the elements of group, which is the index-th element of the upstream stream.
type groupFunc[G any, T any] func(group G, index uint64) ([]T, error)

func sliceGroup[T any](group []T, _ uint64) ([]T, error) {
	return group, nil
}

// anyGroup returns a groupFunc that accepts any slice or array.
func anyGroup(op string) groupFunc[any, any] {
	return func(group any, index uint64) ([]any, error) {
		if elems, ok := group.([]any); ok {
			return elems, nil
		}

		val := reflect.ValueOf(group)
		if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
			return nil, &ShapeError{Op: op, Index: index, Value: group}
		}

		elems := make([]any, val.Len())
		for i := range elems {
			elems[i] = val.Index(i).Interface()
		}

		return elems, nil
	}
}

type packStage[T any] struct {
	stage[T, []T]

	size int
	buf  []T
}

// Next implements Source.
func (p *packStage[T]) Next(ctx context.Context) (Result[[]T], error) {
	if p.finished {
		return done[[]T](), nil
	}

	for {
		elem, ok, err := p.pull(ctx)
		if err != nil {
			return Result[[]T]{}, err
		}

		if !ok {
			break
		}

		p.buf = append(p.buf, elem)
		if len(p.buf) == p.size {
			return Item(p.flush()), nil
		}
	}

	if len(p.buf) > 0 {
		return Item(p.flush()), nil
	}

	return p.finish()
}

func (p *packStage[T]) flush() []T {
	group := p.buf
	p.buf = nil

	return group
}

type regroupStage[G any, T any] struct {
	stage[G, []T]

	size  int
	group groupFunc[G, T]
	index uint64
	buf   []T
}

func newRegroupStage[G any, T any](s *Stream[G], size int, group groupFunc[G, T]) *regroupStage[G, T] {
	return &regroupStage[G, T]{
		stage: stage[G, []T]{up: s},
		size:  size,
		group: group,
	}
}

// Next implements Source.
func (r *regroupStage[G, T]) Next(ctx context.Context) (Result[[]T], error) {
	if r.finished {
		return done[[]T](), nil
	}

	for len(r.buf) < r.size {
		group, ok, err := r.pull(ctx)
		if err != nil {
			return Result[[]T]{}, err
		}

		if !ok {
			break
		}

		elems, err := r.group(group, r.index)
		if err != nil {
			return r.fail(ctx, err)
		}

		r.index++

		r.buf = append(r.buf, elems...)
	}

	if len(r.buf) >= r.size {
		out := slices.Clone(r.buf[:r.size])
		r.buf = append(r.buf[:0], r.buf[r.size:]...)

		return Item(out), nil
	}

	if len(r.buf) > 0 {
		out := r.buf
		r.buf = nil

		return Item(out), nil
	}

	return r.finish()
}

type flatStage[G any, T any] struct {
	stage[G, T]

	group   groupFunc[G, T]
	index   uint64
	pending []T
}

func newFlatStage[G any, T any](s *Stream[G], group groupFunc[G, T]) *flatStage[G, T] {
	return &flatStage[G, T]{
		stage: stage[G, T]{up: s},
		group: group,
	}
}

// Next implements Source.
func (f *flatStage[G, T]) Next(ctx context.Context) (Result[T], error) {
	if f.finished {
		return done[T](), nil
	}

	for len(f.pending) == 0 {
		group, ok, err := f.pull(ctx)
		if err != nil {
			return Result[T]{}, err
		}

		if !ok {
			return f.finish()
		}

		elems, err := f.group(group, f.index)
		if err != nil {
			return f.fail(ctx, err)
		}

		f.index++

		f.pending = elems
	}

	elem := f.pending[0]
	f.pending = f.pending[1:]

	return Item(elem), nil
}
