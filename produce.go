package pullstreams

import (
	"context"
	"iter"
)

// From returns a stream that produces the elements of the given slices, in order.
// The returned stream does not support Return: terminating it reports completion, but does not prevent
// further pulls from producing the remaining elements.
func From[T any](slices ...[]T) *Stream[T] {
	return New[T](&sliceSource[T]{slices: slices})
}

// Of returns a stream that produces elems, in order.
func Of[T any](elems ...T) *Stream[T] {
	return From(elems)
}

// Empty returns a stream that is already exhausted.
func Empty[T any]() *Stream[T] {
	return New[T](emptySource[T]{})
}

// FromChannel returns a stream that produces the elements received through ch, in order.
// The stream is exhausted once ch is closed.
func FromChannel[T any](ch <-chan T) *Stream[T] {
	return New[T](&channelSource[T]{ch: ch})
}

// FromSeq returns a stream that produces the elements of seq, in order.
// Terminating the stream, or injecting an error into it, stops seq.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	return New[T](&seqSource[T]{seq: seq})
}

// Generate returns an unbounded stream that calls gen to produce each element.
func Generate[T any](gen func() T) *Stream[T] {
	return New[T](generatorSource[T](gen))
}

// Join returns a stream that produces the elements produced by the given streams, in order.
// Terminating the returned stream terminates every given stream that is not yet exhausted.
func Join[T any](streams ...*Stream[T]) *Stream[T] {
	return New[T](&joinSource[T]{streams: streams})
}

type sliceSource[T any] struct {
	slices [][]T
	index  int
}

// Next implements Source.
func (s *sliceSource[T]) Next(ctx context.Context) (Result[T], error) {
	if err := contextErr(ctx); err != nil {
		return Result[T]{}, err
	}

	for len(s.slices) > 0 {
		if s.index < len(s.slices[0]) {
			elem := s.slices[0][s.index]
			s.index++

			return Item(elem), nil
		}

		s.slices = s.slices[1:]
		s.index = 0
	}

	return done[T](), nil
}

type emptySource[T any] struct{}

// Next implements Source.
func (emptySource[T]) Next(_ context.Context) (Result[T], error) {
	return done[T](), nil
}

type channelSource[T any] struct {
	ch <-chan T
}

// Next implements Source.
func (s *channelSource[T]) Next(ctx context.Context) (Result[T], error) {
	select {
	case elem, ok := <-s.ch:
		if !ok {
			return done[T](), nil
		}

		return Item(elem), nil

	case <-ctx.Done():
		return Result[T]{}, context.Cause(ctx)
	}
}

type seqSource[T any] struct {
	seq     iter.Seq[T]
	next    func() (T, bool)
	stopSeq func()
	stopped bool
}

// Next implements Source.
func (s *seqSource[T]) Next(ctx context.Context) (Result[T], error) {
	if s.stopped {
		return done[T](), nil
	}

	if err := contextErr(ctx); err != nil {
		return Result[T]{}, err
	}

	if s.next == nil {
		s.next, s.stopSeq = iter.Pull(s.seq)
	}

	elem, ok := s.next()
	if !ok {
		s.stop()
		return done[T](), nil
	}

	return Item(elem), nil
}

// Return implements Returner.
func (s *seqSource[T]) Return(_ context.Context, value T) (Result[T], error) {
	s.stop()
	return Done(value), nil
}

// Throw implements Thrower.
func (s *seqSource[T]) Throw(_ context.Context, err error) (Result[T], error) {
	s.stop()
	return Result[T]{}, err
}

func (s *seqSource[T]) stop() {
	s.stopped = true

	if s.stopSeq != nil {
		s.stopSeq()
	}
}

type generatorSource[T any] func() T

// Next implements Source.
func (gen generatorSource[T]) Next(ctx context.Context) (Result[T], error) {
	if err := contextErr(ctx); err != nil {
		return Result[T]{}, err
	}

	return Item(gen()), nil
}

type joinSource[T any] struct {
	streams []*Stream[T]
}

// Next implements Source.
func (j *joinSource[T]) Next(ctx context.Context) (Result[T], error) {
	for len(j.streams) > 0 {
		res, err := j.streams[0].Next(ctx)
		if err != nil {
			return Result[T]{}, err
		}

		if !res.Done {
			return res, nil
		}

		j.streams = j.streams[1:]
	}

	return done[T](), nil
}

// Return implements Returner.
func (j *joinSource[T]) Return(ctx context.Context, value T) (Result[T], error) {
	streams := j.streams
	j.streams = nil

	var zero T

	for _, s := range streams {
		if _, err := s.Return(ctx, zero); err != nil {
			return Result[T]{}, err
		}
	}

	return Done(value), nil
}
