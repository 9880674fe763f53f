package pullstreams

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/matryer/is"
)

func TestFrom(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints, err := Collect(ctx, From([]int{1, 2}, []int{}, nil, []int{3, 4, 5}))
	is.NoErr(err)
	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestFrom_Exhausted(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Of(1)

	res, err := ints.Next(ctx)
	is.NoErr(err)
	is.Equal(res, Item(1))

	for range 3 {
		res, err = ints.Next(ctx)
		is.NoErr(err)
		is.True(res.Done)
	}
}

func TestEmpty(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	count, err := Count(ctx, Empty[string]())
	is.NoErr(err)
	is.Equal(count, uint64(0))
}

func TestFromChannel(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ch := make(chan int)

	go func() {
		defer close(ch)

		for i := 1; i <= 5; i++ {
			ch <- i
		}
	}()

	ints, err := Collect(ctx, FromChannel(ch))
	is.NoErr(err)
	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestFromChannel_Cancel(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())

	ch := make(chan int)
	defer close(ch)

	ints := FromChannel(ch)

	cancel(errBoom)

	_, err := ints.Next(ctx)
	is.True(errors.Is(err, errBoom))
}

func TestFromSeq(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	seq := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	}

	ints, err := Collect(ctx, FromSeq(iter.Seq[int](seq)))
	is.NoErr(err)
	is.Equal(ints, []int{1, 2, 3})
}

func TestFromSeq_Return(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	yielded := 0
	stopped := false

	seq := func(yield func(int) bool) {
		defer func() {
			stopped = true
		}()

		for i := 0; ; i++ {
			yielded++

			if !yield(i) {
				return
			}
		}
	}

	s := FromSeq(iter.Seq[int](seq))

	elem, ok, err := First(ctx, s)
	is.NoErr(err)
	is.True(ok)
	is.Equal(elem, 0)

	res, err := s.Return(ctx, 7)
	is.NoErr(err)
	is.Equal(res, Done(7))
	is.True(stopped)
	is.Equal(yielded, 1)

	res, err = s.Next(ctx)
	is.NoErr(err)
	is.True(res.Done)
}

func TestFromSeq_Lazy(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	started := false

	seq := func(yield func(int) bool) {
		started = true
		yield(1)
	}

	s := FromSeq(iter.Seq[int](seq))
	is.True(!started)

	_, err := s.Return(ctx, 0)
	is.NoErr(err)
	is.True(!started)
}

func TestGenerate(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints, err := Take(Generate(counter()), 5)
	is.NoErr(err)

	result, err := Collect(ctx, ints)
	is.NoErr(err)
	is.Equal(result, []int{0, 1, 2, 3, 4})
}

func TestJoin(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints, err := Collect(ctx, Join(Of(1, 2), Empty[int](), Of(3, 4, 5)))
	is.NoErr(err)
	is.Equal(ints, []int{1, 2, 3, 4, 5})
}

func TestJoin_Return(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	spy1 := newSpy(1, 2)
	spy2 := newSpy(3, 4)

	ints := Join(New[int](spy1), New[int](spy2))

	elem, ok, err := First(ctx, ints)
	is.NoErr(err)
	is.True(ok)
	is.Equal(elem, 1)

	res, err := ints.Return(ctx, 9)
	is.NoErr(err)
	is.Equal(res, Done(9))

	is.True(spy1.returned)
	is.True(spy2.returned)
	is.Equal(spy2.pulls, 0)

	res, err = ints.Next(ctx)
	is.NoErr(err)
	is.True(res.Done)
}

func TestJoin_Error(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	ints := Join(Of(1), New[int](&failingSource[int]{err: errBoom}), Of(2))

	result, err := Collect(ctx, ints)
	is.Equal(result, []int{1})
	is.True(errors.Is(err, errBoom))
}
