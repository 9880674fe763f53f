package pullstreams

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

type hookCounts struct {
	starts      int
	values      []int
	errs        []error
	completions int
}

func (c *hookCounts) hooks() Hooks[int] {
	return Hooks[int]{
		OnStart: func() {
			c.starts++
		},
		OnValue: func(elem int) {
			c.values = append(c.values, elem)
		},
		OnError: func(err error) {
			c.errs = append(c.errs, err)
		},
		OnComplete: func() {
			c.completions++
		},
	}
}

func TestObserve(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	counts := hookCounts{}

	ints := Observe(Of(1, 2, 3), counts.hooks())
	is.Equal(counts.starts, 0)

	result, err := Collect(ctx, ints)
	is.NoErr(err)
	is.Equal(result, []int{1, 2, 3})

	is.Equal(counts.starts, 1)
	is.Equal(counts.values, []int{1, 2, 3})
	is.Equal(len(counts.errs), 0)
	is.Equal(counts.completions, 1)

	// terminating an exhausted stream does not complete it again
	_, err = ints.Return(ctx, 0)
	is.NoErr(err)
	is.Equal(counts.completions, 1)
}

func TestObserve_Error(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	counts := hookCounts{}

	ints := Observe(New[int](&failingSource[int]{elems: []int{1}, err: errBoom}), counts.hooks())

	_, err := Collect(ctx, ints)
	is.True(errors.Is(err, errBoom))

	is.Equal(counts.values, []int{1})
	is.Equal(len(counts.errs), 1)
	is.True(errors.Is(counts.errs[0], errBoom))
	is.Equal(counts.completions, 1)
}

func TestObserve_Return(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	counts := hookCounts{}

	spy := newSpy(1, 2, 3)

	ints := Observe(New[int](spy), counts.hooks())

	_, _, err := First(ctx, ints)
	is.NoErr(err)

	_, err = ints.Return(ctx, 0)
	is.NoErr(err)

	_, err = ints.Throw(ctx, errBoom)
	is.True(errors.Is(err, errBoom))

	is.True(spy.returned)
	is.Equal(counts.values, []int{1})
	is.Equal(counts.completions, 1)
}

func TestCombineHooks(t *testing.T) {
	is := is.New(t)

	ctx := context.Background()

	order := []string{}

	first := Hooks[int]{
		OnValue: func(int) {
			order = append(order, "first")
		},
	}

	second := Hooks[int]{
		OnValue: func(int) {
			order = append(order, "second")
		},
		OnComplete: func() {
			order = append(order, "complete")
		},
	}

	is.NoErr(Drain(ctx, Observe(Of(1, 2), CombineHooks(first, second))))

	is.Equal(order, []string{"first", "second", "first", "second", "complete"})
}
