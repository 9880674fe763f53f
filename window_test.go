package pullstreams

import (
	"testing"

	"github.com/matryer/is"
)

func TestWindow(t *testing.T) {
	is := is.New(t)

	w := newWindow[int](3)

	for i := 1; i <= 5; i++ {
		w.push(i)
	}

	is.Equal(w.size(), 3)

	result := []int{}
	for {
		elem, ok := w.shift()
		if !ok {
			break
		}

		result = append(result, elem)
	}

	is.Equal(result, []int{3, 4, 5})
	is.Equal(w.size(), 0)
}

func TestWindow_Interleaved(t *testing.T) {
	is := is.New(t)

	w := newWindow[string](2)

	w.push("a")
	w.push("b")

	elem, ok := w.shift()
	is.True(ok)
	is.Equal(elem, "a")

	w.push("c")
	w.push("d")

	elem, _ = w.shift()
	is.Equal(elem, "c")

	elem, _ = w.shift()
	is.Equal(elem, "d")

	_, ok = w.shift()
	is.True(!ok)
}

func TestWindow_GrowAfterWrap(t *testing.T) {
	is := is.New(t)

	w := newWindow[int](3)

	w.push(1)
	w.push(2)

	_, _ = w.shift()

	w.push(3) // wraps around before the window reached its capacity
	w.push(4)
	w.push(5) // full: evicts 2

	result := []int{}
	for {
		elem, ok := w.shift()
		if !ok {
			break
		}

		result = append(result, elem)
	}

	is.Equal(result, []int{3, 4, 5})
}
