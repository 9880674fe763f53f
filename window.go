package pullstreams

// window is a bounded FIFO that evicts its oldest element when a new one is pushed while full.
// Its storage grows with the elements pushed, up to capacity.
// It is not safe for concurrent use.
type window[T any] struct {
	buf      []T
	capacity int
	head     int
	len      int
}

func newWindow[T any](capacity int) *window[T] {
	return &window[T]{capacity: capacity}
}

// push appends elem, evicting the oldest element if the window is full.
func (w *window[T]) push(elem T) {
	if w.len < w.capacity {
		if w.len == len(w.buf) {
			w.grow(elem)
			return
		}

		w.buf[(w.head+w.len)%len(w.buf)] = elem
		w.len++

		return
	}

	w.buf[w.head] = elem
	w.head = (w.head + 1) % len(w.buf)
}

// grow appends elem to a full buf, unwrapping it first so that the oldest element is at index 0.
func (w *window[T]) grow(elem T) {
	if w.head != 0 {
		buf := make([]T, 0, len(w.buf)+1)
		buf = append(buf, w.buf[w.head:]...)
		buf = append(buf, w.buf[:w.head]...)

		w.buf = buf
		w.head = 0
	}

	w.buf = append(w.buf, elem)
	w.len++
}

// shift removes and returns the oldest element.
func (w *window[T]) shift() (T, bool) {
	var zero T

	if w.len == 0 {
		return zero, false
	}

	elem := w.buf[w.head]
	w.buf[w.head] = zero
	w.head = (w.head + 1) % len(w.buf)
	w.len--

	return elem, true
}

// size returns the number of elements in the window.
func (w *window[T]) size() int {
	return w.len
}
