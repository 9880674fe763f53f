package pullstreams

import "context"

// Result is the outcome of a single pull.
// If Done is true, the source is exhausted and Value carries no element
// (it may carry the value passed to Return).
type Result[T any] struct {
	Value T
	Done  bool
}

// Source produces the elements of a stream, one element per call to Next.
// Once Next has returned a Result with Done set, a well-behaved source keeps doing so on all subsequent calls.
type Source[T any] interface {
	Next(ctx context.Context) (Result[T], error)
}

// Returner is implemented by sources that support early termination.
type Returner[T any] interface {
	Return(ctx context.Context, value T) (Result[T], error)
}

// Thrower is implemented by sources that accept an error injected by the consumer.
type Thrower[T any] interface {
	Throw(ctx context.Context, err error) (Result[T], error)
}

// Item returns a Result carrying elem.
func Item[T any](elem T) Result[T] {
	return Result[T]{Value: elem}
}

// Done returns a Result that signals completion, carrying value.
func Done[T any](value T) Result[T] {
	return Result[T]{Value: value, Done: true}
}

// done returns a Result that signals completion, carrying the zero value.
func done[T any]() Result[T] {
	return Result[T]{Done: true}
}
