package pullstreams

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the error wrapped by every ValidationError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShape is the error wrapped by every ShapeError.
	ErrShape = errors.New("element is not a group")

	// ErrShortCircuit is a generic error used by consumers to stop a terminal operation early.
	// Terminal operations do not report it as a failure.
	ErrShortCircuit = errors.New("short circuit")

	// ErrAborted is injected by Throw when it is called with a nil error.
	ErrAborted = errors.New("stream aborted")
)

// A ValidationError reports an invalid argument given to a stage constructor.
// It is returned before anything is pulled from the stream.
type ValidationError struct {
	// Op is the name of the stage that rejected the argument.
	Op string

	// Field is the name of the rejected argument.
	Field string

	// Value is the rejected value.
	Value any

	// Reason describes the constraint that was violated.
	Reason string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %v %s", e.Op, e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidArgument.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// A ShapeError reports an element that is not a group (a slice or an array) where a stage expected one.
// It is returned by the pull that received the offending element.
type ShapeError struct {
	// Op is the name of the stage that received the element.
	Op string

	// Index is the 0-based index of the element, in the order produced by the upstream stream.
	Index uint64

	// Value is the offending element.
	Value any
}

// Error implements error.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: element %d of type %T is not a group", e.Op, e.Index, e.Value)
}

// Unwrap returns ErrShape.
func (e *ShapeError) Unwrap() error {
	return ErrShape
}

func positive(op string, field string, value int) error {
	if value > 0 {
		return nil
	}

	return &ValidationError{Op: op, Field: field, Value: value, Reason: "must be positive"}
}

func nonNegative(op string, field string, value int) error {
	if value >= 0 {
		return nil
	}

	return &ValidationError{Op: op, Field: field, Value: value, Reason: "must not be negative"}
}
