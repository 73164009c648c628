package fpcoll

import (
	"errors"
	"fmt"
)

// Errors returned by containers and views of this module. Clients should
// test for them with errors.Is.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyCollection = errors.New("access to element of empty collection")
)

// IndexError is returned by positional operations given an index outside of
// the valid range. It matches ErrIndexOutOfRange.
type IndexError struct {
	Op    string // operation which failed, e.g. "insertAt"
	Index int    // index given by the client
	Size  int    // size of the receiver
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for size %d", e.Op, e.Index, e.Size)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// IndexOutOfRange creates an IndexError.
func IndexOutOfRange(op string, index, size int) error {
	return &IndexError{Op: op, Index: index, Size: size}
}

// InvalidArgument wraps ErrInvalidArgument with a message.
func InvalidArgument(op string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

// EmptyCollection wraps ErrEmptyCollection for operation op.
func EmptyCollection(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmptyCollection)
}

// EvaluationError is the result of a failing lazy pipeline.
// Position is the ordinal (starting at 0) of the source element being
// processed when the failure occured. A failing source reports the
// position of the element it was about to produce.
type EvaluationError struct {
	Position int
	Cause    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation failed at element #%d: %v", e.Position, e.Cause)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

// PanicError carries a value recovered from a panicking user function.
type PanicError struct {
	Value interface{}
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error itself.
func (e PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
