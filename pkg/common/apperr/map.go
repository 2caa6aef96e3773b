package apperr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Generic messages
const (
	MsgIndexOutOfRange   = "index out of range"
	MsgEmptyCollection   = "empty collection"
	MsgAllocationFailure = "allocation failure"
)

// Sentinels for errors.Is. Every error produced by the containers matches
// exactly one of them.
var (
	ErrIndexOutOfRange   = New(CodeIndexOutOfRange, MsgIndexOutOfRange, nil)
	ErrEmptyCollection   = New(CodeEmptyCollection, MsgEmptyCollection, nil)
	ErrAllocationFailure = New(CodeAllocationFailure, MsgAllocationFailure, nil)
)

// NewError creates a new AppError with standardized message format
func NewError(component string, code Code, msg string, cause error) *AppError {
	formattedMsg := fmt.Sprintf("%s: %s", component, msg)
	return New(code, formattedMsg, cause)
}

// MapError wraps an error with a standardized message
func MapError(component string, err error, code Code, msg string) *AppError {
	if err == nil {
		return nil
	}

	formattedMsg := fmt.Sprintf("%s: %s", component, msg)
	return Wrap(err, code, formattedMsg)
}

// IndexOutOfRange reports index outside the valid range of op on a
// container holding size elements.
func IndexOutOfRange(component, op string, index, size int) error {
	return errors.WithStack(NewError(component, CodeIndexOutOfRange,
		fmt.Sprintf("%s(%d) %s with size %d", op, index, MsgIndexOutOfRange, size), nil))
}

// EmptyCollection reports op called on an empty container.
func EmptyCollection(component, op string) error {
	return errors.WithStack(NewError(component, CodeEmptyCollection,
		fmt.Sprintf("%s on %s", op, MsgEmptyCollection), nil))
}

// AllocationFailure reports that capacity slots could not be obtained.
func AllocationFailure(component string, capacity int, cause error) error {
	return errors.WithStack(NewError(component, CodeAllocationFailure,
		fmt.Sprintf("%s for %d slots", MsgAllocationFailure, capacity), cause))
}

// CodeOf returns the code of the first AppError in err's chain, or 0.
func CodeOf(err error) Code {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return 0
}
