package apperr

import (
	"fmt"
)

// Code classifies an AppError.
type Code int

const (
	// CodeIndexOutOfRange marks a positional access outside the valid range.
	CodeIndexOutOfRange Code = iota + 1
	// CodeEmptyCollection marks a removal from an empty container.
	CodeEmptyCollection
	// CodeAllocationFailure marks a reallocation that could not obtain its capacity.
	CodeAllocationFailure
)

// String returns the name of the code.
func (c Code) String() string {
	switch c {
	case CodeIndexOutOfRange:
		return "index_out_of_range"
	case CodeEmptyCollection:
		return "empty_collection"
	case CodeAllocationFailure:
		return "allocation_failure"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// AppError is the error type returned by the containers.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

// New creates an AppError.
func New(code Code, msg string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Cause:   cause,
	}
}

// Wrap attaches code and msg to err. It returns nil if err is nil.
func Wrap(err error, code Code, msg string) *AppError {
	if err == nil {
		return nil
	}
	return New(code, msg, err)
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
