package result

import (
	apperrors "finance-tracker/internal/errors"
)

// Result is the outcome of a service operation: either a message with data,
// or exactly one tagged error.
type Result[T any] struct {
	message string
	data    T
	err     *apperrors.Error
}

// Ok builds a successful result
func Ok[T any](message string, data T) Result[T] {
	return Result[T]{message: message, data: data}
}

// Fail builds a failed result. A nil err is treated as an unexpected failure.
func Fail[T any](err *apperrors.Error) Result[T] {
	if err == nil {
		err = &apperrors.Error{
			Kind:    apperrors.KindPersistence,
			Code:    apperrors.SystemUnexpectedError,
			Message: apperrors.GetErrorMessage(apperrors.SystemUnexpectedError),
		}
	}
	return Result[T]{err: err}
}

// IsOk reports whether the result is a success
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

func (r Result[T]) Message() string {
	if r.err != nil {
		return r.err.Message
	}
	return r.message
}

// Data returns the success value, or the zero value on failure
func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Err() *apperrors.Error {
	return r.err
}

// Payload renders the data envelope {"data": value}
func (r Result[T]) Payload() map[string]any {
	return map[string]any{"data": r.data}
}
