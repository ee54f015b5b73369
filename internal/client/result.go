package client

import "errors"

// Result is the outcome of one backend call: exactly one of the decoded payload or a ClientError.
type Result[T any] struct {
	data T
	err  *ClientError
}

// Success wraps a decoded payload.
func Success[T any](data T) Result[T] {
	return Result[T]{data: data}
}

// Failure wraps a ClientError. A nil error is replaced by an unknown failure so the
// result can never end up with neither side set.
func Failure[T any](err *ClientError) Result[T] {
	if err == nil {
		err = NewClientInternalError(errors.New("nil client error"), "building failure result")
	}
	return Result[T]{err: err}
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

// Data returns the payload and true on success, the zero value and false on failure.
func (r Result[T]) Data() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *ClientError {
	return r.err
}

// Message returns the user facing failure message ("" on success).
func (r Result[T]) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.UserMessage
}

// Unwrap converts the result to the usual (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.data, nil
}
