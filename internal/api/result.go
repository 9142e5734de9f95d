package api

import (
	"errors"

	"github.com/ecopay/ecopay/pkg/clients"
)

// UnexpectedErrorMessage is reported when a failure carries no message at all.
const UnexpectedErrorMessage = "An unexpected error occurred"

// Result is the outcome of every service operation. Exactly one of Data and
// Error is meaningful, selected by Success.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](err error) Result[T] {
	return Result[T]{Error: NormalizeError(err)}
}

// Err returns the failure as an error, nil on success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return errors.New(r.Error)
}

// NormalizeError picks the message shown to the user: the server supplied
// message, then the transport message, then UnexpectedErrorMessage.
func NormalizeError(err error) string {
	var respErr *clients.ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return UnexpectedErrorMessage
}
