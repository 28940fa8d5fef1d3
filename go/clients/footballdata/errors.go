package footballdata

import (
	"errors"
	"fmt"
)

// Fixed failure classes for API responses. Transport-level failures (DNS,
// timeout, connection reset) are wrapped with ErrInvalidResponse.
var (
	ErrInvalidResponse = errors.New("footballdata: invalid response")
	ErrRateLimited     = errors.New("footballdata: rate limited")
	ErrUnauthorized    = errors.New("footballdata: unauthorized")
	ErrNotFound        = errors.New("footballdata: not found")
)

// ServerError is any non-2xx status outside the classes above.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("footballdata: server returned status %d", e.StatusCode)
}

// DecodeError is a 200 response whose body does not match the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("footballdata: failed to decode response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
