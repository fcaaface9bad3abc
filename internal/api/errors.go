package api

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrSessionExpired is returned when a 401 on a non-auth endpoint
// invalidates a previously valid token. The session store has already been
// cleared by the time callers see this.
var ErrSessionExpired = errors.New("session expired")

// Error is a non-2xx response from the backend. The message is the
// server-supplied one, passed through verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// StatusOf returns the HTTP status behind an error, or 0 when the error is
// not an API error
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsNetworkError reports whether the error is a transport failure or
// timeout rather than a backend response
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
