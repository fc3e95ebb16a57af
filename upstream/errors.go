package upstream

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned whenever the upstream API answers 401. The
// session middleware translates it into a session-clearing side effect; it is
// the sole place where network-layer failures feed back into auth state.
var ErrUnauthorized = errors.New("upstream: unauthorized")

// APIError is a completed request with a non-2xx status other than 401.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream: status %d", e.Status)
}

// NetworkError is a request that could not complete (connectivity, timeout).
type NetworkError struct {
	Err     error
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("upstream: request timed out: %v", e.Err)
	}
	return fmt.Sprintf("upstream: request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Rejection is a 2xx response whose body reports a logical failure
// (success:false / status:false). The server-supplied message is surfaced
// verbatim where available.
type Rejection struct {
	Message string
}

func (e *Rejection) Error() string {
	if e.Message != "" {
		return "upstream: rejected: " + e.Message
	}
	return "upstream: rejected"
}
