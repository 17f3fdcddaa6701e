package api

import "errors"

// Error taxonomy for backend calls. Callers match with errors.Is.
//
//   - ErrUnauthorized: the server received the request and rejected the
//     credential. Authoritative; the transport has already cleared the
//     session as a side effect.
//   - ErrInvalidCredentials: login was rejected. Surfaced to the user,
//     no session state is mutated.
//   - ErrRateLimited: the server throttled the request; retry later.
//   - ErrUnavailable: no response was received (timeout, connection error).
//     Retryable and never a logout trigger.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRateLimited        = errors.New("too many requests")
	ErrUnavailable        = errors.New("server unavailable")
)

// ServerError is returned for unexpected non-auth failure statuses (e.g. a
// 500). It carries the backend message when one was provided.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "server error"
}
