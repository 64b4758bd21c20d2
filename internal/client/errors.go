package client

import (
	"errors"
	"fmt"

	"github.com/travelhub/travel-client/internal/apperrors"
)

// ErrSessionExpired matches (via errors.Is) the error returned when the server reports the session token is no longer valid
var ErrSessionExpired = errors.New("session expired")

// NetworkError is returned when no usable envelope was received: the request could not be sent,
// timed out, got a non-2xx status or the body was not a valid envelope.
// StatusCode 0 = no HTTP response was received.
type NetworkError struct {
	StatusCode  int
	UserMessage string
	Err         error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("network error: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserError returns the user-friendly message
func (e *NetworkError) UserError() string {
	return e.UserMessage
}

// APIError is a domain failure reported by the server in the envelope
type APIError struct {
	Code    apperrors.ResultCode
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", int(e.Code), e.Code, e.Message)
}

func (e *APIError) UserError() string {
	return e.Message
}

// SessionExpiredError is returned when the server answers with the session-invalid code.
// By the time it is returned the local session has already been cleared.
type SessionExpiredError struct {
	Message     string
	UserMessage string
}

func (e *SessionExpiredError) Error() string {
	if e.Message == "" {
		return ErrSessionExpired.Error()
	}
	return fmt.Sprintf("%v: %s", ErrSessionExpired, e.Message)
}

func (e *SessionExpiredError) Is(target error) bool {
	return target == ErrSessionExpired
}

func (e *SessionExpiredError) UserError() string {
	return e.UserMessage
}

// UserMessage returns the message suitable for showing to an end user for any error returned by the client.
// Errors that did not originate in the client get a generic message.
func UserMessage(err error) string {
	var userErr interface{ UserError() string }
	if errors.As(err, &userErr) && userErr.UserError() != "" {
		return userErr.UserError()
	}
	return defaultPrinter.Sprintf(msgRequestFailed)
}
