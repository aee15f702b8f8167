package apierror

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

type ErrorCode string

const (
	// ErrValidation marks malformed caller input, caught before any network
	// call. Never retryable.
	ErrValidation ErrorCode = "VALIDATION_ERROR"
	// ErrTransport marks a network or HTTP-layer failure. Details carries the
	// raw provider body when one was returned.
	ErrTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrRejected marks an explicit provider rejection or failure with a
	// reason. Terminal.
	ErrRejected ErrorCode = "BUSINESS_REJECTION"
	// ErrNotFoundExhausted marks a transaction that stayed invisible past the
	// poller's grace window. Terminal.
	ErrNotFoundExhausted ErrorCode = "NOT_FOUND_EXHAUSTED"
	// ErrPollTimeout marks a poll loop that ran out of attempts without a
	// terminal status. Callers can offer "check again later" instead of
	// "retry payment".
	ErrPollTimeout ErrorCode = "POLL_TIMEOUT"
)

type APIError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code ErrorCode, message string, details interface{}) APIError {
	if details != nil {
		logrus.WithField("code", code).Error(details)
	}
	return APIError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// CodeOf extracts the taxonomy code from an error, unwrapping as needed.
// Errors that did not originate here report ErrTransport, the only open-ended
// category.
func CodeOf(err error) ErrorCode {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrTransport
}

// IsTerminal reports whether the error admits no retry of the same
// submission: the provider made a business decision or the transaction was
// never visible.
func IsTerminal(err error) bool {
	switch CodeOf(err) {
	case ErrRejected, ErrNotFoundExhausted, ErrValidation:
		return true
	}
	return false
}
