package asr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput marks a call that supplied neither or both of URL and file.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFileTooLarge marks a local source rejected by the pre-flight size check.
	ErrFileTooLarge = errors.New("file too large")
	// ErrCredentialsRequired marks a submission attempted without usable credentials.
	ErrCredentialsRequired = errors.New("credentials required")
	// ErrTransport marks connectivity or timeout failures that never produced an
	// application-level status code.
	ErrTransport = errors.New("transport error")
)

// APIError is an application-level rejection from the recognition endpoint,
// built from the status and message response headers.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Retryable reports whether a caller-side retry with backoff can reasonably
// succeed. Transport failures and server-overload status codes (the 550xxxxx
// capacity family) are transient; malformed-parameter and invalid-format codes
// are not, since resubmitting an identical payload cannot change the outcome.
// The client itself never retries: each call yields one definitive outcome.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTransport) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strings.HasPrefix(apiErr.Code, "550")
	}
	return false
}
