package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidMethod is the panic value used when a Method outside GET/POST
// reaches code that assumes validation already happened.
var ErrInvalidMethod = errors.New("hdrs: invalid method past validation")

// UsageError reports invalid command-line input.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// NewUsageError creates a UsageError with a formatted message.
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// TransportError wraps a failure surfaced by the HTTP collaborator while
// building or sending a request.
type TransportError struct {
	Method Method
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %s %s: %v", e.Method.Upper(), e.URL, e.Err)
}

// Unwrap returns the collaborator's native error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsUsage reports whether err is or wraps a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
