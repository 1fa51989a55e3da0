package domain

import "strings"

// Method is an HTTP request method accepted by hdrs.
type Method int

const (
	// MethodGet issues a GET request.
	MethodGet Method = iota + 1
	// MethodPost issues a POST request with an empty body.
	MethodPost
)

// Methods lists the accepted method names in CLI form.
var Methods = []string{"get", "post"}

// ParseMethod converts a CLI method name into a Method.
// Only the exact strings "get" and "post" are accepted.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "get":
		return MethodGet, nil
	case "post":
		return MethodPost, nil
	}
	return 0, NewUsageError("invalid method %q (possible values: %s)", s, strings.Join(Methods, ", "))
}

// String returns the lower-case CLI form.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "get"
	case MethodPost:
		return "post"
	}
	return "invalid"
}

// Upper returns the wire form, e.g. "GET".
func (m Method) Upper() string {
	return strings.ToUpper(m.String())
}

// Valid reports whether m is one of the accepted methods.
func (m Method) Valid() bool {
	return m == MethodGet || m == MethodPost
}

// Invocation is the validated (method, url) pair for a single run.
type Invocation struct {
	Method Method
	URL    string
}

// NewInvocation validates method and url and returns an Invocation.
func NewInvocation(method Method, url string) (Invocation, error) {
	if !method.Valid() {
		return Invocation{}, NewUsageError("invalid method %q (possible values: %s)", method.String(), strings.Join(Methods, ", "))
	}
	if url == "" {
		return Invocation{}, NewUsageError("URL is required")
	}
	return Invocation{Method: method, URL: url}, nil
}
