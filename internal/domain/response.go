package domain

import (
	"fmt"
	"io"
)

// Header is a single response header as received.
type Header struct {
	Name  string
	Value string
}

// String renders the header as "Name: value" with no line terminator.
func (h Header) String() string {
	return h.Name + ": " + h.Value
}

// Response is the part of an HTTP response that hdrs prints.
type Response struct {
	// Proto is the protocol version, e.g. "HTTP/1.1".
	Proto string

	// Status is the status code and reason phrase, e.g. "200 OK".
	Status string

	// Headers in the order the transport delivered them.
	Headers []Header
}

// StatusLine returns "<proto> <status>".
func (r *Response) StatusLine() string {
	return r.Proto + " " + r.Status
}

// WriteTo writes the status line followed by every header rendering with
// no separator between headers and nothing after the last one.
func (r *Response) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintln(w, r.StatusLine())
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, h := range r.Headers {
		n, err := fmt.Fprint(w, h)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
