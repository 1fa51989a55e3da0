package ports

import (
	"context"

	"github.com/bft-labs/hdrs/internal/domain"
)

// Transport is the HTTP client capability the dispatcher relies on for
// connection establishment, TLS and request/response encoding.
type Transport interface {
	// Get constructs a GET request bound to url.
	Get(url string) RequestSender

	// Post constructs a POST request bound to url.
	Post(url string) RequestSender
}

// RequestSender is a constructed request that has not been sent yet.
type RequestSender interface {
	// Send blocks until the transport returns a response or a failure.
	// Construction errors are reported here as well.
	Send(ctx context.Context) (*domain.Response, error)
}
