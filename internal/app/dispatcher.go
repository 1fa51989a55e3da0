package app

import (
	"context"
	"fmt"
	"io"

	"github.com/bft-labs/hdrs/internal/domain"
	"github.com/bft-labs/hdrs/internal/ports"
)

// Dispatcher performs exactly one request per Invocation and prints the
// response status line and headers.
type Dispatcher struct {
	transport ports.Transport
	out       io.Writer
	logger    ports.Logger
}

// NewDispatcher creates a dispatcher writing responses to out.
func NewDispatcher(transport ports.Transport, out io.Writer, logger ports.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		out:       out,
		logger:    logger,
	}
}

// Dispatch sends inv and prints the response. Any transport failure is
// returned as a *domain.TransportError and nothing is printed.
//
// inv must come from domain.NewInvocation; a method outside GET/POST
// panics with domain.ErrInvalidMethod.
func (d *Dispatcher) Dispatch(ctx context.Context, inv domain.Invocation) error {
	var req ports.RequestSender
	switch inv.Method {
	case domain.MethodGet:
		req = d.transport.Get(inv.URL)
	case domain.MethodPost:
		req = d.transport.Post(inv.URL)
	default:
		panic(fmt.Errorf("%w: %d", domain.ErrInvalidMethod, int(inv.Method)))
	}

	d.logger.Info("dispatching", ports.String("method", inv.Method.String()), ports.String("url", inv.URL))

	resp, err := req.Send(ctx)
	if err != nil {
		return &domain.TransportError{Method: inv.Method, URL: inv.URL, Err: err}
	}

	if _, err := resp.WriteTo(d.out); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
