package app

import (
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/hdrs/internal/domain"
	"github.com/bft-labs/hdrs/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// spyTransport records constructor and send calls.
type spyTransport struct {
	getURLs  []string
	postURLs []string
	sends    int
	resp     *domain.Response
	err      error
}

func (s *spyTransport) Get(url string) ports.RequestSender {
	s.getURLs = append(s.getURLs, url)
	return spyRequest{s}
}

func (s *spyTransport) Post(url string) ports.RequestSender {
	s.postURLs = append(s.postURLs, url)
	return spyRequest{s}
}

type spyRequest struct{ s *spyTransport }

func (r spyRequest) Send(ctx context.Context) (*domain.Response, error) {
	r.s.sends++
	return r.s.resp, r.s.err
}

func okResponse() *domain.Response {
	return &domain.Response{
		Proto:  "HTTP/1.1",
		Status: "200 OK",
		Headers: []domain.Header{
			{Name: "Content-Type", Value: "text/plain"},
			{Name: "X-Test", Value: "1"},
		},
	}
}

func TestDispatch_Get(t *testing.T) {
	spy := &spyTransport{resp: okResponse()}
	var out strings.Builder
	d := NewDispatcher(spy, &out, mockLogger{})

	err := d.Dispatch(context.Background(), domain.Invocation{Method: domain.MethodGet, URL: "http://example.com/a?b=c"})
	require.NoError(t, err)

	assert.Equal(t, []string{"http://example.com/a?b=c"}, spy.getURLs)
	assert.Empty(t, spy.postURLs)
	assert.Equal(t, 1, spy.sends)
	assert.Equal(t, "HTTP/1.1 200 OK\nContent-Type: text/plainX-Test: 1", out.String())
}

func TestDispatch_Post(t *testing.T) {
	spy := &spyTransport{resp: okResponse()}
	var out strings.Builder
	d := NewDispatcher(spy, &out, mockLogger{})

	err := d.Dispatch(context.Background(), domain.Invocation{Method: domain.MethodPost, URL: "https://example.com"})
	require.NoError(t, err)

	assert.Empty(t, spy.getURLs)
	assert.Equal(t, []string{"https://example.com"}, spy.postURLs)
	assert.Equal(t, 1, spy.sends)
}

func TestDispatch_TransportError(t *testing.T) {
	spy := &spyTransport{err: syscall.ECONNREFUSED}
	var out strings.Builder
	d := NewDispatcher(spy, &out, mockLogger{})

	err := d.Dispatch(context.Background(), domain.Invocation{Method: domain.MethodGet, URL: "http://127.0.0.1:1"})
	require.Error(t, err)

	var te *domain.TransportError
	require.True(t, errors.As(err, &te))
	assert.True(t, errors.Is(err, syscall.ECONNREFUSED))
	assert.Contains(t, err.Error(), "request failed")
	assert.Empty(t, out.String())
	assert.Equal(t, 1, spy.sends)
}

func TestDispatch_InvalidMethodPanics(t *testing.T) {
	spy := &spyTransport{resp: okResponse()}
	d := NewDispatcher(spy, &strings.Builder{}, mockLogger{})

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, domain.ErrInvalidMethod))
		assert.Zero(t, spy.sends)
	}()

	_ = d.Dispatch(context.Background(), domain.Invocation{Method: domain.Method(42), URL: "http://example.com"})
}
