// Package http implements ports.Transport on top of net/http.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"
	"time"

	"golang.org/x/net/http/httpproxy"

	"github.com/bft-labs/hdrs/internal/domain"
	"github.com/bft-labs/hdrs/internal/ports"
)

// ClientConfig configures the *http.Client built by NewClient.
type ClientConfig struct {
	// Timeout bounds the whole exchange. Zero leaves the transport default.
	Timeout time.Duration

	// Proxy resolves proxies per request. Nil reads HTTP_PROXY, HTTPS_PROXY
	// and NO_PROXY from the environment.
	Proxy *httpproxy.Config
}

// ProxyConfig returns the environment proxy settings with proxyURL, when
// set, used for both http and https targets. NO_PROXY still applies.
func ProxyConfig(proxyURL string) *httpproxy.Config {
	cfg := httpproxy.FromEnvironment()
	if proxyURL != "" {
		cfg.HTTPProxy = proxyURL
		cfg.HTTPSProxy = proxyURL
	}
	return cfg
}

// NewClient builds the *http.Client used by Transport.
//
// The client speaks HTTP/1.1 only, never asks for compression and opens a
// fresh connection per request. Connections are recorded so that response
// headers can be reported in the order they arrived.
func NewClient(cfg ClientConfig) *http.Client {
	proxyCfg := cfg.Proxy
	if proxyCfg == nil {
		proxyCfg = httpproxy.FromEnvironment()
	}
	proxyFunc := proxyCfg.ProxyFunc()

	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	tr.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}
	tr.DisableCompression = true
	tr.DisableKeepAlives = true
	tr.ForceAttemptHTTP2 = false
	tr.TLSNextProto = map[string]func(string, *tls.Conn) http.RoundTripper{}
	tr.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		return record(ctx, conn), nil
	}
	tr.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		raw, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		conn := tls.Client(raw, &tls.Config{
			ServerName: host,
			NextProtos: []string{"http/1.1"},
		})
		if err := conn.HandshakeContext(ctx); err != nil {
			raw.Close()
			return nil, err
		}
		return record(ctx, conn), nil
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}

func record(ctx context.Context, conn net.Conn) net.Conn {
	if rec := wireRecorderFrom(ctx); rec != nil {
		return rec.attach(conn)
	}
	return conn
}

// Transport implements ports.Transport using a ports.HTTPClient.
type Transport struct {
	client    ports.HTTPClient
	logger    ports.Logger
	userAgent string
}

// NewTransport creates a transport. An empty userAgent leaves net/http's default.
func NewTransport(client ports.HTTPClient, logger ports.Logger, userAgent string) *Transport {
	return &Transport{
		client:    client,
		logger:    logger,
		userAgent: userAgent,
	}
}

// Get constructs a GET request bound to rawURL.
func (t *Transport) Get(rawURL string) ports.RequestSender {
	return t.build(http.MethodGet, rawURL)
}

// Post constructs a POST request with an empty body bound to rawURL.
func (t *Transport) Post(rawURL string) ports.RequestSender {
	return t.build(http.MethodPost, rawURL)
}

func (t *Transport) build(method, rawURL string) *request {
	return &request{
		transport: t,
		method:    method,
		url:       rawURL,
	}
}

// request defers construction to Send so that a bad URL surfaces as a
// send failure, like any other transport error.
type request struct {
	transport *Transport
	method    string
	url       string
}

// Send performs the request and converts the result into a domain.Response.
func (r *request) Send(ctx context.Context) (*domain.Response, error) {
	ctx, rec := withWireRecorder(ctx)
	req, err := http.NewRequestWithContext(ctx, r.method, r.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if r.transport.userAgent != "" {
		req.Header.Set("User-Agent", r.transport.userAgent)
	}

	r.transport.logger.Debug("sending request",
		ports.String("method", r.method),
		ports.String("url", r.url),
	)

	start := time.Now()
	resp, err := r.transport.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	// The body is never shown.
	resp.Body.Close()

	out := convertResponse(resp, rec.headerOrder())

	r.transport.logger.Debug("received response",
		ports.String("status", resp.Status),
		ports.Int("headers", len(out.Headers)),
		ports.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

// convertResponse maps an *http.Response onto domain.Response. Names follow
// order, the wire order of the header block; names the wire order does not
// account for (no recording available) follow in sorted order. Repeated
// values of one name stay together in received order.
func convertResponse(resp *http.Response, order []string) *domain.Response {
	names := make([]string, 0, len(resp.Header))
	listed := make(map[string]bool, len(order))
	for _, name := range order {
		if _, ok := resp.Header[name]; ok && !listed[name] {
			listed[name] = true
			names = append(names, name)
		}
	}
	var rest []string
	for name := range resp.Header {
		if !listed[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	headers := make([]domain.Header, 0, len(names))
	for _, name := range names {
		for _, v := range resp.Header[name] {
			headers = append(headers, domain.Header{Name: name, Value: v})
		}
	}

	return &domain.Response{
		Proto:   resp.Proto,
		Status:  resp.Status,
		Headers: headers,
	}
}
