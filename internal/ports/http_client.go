package ports

import "net/http"

// HTTPClient executes the requests built by the transport adapter.
// *http.Client satisfies this interface.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
