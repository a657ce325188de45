package enterprise

import (
	"net/http"
	"net/url"
)

// Middleware wraps a single round trip. It may inspect or modify req and
// must call next to continue the chain.
type Middleware func(req *http.Request, next RoundTripper) (*http.Response, error)

// RoundTripper is the base HTTP transport interface. Any http.RoundTripper satisfies it.
type RoundTripper interface {
	RoundTrip(*http.Request) (*http.Response, error)
}

// RoundTripperFunc adapts a function to RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Option configures a Client.
type Option func(*Client)

// Credentials authenticate every request with HTTP Basic auth.
type Credentials struct {
	Username string
	Password string
}

// Request is one logical API operation.
type Request struct {
	// Name is a stable label for metrics and logs, e.g. "bdbs.list".
	Name   string
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded when non-nil.
	Body any
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Empty is the result type of operations whose success body is ignored.
type Empty struct{}

// PoolStats reports connection slot usage.
type PoolStats struct {
	InUse    int
	Capacity int
}
