package enterprise

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// requestBuilder turns a Request into an *http.Request. It holds only
// immutable configuration and is safe for concurrent use.
type requestBuilder struct {
	baseURL     string
	credentials Credentials
	userAgent   string
}

func newRequestBuilder(cfg Config) *requestBuilder {
	return &requestBuilder{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		credentials: cfg.Credentials(),
		userAgent:   cfg.UserAgent,
	}
}

func (b *requestBuilder) url(req Request) string {
	u := b.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		u += "?" + req.Query.Encode()
	}
	return u
}

func (b *requestBuilder) build(ctx context.Context, req Request) (*http.Request, error) {
	if strings.TrimSpace(req.Method) == "" {
		return nil, requestError(req, "request method is empty", nil)
	}
	if strings.TrimSpace(req.Path) == "" {
		return nil, requestError(req, "request path is empty", nil)
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, requestError(req, "failed to encode request body", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(req.Method), b.url(req), body)
	if err != nil {
		return nil, requestError(req, "failed to build request", err)
	}

	httpReq.SetBasicAuth(b.credentials.Username, b.credentials.Password)
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if b.userAgent != "" {
		httpReq.Header.Set("User-Agent", b.userAgent)
	}

	return httpReq, nil
}
