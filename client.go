package enterprise

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client talks to the REST API of one Redis Enterprise cluster. It is safe
// for concurrent use and should be reused; it owns the connection pool.
//
// Every operation comes as a pair: X starts the call in the background and
// returns a *Future, XSync blocks and is exactly X(...).Await().
type Client struct {
	config    Config
	builder   *requestBuilder
	transport *transport

	base       RoundTripper
	baseSet    bool
	tlsConfig  *tls.Config
	middleware []Middleware
	rateLimit  *rateLimitConfig

	metrics      *MetricsCollector
	logger       Logger
	requestIDGen func() string

	mu       sync.RWMutex
	closed   bool
	inflight sync.WaitGroup
}

// New validates cfg and the options and constructs a Client. It performs no
// network I/O; connections are opened on first use. Any configuration
// problem is reported as an *Error of KindConfig.
func New(cfg Config, options ...Option) (*Client, error) {
	client := &Client{
		config:       cfg,
		logger:       discardLogger(),
		requestIDGen: DefaultRequestID,
	}

	for _, option := range options {
		option(client)
	}
	client.config = client.config.withDefaults()

	if err := client.ValidateConfiguration(); err != nil {
		return nil, err
	}

	var pooled *http.Transport
	base := client.base
	if base == nil {
		pooled = newHTTPTransport(client.config, client.tlsConfig)
		base = pooled
	}

	var limiter *rateLimiter
	if client.rateLimit != nil {
		limiter = newRateLimiter(client.rateLimit.limit, client.rateLimit.burst, client.metrics)
	}

	client.builder = newRequestBuilder(client.config)
	client.transport = newTransport(client.config, base, pooled, client.middleware, limiter, client.metrics)

	client.logger.Debug("client created",
		"version", Version,
		"baseURL", client.config.BaseURL,
		"insecure", client.config.Insecure,
		"maxConnections", client.config.MaxConnections,
		"timeout", client.config.Timeout,
	)
	return client, nil
}

// NewFromEnv builds a Client from REDIS_ENTERPRISE_* environment variables.
// See ConfigFromEnv.
func NewFromEnv(options ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg, options...)
}

// Config returns the effective configuration, defaults applied.
func (c *Client) Config() Config {
	return c.config
}

// Stats reports connection slot usage.
func (c *Client) Stats() PoolStats {
	return c.transport.stats()
}

// Close stops accepting calls, waits for in-flight calls to finish and
// closes idle pooled connections. It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	alreadyClosed := c.closed
	c.closed = true
	c.mu.Unlock()

	if alreadyClosed {
		return nil
	}

	c.inflight.Wait()
	c.transport.close()
	c.logger.Debug("client closed", "baseURL", c.config.BaseURL)
	return nil
}

func (c *Client) begin() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return false
	}
	c.inflight.Add(1)
	return true
}

// Call starts req in the background and decodes a successful response into T.
func Call[T any](ctx context.Context, c *Client, req Request) *Future[T] {
	if !c.begin() {
		var zero T
		return resolvedFuture[T](zero, &Error{
			Kind:    KindTransport,
			Code:    CodeClientClosed,
			Message: "client is closed",
			Op:      operationName(req),
			Method:  req.Method,
		})
	}

	future := newFuture[T]()
	go func() {
		defer c.inflight.Done()
		future.resolve(execute[T](ctx, c, req))
	}()
	return future
}

// CallSync is Call followed by Await.
func CallSync[T any](ctx context.Context, c *Client, req Request) (T, error) {
	return Call[T](ctx, c, req).Await()
}

func execute[T any](ctx context.Context, c *Client, req Request) (T, error) {
	var zero T

	op := operationName(req)
	requestID := c.requestIDGen()
	start := time.Now()

	c.metrics.RecordRequestStart(op)
	defer c.metrics.RecordRequestEnd(op)

	httpReq, err := c.builder.build(ctx, req)
	if err != nil {
		return zero, c.fail(err, op, req.Method, c.builder.url(req), requestID, start)
	}

	c.logger.Debug("sending request",
		"requestID", requestID,
		"op", op,
		"method", httpReq.Method,
		"url", httpReq.URL.String(),
	)

	resp, err := c.transport.send(ctx, httpReq)
	if err != nil {
		c.metrics.RecordRequest(op, httpReq.Method, 0, time.Since(start))
		return zero, c.fail(err, op, httpReq.Method, httpReq.URL.String(), requestID, start)
	}
	c.metrics.RecordRequest(op, httpReq.Method, resp.StatusCode, time.Since(start))

	value, err := decodeResponse[T](resp)
	if err != nil {
		return zero, c.fail(err, op, httpReq.Method, httpReq.URL.String(), requestID, start)
	}

	c.logger.Debug("request finished",
		"requestID", requestID,
		"op", op,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return value, nil
}

// fail stamps request context onto err, records it and logs it.
func (c *Client) fail(err error, op, method, url, requestID string, start time.Time) error {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Kind: KindTransport, Code: CodeNetwork, Message: "unexpected failure", Cause: err}
	}

	e.Op = op
	e.Method = method
	e.URL = url
	e.RequestID = requestID
	e.Duration = time.Since(start)

	c.metrics.RecordError(e.Kind, e.Code, op)

	args := []any{
		"requestID", requestID,
		"op", op,
		"kind", e.Kind,
		"code", e.Code,
		"status", e.StatusCode,
		"duration", e.Duration,
		"error", e.Message,
	}
	if e.Kind == KindAPI && e.StatusCode < 500 {
		c.logger.Debug("request rejected", args...)
	} else {
		c.logger.Warn("request failed", args...)
	}
	return e
}

func operationName(req Request) string {
	if req.Name != "" {
		return req.Name
	}
	return "raw." + strings.ToLower(req.Method)
}
