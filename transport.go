package enterprise

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/redis-developer/redis-enterprise-go/internal/pool"
)

// transport owns the connection pool of one Client. Every send checks out a
// slot, runs the middleware chain around the base round tripper, reads the
// whole body and gives the slot back.
type transport struct {
	client     *http.Client
	pooled     *http.Transport
	middleware []Middleware
	slots      *pool.Slots
	limiter    *rateLimiter
	timeout    time.Duration
	metrics    *MetricsCollector
}

func newHTTPTransport(cfg Config, tlsConfig *tls.Config) *http.Transport {
	var tc *tls.Config
	if tlsConfig != nil {
		tc = tlsConfig.Clone()
	} else {
		tc = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if cfg.Insecure {
		tc.InsecureSkipVerify = true //nolint:gosec // opt-in for self-signed cluster certificates
	}

	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSClientConfig:       tc,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          cfg.MaxConnections,
		MaxIdleConnsPerHost:   cfg.MaxConnections,
		MaxConnsPerHost:       cfg.MaxConnections,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
}

func newTransport(cfg Config, base RoundTripper, pooled *http.Transport, middleware []Middleware, limiter *rateLimiter, metrics *MetricsCollector) *transport {
	return &transport{
		client:     &http.Client{Transport: base},
		pooled:     pooled,
		middleware: middleware,
		slots:      pool.New(cfg.MaxConnections),
		limiter:    limiter,
		timeout:    cfg.Timeout,
		metrics:    metrics,
	}
}

// send performs req and returns the fully read response. Errors are
// *Error values of KindTransport carrying only Code, Message and Cause.
func (t *transport) send(ctx context.Context, req *http.Request) (*Response, error) {
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	if err := t.limiter.wait(ctx); err != nil {
		return nil, err
	}

	release, err := t.slots.Acquire(ctx)
	defer func() {
		release()
		t.metrics.RecordPoolInUse(t.slots.InUse())
	}()
	if err != nil {
		return nil, transportError(ctx, err, "waiting for a connection slot")
	}
	t.metrics.RecordPoolInUse(t.slots.InUse())

	resp, err := t.roundTrip(req.WithContext(ctx))
	if err != nil {
		return nil, transportError(ctx, err, "request failed")
	}
	if resp == nil {
		return nil, &Error{Kind: KindTransport, Code: CodeNetwork, Message: "middleware returned a nil response"}
	}
	if resp.Body == nil {
		resp.Body = http.NoBody
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		e := transportError(ctx, err, "reading response body")
		if e.Code == CodeNetwork {
			e.Code = CodeRead
		}
		return nil, e
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (t *transport) roundTrip(req *http.Request) (*http.Response, error) {
	if len(t.middleware) == 0 {
		return t.client.Do(req)
	}

	current := RoundTripperFunc(t.client.Do)

	for i := len(t.middleware) - 1; i >= 0; i-- {
		middleware := t.middleware[i]
		next := current
		current = RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return middleware(r, next)
		})
	}

	return current.RoundTrip(req)
}

func (t *transport) stats() PoolStats {
	return PoolStats{InUse: t.slots.InUse(), Capacity: t.slots.Capacity()}
}

func (t *transport) close() {
	if t.pooled != nil {
		t.pooled.CloseIdleConnections()
	}
	t.client.CloseIdleConnections()
}

func transportError(ctx context.Context, err error, message string) *Error {
	return &Error{
		Kind:    KindTransport,
		Code:    classifyTransportError(ctx, err),
		Message: message,
		Cause:   err,
	}
}

func classifyTransportError(ctx context.Context, err error) string {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.Is(ctx.Err(), context.Canceled), errors.Is(err, context.Canceled):
		return CodeCanceled
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CodeDNS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CodeTimeout
	}

	if isTLSError(err) {
		return CodeTLS
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return CodeConnection
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return CodeConnection
	}

	if errors.Is(err, io.ErrUnexpectedEOF) {
		return CodeRead
	}

	return CodeNetwork
}

func isTLSError(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	var recordErr tls.RecordHeaderError
	var authorityErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError

	return errors.As(err, &verifyErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr)
}
