package enterprise

import (
	"crypto/tls"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

func newOptionsTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	client, err := New(Config{BaseURL: "https://cluster.example:9443", Password: "secret"}, opts...)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestWithTimeout(t *testing.T) {
	client := newOptionsTestClient(t, WithTimeout(5*time.Second))

	if client.config.Timeout != 5*time.Second {
		t.Errorf("Expected timeout=5s, got %v", client.config.Timeout)
	}
	if client.transport.timeout != 5*time.Second {
		t.Errorf("Expected transport timeout=5s, got %v", client.transport.timeout)
	}
}

func TestWithUserAgent(t *testing.T) {
	client := newOptionsTestClient(t, WithUserAgent("ops/2"))

	if client.builder.userAgent != "ops/2" {
		t.Errorf("Expected userAgent=ops/2, got %q", client.builder.userAgent)
	}
}

func TestWithMaxConnections(t *testing.T) {
	client := newOptionsTestClient(t, WithMaxConnections(4))

	if got := client.Stats().Capacity; got != 4 {
		t.Errorf("Expected capacity=4, got %d", got)
	}
	if client.transport.pooled.MaxConnsPerHost != 4 {
		t.Errorf("Expected MaxConnsPerHost=4, got %d", client.transport.pooled.MaxConnsPerHost)
	}
}

func TestWithMiddleware(t *testing.T) {
	mw := func(req *http.Request, next RoundTripper) (*http.Response, error) {
		return next.RoundTrip(req)
	}
	client := newOptionsTestClient(t, WithMiddleware(mw, mw), WithMiddleware(mw))

	if len(client.transport.middleware) != 3 {
		t.Errorf("Expected 3 middleware, got %d", len(client.transport.middleware))
	}
}

func TestWithRoundTripper(t *testing.T) {
	rt := RoundTripperFunc(func(*http.Request) (*http.Response, error) { return nil, nil })
	client := newOptionsTestClient(t, WithRoundTripper(rt))

	if client.transport.pooled != nil {
		t.Error("Expected no pooled transport when a round tripper is supplied")
	}
}

func TestWithTLSConfig(t *testing.T) {
	client := newOptionsTestClient(t, WithTLSConfig(&tls.Config{ServerName: "re.internal", MinVersion: tls.VersionTLS13}))

	tc := client.transport.pooled.TLSClientConfig
	if tc.ServerName != "re.internal" {
		t.Errorf("Expected ServerName=re.internal, got %q", tc.ServerName)
	}
	if tc.InsecureSkipVerify {
		t.Error("Expected certificate verification to stay on")
	}
}

func TestWithRateLimit(t *testing.T) {
	client := newOptionsTestClient(t, WithRateLimit(rate.Limit(20), 5))

	if client.transport.limiter == nil {
		t.Fatal("Expected rate limiter to be set")
	}
	if client.transport.limiter.limiter.Limit() != 20 {
		t.Errorf("Expected limit=20, got %v", client.transport.limiter.limiter.Limit())
	}
	if client.transport.limiter.limiter.Burst() != 5 {
		t.Errorf("Expected burst=5, got %d", client.transport.limiter.limiter.Burst())
	}
}

func TestWithMetricsRegisterer(t *testing.T) {
	client := newOptionsTestClient(t, WithMetricsRegisterer(prometheus.NewRegistry()))

	if client.metrics == nil {
		t.Error("Expected metrics collector to be set")
	}
	if client.transport.metrics != client.metrics {
		t.Error("Expected transport to share the client's collector")
	}
}

func TestWithMetricsCollector(t *testing.T) {
	collector := NewMetricsCollectorWithRegisterer(prometheus.NewRegistry())
	a := newOptionsTestClient(t, WithMetricsCollector(collector))
	b := newOptionsTestClient(t, WithMetricsCollector(collector))

	if a.metrics != collector || b.metrics != collector {
		t.Error("Expected both clients to use the shared collector")
	}
}

func TestWithRequestIDGenerator(t *testing.T) {
	client := newOptionsTestClient(t, WithRequestIDGenerator(func() string { return "fixed" }))

	if got := client.requestIDGen(); got != "fixed" {
		t.Errorf("Expected request id=fixed, got %q", got)
	}
}

func TestDefaultValuesWithoutOptions(t *testing.T) {
	client := newOptionsTestClient(t)

	if client.config.Timeout != DefaultTimeout {
		t.Errorf("Expected default timeout=%v, got %v", DefaultTimeout, client.config.Timeout)
	}
	if client.config.MaxConnections != DefaultMaxConnections {
		t.Errorf("Expected default maxConnections=%d, got %d", DefaultMaxConnections, client.config.MaxConnections)
	}
	if client.config.UserAgent != DefaultUserAgent() {
		t.Errorf("Expected default userAgent=%q, got %q", DefaultUserAgent(), client.config.UserAgent)
	}
	if client.transport.limiter != nil {
		t.Error("Expected default rate limiter=nil")
	}
	if client.metrics != nil {
		t.Error("Expected default metrics=nil")
	}
	if len(client.middleware) != 0 {
		t.Errorf("Expected default middleware count=0, got %d", len(client.middleware))
	}
	if client.transport.pooled == nil {
		t.Error("Expected pooled transport by default")
	}
}

func TestValidateConfigurationCollectsProblems(t *testing.T) {
	_, err := New(Config{BaseURL: "ftp://cluster", Timeout: -1},
		WithMiddleware(nil),
		WithRateLimit(-1, 0),
	)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{"http or https", "Timeout", "middleware[0]", "rate limit must be positive", "burst"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error to mention %q, got %s", want, msg)
		}
	}
}
