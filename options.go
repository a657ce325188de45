package enterprise

import (
	"crypto/tls"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// WithTimeout overrides Config.Timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.config.Timeout = d
	}
}

// WithUserAgent overrides Config.UserAgent.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.config.UserAgent = ua
	}
}

// WithMaxConnections overrides Config.MaxConnections.
func WithMaxConnections(n int) Option {
	return func(c *Client) {
		c.config.MaxConnections = n
	}
}

// WithMiddleware adds middleware to the client. Middleware runs in
// registration order around every round trip and after a connection slot
// has been acquired.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}

// WithRoundTripper replaces the pooled base transport. Config.Insecure and
// WithTLSConfig have no effect on a replaced transport.
func WithRoundTripper(rt RoundTripper) Option {
	return func(c *Client) {
		c.base = rt
		c.baseSet = true
	}
}

// WithTLSConfig sets the TLS configuration of the pooled transport. Config.Insecure
// still forces certificate verification off.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		c.tlsConfig = cfg
	}
}

// WithRateLimit enables a client-side limiter allowing limit requests per
// second with the given burst. Requests over the limit are delayed, never
// rejected.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		c.rateLimit = &rateLimitConfig{limit: limit, burst: burst}
	}
}

// WithMetrics enables Prometheus metrics on the default registerer.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsRegisterer enables Prometheus metrics on reg.
func WithMetricsRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollectorWithRegisterer(reg)
	}
}

// WithMetricsCollector shares an existing collector, e.g. between clients
// of several clusters.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithLogger sets the logger. Requests are logged at debug level and
// failures at warn level.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRequestIDGenerator sets the function generating request ids for logs
// and errors.
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		c.requestIDGen = gen
	}
}

type rateLimitConfig struct {
	limit rate.Limit
	burst int
}

// ValidateConfiguration validates the client configuration and returns an
// error if invalid.
func (c *Client) ValidateConfiguration() error {
	var problems []string

	problems = append(problems, c.config.problems()...)
	problems = append(problems, c.validateTransportConfig()...)
	problems = append(problems, c.validateRateLimitConfig()...)
	problems = append(problems, c.validateMiddlewareConfig()...)
	problems = append(problems, c.validateObservabilityConfig()...)

	if len(problems) > 0 {
		return configError("configuration validation failed", fmt.Errorf("validation errors: %v", problems))
	}
	return nil
}

func (c *Client) validateTransportConfig() []string {
	var problems []string

	if c.baseSet && c.base == nil {
		problems = append(problems, "round tripper cannot be nil")
	}
	return problems
}

func (c *Client) validateRateLimitConfig() []string {
	var problems []string

	if c.rateLimit == nil {
		return nil
	}
	if c.rateLimit.limit <= 0 {
		problems = append(problems, "rate limit must be positive")
	}
	if c.rateLimit.burst < 1 {
		problems = append(problems, "rate limit burst must be at least 1")
	}
	return problems
}

func (c *Client) validateMiddlewareConfig() []string {
	var problems []string

	for i, middleware := range c.middleware {
		if middleware == nil {
			problems = append(problems, fmt.Sprintf("middleware[%d] cannot be nil", i))
		}
	}
	return problems
}

func (c *Client) validateObservabilityConfig() []string {
	var problems []string

	if c.logger == nil {
		problems = append(problems, "logger cannot be nil")
	}
	if c.requestIDGen == nil {
		problems = append(problems, "request id generator cannot be nil")
	}
	return problems
}
