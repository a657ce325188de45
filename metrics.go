package enterprise

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle,
// the connection pool and the optional rate limiter. It is safe for
// concurrent use, and a nil *MetricsCollector records nothing.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	errorsTotal *prometheus.CounterVec

	poolInUse     prometheus.Gauge
	rateLimitWait prometheus.Histogram

	buildInfo prometheus.Gauge
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegisterer creates a collector using the supplied registerer.
func NewMetricsCollectorWithRegisterer(reg prometheus.Registerer) *MetricsCollector {
	factory := promauto.With(reg)
	build := CurrentBuild()

	mc := &MetricsCollector{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redis_enterprise_requests_total",
				Help: "Total number of REST API requests made",
			},
			[]string{"op", "method", "status_code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "redis_enterprise_request_duration_seconds",
				Help:    "Duration of REST API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op", "method", "status_code"},
		),
		requestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "redis_enterprise_requests_in_flight",
				Help: "Number of REST API requests currently in flight",
			},
			[]string{"op"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "redis_enterprise_errors_total",
				Help: "Total number of failed operations by error kind",
			},
			[]string{"kind", "code", "op"},
		),
		poolInUse: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "redis_enterprise_pool_in_use",
				Help: "Number of connection slots currently checked out",
			},
		),
		rateLimitWait: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "redis_enterprise_rate_limit_wait_seconds",
				Help:    "Time spent waiting for the client-side rate limiter",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
			},
		),
		buildInfo: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "redis_enterprise_client_build_info",
				Help: "Build of the Redis Enterprise client library, always 1",
				ConstLabels: prometheus.Labels{
					"version":    build.Version,
					"commit":     build.GitCommit,
					"go_version": build.GoVersion,
				},
			},
		),
	}
	mc.buildInfo.Set(1)
	return mc
}

// RecordRequest records request count and duration. statusCode is 0 when
// no response was received.
func (mc *MetricsCollector) RecordRequest(op, method string, statusCode int, duration time.Duration) {
	if mc == nil {
		return
	}

	status := strconv.Itoa(statusCode)
	mc.requestsTotal.WithLabelValues(op, method, status).Inc()
	mc.requestDuration.WithLabelValues(op, method, status).Observe(duration.Seconds())
}

// RecordRequestStart increments the in-flight gauge.
func (mc *MetricsCollector) RecordRequestStart(op string) {
	if mc == nil {
		return
	}
	mc.requestsInFlight.WithLabelValues(op).Inc()
}

// RecordRequestEnd decrements the in-flight gauge.
func (mc *MetricsCollector) RecordRequestEnd(op string) {
	if mc == nil {
		return
	}
	mc.requestsInFlight.WithLabelValues(op).Dec()
}

// RecordError increments the error counter for a failed operation.
func (mc *MetricsCollector) RecordError(kind Kind, code, op string) {
	if mc == nil {
		return
	}
	mc.errorsTotal.WithLabelValues(string(kind), code, op).Inc()
}

// RecordPoolInUse sets the checked-out slot gauge.
func (mc *MetricsCollector) RecordPoolInUse(n int) {
	if mc == nil {
		return
	}
	mc.poolInUse.Set(float64(n))
}

// RecordRateLimitWait observes time spent in the rate limiter.
func (mc *MetricsCollector) RecordRateLimitWait(d time.Duration) {
	if mc == nil {
		return
	}
	mc.rateLimitWait.Observe(d.Seconds())
}
