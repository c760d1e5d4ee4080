package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "wayfind").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for view load duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "wayfind",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a router.Observer that records resolutions, redirects,
// and view load outcomes as Prometheus metrics.
type Metrics struct {
	resolutions  prometheus.Counter
	outcomes     *prometheus.CounterVec
	redirects    *prometheus.CounterVec
	loadDuration *prometheus.HistogramVec
	loadFailures *prometheus.CounterVec
}

// NewMetrics creates the Prometheus observer, registering its
// collectors with the configured registry.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Metrics{
		resolutions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "resolutions_total",
			Help:        "Navigation events processed.",
			ConstLabels: cfg.ConstLabels,
		}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "resolution_outcomes_total",
			Help:        "Resolution outcomes by result.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"outcome"}),
		redirects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "redirects_total",
			Help:        "Redirects taken during resolution, by reason.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"reason"}),
		loadDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "view_load_duration_seconds",
			Help:        "View loader latency by path.",
			Buckets:     cfg.Buckets,
			ConstLabels: cfg.ConstLabels,
		}, []string{"path"}),
		loadFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "view_load_failures_total",
			Help:        "View loader failures by path.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"path"}),
	}
}

// ResolveStarted implements router.Observer.
func (m *Metrics) ResolveStarted(_ context.Context, _ string) {
	m.resolutions.Inc()
}

// Redirected implements router.Observer.
func (m *Metrics) Redirected(_ context.Context, _, _ string, reason router.RedirectReason) {
	m.redirects.WithLabelValues(string(reason)).Inc()
}

// Mounted implements router.Observer.
func (m *Metrics) Mounted(_ context.Context, path string, elapsed time.Duration) {
	m.outcomes.WithLabelValues("mounted").Inc()
	m.loadDuration.WithLabelValues(path).Observe(elapsed.Seconds())
}

// LoadFailed implements router.Observer.
func (m *Metrics) LoadFailed(_ context.Context, path string, _ error, elapsed time.Duration) {
	m.outcomes.WithLabelValues("failed").Inc()
	m.loadFailures.WithLabelValues(path).Inc()
	m.loadDuration.WithLabelValues(path).Observe(elapsed.Seconds())
}
