package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// Default tracer name for Wayfind applications.
const defaultTracerName = "wayfind"

// TracingConfig configures the OpenTelemetry observer.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "wayfind").
	TracerName string

	// AttributeExtractor extracts custom attributes from the context.
	// Called for each recorded span.
	AttributeExtractor func(ctx context.Context) []attribute.KeyValue

	// TracerProvider overrides the global provider.
	TracerProvider trace.TracerProvider
}

// TracingOption configures the OpenTelemetry observer.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx context.Context) []attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.AttributeExtractor = extractor
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.TracerProvider = tp
	}
}

// Tracing is a router.Observer that records each view resolution as a
// span. Observer callbacks report a measured duration rather than
// carrying a live span, so spans are recorded retrospectively with
// explicit timestamps.
type Tracing struct {
	cfg    TracingConfig
	tracer trace.Tracer
}

// NewTracing creates the OpenTelemetry observer.
func NewTracing(opts ...TracingOption) *Tracing {
	cfg := TracingConfig{
		TracerName: defaultTracerName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var tracer trace.Tracer
	if cfg.TracerProvider != nil {
		tracer = cfg.TracerProvider.Tracer(cfg.TracerName)
	} else {
		tracer = otel.Tracer(cfg.TracerName)
	}

	return &Tracing{cfg: cfg, tracer: tracer}
}

// ResolveStarted implements router.Observer.
func (t *Tracing) ResolveStarted(_ context.Context, _ string) {}

// Redirected implements router.Observer.
func (t *Tracing) Redirected(ctx context.Context, from, to string, reason router.RedirectReason) {
	now := time.Now()
	_, span := t.tracer.Start(ctx, "wayfind.redirect",
		trace.WithTimestamp(now),
		trace.WithAttributes(t.attrs(ctx,
			attribute.String("wayfind.from", from),
			attribute.String("wayfind.to", to),
			attribute.String("wayfind.reason", string(reason)),
		)...),
	)
	span.End(trace.WithTimestamp(now))
}

// Mounted implements router.Observer.
func (t *Tracing) Mounted(ctx context.Context, path string, elapsed time.Duration) {
	end := time.Now()
	_, span := t.tracer.Start(ctx, "wayfind.mount",
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(t.attrs(ctx,
			attribute.String("wayfind.path", path),
			attribute.String("wayfind.outcome", "mounted"),
		)...),
	)
	span.SetStatus(codes.Ok, "")
	span.End(trace.WithTimestamp(end))
}

// LoadFailed implements router.Observer.
func (t *Tracing) LoadFailed(ctx context.Context, path string, err error, elapsed time.Duration) {
	end := time.Now()
	_, span := t.tracer.Start(ctx, "wayfind.mount",
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(t.attrs(ctx,
			attribute.String("wayfind.path", path),
			attribute.String("wayfind.outcome", "failed"),
		)...),
	)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.End(trace.WithTimestamp(end))
}

func (t *Tracing) attrs(ctx context.Context, base ...attribute.KeyValue) []attribute.KeyValue {
	if t.cfg.AttributeExtractor == nil {
		return base
	}
	return append(base, t.cfg.AttributeExtractor(ctx)...)
}
