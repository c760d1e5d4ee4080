package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// The default tracer provider is a no-op; these tests exercise the
// observer paths for panics and option plumbing, not exporter output.

func TestTracingCallbacksAreSafe(t *testing.T) {
	tr := NewTracing()
	ctx := context.Background()

	tr.ResolveStarted(ctx, "/a")
	tr.Redirected(ctx, "/a", "/b", router.RedirectSteered)
	tr.Mounted(ctx, "/b", 3*time.Millisecond)
	tr.LoadFailed(ctx, "/c", errors.New("boom"), time.Millisecond)
}

func TestTracingOptions(t *testing.T) {
	called := false
	tr := NewTracing(
		WithTracerName("custom"),
		WithAttributeExtractor(func(ctx context.Context) []attribute.KeyValue {
			called = true
			return []attribute.KeyValue{attribute.String("tenant", "t1")}
		}),
	)

	if tr.cfg.TracerName != "custom" {
		t.Errorf("TracerName = %q, want %q", tr.cfg.TracerName, "custom")
	}

	tr.Mounted(context.Background(), "/x", time.Millisecond)
	if !called {
		t.Error("attribute extractor was not invoked")
	}
}

var _ router.Observer = (*Tracing)(nil)
var _ router.Observer = (*Metrics)(nil)
