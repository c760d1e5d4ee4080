package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

func TestMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))
	ctx := context.Background()

	m.ResolveStarted(ctx, "/dashboard")
	m.Redirected(ctx, "/dashboard", "/login", router.RedirectAuthRequired)
	m.Mounted(ctx, "/login", 5*time.Millisecond)
	m.LoadFailed(ctx, "/broken", errors.New("boom"), time.Millisecond)

	if got := testutil.ToFloat64(m.resolutions); got != 1 {
		t.Errorf("resolutions_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.redirects.WithLabelValues("auth_required")); got != 1 {
		t.Errorf("redirects_total{auth_required} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("mounted")); got != 1 {
		t.Errorf("resolution_outcomes_total{mounted} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("failed")); got != 1 {
		t.Errorf("resolution_outcomes_total{failed} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.loadFailures.WithLabelValues("/broken")); got != 1 {
		t.Errorf("view_load_failures_total{/broken} = %v, want 1", got)
	}
}

func TestMetricsAttachToRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	loc := router.NewMemoryLocation("")
	cfg := router.DefaultConfig()
	cfg.Location = loc
	cfg.Mount = router.NewBufferMount()
	cfg.Observers = []router.Observer{m}

	r, err := router.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.Register("/", func(ctx context.Context) (router.Content, error) {
		return "home", nil
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	r.Navigate("/missing") // unmatched: one redirect, another mount

	if got := testutil.ToFloat64(m.resolutions); got != 2 {
		t.Errorf("resolutions_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.redirects.WithLabelValues("unmatched")); got != 1 {
		t.Errorf("redirects_total{unmatched} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.outcomes.WithLabelValues("mounted")); got != 2 {
		t.Errorf("resolution_outcomes_total{mounted} = %v, want 2", got)
	}
}
