package router

import (
	"context"
	"time"
)

// Phase is the router's position in the resolution lifecycle.
type Phase int32

// Resolution phases. Mounted persists until the next resolution begins.
const (
	PhaseIdle Phase = iota
	PhaseResolving
	PhaseRedirecting
	PhaseRendering
	PhaseMounted
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseResolving:
		return "resolving"
	case PhaseRedirecting:
		return "redirecting"
	case PhaseRendering:
		return "rendering"
	case PhaseMounted:
		return "mounted"
	default:
		return "unknown"
	}
}

// RedirectReason classifies why a resolution was redirected.
type RedirectReason string

// Redirect reasons.
const (
	RedirectUnmatched     RedirectReason = "unmatched"
	RedirectAuthRequired  RedirectReason = "auth_required"
	RedirectRoleForbidden RedirectReason = "role_forbidden"
	RedirectSteered       RedirectReason = "steered"
)

// Observer receives resolution telemetry. Implementations must be safe
// for calls from the resolving goroutine and must not navigate.
type Observer interface {
	// ResolveStarted is called once per navigation event, with the
	// canonical requested path.
	ResolveStarted(ctx context.Context, path string)

	// Redirected is called for each redirect taken during a resolution.
	Redirected(ctx context.Context, from, to string, reason RedirectReason)

	// Mounted is called after view content is attached, with the view
	// load duration.
	Mounted(ctx context.Context, path string, elapsed time.Duration)

	// LoadFailed is called when a view loader fails or a resolution is
	// aborted, after the error placeholder is attached.
	LoadFailed(ctx context.Context, path string, err error, elapsed time.Duration)
}
