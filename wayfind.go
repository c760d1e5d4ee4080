// Package wayfind provides the public API for the Wayfind navigation
// engine.
//
// This is the recommended import for most applications:
//
//	import "github.com/wayfind-dev/wayfind"
//
// Usage:
//
//	cfg := wayfind.DefaultConfig()
//	cfg.Location = wayfind.NewMemoryLocation("")
//	cfg.Mount = wayfind.NewBufferMount()
//	r, err := wayfind.New(cfg)
//	r.Register("/", loader)
//	r.Init(ctx)
//	r.Navigate("/dashboard")
package wayfind

import (
	"github.com/wayfind-dev/wayfind/pkg/auth"
	"github.com/wayfind-dev/wayfind/pkg/router"
)

// =============================================================================
// Core routing (re-export from pkg/router)
// =============================================================================

// Router owns the route table, the current-route pointer, and the
// mount point reference.
type Router = router.Router

// Config holds router construction parameters.
type Config = router.Config

// Route binds a normalized path to a view loader plus optional guards.
type Route = router.Route

// RouteOption configures a route at registration.
type RouteOption = router.RouteOption

// Content is opaque markup written into the mount point.
type Content = router.Content

// Loader produces the renderable content for a route.
type Loader = router.Loader

// Location carries the fragment portion of the application's address.
type Location = router.Location

// MountPoint is the container the router writes view content into.
type MountPoint = router.MountPoint

// Observer receives resolution telemetry.
type Observer = router.Observer

// New creates a Router from config.
var New = router.New

// DefaultConfig returns a router Config with defaults filled in.
var DefaultConfig = router.DefaultConfig

// NewMemoryLocation creates an in-process Location.
var NewMemoryLocation = router.NewMemoryLocation

// NewBufferMount creates an in-memory MountPoint.
var NewBufferMount = router.NewBufferMount

// Route options.
var (
	WithAuth       = router.WithAuth
	WithRoles      = router.WithRoles
	WithRedirect   = router.WithRedirect
	WithSteering   = router.WithSteering
	WithAfterMount = router.WithAfterMount
)

// Sentinel errors.
var (
	ErrDuplicateRoute = router.ErrDuplicateRoute
	ErrNoRoute        = router.ErrNoRoute
	ErrRedirectLoop   = router.ErrRedirectLoop
)

// =============================================================================
// Auth (re-export from pkg/auth)
// =============================================================================

// Principal represents the authenticated identity.
type Principal = auth.Principal

// AuthProvider answers the router's auth questions.
type AuthProvider = auth.Provider
