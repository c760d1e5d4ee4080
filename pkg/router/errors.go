package router

import (
	"errors"
	"fmt"
)

// Sentinel errors for navigation and registration failures.
var (
	// ErrNoRoute is recorded when no descriptor matches a path.
	// It is never surfaced to the user; resolution falls back to home.
	ErrNoRoute = errors.New("router: no route for path")

	// ErrRedirectLoop is recorded when a resolution exceeds the
	// redirect budget. Rendered in place.
	ErrRedirectLoop = errors.New("router: redirect loop detected")

	// ErrDuplicateRoute is returned when a path is registered twice.
	ErrDuplicateRoute = errors.New("router: route already registered")

	// ErrNilLoader is returned when a route is registered without a loader.
	ErrNilLoader = errors.New("router: nil view loader")

	// ErrNoLocation is returned by New when no Location is configured.
	ErrNoLocation = errors.New("router: no location configured")

	// ErrNoMount is returned by New when no MountPoint is configured.
	ErrNoMount = errors.New("router: no mount point configured")
)

// NavError wraps a navigation failure with the operation and path for
// diagnostics.
type NavError struct {
	Op   string // operation that failed: "register", "resolve", "load"
	Path string
	Err  error
}

// Error returns the message with navigation context.
func (e *NavError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("router: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("router: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *NavError) Unwrap() error {
	return e.Err
}
