package router

import "context"

// Content is opaque markup written verbatim into the mount point.
// The router never inspects it.
type Content string

// Loader produces the renderable content for a route. It may block and
// it may fail; failure is surfaced in place of the view.
type Loader func(ctx context.Context) (Content, error)

// Route binds a normalized path to a view loader plus optional access
// guards. Descriptors are created during registration and live for the
// lifetime of the router.
type Route struct {
	// Path is the normalized route key, always beginning with "/".
	Path string

	// Loader produces the view content when the route is resolved.
	Loader Loader

	// RequiresAuth gates the route behind an authenticated session.
	RequiresAuth bool

	// AllowedRoles restricts the route to principals holding at least
	// one listed role. The check applies whenever the set is non-empty,
	// even if RequiresAuth was left false.
	AllowedRoles []string

	// RedirectTo is where a disallowed role is sent instead of the
	// route, and the target of role steering (see WithSteering).
	// Empty means "fall back to home".
	RedirectTo string

	steerRoles map[string]struct{}
	afterMount func(ctx context.Context)
}

// SteersRole reports whether principals holding role are steered to
// RedirectTo after passing this route's guards.
func (rt *Route) SteersRole(role string) bool {
	_, ok := rt.steerRoles[role]
	return ok
}

// RouteOption configures a route at registration.
type RouteOption func(*Route)

// WithAuth requires an authenticated session for the route.
func WithAuth() RouteOption {
	return func(rt *Route) {
		rt.RequiresAuth = true
	}
}

// WithRoles restricts the route to principals holding at least one of
// the given roles. It does not imply WithAuth; the role check is
// honored either way.
func WithRoles(roles ...string) RouteOption {
	return func(rt *Route) {
		rt.AllowedRoles = append(rt.AllowedRoles, roles...)
	}
}

// WithRedirect sets the fallback path used when a role guard rejects
// the principal, and the target for role steering.
func WithRedirect(path string) RouteOption {
	return func(rt *Route) {
		rt.RedirectTo = path
	}
}

// WithSteering steers principals holding any of the given roles to the
// route's RedirectTo after guards pass. Used when an elevated role
// visiting a shared path should land on its own view.
func WithSteering(roles ...string) RouteOption {
	return func(rt *Route) {
		if rt.steerRoles == nil {
			rt.steerRoles = make(map[string]struct{}, len(roles))
		}
		for _, role := range roles {
			rt.steerRoles[role] = struct{}{}
		}
	}
}

// WithAfterMount attaches a post-mount hook invoked after this route's
// content is written into the mount point.
func WithAfterMount(fn func(ctx context.Context)) RouteOption {
	return func(rt *Route) {
		rt.afterMount = fn
	}
}
