package auth

import (
	"context"
	"errors"
)

var (
	// ErrUnauthorized is returned when authentication is required but not present.
	ErrUnauthorized = errors.New("auth: authentication required")

	// ErrForbidden is returned when authentication is present but insufficient.
	ErrForbidden = errors.New("auth: insufficient role")

	// ErrNotReady is returned when the provider has not finished initializing.
	ErrNotReady = errors.New("auth: provider not ready")
)

// Principal represents the authenticated identity.
// Intentionally minimal — no catch-all claims map.
type Principal struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the principal holds the given role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the principal holds at least one of roles.
// An empty roles list never matches.
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

// Provider answers the router's two auth questions. Implementations
// must be safe for concurrent reads.
type Provider interface {
	// IsAuthenticated reports whether a session is currently authenticated.
	IsAuthenticated(ctx context.Context) bool

	// CurrentUser returns the authenticated principal, if any.
	CurrentUser(ctx context.Context) (Principal, bool)
}

// Readier is implemented by providers that finish initializing
// asynchronously (a backing store warming up, a token exchange in
// flight). Router.Init awaits Ready before the first resolution.
type Readier interface {
	// Ready blocks until the provider can answer auth questions,
	// or until ctx is done.
	Ready(ctx context.Context) error
}
