package router

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wayfind-dev/wayfind/pkg/auth"
)

// Config holds router construction parameters. Location and Mount are
// required; everything else has a default.
type Config struct {
	// Location carries the current fragment and delivers change events.
	Location Location

	// Mount is the container the router writes view content into.
	Mount MountPoint

	// Auth answers authentication and role questions for guarded
	// routes. Nil means "never authenticated": guarded routes always
	// redirect to login.
	Auth auth.Provider

	// HomePath is the fallback for unmatched paths and rejected roles.
	// Default: "/".
	HomePath string

	// LoginPath is where unauthenticated visits to guarded routes are
	// sent. Default: "/login".
	LoginPath string

	// MaxRedirects caps redirects within one resolution.
	// Default: 10.
	MaxRedirects int

	// LoadingContent is the interim placeholder shown while a view
	// loader runs.
	LoadingContent Content

	// AfterMount runs after every successful mount, regardless of
	// path. This is where navigation-bar re-initialization belongs.
	AfterMount func(ctx context.Context, path string)

	// Observers receive resolution telemetry.
	Observers []Observer

	// BaseContext supplies the context for resolutions triggered by
	// location changes. Default: context.Background.
	BaseContext func() context.Context

	// Logger for diagnostics. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with defaults filled in. Location and
// Mount remain to be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		HomePath:       "/",
		LoginPath:      "/login",
		MaxRedirects:   10,
		LoadingContent: `<div class="wf-loading">Loading…</div>`,
	}
}

// Router owns the route table, the current-route pointer, and the
// mount point reference. One router per application surface; construct
// it at bootstrap and pass it to whatever needs to navigate.
type Router struct {
	mu      sync.Mutex
	tbl     *table
	current *Route

	loc   Location
	mount MountPoint
	auth  auth.Provider

	home         string
	login        string
	maxRedirects int
	loading      Content
	afterMount   func(ctx context.Context, path string)
	observers    []Observer
	baseContext  func() context.Context
	logger       *slog.Logger

	phase atomic.Int32
}

// New creates a Router from config. Defaults are filled for any unset
// field except Location and Mount, which are required.
func New(cfg *Config) (*Router, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Location == nil {
		return nil, ErrNoLocation
	}
	if cfg.Mount == nil {
		return nil, ErrNoMount
	}

	defaults := DefaultConfig()
	if cfg.HomePath == "" {
		cfg.HomePath = defaults.HomePath
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = defaults.LoginPath
	}
	if cfg.MaxRedirects == 0 {
		cfg.MaxRedirects = defaults.MaxRedirects
	}
	if cfg.LoadingContent == "" {
		cfg.LoadingContent = defaults.LoadingContent
	}
	if cfg.BaseContext == nil {
		cfg.BaseContext = context.Background
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Router{
		tbl:          newTable(),
		loc:          cfg.Location,
		mount:        cfg.Mount,
		auth:         cfg.Auth,
		home:         cfg.HomePath,
		login:        cfg.LoginPath,
		maxRedirects: cfg.MaxRedirects,
		loading:      cfg.LoadingContent,
		afterMount:   cfg.AfterMount,
		observers:    cfg.Observers,
		baseContext:  cfg.BaseContext,
		logger:       cfg.Logger,
	}, nil
}

// Register adds a route for path. The path is canonicalized before
// insertion; registering an already-registered path returns
// ErrDuplicateRoute. Registration is expected to complete before the
// first resolution, but later registration is permitted.
func (r *Router) Register(path string, loader Loader, opts ...RouteOption) error {
	canon, _, err := CanonicalizeFragment(path)
	if err != nil {
		return &NavError{Op: "register", Path: path, Err: err}
	}
	if loader == nil {
		return &NavError{Op: "register", Path: canon, Err: ErrNilLoader}
	}

	rt := &Route{Path: canon, Loader: loader}
	for _, opt := range opts {
		opt(rt)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tbl.add(rt)
}

// Init prepares the router and performs the initial resolution. If the
// auth provider reports readiness asynchronously, Init awaits it first
// (bounded by ctx) so the first guard evaluation never races provider
// startup.
func (r *Router) Init(ctx context.Context) error {
	if rd, ok := r.auth.(auth.Readier); ok {
		if err := rd.Ready(ctx); err != nil {
			return &NavError{Op: "init", Err: fmt.Errorf("awaiting auth provider: %w", err)}
		}
	}

	r.loc.OnChange(func() {
		r.Resolve(r.baseContext())
	})

	r.Resolve(ctx)
	return nil
}

// Navigate requests a route change. The path is canonicalized and
// written through the Location; resolution is re-entered only via the
// location change listener, keeping a single entry point and keeping
// the history surface consistent.
func (r *Router) Navigate(path string) {
	canon, _, err := CanonicalizeFragment(path)
	if err != nil {
		canon = r.home
	}
	r.loc.Navigate(canon)
}

// GetCurrentPath returns the normalized current fragment. It reads the
// Location, not the current-route pointer.
func (r *Router) GetCurrentPath() string {
	canon, _, err := CanonicalizeFragment(r.loc.Fragment())
	if err != nil {
		return r.home
	}
	return canon
}

// RouteExists reports whether a route is registered for path.
func (r *Router) RouteExists(path string) bool {
	canon, _, err := CanonicalizeFragment(path)
	if err != nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tbl.find(canon)
	return ok
}

// Paths returns the registered paths in registration order.
func (r *Router) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tbl.paths()
}

// CurrentRoute returns the last successfully resolved route, or nil
// before the first resolution. Mutated only at the end of a successful
// resolution; a failed view load does not roll it back.
func (r *Router) CurrentRoute() *Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Phase returns the router's position in the resolution lifecycle.
func (r *Router) Phase() Phase {
	return Phase(r.phase.Load())
}

// Resolve processes the current fragment: canonicalize, match, guard,
// redirect or render. It is triggered by the location change listener
// and by Init; applications navigate with Navigate, not by calling
// Resolve directly.
func (r *Router) Resolve(ctx context.Context) {
	r.phase.Store(int32(PhaseResolving))

	raw := r.loc.Fragment()
	path, changed, err := CanonicalizeFragment(raw)
	if err != nil {
		// Hostile fragment: treat as a dead link.
		r.logger.Warn("rejecting fragment", "fragment", raw, "err", err)
		r.redirect(ctx, raw, r.home, RedirectUnmatched, 0)
		return
	}
	if changed {
		// Rewrite the address so history never holds the denormalized
		// form, mirroring replace-on-canonicalization semantics.
		r.loc.Replace(path)
	}

	for _, o := range r.observers {
		o.ResolveStarted(ctx, path)
	}

	r.resolveAt(ctx, path, 0)
}

// resolveAt runs one step of the resolution state machine. depth
// counts redirects taken within this resolution.
func (r *Router) resolveAt(ctx context.Context, path string, depth int) {
	if depth > r.maxRedirects {
		r.abort(ctx, path, &NavError{Op: "resolve", Path: path, Err: ErrRedirectLoop})
		return
	}

	r.mu.Lock()
	rt, ok := r.tbl.find(path)
	r.mu.Unlock()

	if !ok {
		if path == r.home {
			// Home itself is unregistered; there is nowhere left to fall
			// back to.
			r.abort(ctx, path, &NavError{Op: "resolve", Path: path, Err: ErrNoRoute})
			return
		}
		// Dead link: silently fall back to home.
		r.redirect(ctx, path, r.home, RedirectUnmatched, depth)
		return
	}

	if rt.RequiresAuth && !r.isAuthenticated(ctx) {
		r.redirect(ctx, path, r.login, RedirectAuthRequired, depth)
		return
	}

	if len(rt.AllowedRoles) > 0 {
		principal, ok := r.currentUser(ctx)
		if !ok || !principal.HasAnyRole(rt.AllowedRoles...) {
			target := rt.RedirectTo
			if target == "" {
				target = r.home
			}
			r.redirect(ctx, path, target, RedirectRoleForbidden, depth)
			return
		}
	}

	// Role steering: an allowed principal holding a steer role is sent
	// to the route's alternate view instead.
	if rt.RedirectTo != "" && len(rt.steerRoles) > 0 {
		if principal, ok := r.currentUser(ctx); ok {
			for role := range rt.steerRoles {
				if principal.HasRole(role) {
					r.redirect(ctx, path, rt.RedirectTo, RedirectSteered, depth)
					return
				}
			}
		}
	}

	r.mu.Lock()
	r.current = rt
	r.mu.Unlock()

	r.loadView(ctx, rt)
}

// redirect rewrites the address and re-enters resolution for the new
// target. Replace, not Navigate: router-initiated redirects must not
// pile up history entries or re-trigger the change listener, so one
// navigation event stays one resolution and the loop guard holds.
func (r *Router) redirect(ctx context.Context, from, to string, reason RedirectReason, depth int) {
	r.phase.Store(int32(PhaseRedirecting))
	r.logger.Debug("redirecting", "from", from, "to", to, "reason", string(reason))
	for _, o := range r.observers {
		o.Redirected(ctx, from, to, reason)
	}

	r.loc.Replace(to)
	r.resolveAt(ctx, to, depth+1)
}

// loadView swaps the mount point to the route's content: loading
// placeholder, loader call, then content or an in-place error. A
// loader failure is recoverable and never rolls back the current
// route or leaves the mount point stale.
func (r *Router) loadView(ctx context.Context, rt *Route) {
	r.phase.Store(int32(PhaseRendering))
	r.mount.SetContent(r.loading)

	start := time.Now()
	content, err := rt.Loader(ctx)
	elapsed := time.Since(start)

	if err != nil {
		r.logger.Error("view load failed", "path", rt.Path, "err", err)
		r.mount.SetContent(r.errorContent(err))
		r.phase.Store(int32(PhaseIdle))
		for _, o := range r.observers {
			o.LoadFailed(ctx, rt.Path, err, elapsed)
		}
		return
	}

	r.mount.SetContent(content)
	r.phase.Store(int32(PhaseMounted))
	for _, o := range r.observers {
		o.Mounted(ctx, rt.Path, elapsed)
	}

	// Post-mount hooks run after the content write so page and nav-bar
	// initializers always observe the freshly attached view.
	if rt.afterMount != nil {
		rt.afterMount(ctx)
	}
	if r.afterMount != nil {
		r.afterMount(ctx, rt.Path)
	}
}

// abort renders an in-place error for a resolution that cannot
// terminate in a mount. Nothing in this subsystem is fatal to the
// process.
func (r *Router) abort(ctx context.Context, path string, err error) {
	r.logger.Error("navigation aborted", "path", path, "err", err)
	r.mount.SetContent(r.errorContent(err))
	r.phase.Store(int32(PhaseIdle))
	for _, o := range r.observers {
		o.LoadFailed(ctx, path, err, 0)
	}
}

// errorContent renders the recoverable error placeholder: the failure
// message plus a control that navigates home.
func (r *Router) errorContent(err error) Content {
	return Content(fmt.Sprintf(
		`<div class="wf-error"><p>%s</p><a href="#%s" data-wf-home>Go home</a></div>`,
		html.EscapeString(err.Error()), r.home,
	))
}

func (r *Router) isAuthenticated(ctx context.Context) bool {
	if r.auth == nil {
		return false
	}
	return r.auth.IsAuthenticated(ctx)
}

func (r *Router) currentUser(ctx context.Context) (auth.Principal, bool) {
	if r.auth == nil {
		return auth.Principal{}, false
	}
	return r.auth.CurrentUser(ctx)
}
