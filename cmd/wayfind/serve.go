package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/pkg/auth"
	"github.com/wayfind-dev/wayfind/pkg/bridge"
	"github.com/wayfind-dev/wayfind/pkg/content"
	"github.com/wayfind-dev/wayfind/pkg/router"
	"github.com/wayfind-dev/wayfind/pkg/telemetry"
)

func serveCmd() *cobra.Command {
	var (
		addr string
		role string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo application",
		Long: `Serve a small demo: a public home and login page, a dashboard
guarded for User/Admin roles with Admin steered to its own view, and a
profile page requiring a session. --role pre-authenticates every
session with the given role for experimenting with the guards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			// One metrics observer for the process; sessions share it.
			metrics := telemetry.NewMetrics()
			tracing := telemetry.NewTracing()

			cfg := bridge.DefaultConfig()
			cfg.Addr = addr
			cfg.Title = "Wayfind demo"
			cfg.EnableMetrics = true
			cfg.Logger = logger
			cfg.Factory = func(loc router.Location, mount router.MountPoint) (*router.Router, error) {
				return newDemoRouter(loc, mount, role, logger, metrics, tracing)
			}

			srv, err := bridge.New(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&role, "role", "", "pre-authenticate sessions with this role (Guest, User, Admin)")
	return cmd
}

func newDemoRouter(loc router.Location, mount router.MountPoint, role string, logger *slog.Logger, observers ...router.Observer) (*router.Router, error) {
	opts := []auth.MemoryOption{auth.WithImmediateReady()}
	if role != "" {
		opts = append(opts, auth.WithSignedIn(auth.Principal{
			ID:    "demo",
			Name:  "Demo User",
			Roles: []string{role},
		}))
	}
	provider := auth.NewMemory(opts...)

	cfg := router.DefaultConfig()
	cfg.Location = loc
	cfg.Mount = mount
	cfg.Auth = provider
	cfg.Logger = logger
	cfg.Observers = observers
	cfg.AfterMount = func(ctx context.Context, path string) {
		logger.Debug("view mounted", "path", path)
	}

	r, err := router.New(cfg)
	if err != nil {
		return nil, err
	}

	pages := []struct {
		path   string
		markup string
		opts   []router.RouteOption
	}{
		{"/", `<h1>Home</h1><p><a href="#/dashboard">Dashboard</a> · <a href="#/profile">Profile</a></p>`, nil},
		{"/login", `<h1>Login</h1><p>Restart with --role to sign in.</p>`, nil},
		{"/dashboard", `<h1>Dashboard</h1>`, []router.RouteOption{
			router.WithAuth(),
			router.WithRoles("User", "Admin"),
			router.WithRedirect("/admin"),
			router.WithSteering("Admin"),
		}},
		{"/admin", `<h1>Admin</h1>`, []router.RouteOption{
			router.WithAuth(),
			router.WithRoles("Admin"),
		}},
		{"/profile", `<h1>Profile</h1>`, []router.RouteOption{
			router.WithAuth(),
		}},
	}
	for _, p := range pages {
		if err := r.Register(p.path, content.Static(p.markup), p.opts...); err != nil {
			return nil, err
		}
	}

	return r, nil
}
