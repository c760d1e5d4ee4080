package bridge

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// SessionFactory builds the application router for one connection.
// Register routes, wire auth, and attach observers here; the bridge
// supplies the wire-backed Location and MountPoint and calls Init.
type SessionFactory func(loc router.Location, mount router.MountPoint) (*router.Router, error)

// Config holds bridge server parameters. Factory is required.
type Config struct {
	// Addr is the listen address. Default: ":8080".
	Addr string

	// Factory builds a router per connection.
	Factory SessionFactory

	// Title is the shell page title. Default: "Wayfind".
	Title string

	// CheckOrigin validates the WebSocket origin.
	// Default: same-host origins only.
	CheckOrigin func(r *http.Request) bool

	// ReadLimit caps incoming message size in bytes. Default: 4KB.
	ReadLimit int64

	// WriteTimeout bounds each frame write. Default: 10s.
	WriteTimeout time.Duration

	// EnableMetrics mounts promhttp at /metrics. Default: false.
	EnableMetrics bool

	// Logger for diagnostics. Default: slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with defaults filled in. Factory
// remains to be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		Addr:         ":8080",
		Title:        "Wayfind",
		ReadLimit:    4 * 1024,
		WriteTimeout: 10 * time.Second,
	}
}

// Server serves the shell page and the WebSocket endpoint.
type Server struct {
	cfg      *Config
	upgrader websocket.Upgrader
	shell    []byte
	logger   *slog.Logger

	httpServer *http.Server
}

// New creates a bridge server from config.
func New(cfg *Config) (*Server, error) {
	if cfg == nil || cfg.Factory == nil {
		return nil, fmt.Errorf("bridge: session factory is required")
	}

	defaults := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = defaults.Addr
	}
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}
	if cfg.ReadLimit == 0 {
		cfg.ReadLimit = defaults.ReadLimit
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = defaults.WriteTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	var shell bytes.Buffer
	err := shellTemplate.Execute(&shell, shellData{
		Title:      cfg.Title,
		MountID:    "app",
		SocketPath: "/ws",
	})
	if err != nil {
		return nil, fmt.Errorf("bridge: render shell: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		shell:  shell.Bytes(),
		logger: cfg.Logger,
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     cfg.CheckOrigin,
	}
	return s, nil
}

// Handler returns the HTTP handler: shell page at /, WebSocket at /ws,
// and optionally promhttp at /metrics.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(s.shell)
	})
	r.Get("/ws", s.handleWS)
	if s.cfg.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("bridge listening", "addr", s.cfg.Addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// handleWS upgrades the connection and runs one router session on the
// read loop: the first frame carries the initial fragment, later
// frames are fragment changes the browser observed.
func (s *Server) handleWS(w http.ResponseWriter, req *http.Request) {
	sock, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer sock.Close()

	sock.SetReadLimit(s.cfg.ReadLimit)

	var writeMu sync.Mutex
	send := func(f Frame) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		sock.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		return sock.WriteJSON(f)
	}

	loc := newSocketLocation(send)
	mount := newSocketMount(send)

	rt, err := s.cfg.Factory(loc, mount)
	if err != nil {
		s.logger.Error("session factory failed", "err", err)
		return
	}

	ctx := req.Context()

	var first Frame
	if err := sock.ReadJSON(&first); err != nil {
		return
	}
	if first.Type != FrameNavigate {
		s.logger.Warn("unexpected first frame", "type", first.Type)
		return
	}
	loc.Replace(first.Path)
	if err := rt.Init(ctx); err != nil {
		s.logger.Error("router init failed", "err", err)
		return
	}

	for {
		var frame Frame
		if err := sock.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket closed", "err", err)
			}
			return
		}
		if frame.Type != FrameNavigate {
			s.logger.Warn("dropping unexpected frame", "type", frame.Type)
			continue
		}
		loc.setFromClient(frame.Path)
	}
}
