package bridge

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wayfind-dev/wayfind/pkg/auth"
	"github.com/wayfind-dev/wayfind/pkg/content"
	"github.com/wayfind-dev/wayfind/pkg/router"
)

func demoFactory(t *testing.T) SessionFactory {
	t.Helper()
	return func(loc router.Location, mount router.MountPoint) (*router.Router, error) {
		cfg := router.DefaultConfig()
		cfg.Location = loc
		cfg.Mount = mount
		cfg.Auth = auth.NewMemory(auth.WithImmediateReady())

		r, err := router.New(cfg)
		if err != nil {
			return nil, err
		}
		if err := r.Register("/", content.Static("<h1>Home</h1>")); err != nil {
			return nil, err
		}
		if err := r.Register("/login", content.Static("<h1>Login</h1>")); err != nil {
			return nil, err
		}
		if err := r.Register("/dashboard", content.Static("<h1>Dash</h1>"), router.WithAuth()); err != nil {
			return nil, err
		}
		return r, nil
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *Server) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Factory = demoFactory(t)
	cfg.EnableMetrics = true

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, s
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return f
}

// readUntilContent skips NAV and loading frames and returns the next
// settled content frame.
func readUntilContent(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	for i := 0; i < 10; i++ {
		f := readFrame(t, conn)
		if f.Type == FrameContent && !strings.Contains(f.HTML, "wf-loading") {
			return f
		}
	}
	t.Fatal("no content frame within 10 frames")
	return Frame{}
}

func TestServerServesShell(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "new WebSocket") {
		t.Error("shell page does not contain the client script")
	}
	if !strings.Contains(string(body), `id="app"`) {
		t.Error("shell page does not contain the mount element")
	}
}

func TestServerServesMetrics(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestSessionMountsInitialView(t *testing.T) {
	ts, _ := newTestServer(t)
	conn := dial(t, ts)

	if err := conn.WriteJSON(Frame{Type: FrameNavigate, Path: "/"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	f := readUntilContent(t, conn)
	if f.HTML != "<h1>Home</h1>" {
		t.Errorf("content = %q, want home view", f.HTML)
	}
}

func TestSessionGuardedRouteRedirectsOverWire(t *testing.T) {
	ts, _ := newTestServer(t)
	conn := dial(t, ts)

	if err := conn.WriteJSON(Frame{Type: FrameNavigate, Path: "/dashboard"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	sawLoginReplace := false
	for i := 0; i < 10; i++ {
		f := readFrame(t, conn)
		if f.Type == FrameNavReplace && f.Path == "/login" {
			sawLoginReplace = true
		}
		if f.Type == FrameContent && !strings.Contains(f.HTML, "wf-loading") {
			if f.HTML != "<h1>Login</h1>" {
				t.Errorf("content = %q, want login view", f.HTML)
			}
			break
		}
	}
	if !sawLoginReplace {
		t.Error("no nav_replace /login frame observed")
	}
}

func TestSessionFollowsClientNavigation(t *testing.T) {
	ts, _ := newTestServer(t)
	conn := dial(t, ts)

	if err := conn.WriteJSON(Frame{Type: FrameNavigate, Path: "/"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if f := readUntilContent(t, conn); f.HTML != "<h1>Home</h1>" {
		t.Fatalf("initial content = %q, want home view", f.HTML)
	}

	if err := conn.WriteJSON(Frame{Type: FrameNavigate, Path: "/login"}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if f := readUntilContent(t, conn); f.HTML != "<h1>Login</h1>" {
		t.Errorf("content = %q, want login view", f.HTML)
	}
}

func TestNewRequiresFactory(t *testing.T) {
	if _, err := New(DefaultConfig()); err == nil {
		t.Error("New without factory: expected error")
	}
}
