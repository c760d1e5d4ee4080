package bridge

import (
	"sync"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// socketLocation is the wire-backed router.Location for one
// connection. The server-side fragment mirrors the browser's; history
// writes are forwarded as NAV frames.
type socketLocation struct {
	mu       sync.Mutex
	fragment string
	onChange func()
	send     func(Frame) error
}

func newSocketLocation(send func(Frame) error) *socketLocation {
	return &socketLocation{send: send}
}

func (l *socketLocation) Fragment() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fragment
}

// Navigate implements router.Location for programmatic navigation:
// update the mirror, push a history entry client-side, re-enter the
// router.
func (l *socketLocation) Navigate(path string) {
	l.mu.Lock()
	l.fragment = path
	fn := l.onChange
	l.mu.Unlock()

	l.send(Frame{Type: FrameNavPush, Path: path})
	if fn != nil {
		fn()
	}
}

// Replace implements router.Location for redirects: update the mirror
// and the client's history entry without re-entering the router.
func (l *socketLocation) Replace(path string) {
	l.mu.Lock()
	l.fragment = path
	l.mu.Unlock()

	l.send(Frame{Type: FrameNavReplace, Path: path})
}

func (l *socketLocation) OnChange(fn func()) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}

// setFromClient records a fragment change the browser already made and
// re-enters the router. No frame is echoed back.
func (l *socketLocation) setFromClient(path string) {
	l.mu.Lock()
	l.fragment = path
	fn := l.onChange
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// socketMount forwards mount writes to the client as content frames.
type socketMount struct {
	send func(Frame) error
}

func newSocketMount(send func(Frame) error) *socketMount {
	return &socketMount{send: send}
}

func (m *socketMount) SetContent(c router.Content) {
	m.send(Frame{Type: FrameContent, HTML: string(c)})
}
