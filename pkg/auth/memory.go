package auth

import (
	"context"
	"sync"
)

// Memory is an in-process auth provider. It holds at most one signed-in
// principal and gates readiness behind an explicit MarkReady call, so
// applications that hydrate auth state asynchronously can hold the
// router's first resolution until the state is known.
type Memory struct {
	mu        sync.RWMutex
	principal *Principal

	readyOnce sync.Once
	ready     chan struct{}
}

// MemoryOption configures a Memory provider.
type MemoryOption func(*Memory)

// WithSignedIn starts the provider with the given principal signed in.
func WithSignedIn(p Principal) MemoryOption {
	return func(m *Memory) {
		m.principal = &p
	}
}

// WithImmediateReady marks the provider ready at construction.
// Use when there is no asynchronous hydration step.
func WithImmediateReady() MemoryOption {
	return func(m *Memory) {
		m.MarkReady()
	}
}

// NewMemory creates an in-memory provider.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		ready: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SignIn replaces the current principal.
func (m *Memory) SignIn(p Principal) {
	m.mu.Lock()
	m.principal = &p
	m.mu.Unlock()
}

// SignOut clears the current principal.
func (m *Memory) SignOut() {
	m.mu.Lock()
	m.principal = nil
	m.mu.Unlock()
}

// MarkReady releases callers blocked in Ready. Idempotent.
func (m *Memory) MarkReady() {
	m.readyOnce.Do(func() {
		close(m.ready)
	})
}

// IsAuthenticated implements Provider.
func (m *Memory) IsAuthenticated(ctx context.Context) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.principal != nil
}

// CurrentUser implements Provider.
func (m *Memory) CurrentUser(ctx context.Context) (Principal, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.principal == nil {
		return Principal{}, false
	}
	return *m.principal, true
}

// Ready implements Readier.
func (m *Memory) Ready(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
