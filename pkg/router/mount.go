package router

import "sync"

// MountPoint is the single container whose content the router replaces
// on each resolution. The router is its sole writer; implementations
// only need to make SetContent safe to call from the resolving
// goroutine.
type MountPoint interface {
	SetContent(c Content)
}

// BufferMount is an in-memory MountPoint. It records the latest
// content and the write count, for embedders that render elsewhere and
// for tests.
type BufferMount struct {
	mu      sync.Mutex
	content Content
	writes  int
}

// NewBufferMount creates an empty BufferMount.
func NewBufferMount() *BufferMount {
	return &BufferMount{}
}

// SetContent implements MountPoint.
func (b *BufferMount) SetContent(c Content) {
	b.mu.Lock()
	b.content = c
	b.writes++
	b.mu.Unlock()
}

// Content returns the last written content.
func (b *BufferMount) Content() Content {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.content
}

// Writes returns how many times SetContent has been called.
func (b *BufferMount) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}
