package router

import "sync"

// Location carries the fragment portion of the application's address.
// Navigate pushes a new entry and notifies the change listener;
// Replace rewrites the current entry silently. The router is the only
// Replace caller; Navigate is shared with the application.
type Location interface {
	// Fragment returns the current fragment, without the leading "#".
	Fragment() string

	// Navigate updates the fragment, pushing a history entry, and
	// notifies the change listener.
	Navigate(path string)

	// Replace updates the fragment, replacing the current history
	// entry, without notifying the listener. Used during redirects so
	// one resolution stays one resolution.
	Replace(path string)

	// OnChange registers the single change listener. Later calls
	// replace earlier ones.
	OnChange(fn func())
}

// MemoryLocation is an in-process Location. Change notifications are
// delivered synchronously on the calling goroutine, which makes
// navigation deterministic for embedders and tests.
type MemoryLocation struct {
	mu       sync.Mutex
	fragment string
	onChange func()
}

// NewMemoryLocation creates a MemoryLocation at the given fragment.
func NewMemoryLocation(fragment string) *MemoryLocation {
	return &MemoryLocation{fragment: fragment}
}

// Fragment implements Location.
func (l *MemoryLocation) Fragment() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fragment
}

// Navigate implements Location.
func (l *MemoryLocation) Navigate(path string) {
	l.mu.Lock()
	l.fragment = path
	fn := l.onChange
	l.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Replace implements Location.
func (l *MemoryLocation) Replace(path string) {
	l.mu.Lock()
	l.fragment = path
	l.mu.Unlock()
}

// OnChange implements Location.
func (l *MemoryLocation) OnChange(fn func()) {
	l.mu.Lock()
	l.onChange = fn
	l.mu.Unlock()
}
