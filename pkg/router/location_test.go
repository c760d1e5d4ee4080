package router

import "testing"

func TestMemoryLocationNavigateNotifies(t *testing.T) {
	loc := NewMemoryLocation("/")

	notified := 0
	loc.OnChange(func() { notified++ })

	loc.Navigate("/a")
	if loc.Fragment() != "/a" {
		t.Errorf("Fragment() = %q, want %q", loc.Fragment(), "/a")
	}
	if notified != 1 {
		t.Errorf("notifications = %d, want 1", notified)
	}
}

func TestMemoryLocationReplaceIsSilent(t *testing.T) {
	loc := NewMemoryLocation("/a")

	notified := 0
	loc.OnChange(func() { notified++ })

	loc.Replace("/b")
	if loc.Fragment() != "/b" {
		t.Errorf("Fragment() = %q, want %q", loc.Fragment(), "/b")
	}
	if notified != 0 {
		t.Errorf("notifications = %d, want 0", notified)
	}
}

func TestMemoryLocationListenerSeesNewFragment(t *testing.T) {
	loc := NewMemoryLocation("/")

	var seen string
	loc.OnChange(func() { seen = loc.Fragment() })

	loc.Navigate("/next")
	if seen != "/next" {
		t.Errorf("listener observed %q, want %q", seen, "/next")
	}
}

func TestBufferMount(t *testing.T) {
	m := NewBufferMount()
	if m.Writes() != 0 {
		t.Fatalf("Writes() = %d, want 0", m.Writes())
	}
	m.SetContent("a")
	m.SetContent("b")
	if m.Content() != "b" {
		t.Errorf("Content() = %q, want %q", m.Content(), "b")
	}
	if m.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", m.Writes())
	}
}
