package router

import "testing"

func TestCanonicalizeFragment(t *testing.T) {
	tests := []struct {
		raw         string
		want        string
		wantChanged bool
	}{
		{"", "/", true},
		{"#", "/", true},
		{"/", "/", false},
		{"#/", "/", false},
		{"/dashboard", "/dashboard", false},
		{"#/dashboard", "/dashboard", false},
		{"dashboard", "/dashboard", true},
		{"/dashboard/", "/dashboard", true},
		{"//dashboard", "/dashboard", true},
		{"/blog//post", "/blog/post", true},
		{"/login?next=/dashboard", "/login", false},
		{"#/login?next=/dashboard", "/login", false},
		{"?q=1", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, changed, err := CanonicalizeFragment(tt.raw)
			if err != nil {
				t.Fatalf("CanonicalizeFragment(%q): %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestCanonicalizeFragmentRejectsHostileInput(t *testing.T) {
	for _, raw := range []string{`/a\b`, "/a\x00b", `\\server\share`} {
		if _, _, err := CanonicalizeFragment(raw); err == nil {
			t.Errorf("CanonicalizeFragment(%q): expected error", raw)
		}
	}
}
