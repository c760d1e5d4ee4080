package router

import (
	"errors"
	"strings"
)

// CanonicalizeFragment normalizes a location fragment to a route path.
// The leading "#" and any query portion are stripped (query strings are
// a collaborator's concern, never part of matching), an empty fragment
// maps to "/", duplicate and trailing slashes are collapsed. changed
// reports whether the canonical path differs from the raw input after
// the "#"/query strip.
func CanonicalizeFragment(raw string) (path string, changed bool, err error) {
	path = strings.TrimPrefix(raw, "#")
	path, _, _ = strings.Cut(path, "?")

	if path == "" {
		return "/", true, nil
	}

	// SECURITY: reject backslash and null
	if strings.Contains(path, "\\") {
		return "", false, errors.New("fragment contains backslash")
	}
	if strings.Contains(path, "\x00") {
		return "", false, errors.New("fragment contains null byte")
	}

	original := path

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}

	return path, path != original, nil
}
