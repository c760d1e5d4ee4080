// Package content provides ready-made view loaders for the router:
// static markup, filesystem-backed views (including embed.FS),
// html/template rendering, and S3-hosted markup.
package content

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// Static returns a loader that always yields the given markup.
func Static(markup string) router.Loader {
	return func(ctx context.Context) (router.Content, error) {
		return router.Content(markup), nil
	}
}

// FS returns a loader that reads name from fsys on every resolution.
// Use with embed.FS for views compiled into the binary.
func FS(fsys fs.FS, name string) router.Loader {
	return func(ctx context.Context) (router.Content, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", fmt.Errorf("read view %s: %w", name, err)
		}
		return router.Content(data), nil
	}
}

// Template returns a loader that executes tmpl with data(ctx). The
// data capability runs on every resolution, so views reflect current
// application state.
func Template(tmpl *template.Template, data func(ctx context.Context) (any, error)) router.Loader {
	return func(ctx context.Context) (router.Content, error) {
		var payload any
		if data != nil {
			var err error
			payload, err = data(ctx)
			if err != nil {
				return "", fmt.Errorf("view data: %w", err)
			}
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, payload); err != nil {
			return "", fmt.Errorf("render view %s: %w", tmpl.Name(), err)
		}
		return router.Content(buf.String()), nil
	}
}
