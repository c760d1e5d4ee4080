// Package router implements fragment-based view navigation: an ordered
// route table, a guard-evaluating resolver, and the view-swap
// lifecycle for a single mount point.
//
// The router owns no rendering and no auth state. It consumes three
// collaborators: a Location carrying the current fragment, a
// MountPoint it writes view content into, and an auth.Provider it
// queries before guarded routes may render. Post-mount hooks let
// page-specific and navigation-bar initializers observe freshly
// attached content after every swap.
//
// Resolution is synchronous on the goroutine that delivers the
// location change. A navigation arriving while an earlier view load is
// still in flight does not cancel it; both run to completion and the
// mount point keeps whichever write lands last.
package router
