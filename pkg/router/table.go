package router

// table is the ordered route collection. Matching is exact-string
// equality on canonical paths; there are no parameters or wildcards.
// Registration order only matters for never-occurring ties, since
// duplicate paths are rejected.
type table struct {
	routes []*Route
	index  map[string]*Route
}

func newTable() *table {
	return &table{
		index: make(map[string]*Route),
	}
}

// add appends a route, rejecting duplicate paths. The table is never
// left half-updated.
func (t *table) add(rt *Route) error {
	if _, dup := t.index[rt.Path]; dup {
		return &NavError{Op: "register", Path: rt.Path, Err: ErrDuplicateRoute}
	}
	t.routes = append(t.routes, rt)
	t.index[rt.Path] = rt
	return nil
}

// find returns the route for a canonical path.
func (t *table) find(path string) (*Route, bool) {
	rt, ok := t.index[path]
	return rt, ok
}

// paths returns the registered paths in registration order.
func (t *table) paths() []string {
	out := make([]string, len(t.routes))
	for i, rt := range t.routes {
		out[i] = rt.Path
	}
	return out
}
