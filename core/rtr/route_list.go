package rtr

import "fmt"

// RouteList represents a registered route for debugging and inspection.
// The table exposes its contents in this form for:
//   - Route table visualization (see the server's routes overview page)
//   - Debugging precedence surprises between overlapping routes
//   - Testing route registration
type RouteList struct {
	Method     string
	Path       string
	HandlerRef string
}

// ListRoutes returns the registered routes in registration order,
// which is also their matching precedence.
func (t *Table[T]) ListRoutes() (routes []RouteList) {
	for _, e := range t.entries {
		routes = append(routes, RouteList{
			Method:     e.Method,
			Path:       e.Pattern.String(),
			HandlerRef: fmt.Sprintf("%v", e.Handler),
		})
	}
	return
}
