package mweb

import (
	"path"

	"github.com/rohanthewiz/mweb/consts"
)

// Group represents a route group with a common prefix and middleware.
// Groups organize routes under a shared URL prefix (e.g. /api/v1) and can
// carry middleware that only runs for routes registered through the group.
// Groups can be nested.
type Group struct {
	prefix   string
	server   *Server
	handlers []Handler
}

// Group creates a route group on the server.
func (s *Server) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join("/", prefix),
		server:   s,
		handlers: handlers,
	}
}

// Group creates a sub-group with an additional prefix and optional middleware.
// The new group inherits all middleware from the parent group.
func (g *Group) Group(prefix string, handlers ...Handler) *Group {
	return &Group{
		prefix:   path.Join(g.prefix, prefix),
		server:   g.server,
		handlers: append(g.handlers, handlers...),
	}
}

// Use adds middleware to the group, affecting routes registered after this call.
// Middleware runs in the order it was added.
func (g *Group) Use(handlers ...Handler) {
	g.handlers = append(g.handlers, handlers...)
}

// Get registers a GET route with the group prefix
func (g *Group) Get(routePath string, handler Handler) error {
	return g.addRoute(consts.MethodGet, routePath, handler)
}

// Post registers a POST route with the group prefix
func (g *Group) Post(routePath string, handler Handler) error {
	return g.addRoute(consts.MethodPost, routePath, handler)
}

// Put registers a PUT route with the group prefix
func (g *Group) Put(routePath string, handler Handler) error {
	return g.addRoute(consts.MethodPut, routePath, handler)
}

// Patch registers a PATCH route with the group prefix
func (g *Group) Patch(routePath string, handler Handler) error {
	return g.addRoute(consts.MethodPatch, routePath, handler)
}

// Delete registers a DELETE route with the group prefix
func (g *Group) Delete(routePath string, handler Handler) error {
	return g.addRoute(consts.MethodDelete, routePath, handler)
}

// Head registers a HEAD route with the group prefix
func (g *Group) Head(routePath string, handler Handler) error {
	return g.addRoute(consts.MethodHead, routePath, handler)
}

// Options registers an OPTIONS route with the group prefix
func (g *Group) Options(routePath string, handler Handler) error {
	return g.addRoute(consts.MethodOptions, routePath, handler)
}

// addRoute registers a route with the group prefix, wrapping the handler
// with the group's middleware chain.
func (g *Group) addRoute(method, routePath string, handler Handler) error {
	fullPath := path.Join("/", g.prefix, routePath)

	// Wrap handlers in reverse order so they execute in the order added
	finalHandler := handler

	for i := len(g.handlers) - 1; i >= 0; i-- {
		middleware := g.handlers[i]
		nextHandler := finalHandler

		finalHandler = func(ctx Context) error {
			// Track whether the middleware called Next() so it can stop
			// the chain (e.g. an auth failure) by not calling it
			nextCalled := false

			wrapper := &contextWrapper{
				Context: ctx,
				next: func() error {
					nextCalled = true
					return nextHandler(ctx)
				},
			}

			err := middleware(wrapper)

			// Middleware that neither called Next() nor errored continues
			// the chain implicitly
			if err == nil && !nextCalled {
				err = nextHandler(ctx)
			}

			return err
		}
	}

	return g.server.AddMethod(method, fullPath, finalHandler)
}

// contextWrapper wraps a Context to intercept Next() calls, so group
// middleware advances through the group chain rather than the server chain.
type contextWrapper struct {
	Context
	next func() error
}

// Next overrides the wrapped context's Next method.
func (w *contextWrapper) Next() error {
	return w.next()
}
