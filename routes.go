package mweb

import (
	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/mweb/core/rtr"
)

// ListRoutes returns the registered routes in registration order.
// Registration order is also matching precedence, so the list doubles as
// a precedence table.
func (s *Server) ListRoutes() []rtr.RouteList {
	return s.routes.ListRoutes()
}

// RoutesOverview returns a handler rendering the route table as an HTML
// page. Handy to mount during development:
//
//	s.Get("/routes", s.RoutesOverview())
func (s *Server) RoutesOverview() Handler {
	return func(ctx Context) error {
		b := element.NewBuilder()
		element.RenderComponents(b, routesPage{Routes: s.ListRoutes()})
		return ctx.WriteHTML(b.String())
	}
}

// routesPage renders the route table, first registered first.
type routesPage struct {
	Routes []rtr.RouteList
}

func (p routesPage) Render(b *element.Builder) any {
	b.Html().R(
		b.Head().R(
			b.Title().T("Registered Routes"),
		),
		b.Body().R(
			b.H1().T("Registered Routes"),
			b.P().T("Earlier rows win when routes overlap."),
			b.Table().R(
				b.Tr().R(
					b.Th().T("Method"),
					b.Th().T("Path"),
				),
				p.renderRows(b),
			),
		),
	)
	return nil
}

func (p routesPage) renderRows(b *element.Builder) any {
	for _, rt := range p.Routes {
		b.Tr().R(
			b.Td().T(rt.Method),
			b.Td().T(rt.Path),
		)
	}
	return nil
}
