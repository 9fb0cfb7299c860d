package mweb_test

import (
	"fmt"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/mweb"
	"github.com/rohanthewiz/mweb/consts"
)

func TestRequest(t *testing.T) {
	s := mweb.NewServer()

	s.Get("/request", func(ctx mweb.Context) error {
		req := ctx.Request()
		return ctx.WriteString(fmt.Sprintf("%s %s %s %s %s",
			req.Method(), req.Scheme(), req.Host(), req.Path(), req.Query()))
	})

	response := s.Request(consts.MethodGet, "http://example.com/request?x=1", []mweb.Header{{"Accept", "*/*"}}, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "GET http example.com /request x=1")
}

func TestRequestHeader(t *testing.T) {
	s := mweb.NewServer()

	s.Get("/", func(ctx mweb.Context) error {
		accept := ctx.Request().Header("Accept")
		empty := ctx.Request().Header("")
		return ctx.WriteString(accept + empty)
	})

	response := s.Request(consts.MethodGet, "/", []mweb.Header{{"Accept", "*/*"}}, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "*/*")
}

func TestRequestParam(t *testing.T) {
	s := mweb.NewServer()

	s.Get("/blog/{article}", func(ctx mweb.Context) error {
		article := ctx.Request().Param("article")
		empty := ctx.Request().Param("")
		return ctx.WriteString(article + empty)
	})

	response := s.Request(consts.MethodGet, "/blog/my-article", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "my-article")
}

func TestRequestTrailingSlashRoutesSame(t *testing.T) {
	s := mweb.NewServer()

	s.Get("/greet", func(ctx mweb.Context) error {
		return ctx.WriteString("hi")
	})

	response := s.Request(consts.MethodGet, "/greet/", nil, nil)
	assert.Equal(t, response.Status(), 200)
	assert.Equal(t, string(response.Body()), "hi")
}
