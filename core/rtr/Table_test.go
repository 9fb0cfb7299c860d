package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/mweb/core/rtr"
)

func TestHello(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/blog", "Blog"))
	assert.Nil(t, r.Add("GET", "/blog/post", "Blog post"))

	data, params := r.Lookup("GET", "/blog")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "Blog")

	data, params = r.Lookup("GET", "/blog/post")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "Blog post")
}

func TestStatic(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/hello", "Hello"))
	assert.Nil(t, r.Add("GET", "/world", "World"))

	data, params := r.Lookup("GET", "/hello")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "Hello")

	data, params = r.Lookup("GET", "/world")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "World")

	notFound := []string{
		"",
		"?",
		"/404",
		"/hell",
		"/helloo",
		"/hello/world",
	}

	for _, path := range notFound {
		data, params = r.Lookup("GET", path)
		assert.Equal(t, len(params), 0)
		assert.Equal(t, data, "")
	}
}

func TestParameter(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/blog/{post}", "Blog post"))
	assert.Nil(t, r.Add("GET", "/blog/{post}/comments/{id}", "Comment"))

	data, params := r.Lookup("GET", "/blog/hello-world")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, data, "Blog post")

	data, params = r.Lookup("GET", "/blog/hello-world/comments/123")
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "123")
	assert.Equal(t, data, "Comment")
}

func TestMethodMismatch(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/blog", "Blog"))

	data, params := r.Lookup("POST", "/blog")
	assert.Equal(t, len(params), 0)
	assert.Equal(t, data, "")
}

// Registration order is the precedence rule. A parameter route registered
// first shadows a literal route registered later, specificity be damned.
func TestRegistrationOrderPrecedence(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/{name}", "Greeting"))
	assert.Nil(t, r.Add("GET", "/admin", "Admin"))

	data, params := r.Lookup("GET", "/admin")
	assert.Equal(t, data, "Greeting")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "name")
	assert.Equal(t, params[0].Value, "admin")

	// And the other way around the literal wins
	r2 := rtr.NewTable[string]()
	assert.Nil(t, r2.Add("GET", "/admin", "Admin"))
	assert.Nil(t, r2.Add("GET", "/{name}", "Greeting"))

	data, params = r2.Lookup("GET", "/admin")
	assert.Equal(t, data, "Admin")
	assert.Equal(t, len(params), 0)
}

// Patterns with different segment counts never shadow each other.
func TestSegmentCountSeparation(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/", "Front page"))
	assert.Nil(t, r.Add("GET", "/{name}", "Greeting"))

	data, params := r.Lookup("GET", "/")
	assert.Equal(t, data, "Front page")
	assert.Equal(t, len(params), 0)

	data, params = r.Lookup("GET", "/Ada")
	assert.Equal(t, data, "Greeting")
	assert.Equal(t, params[0].Value, "Ada")

	data, params = r.Lookup("GET", "/x/y")
	assert.Equal(t, data, "")
	assert.Equal(t, len(params), 0)
}

func TestDuplicateRegistration(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/blog", "First"))
	assert.Nil(t, r.Add("GET", "/blog", "Second"))
	assert.Equal(t, r.Len(), 2)

	data, _ := r.Lookup("GET", "/blog")
	assert.Equal(t, data, "First")
}

func TestAddInvalidTemplate(t *testing.T) {
	r := rtr.NewTable[string]()

	err := r.Add("GET", "/a//b", "bad")
	if err == nil {
		t.Error("expected registration of an invalid template to fail")
	}
	assert.Equal(t, r.Len(), 0)
}

// A route that matches only partway through must not leak parameters
// into the winning route's mapping.
func TestNoPartialMatchParams(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/{a}/x", "AX"))
	assert.Nil(t, r.Add("GET", "/{b}/y", "BY"))

	data, params := r.Lookup("GET", "/1/y")
	assert.Equal(t, data, "BY")
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params[0].Key, "b")
	assert.Equal(t, params[0].Value, "1")
}

func TestEntries(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/a", "A"))
	assert.Nil(t, r.Add("POST", "/b", "B"))
	assert.Nil(t, r.Add("GET", "/c", "C"))

	collect := func() (out []string) {
		for e := range r.Entries() {
			out = append(out, e.Method+" "+e.Pattern.String())
		}
		return
	}

	first := collect()
	assert.Equal(t, len(first), 3)
	assert.Equal(t, first[0], "GET /a")
	assert.Equal(t, first[1], "POST /b")
	assert.Equal(t, first[2], "GET /c")

	// The sequence is restartable
	second := collect()
	assert.Equal(t, len(second), 3)
	assert.Equal(t, second[0], first[0])

	// And supports early exit
	count := 0
	for range r.Entries() {
		count++
		break
	}
	assert.Equal(t, count, 1)
}

func TestListRoutes(t *testing.T) {
	r := rtr.NewTable[string]()
	assert.Nil(t, r.Add("GET", "/{name}", "Greeting"))
	assert.Nil(t, r.Add("POST", "/admin", "Admin"))

	routes := r.ListRoutes()
	assert.Equal(t, len(routes), 2)
	assert.Equal(t, routes[0].Method, "GET")
	assert.Equal(t, routes[0].Path, "/{name}")
	assert.Equal(t, routes[1].Method, "POST")
	assert.Equal(t, routes[1].Path, "/admin")
}
