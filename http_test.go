package mweb

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func TestParseURL(t *testing.T) {
	scheme, host, path, query := parseURL("http://example.com/blog/post?x=1&y=2")
	assert.Equal(t, scheme, "http")
	assert.Equal(t, host, "example.com")
	assert.Equal(t, path, "/blog/post")
	assert.Equal(t, query, "x=1&y=2")

	// Bare path
	scheme, host, path, query = parseURL("/blog")
	assert.Equal(t, scheme, "")
	assert.Equal(t, host, "localhost")
	assert.Equal(t, path, "/blog")
	assert.Equal(t, query, "")

	// Empty path becomes the root
	_, _, path, _ = parseURL("http://example.com")
	assert.Equal(t, path, "/")

	// Trailing slash is removed, except on the root itself
	_, _, path, _ = parseURL("/blog/")
	assert.Equal(t, path, "/blog")

	_, _, path, _ = parseURL("/")
	assert.Equal(t, path, "/")
}

func TestIsValidRequestMethod(t *testing.T) {
	for _, m := range []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS", "CONNECT", "TRACE"} {
		assert.True(t, isValidRequestMethod(m))
	}

	assert.False(t, isValidRequestMethod("get"))
	assert.False(t, isValidRequestMethod("BAD-METHOD"))
	assert.False(t, isValidRequestMethod(""))
}
