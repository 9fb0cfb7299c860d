package mweb

import (
	"bufio"

	"github.com/rohanthewiz/mweb/core/rtr"
)

// Request is the interface for an HTTP request as seen by handlers.
type Request interface {
	Body() []byte
	Header(string) string
	Host() string
	Method() string
	Param(string) string
	Path() string
	Query() string
	Scheme() string
}

// request represents the HTTP request used in the given context.
type request struct {
	reader *bufio.Reader

	scheme string
	host   string
	method string
	path   string
	query  string

	headers []Header
	body    []byte
	params  []rtr.Parameter
}

// Body returns the raw request body. The core passes it through untouched;
// interpreting it is the handler's business.
func (req *request) Body() []byte {
	return req.body
}

// Header returns the header value for the given key.
func (req *request) Header(key string) string {
	for _, header := range req.headers {
		if header.Key == key {
			return header.Value
		}
	}

	return ""
}

// Host returns the requested host.
func (req *request) Host() string {
	return req.host
}

// Method returns the request method.
func (req *request) Method() string {
	return req.method
}

// Param retrieves a route parameter extracted from the matched pattern.
// The value is the raw path segment - no percent-decoding is applied.
func (req *request) Param(name string) string {
	for i := range len(req.params) {
		p := req.params[i]

		if p.Key == name {
			return p.Value
		}
	}

	return ""
}

// Path returns the requested path.
func (req *request) Path() string {
	return req.path
}

// Query returns the raw query string.
func (req *request) Query() string {
	return req.query
}

// Scheme returns either `http`, `https` or an empty string.
func (req request) Scheme() string {
	return req.scheme
}

// addParameter adds a new parameter to the request.
func (req *request) addParameter(key string, value string) {
	req.params = append(req.params, rtr.Parameter{
		Key:   key,
		Value: value,
	})
}
