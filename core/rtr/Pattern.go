package rtr

import (
	"errors"
	"strings"

	"github.com/rohanthewiz/serr"
)

// ErrInvalidPattern is returned when a route template cannot be parsed.
// It covers empty segments, duplicate parameter names and malformed
// parameter markers.
var ErrInvalidPattern = errors.New("invalid route pattern")

// Segment is one slash-delimited component of a route template.
// A segment is either a literal which must match byte for byte,
// or a named parameter which matches any single non-empty path segment.
type Segment struct {
	// Text holds the literal text, or the parameter name when IsParam is set
	Text string
	// IsParam marks a {name} segment
	IsParam bool
}

// Pattern is a parsed route template such as /user/{id}.
// It is built once at registration time and never mutated afterwards,
// so concurrent matching needs no synchronization.
type Pattern struct {
	template string
	segments []Segment
}

// ParsePattern parses a route template into a Pattern.
// Templates must begin with a slash. A segment written as {name} becomes
// a parameter; anything else is a literal. "/" parses to zero segments.
//
// Parse failures:
//   - template not starting with "/"
//   - empty segment ("/a//b", "/a/")
//   - parameter marker not spanning the whole segment ("/a{b}")
//   - unterminated or empty parameter marker ("/{name", "/{}")
//   - duplicate parameter name within one template
func ParsePattern(template string) (Pattern, error) {
	if template == "" || template[0] != '/' {
		return Pattern{}, serr.Wrap(ErrInvalidPattern, "reason", "template must begin with a slash", "template", template)
	}

	p := Pattern{template: template}
	if template == "/" {
		return p, nil
	}

	for _, seg := range strings.Split(template[1:], "/") {
		if seg == "" {
			return Pattern{}, serr.Wrap(ErrInvalidPattern, "reason", "empty segment", "template", template)
		}

		if seg[0] == '{' || strings.ContainsAny(seg, "{}") {
			name, ok := paramName(seg)
			if !ok {
				return Pattern{}, serr.Wrap(ErrInvalidPattern, "reason", "malformed parameter marker", "segment", seg, "template", template)
			}

			for _, prev := range p.segments {
				if prev.IsParam && prev.Text == name {
					return Pattern{}, serr.Wrap(ErrInvalidPattern, "reason", "duplicate parameter name", "name", name, "template", template)
				}
			}

			p.segments = append(p.segments, Segment{Text: name, IsParam: true})
			continue
		}

		p.segments = append(p.segments, Segment{Text: seg})
	}

	return p, nil
}

// paramName extracts the name from a {name} segment.
// The braces must span the entire segment and the name must be non-empty.
func paramName(seg string) (name string, ok bool) {
	if len(seg) < 3 || seg[0] != '{' || seg[len(seg)-1] != '}' {
		return "", false
	}

	name = seg[1 : len(seg)-1]
	if strings.ContainsAny(name, "{}") {
		return "", false
	}

	return name, true
}

// String returns the original route template.
func (p Pattern) String() string {
	return p.template
}

// NumSegments returns the number of segments in the pattern.
func (p Pattern) NumSegments() int {
	return len(p.segments)
}

// Match reports whether the given request path matches this pattern.
// Patterns only match paths with the same segment count, literals compare
// byte-exact and case-sensitive, and a parameter matches any non-empty
// segment. No parameters are recorded; use ExtractParams on a path that
// matched.
func (p Pattern) Match(path string) bool {
	return p.walk(path, nil)
}

// ExtractParams walks a matching path and reports each parameter
// name/value pair through addParameter, in pattern order.
// Values are the raw path segments with no percent-decoding applied.
func (p Pattern) ExtractParams(path string, addParameter func(name string, value string)) {
	p.walk(path, addParameter)
}

// walk compares path against the pattern segment by segment.
// addParameter may be nil for a match-only pass. Parameters are reported
// as they are seen, so callers wanting params from full matches only must
// call Match first (the route table does exactly that).
func (p Pattern) walk(path string, addParameter func(string, string)) bool {
	if len(path) == 0 || path[0] != '/' {
		return false
	}

	if len(path) == 1 { // root
		return len(p.segments) == 0
	}

	start := 1 // first byte of the current path segment
	for _, seg := range p.segments {
		if start > len(path) { // path has fewer segments than the pattern
			return false
		}

		end := strings.IndexByte(path[start:], '/')
		if end == -1 {
			end = len(path)
		} else {
			end += start
		}

		part := path[start:end]

		if seg.IsParam {
			if part == "" { // empty segments never match a parameter
				return false
			}
			if addParameter != nil {
				addParameter(seg.Text, part)
			}
		} else if part != seg.Text {
			return false
		}

		start = end + 1
	}

	// The pattern is exhausted - the path must be too
	return start > len(path)
}
