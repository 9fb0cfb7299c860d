package rtr

import "iter"

// Entry is one registered route: a method, a parsed pattern and the
// handler bound to them. Entries are created during registration and
// never mutated.
type Entry[T any] struct {
	Method  string
	Pattern Pattern
	Handler T
}

// Table is an insertion-ordered route table generic over the handler type.
//
// Lookup scans entries in registration order and the first full match wins.
// That is the precedence rule, deliberately: a literal route registered
// after an overlapping parameter route does NOT take priority. Routers that
// rank by specificity behave differently, so callers should register their
// most specific routes first.
//
// The table is expected to be fully built before serving begins. Reads are
// lock-free because nothing writes once Add calls stop.
type Table[T any] struct {
	entries []Entry[T]
}

// NewTable creates an empty route table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Add parses the template and appends a new entry for the given method.
// A parse failure is reported to the caller immediately and registers
// nothing. Duplicate (method, template) pairs are allowed - the earlier
// registration wins at lookup time.
func (t *Table[T]) Add(method string, template string, handler T) error {
	pattern, err := ParsePattern(template)
	if err != nil {
		return err
	}

	t.entries = append(t.entries, Entry[T]{Method: method, Pattern: pattern, Handler: handler})
	return nil
}

// Len returns the number of registered entries.
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// Entries returns a restartable sequence over the entries in
// registration order.
func (t *Table[T]) Entries() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		for _, e := range t.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Lookup finds the handler and parameters for the given method and path.
// It returns the zero handler value and no parameters when nothing matches.
func (t *Table[T]) Lookup(method string, path string) (T, []Parameter) {
	var params []Parameter

	handler := t.LookupNoAlloc(method, path, func(key string, value string) {
		params = append(params, Parameter{Key: key, Value: value})
	})

	return handler, params
}

// LookupNoAlloc finds the handler for the given method and path without
// allocating, reporting parameters through addParameter. Parameters are
// only reported for the winning entry - a partial match along the way
// records nothing.
func (t *Table[T]) LookupNoAlloc(method string, path string, addParameter func(key string, value string)) T {
	for _, e := range t.entries {
		if e.Method != method {
			continue
		}

		if e.Pattern.Match(path) {
			if addParameter != nil {
				e.Pattern.ExtractParams(path, addParameter)
			}
			return e.Handler
		}
	}

	var zero T
	return zero
}
