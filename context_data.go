package mweb

// Per-request key/value store. Handy for passing values from middleware
// to downstream handlers (a request id, an authenticated user, etc.).
// The store lives and dies with the request cycle - it is cleared when
// the context returns to the pool.

// Set stores a value under the given key for the duration of the request.
func (ctx *context) Set(key string, value any) {
	if ctx.data == nil {
		ctx.data = make(map[string]any, 4)
	}
	ctx.data[key] = value
}

// Get returns the value stored under the given key, or nil.
func (ctx *context) Get(key string) any {
	return ctx.data[key]
}

// Has reports whether a value is stored under the given key.
func (ctx *context) Has(key string) bool {
	_, ok := ctx.data[key]
	return ok
}

// Delete removes the value stored under the given key.
func (ctx *context) Delete(key string) {
	delete(ctx.data, key)
}
