package mweb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/mweb/consts"
)

// RequestInfo is a middleware giving basic request / response stats
func RequestInfo(ctx Context) error {
	start := time.Now()

	defer func() {
		fmt.Printf("%sZ %s %q -> %d [%s]\n",
			time.Now().UTC().Format("20060102T150405"),
			ctx.Request().Method(), ctx.Request().Path(), ctx.Response().Status(), time.Since(start))
	}()

	return ctx.Next()
}

// RequestID is a middleware stamping each response with a unique id.
// The id is also stored on the context under "request_id" so handlers
// can include it in their own logging.
func RequestID(ctx Context) error {
	id := uuid.NewString()
	ctx.Set("request_id", id)
	ctx.Response().SetHeader(consts.HeaderXRequestID, id)
	return ctx.Next()
}
