package send

import (
	"encoding/json"

	"github.com/rohanthewiz/mweb"
	"github.com/rohanthewiz/mweb/consts"
)

// CSS sends the body with the content type set to `text/css`.
func CSS(ctx mweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMECSS)
	return ctx.WriteString(body)
}

// CSV sends the body with the content type set to `text/csv`.
func CSV(ctx mweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMECSV)
	return ctx.WriteString(body)
}

// HTML sends the body with the content type set to `text/html`.
func HTML(ctx mweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEHTML)
	return ctx.WriteString(body)
}

// JS sends the body with the content type set to `text/javascript`.
func JS(ctx mweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEJS)
	return ctx.WriteString(body)
}

// JSON encodes the object in JSON format and sends it with the content type set to `application/json`.
func JSON(ctx mweb.Context, object any) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEJSON)
	return json.NewEncoder(ctx.Response()).Encode(object)
}

// Text sends the body with the content type set to `text/plain`.
func Text(ctx mweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMETextPlain)
	return ctx.WriteString(body)
}

// XML sends the body with the content type set to `text/xml`.
func XML(ctx mweb.Context, body string) error {
	ctx.Response().SetHeader(consts.HeaderContentType, consts.MIMEXML)
	return ctx.WriteString(body)
}
