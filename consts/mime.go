package consts

const (
	MIMETextPlain   = "text/plain"
	MIMEHTML        = "text/html"
	MIMECSS         = "text/css"
	MIMECSV         = "text/csv"
	MIMEJS          = "text/javascript"
	MIMEJSON        = "application/json"
	MIMEXML         = "text/xml"
	MIMEOctetStream = "application/octet-stream"
)
