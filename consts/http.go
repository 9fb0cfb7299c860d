package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodPatch   = "PATCH"
	MethodDelete  = "DELETE"
	MethodHead    = "HEAD"
	MethodOptions = "OPTIONS"
	MethodConnect = "CONNECT"
	MethodTrace   = "TRACE"
)

const (
	HTTP  = "http"
	HTTPS = "https"
	HTTP1 = "HTTP/1.1"

	ProtocolTCP = "tcp"

	Localhost = "localhost"

	// DefaultAddress is where the server binds when no address is configured.
	DefaultAddress = "127.0.0.1:8000"

	HTTPBadRequest = "HTTP/1.1 400 Bad Request\r\n\r\n"

	CRLF            = "\r\n"
	SchemeDelimiter = "://"
)

const (
	StatusOK                  = 200
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusBadRequest          = 400
	StatusNotFound            = 404
	StatusInternalServerError = 500
)

const (
	RuneNewLine     = '\n'
	RuneSingleSpace = ' '
	RuneColon       = ':'
	RuneFwdSlash    = '/'
	RuneQuestion    = '?'
)

const (
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderDate          = "Date"
	HeaderLocation      = "Location"
	HeaderUserAgent     = "User-Agent"
	HeaderXRequestID    = "X-Request-Id"
)
