package mweb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/rohanthewiz/mweb/consts"
	"github.com/rohanthewiz/mweb/core/rtr"
	"github.com/rohanthewiz/serr"
)

// Handler is a unit of application logic bound to a route.
// It produces its response through the given context.
type Handler func(ctx Context) error

// Server is the HTTP server.
//
// The route table is built during registration, before Run is called, and
// is read-only while serving, so concurrent lookups need no locking.
type Server struct {
	opts         ServerOptions
	handlers     []Handler
	contextPool  sync.Pool
	routes       *rtr.Table[Handler]
	errorHandler func(Context, error)
}

// NewServer creates a new HTTP server.
func NewServer(options ...ServerOptions) *Server {
	opts := ServerOptions{}
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.Address == "" {
		opts.Address = consts.DefaultAddress
	}

	routes := rtr.NewTable[Handler]()

	s := &Server{
		opts:   opts,
		routes: routes,

		handlers: []Handler{
			func(c Context) error { // default handler: route dispatch
				ctx := c.(*context)

				hdlr := routes.LookupNoAlloc(ctx.request.method, ctx.request.path, ctx.request.addParameter)
				if hdlr == nil {
					ctx.SetStatus(consts.StatusNotFound)
					return nil
				}

				return hdlr(c)
			},
		},
		errorHandler: func(ctx Context, err error) {
			log.Println(ctx.Request().Method(), ctx.Request().Path(), err)
		},
	}

	s.contextPool.New = func() any { return s.newContext() }
	return s
}

// invokeChain runs the request handler chain, converting a panic anywhere
// in the chain - middleware included - into an error. A failing handler
// must never take down the connection loop; the worst it can do is turn
// its own request into an internal-error response.
func (s *Server) invokeChain(ctx *context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = serr.New(fmt.Sprintf("handler panic: %v", r))
		}
	}()

	return s.handlers[0](ctx)
}

// Get registers your function to be called when the given GET path has been requested.
func (s *Server) Get(path string, handler Handler) error {
	return s.routes.Add(consts.MethodGet, path, handler)
}

// Post registers your function to be called when the given POST path has been requested.
func (s *Server) Post(path string, handler Handler) error {
	return s.routes.Add(consts.MethodPost, path, handler)
}

// Put registers your function to be called when the given PUT path has been requested.
func (s *Server) Put(path string, handler Handler) error {
	return s.routes.Add(consts.MethodPut, path, handler)
}

// Patch registers your function to be called when the given PATCH path has been requested.
func (s *Server) Patch(path string, handler Handler) error {
	return s.routes.Add(consts.MethodPatch, path, handler)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (s *Server) Delete(path string, handler Handler) error {
	return s.routes.Add(consts.MethodDelete, path, handler)
}

// Head registers your function to be called when the given HEAD path has been requested.
func (s *Server) Head(path string, handler Handler) error {
	return s.routes.Add(consts.MethodHead, path, handler)
}

// Options registers your function to be called when the given OPTIONS path has been requested.
func (s *Server) Options(path string, handler Handler) error {
	return s.routes.Add(consts.MethodOptions, path, handler)
}

// AddMethod registers a handler for an arbitrary method and path.
func (s *Server) AddMethod(method string, path string, handler Handler) error {
	return s.routes.Add(method, path, handler)
}

// Use adds handlers to your handlers chain.
func (s *Server) Use(handlers ...Handler) {
	last := s.handlers[len(s.handlers)-1]
	// Re-slice to exclude last and append the incoming handlers
	s.handlers = append(s.handlers[:len(s.handlers)-1], handlers...)
	s.handlers = append(s.handlers, last) // add back the last
}

// Request performs a synthetic request and returns the response.
// This function keeps the response in memory so it's slightly slower than a real request.
// However it is very useful inside tests where you don't want to spin up a real web server.
func (s *Server) Request(method string, url string, headers []Header, body io.Reader) Response {
	ctx := s.newContext()
	ctx.request.headers = headers

	if body != nil {
		if data, err := io.ReadAll(body); err == nil {
			ctx.request.body = data
		}
	}

	s.handleRequest(ctx, method, url, io.Discard)
	return ctx.Response()
}

// Run starts the server on the configured address, or on the given
// address if one is supplied. It blocks until the process receives an
// interrupt or termination signal. A bind failure is returned immediately.
func (s *Server) Run(address ...string) error {
	addr := s.opts.Address
	if len(address) > 0 && address[0] != "" {
		addr = address[0]
	}

	listener, err := net.Listen(consts.ProtocolTCP, addr)
	if err != nil {
		return serr.Wrap(err, "unable to bind server address", "address", addr)
	}

	defer listener.Close()

	go func() {
		if s.opts.ReadyChan != nil { // let the caller know we are entering the listen loop
			s.opts.ReadyChan <- struct{}{}
		}

		if s.opts.Verbose {
			fmt.Printf("Server is running at %s\n", addr)
		}

		for {
			conn, err := listener.Accept()
			if err != nil {
				continue
			}

			go s.handleConnection(conn)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}

// handleConnection handles an accepted connection.
// Each connection gets its own goroutine, so a handler blocking here
// never stalls the other connections. Any read or parse failure closes
// this connection only.
func (s *Server) handleConnection(conn net.Conn) {
	var (
		ctx    = s.contextPool.Get().(*context)
		method string
		url    string
	)

	ctx.reader.Reset(conn)

	defer conn.Close()
	defer func() {
		ctx.clean()
		s.contextPool.Put(ctx)
	}()

	for {
		// Read the HTTP request line
		message, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return
		}

		space := strings.IndexByte(message, consts.RuneSingleSpace)

		if space <= 0 {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		method = message[:space]

		if !isValidRequestMethod(method) {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return
		}

		lastSpace := strings.LastIndexByte(message, consts.RuneSingleSpace)

		if lastSpace == space {
			lastSpace = len(message) - len(consts.CRLF)
		}

		url = message[space+1 : lastSpace]

		var contentLen int64
		var isChunked bool

		// Add headers until we meet an empty line
		for {
			message, err = ctx.reader.ReadString(consts.RuneNewLine) // read a line
			if err != nil {
				return
			}

			if message == consts.CRLF { // "empty" line // end of headers
				break
			}

			colon := strings.IndexByte(message, consts.RuneColon)

			if colon <= 0 {
				continue // header should include a colon
			}

			key := message[:colon]
			// Trim the CRLF and optional surrounding whitespace.
			// The value may legally be empty ("X:\r\n").
			value := strings.TrimSpace(message[colon+1:])

			ctx.request.headers = append(ctx.request.headers, Header{
				Key:   key,
				Value: value,
			})

			if strings.EqualFold(key, consts.HeaderContentLength) {
				contentLen, err = strconv.ParseInt(value, 10, 64)
				if err != nil {
					_, _ = io.WriteString(conn, consts.HTTPBadRequest)
					return
				}
			} else if strings.EqualFold(key, "Transfer-Encoding") && strings.Contains(strings.ToLower(value), "chunked") {
				isChunked = true
			}
		}

		// Read the request body if present
		if contentLen > 0 {
			// Fixed-length body
			body := make([]byte, contentLen)
			_, err = io.ReadFull(ctx.reader, body)
			if err != nil {
				return
			}
			ctx.request.body = append(ctx.request.body, body...)

		} else if isChunked {
			if !s.readChunkedBody(ctx, conn) {
				return
			}
		}

		if s.opts.Debug {
			fmt.Printf("-> %s %s body: %q\n", method, url, string(ctx.request.body))
		}

		// Handle the request
		s.handleRequest(ctx, method, url, conn)

		// Clean up the context for the next request on this connection
		ctx.clean()
	}
}

// readChunkedBody reads a chunked transfer-encoded body into the request.
// It returns false when the connection should be dropped.
func (s *Server) readChunkedBody(ctx *context, conn net.Conn) bool {
	for {
		// Read chunk size
		chunkSize, err := ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return false
		}

		// Parse chunk size (hex)
		size, err := strconv.ParseInt(strings.TrimSpace(chunkSize), 16, 64)
		if err != nil {
			_, _ = io.WriteString(conn, consts.HTTPBadRequest)
			return false
		}

		// Zero size chunk means end of body
		if size == 0 {
			// Read final CRLF
			_, err = ctx.reader.ReadString(consts.RuneNewLine)
			return err == nil
		}

		// Read chunk data
		chunk := make([]byte, size)
		_, err = io.ReadFull(ctx.reader, chunk)
		if err != nil {
			return false
		}
		ctx.request.body = append(ctx.request.body, chunk...)

		// Read chunk CRLF
		_, err = ctx.reader.ReadString(consts.RuneNewLine)
		if err != nil {
			return false
		}
	}
}

// handleRequest handles the given request.
// A handler failure is absorbed here: it is reported to the error handler
// and converted into an internal-error response unless the handler already
// chose an error status itself. Failures never reach the connection loop.
func (s *Server) handleRequest(ctx *context, method string, url string, writer io.Writer) {
	ctx.method = method
	ctx.scheme, ctx.host, ctx.path, ctx.query = parseURL(url)

	// Call the request handler chain
	err := s.invokeChain(ctx)
	if err != nil {
		s.errorHandler(ctx, err)

		ctx.response.body = ctx.response.body[:0]
		if ctx.response.Status() < consts.StatusBadRequest {
			// Headers the failing handler set must not ride on the 500
			ctx.response.headers = ctx.response.headers[:0]
			ctx.response.SetStatus(consts.StatusInternalServerError)
		}
	}

	tmp := bytes.Buffer{}
	tmp.WriteString("HTTP/1.1 ")
	tmp.WriteString(strconv.Itoa(ctx.response.Status()))
	tmp.WriteString("\r\nContent-Length: ")
	tmp.WriteString(strconv.Itoa(len(ctx.response.body)))
	tmp.WriteString("\r\n")

	for _, header := range ctx.response.headers {
		tmp.WriteString(header.Key)
		tmp.WriteString(": ")
		tmp.WriteString(header.Value)
		tmp.WriteString("\r\n")
	}

	tmp.WriteString("\r\n")
	tmp.Write(ctx.response.body)
	writer.Write(tmp.Bytes())
}

// newContext allocates a new context with the default state.
func (s *Server) newContext() *context {
	return &context{
		server: s,
		request: request{
			reader:  bufio.NewReader(nil),
			body:    make([]byte, 0),
			headers: make([]Header, 0, 8),
			params:  make([]rtr.Parameter, 0, 8),
		},
		response: response{
			body:    make([]byte, 0, 1024),
			headers: make([]Header, 0, 8),
			status:  200,
		},
	}
}

// clean resets per-request state so the context can serve another request.
func (ctx *context) clean() {
	ctx.request.headers = ctx.request.headers[:0]
	ctx.request.body = ctx.request.body[:0]
	ctx.request.params = ctx.request.params[:0]
	ctx.response.headers = ctx.response.headers[:0]
	ctx.response.body = ctx.response.body[:0]
	ctx.handlerCount = 0
	ctx.response.status = 200
	clear(ctx.data)
}
