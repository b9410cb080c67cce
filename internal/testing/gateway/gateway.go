// Package gateway provides an in-process fake of the cluster HTTP gateway
// for client tests. Routes are registered per test on the gin engine; every
// request is recorded with its body so tests can assert on what was sent.
package gateway

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

// Request is one request received by the fake gateway.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// Gateway is a running fake gateway.
type Gateway struct {
	Engine *gin.Engine

	server   *httptest.Server
	mu       sync.Mutex
	requests []Request
}

// New starts a fake gateway that is shut down when the test ends.
func New(t *testing.T) *Gateway {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	g := &Gateway{Engine: gin.New()}
	g.Engine.Use(g.recordMiddleware())
	g.Engine.Use(gin.Recovery())

	g.server = httptest.NewServer(g.Engine)
	t.Cleanup(g.server.Close)
	return g
}

// recordMiddleware records each request and restores its body for the
// route handler.
func (g *Gateway) recordMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		g.mu.Lock()
		g.requests = append(g.requests, Request{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Query:  c.Request.URL.Query(),
			Body:   body,
		})
		g.mu.Unlock()

		c.Next()
	}
}

// Endpoint returns the host:port the gateway listens on.
func (g *Gateway) Endpoint() string {
	return strings.TrimPrefix(g.server.URL, "http://")
}

// Requests returns a copy of the requests received so far.
func (g *Gateway) Requests() []Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Request(nil), g.requests...)
}

// LastRequest returns the most recent request. It fails the test when none
// was received.
func (g *Gateway) LastRequest(t *testing.T) Request {
	t.Helper()
	reqs := g.Requests()
	if len(reqs) == 0 {
		t.Fatalf("gateway received no requests")
	}
	return reqs[len(reqs)-1]
}

// Fail answers with the gateway error envelope.
func Fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"Error": gin.H{"Code": code, "Message": message}})
}

// Respond returns a handler answering every request with status and body.
func Respond(status int, body any) gin.HandlerFunc {
	return func(c *gin.Context) {
		if body == nil {
			c.Status(status)
			return
		}
		c.JSON(status, body)
	}
}

// NoContent is a handler answering 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
