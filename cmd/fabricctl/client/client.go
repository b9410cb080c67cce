// Package client provides the HTTP gateway connection for the fabricctl CLI.
//
// This package implements fabric.Connection on top of the cluster's REST
// gateway. It handles all aspects of gateway communication including request
// construction, entity ID encoding, response decoding, error envelopes, retry
// logic and structured logging, so the command layer only ever sees the
// transport-free fabric contract.
//
// CONNECTION ARCHITECTURE:
// The RestConnection wraps the Resty HTTP client with gateway-specific behavior:
//   - Connection Management: Per-request context, timeout forwarding and retries
//   - Request Handling: api-version and timeout query parameters on every call
//   - Entity Addressing: cluster URI names (fabric:/App/Svc) encoded as gateway IDs (App~Svc)
//   - Error Decoding: {"Error":{"Code","Message"}} bodies become *fabric.GatewayError
//
// PAGED QUERIES:
// List endpoints accept ContinuationToken and MaxResults and answer with a
// {"ContinuationToken","Items"} envelope that decodes directly into a
// fabric.PagedList. Single-entity lookups (a node by name, a partition by ID)
// are wrapped into a one-item page; a 204 No Content answer is an empty page.
//
// RETRIES:
// Only connection-level failures of GET requests are retried. Writes may
// already have reached the gateway and are never resent, and neither are
// timeouts. Any HTTP status from the gateway, including 5xx, is returned to
// the caller as a GatewayError so the command layer decides what it means.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/cmd/fabricctl/utils"
	"github.com/concave-dev/fabricctl/internal/fabric"
	"github.com/concave-dev/fabricctl/internal/logging"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// Gateway API versions by feature area
const (
	apiVersion          = "6.0"
	apiVersionPaged     = "6.2"
	apiVersionResources = "6.4-preview"
)

// requestGrace is added to the operation timeout for the HTTP round trip so
// the gateway reports its own timeout before the client gives up.
const requestGrace = 10 * time.Second

// Options configure a RestConnection.
type Options struct {
	Endpoint string        // host:port of the gateway
	Scheme   string        // http or https
	Timeout  time.Duration // default operation timeout
	Retries  int           // retries on connection errors
}

// RestConnection is a fabric.Connection speaking to the cluster's HTTP
// gateway. It is safe for concurrent use.
type RestConnection struct {
	client   *resty.Client
	endpoint string
	baseURL  string
}

var _ fabric.Connection = (*RestConnection)(nil)

// NewRestConnection creates a gateway connection. Every request carries a
// client name unique to this connection in the X-Client-Name header so
// gateway traces can be correlated with one CLI run.
func NewRestConnection(opts Options) *RestConnection {
	client := resty.New()

	scheme := opts.Scheme
	if scheme == "" {
		scheme = config.DefaultScheme
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = fabric.DefaultOperationTimeout
	}
	baseURL := fmt.Sprintf("%s://%s", scheme, opts.Endpoint)

	// Route Resty's internal logging through our structured logging system
	client.SetLogger(utils.RestyLogger{})

	// Configure client with timeouts and headers
	client.
		SetTimeout(timeout+requestGrace).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", fmt.Sprintf("fabricctl/%s", config.Version)).
		SetHeader("X-Client-Name", "fabricctl-"+uuid.NewString())

	// Add retry mechanism with custom retry conditions
	client.
		SetRetryCount(opts.Retries).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		AddRetryCondition(retryable)

	// Custom request logging using structured logging
	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making gateway request: %s %s", req.Method, req.URL)
		return nil
	})

	// Custom response logging using structured logging
	client.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Gateway response: %d %s (took %v)",
			resp.StatusCode(), resp.Status(), resp.Time())
		return nil
	})

	// Custom error logging using structured logging
	client.OnError(func(req *resty.Request, err error) {
		logging.Debug("Gateway request failed: %s %s - %v", req.Method, req.URL, err)
	})

	return &RestConnection{
		client:   client,
		endpoint: opts.Endpoint,
		baseURL:  baseURL,
	}
}

// retryable reports whether a failed round trip may be sent again. Only
// connection errors of reads qualify; a timeout has already used the
// caller's budget.
func retryable(r *resty.Response, err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}
	return r != nil && r.Request != nil && r.Request.Method == http.MethodGet
}

// CreateConnection creates a gateway connection from the global CLI
// configuration.
func CreateConnection() *RestConnection {
	return NewRestConnection(Options{
		Endpoint: config.Global.Endpoint,
		Scheme:   config.Global.Scheme,
		Timeout:  time.Duration(config.Global.Timeout) * time.Second,
		Retries:  3,
	})
}

// Endpoint returns the gateway address.
func (c *RestConnection) Endpoint() string {
	return c.endpoint
}

// errorEnvelope is the gateway's error body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"Code"`
		Message string `json:"Message"`
	} `json:"Error"`
}

// request describes one gateway call.
type request struct {
	method     string
	path       string
	apiVersion string
	pathParams map[string]string // escaped path segments
	rawParams  map[string]string // unescaped, for multi-segment values such as store paths
	query      url.Values
	body       any
	result     any
}

// execute sends rq and decodes the result. It returns the HTTP status on
// success so callers can tell 200 from 204.
func (c *RestConnection) execute(ctx context.Context, timeout time.Duration, rq request) (int, error) {
	version := rq.apiVersion
	if version == "" {
		version = apiVersion
	}

	req := c.client.R().
		SetContext(ctx).
		SetError(&errorEnvelope{}).
		SetQueryParam("api-version", version)
	if timeout > 0 {
		req.SetQueryParam("timeout", strconv.Itoa(int(timeout.Seconds())))
	}
	if rq.query != nil {
		req.SetQueryParamsFromValues(rq.query)
	}
	if rq.pathParams != nil {
		req.SetPathParams(rq.pathParams)
	}
	if rq.rawParams != nil {
		req.SetRawPathParams(rq.rawParams)
	}
	if rq.body != nil {
		req.SetBody(rq.body)
	}
	if rq.result != nil {
		req.SetResult(rq.result)
	}

	resp, err := req.Execute(rq.method, rq.path)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to API server at %s: %w", c.baseURL, err)
	}

	if resp.IsError() {
		gwErr := &fabric.GatewayError{StatusCode: resp.StatusCode()}
		if env, ok := resp.Error().(*errorEnvelope); ok && env.Error.Code != "" {
			gwErr.Code = env.Error.Code
			gwErr.Message = env.Error.Message
		} else {
			gwErr.Message = strings.TrimSpace(resp.String())
		}
		return resp.StatusCode(), gwErr
	}

	return resp.StatusCode(), nil
}

// pageQuery returns the cursor parameters of a paged request.
func pageQuery(p fabric.PageQuery) url.Values {
	q := url.Values{}
	if p.ContinuationToken != "" {
		q.Set("ContinuationToken", p.ContinuationToken)
	}
	if p.MaxResults > 0 {
		q.Set("MaxResults", strconv.FormatInt(p.MaxResults, 10))
	}
	return q
}

// getPage runs a paged GET.
func getPage[T any](ctx context.Context, c *RestConnection, timeout time.Duration, rq request) (*fabric.PagedList[T], error) {
	page := &fabric.PagedList[T]{}
	rq.method = http.MethodGet
	rq.result = page
	if _, err := c.execute(ctx, timeout, rq); err != nil {
		return nil, err
	}
	return page, nil
}

// getOne runs a single-entity GET and wraps the entity into a page. A 204
// answer means the entity does not exist and yields an empty page.
func getOne[T any](ctx context.Context, c *RestConnection, timeout time.Duration, rq request) (*fabric.PagedList[T], error) {
	var item T
	rq.method = http.MethodGet
	rq.result = &item
	status, err := c.execute(ctx, timeout, rq)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return &fabric.PagedList[T]{}, nil
	}
	return &fabric.PagedList[T]{Items: []T{item}}, nil
}

// entityID encodes a cluster URI name as a gateway entity ID:
// fabric:/Voting/Web becomes Voting~Web.
func entityID(name string) string {
	id := strings.TrimPrefix(name, "fabric:/")
	return strings.ReplaceAll(id, "/", "~")
}
