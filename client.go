package jirasoap

import (
	"net/http"
	"strings"

	"github.com/soapjira/jirasoap/internal/soap"
)

// EndpointPath is the path of the v2 SOAP service under the server base URL.
const EndpointPath = "/rpc/soap/jirasoapservice-v2"

// TraceFunc receives a copy of every request and response envelope the
// client sends or reads. callID is shared by a request/response pair,
// direction is "send" or "recv".
type TraceFunc func(callID, direction, method string, payload []byte)

// Client invokes remote procedures against one server. Every call is a
// single synchronous round trip; the client holds no state beyond the
// endpoint and the session token it passes as the first argument of each
// procedure.
type Client struct {
	rpc   *soap.Client
	token string
}

type options struct {
	httpClient *http.Client
	trace      TraceFunc
}

// Option configures a Client.
type Option func(*options)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpClient = h }
}

// WithTrace installs a hook that sees all wire traffic.
func WithTrace(fn TraceFunc) Option {
	return func(o *options) { o.trace = fn }
}

// NewClient creates a client for the server at baseURL. token is an opaque
// pre-established session token; it travels as the first argument of every
// remote procedure. No session management happens client-side.
func NewClient(baseURL, token string, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	endpoint := strings.TrimRight(baseURL, "/") + EndpointPath
	var sopts []soap.Option
	if o.httpClient != nil {
		sopts = append(sopts, soap.WithHTTPClient(o.httpClient))
	}
	if o.trace != nil {
		sopts = append(sopts, soap.WithTrace(soap.TraceFunc(o.trace)))
	}

	return &Client{
		rpc:   soap.New(endpoint, sopts...),
		token: token,
	}
}

// Endpoint returns the full endpoint URL the client posts to.
func (c *Client) Endpoint() string {
	return c.rpc.Endpoint()
}

// fieldValueList marshals a []FieldValue argument as item children.
type fieldValueList struct {
	Items []FieldValue `xml:"item"`
}
