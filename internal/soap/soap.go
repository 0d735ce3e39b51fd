// Package soap implements the generic call primitive for the legacy
// RPC-encoded SOAP endpoint: it builds a request envelope from a method
// name and positional arguments, posts it, and hands the method response
// payload (or a decoded fault) back to the typed wrappers.
//
// Array values travel as <item> children of their container element.
// multiRef indirection is not handled; responses are decoded as inline
// elements.
package soap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/soapjira/jirasoap/internal/debug"
)

// TraceFunc receives a copy of every request and response envelope.
// callID is a per-call identifier shared by the request/response pair,
// direction is "send" or "recv".
type TraceFunc func(callID, direction, method string, payload []byte)

// Client posts method calls to a single endpoint URL.
type Client struct {
	endpoint string
	http     *http.Client
	trace    TraceFunc
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTrace installs a trace hook for wire traffic.
func WithTrace(fn TraceFunc) Option {
	return func(c *Client) { c.trace = fn }
}

// New creates a client for the given endpoint URL.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the endpoint URL this client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Call invokes a remote procedure and returns the inner XML of its
// <methodResponse> element. A SOAP fault is returned as a *Fault error.
func (c *Client) Call(ctx context.Context, method string, args []Arg) ([]byte, error) {
	reqBody, err := buildRequest(method, args)
	if err != nil {
		return nil, err
	}

	callID := uuid.NewString()
	debug.Logf("soap: [%s] %s -> %s\n", callID, method, c.endpoint)
	if c.trace != nil {
		c.trace(callID, "send", method, reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", `text/xml; charset="utf-8"`)
	req.Header.Set("SOAPAction", `""`)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if c.trace != nil {
		c.trace(callID, "recv", method, respBody)
	}

	var env responseEnvelope
	if parseErr := decodeEnvelope(respBody, &env); parseErr != nil {
		// Fault responses arrive with status 500; a body that does not
		// parse at all is reported as a status problem when non-2xx.
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return nil, fmt.Errorf("failed to parse response: %w", parseErr)
	}
	if env.Body.Fault != nil {
		debug.Logf("soap: [%s] fault: %s\n", callID, env.Body.Fault.Code)
		return nil, env.Body.Fault
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	return env.Body.Payload.Raw, nil
}
