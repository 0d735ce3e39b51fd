package jirasoap

import (
	"context"
	"fmt"

	"github.com/soapjira/jirasoap/internal/soap"
)

// ServerInfo returns version and build information about the remote
// server.
func (c *Client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	payload, err := c.rpc.Call(ctx, "getServerInfo", []soap.Arg{
		soap.String(c.token),
	})
	if err != nil {
		return nil, fmt.Errorf("getServerInfo: %w", err)
	}
	var out struct {
		Info ServerInfo `xml:"getServerInfoReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getServerInfo: %w", err)
	}
	return &out.Info, nil
}
