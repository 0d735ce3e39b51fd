package jirasoap

import (
	"context"
	"fmt"

	"github.com/soapjira/jirasoap/internal/soap"
)

// IssuesFromFilterWithLimit returns a page of the issues matched by a
// saved filter, starting at offset and returning at most maxResults
// records.
func (c *Client) IssuesFromFilterWithLimit(ctx context.Context, filterID string, offset, maxResults int) ([]Issue, error) {
	payload, err := c.rpc.Call(ctx, "getIssuesFromFilterWithLimit", []soap.Arg{
		soap.String(c.token),
		soap.String(filterID),
		soap.Int(offset),
		soap.Int(maxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("getIssuesFromFilterWithLimit: %w", err)
	}
	var out struct {
		Issues []Issue `xml:"getIssuesFromFilterWithLimitReturn>item"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getIssuesFromFilterWithLimit: %w", err)
	}
	return out.Issues, nil
}
