package jirasoap

import (
	"context"
	"fmt"

	"github.com/soapjira/jirasoap/internal/soap"
)

// Worklogs returns all worklogs recorded against the issue identified by
// key.
func (c *Client) Worklogs(ctx context.Context, key string) ([]Worklog, error) {
	payload, err := c.rpc.Call(ctx, "getWorklogs", []soap.Arg{
		soap.String(c.token),
		soap.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getWorklogs: %w", err)
	}
	var out struct {
		Worklogs []Worklog `xml:"getWorklogsReturn>item"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getWorklogs: %w", err)
	}
	return out.Worklogs, nil
}

// AddWorklogAndAutoAdjustRemainingEstimate records a worklog against the
// issue identified by key and lets the server subtract the time spent from
// the issue's remaining estimate. Populate Comment, StartDate and
// TimeSpent on the worklog; the server assigns the id and returns the
// stored record.
func (c *Client) AddWorklogAndAutoAdjustRemainingEstimate(ctx context.Context, key string, worklog *Worklog) (*Worklog, error) {
	payload, err := c.rpc.Call(ctx, "addWorklogAndAutoAdjustRemainingEstimate", []soap.Arg{
		soap.String(c.token),
		soap.String(key),
		soap.Struct("ns1:RemoteWorklog", worklog),
	})
	if err != nil {
		return nil, fmt.Errorf("addWorklogAndAutoAdjustRemainingEstimate: %w", err)
	}
	var out struct {
		Worklog Worklog `xml:"addWorklogAndAutoAdjustRemainingEstimateReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("addWorklogAndAutoAdjustRemainingEstimate: %w", err)
	}
	return &out.Worklog, nil
}
