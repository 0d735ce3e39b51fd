package jirasoap

import (
	"context"
	"fmt"
	"time"

	"github.com/soapjira/jirasoap/internal/soap"
)

// IssuesFromJQLSearch runs a JQL query and returns up to maxResults
// matching issues. Large result sets are the server's main timeout risk;
// bound maxResults accordingly.
func (c *Client) IssuesFromJQLSearch(ctx context.Context, jql string, maxResults int) ([]Issue, error) {
	payload, err := c.rpc.Call(ctx, "getIssuesFromJqlSearch", []soap.Arg{
		soap.String(c.token),
		soap.String(jql),
		soap.Int(maxResults),
	})
	if err != nil {
		return nil, fmt.Errorf("getIssuesFromJqlSearch: %w", err)
	}
	var out struct {
		Issues []Issue `xml:"getIssuesFromJqlSearchReturn>item"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getIssuesFromJqlSearch: %w", err)
	}
	return out.Issues, nil
}

// Issue fetches a single issue by key.
func (c *Client) Issue(ctx context.Context, key string) (*Issue, error) {
	payload, err := c.rpc.Call(ctx, "getIssue", []soap.Arg{
		soap.String(c.token),
		soap.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getIssue: %w", err)
	}
	var out struct {
		Issue Issue `xml:"getIssueReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getIssue: %w", err)
	}
	return &out.Issue, nil
}

// IssueByID fetches a single issue by its numeric id.
func (c *Client) IssueByID(ctx context.Context, id string) (*Issue, error) {
	payload, err := c.rpc.Call(ctx, "getIssueById", []soap.Arg{
		soap.String(c.token),
		soap.String(id),
	})
	if err != nil {
		return nil, fmt.Errorf("getIssueById: %w", err)
	}
	var out struct {
		Issue Issue `xml:"getIssueByIdReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getIssueById: %w", err)
	}
	return &out.Issue, nil
}

// CreateIssue creates a new issue from the populated fields of issue and
// returns the record the server stored, including its assigned id and key.
func (c *Client) CreateIssue(ctx context.Context, issue *Issue) (*Issue, error) {
	payload, err := c.rpc.Call(ctx, "createIssue", []soap.Arg{
		soap.String(c.token),
		soap.Struct("ns1:RemoteIssue", issue),
	})
	if err != nil {
		return nil, fmt.Errorf("createIssue: %w", err)
	}
	var out struct {
		Issue Issue `xml:"createIssueReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("createIssue: %w", err)
	}
	return &out.Issue, nil
}

// CreateIssueWithParent creates a new sub-task style issue under the issue
// identified by parentKey.
func (c *Client) CreateIssueWithParent(ctx context.Context, issue *Issue, parentKey string) (*Issue, error) {
	payload, err := c.rpc.Call(ctx, "createIssueWithParent", []soap.Arg{
		soap.String(c.token),
		soap.Struct("ns1:RemoteIssue", issue),
		soap.String(parentKey),
	})
	if err != nil {
		return nil, fmt.Errorf("createIssueWithParent: %w", err)
	}
	var out struct {
		Issue Issue `xml:"createIssueWithParentReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("createIssueWithParent: %w", err)
	}
	return &out.Issue, nil
}

// UpdateIssue applies a partial update to the issue identified by key and
// returns the updated record. Fields carry update field ids (see the Field
// constants); the server ignores ids it does not recognize, so a typo is a
// silent no-op.
func (c *Client) UpdateIssue(ctx context.Context, key string, fields []FieldValue) (*Issue, error) {
	payload, err := c.rpc.Call(ctx, "updateIssue", []soap.Arg{
		soap.String(c.token),
		soap.String(key),
		soap.Array(fieldValueList{Items: fields}),
	})
	if err != nil {
		return nil, fmt.Errorf("updateIssue: %w", err)
	}
	var out struct {
		Issue Issue `xml:"updateIssueReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("updateIssue: %w", err)
	}
	return &out.Issue, nil
}

// ResolutionDateByID returns the resolution date of the issue with the
// given numeric id. Unresolved issues report the zero time. Unlike the
// other lookups this one takes the id as a number; that is how the remote
// signature declares it.
func (c *Client) ResolutionDateByID(ctx context.Context, id int64) (time.Time, error) {
	payload, err := c.rpc.Call(ctx, "getResolutionDateById", []soap.Arg{
		soap.String(c.token),
		soap.Long(id),
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("getResolutionDateById: %w", err)
	}
	var out struct {
		Date Time `xml:"getResolutionDateByIdReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return time.Time{}, fmt.Errorf("getResolutionDateById: %w", err)
	}
	return out.Date.Time, nil
}

// ResolutionDateByKey returns the resolution date of the issue with the
// given key. Unresolved issues report the zero time.
func (c *Client) ResolutionDateByKey(ctx context.Context, key string) (time.Time, error) {
	payload, err := c.rpc.Call(ctx, "getResolutionDateByKey", []soap.Arg{
		soap.String(c.token),
		soap.String(key),
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("getResolutionDateByKey: %w", err)
	}
	var out struct {
		Date Time `xml:"getResolutionDateByKeyReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return time.Time{}, fmt.Errorf("getResolutionDateByKey: %w", err)
	}
	return out.Date.Time, nil
}
