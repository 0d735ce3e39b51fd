package jirasoap

import (
	"context"
	"fmt"

	"github.com/soapjira/jirasoap/internal/soap"
)

// AvailableActions returns the workflow actions currently available on the
// issue identified by key, as id/name pairs. The ids feed
// ProgressWorkflowAction.
func (c *Client) AvailableActions(ctx context.Context, key string) ([]NamedEntity, error) {
	payload, err := c.rpc.Call(ctx, "getAvailableActions", []soap.Arg{
		soap.String(c.token),
		soap.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getAvailableActions: %w", err)
	}
	var out struct {
		Actions []NamedEntity `xml:"getAvailableActionsReturn>item"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getAvailableActions: %w", err)
	}
	return out.Actions, nil
}

// ProgressWorkflowAction advances the issue identified by key through the
// workflow action with the given id, optionally setting fields the
// destination status screen expects, and returns the updated issue.
func (c *Client) ProgressWorkflowAction(ctx context.Context, key, actionID string, fields []FieldValue) (*Issue, error) {
	payload, err := c.rpc.Call(ctx, "progressWorkflowAction", []soap.Arg{
		soap.String(c.token),
		soap.String(key),
		soap.String(actionID),
		soap.Array(fieldValueList{Items: fields}),
	})
	if err != nil {
		return nil, fmt.Errorf("progressWorkflowAction: %w", err)
	}
	var out struct {
		Issue Issue `xml:"progressWorkflowActionReturn"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("progressWorkflowAction: %w", err)
	}
	return &out.Issue, nil
}
