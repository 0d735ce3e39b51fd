package jirasoap

import (
	"context"
	"fmt"

	"github.com/soapjira/jirasoap/internal/soap"
)

// Components returns the components defined in a project, as id/name
// pairs suitable for building component FieldValues.
func (c *Client) Components(ctx context.Context, projectKey string) ([]NamedEntity, error) {
	payload, err := c.rpc.Call(ctx, "getComponents", []soap.Arg{
		soap.String(c.token),
		soap.String(projectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("getComponents: %w", err)
	}
	var out struct {
		Components []NamedEntity `xml:"getComponentsReturn>item"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getComponents: %w", err)
	}
	return out.Components, nil
}

// Versions returns the versions defined in a project. The returned ids
// feed both the "versions" (affects) and "fixVersions" update field ids.
func (c *Client) Versions(ctx context.Context, projectKey string) ([]NamedEntity, error) {
	payload, err := c.rpc.Call(ctx, "getVersions", []soap.Arg{
		soap.String(c.token),
		soap.String(projectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("getVersions: %w", err)
	}
	var out struct {
		Versions []NamedEntity `xml:"getVersionsReturn>item"`
	}
	if err := soap.DecodePayload(payload, &out); err != nil {
		return nil, fmt.Errorf("getVersions: %w", err)
	}
	return out.Versions, nil
}
