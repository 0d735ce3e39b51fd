package jirasoap

import (
	"context"
	"strings"
	"testing"
)

func TestAvailableActions(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"getAvailableActions": `<getAvailableActionsReturn>
<item><id>2</id><name>Close Issue</name></item>
<item><id>4</id><name>Start Progress</name></item>
</getAvailableActionsReturn>`,
	})

	actions, err := client.AvailableActions(context.Background(), "WID-1")
	if err != nil {
		t.Fatalf("AvailableActions() returned error: %v", err)
	}

	call := stub.lastCall()
	if call.Method != "getAvailableActions" {
		t.Errorf("method = %q", call.Method)
	}
	expectArgs(t, call, []stubArg{
		{Name: "in0", Type: "xsd:string", Value: "testtoken"},
		{Name: "in1", Type: "xsd:string", Value: "WID-1"},
	})

	if len(actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(actions))
	}
	if actions[0].ID != "2" || actions[0].Name != "Close Issue" {
		t.Errorf("actions[0] = %+v", actions[0])
	}
	if actions[1].ID != "4" || actions[1].Name != "Start Progress" {
		t.Errorf("actions[1] = %+v", actions[1])
	}
}

func TestProgressWorkflowAction(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"progressWorkflowAction": `<progressWorkflowActionReturn>` + sampleIssueXML + `</progressWorkflowActionReturn>`,
	})

	fields := []FieldValue{
		SetField(FieldResolution, "1"),
	}
	issue, err := client.ProgressWorkflowAction(context.Background(), "WID-1", "2", fields)
	if err != nil {
		t.Fatalf("ProgressWorkflowAction() returned error: %v", err)
	}

	call := stub.lastCall()
	if call.Method != "progressWorkflowAction" {
		t.Errorf("method = %q", call.Method)
	}
	expectArgs(t, call, []stubArg{
		{Name: "in0", Type: "xsd:string", Value: "testtoken"},
		{Name: "in1", Type: "xsd:string", Value: "WID-1"},
		{Name: "in2", Type: "xsd:string", Value: "2"},
		{Name: "in3", Type: "soapenc:Array"},
	})
	if !strings.Contains(call.Args[3].Inner, "<id>resolution</id>") {
		t.Errorf("fields arg missing resolution: %s", call.Args[3].Inner)
	}

	checkSampleIssue(t, issue)
}

func TestProgressWorkflowActionNoFields(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"progressWorkflowAction": `<progressWorkflowActionReturn>` + sampleIssueXML + `</progressWorkflowActionReturn>`,
	})

	if _, err := client.ProgressWorkflowAction(context.Background(), "WID-1", "4", nil); err != nil {
		t.Fatalf("ProgressWorkflowAction() returned error: %v", err)
	}

	call := stub.lastCall()
	if len(call.Args) != 4 {
		t.Fatalf("sent %d args, want 4 (empty field array still travels)", len(call.Args))
	}
	if call.Args[3].Type != "soapenc:Array" {
		t.Errorf("arg 3 xsi:type = %q, want \"soapenc:Array\"", call.Args[3].Type)
	}
}
