package jirasoap

import (
	"context"
	"testing"
)

func TestIssuesFromFilterWithLimit(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"getIssuesFromFilterWithLimit": `<getIssuesFromFilterWithLimitReturn><item>` + sampleIssueXML + `</item></getIssuesFromFilterWithLimitReturn>`,
	})

	issues, err := client.IssuesFromFilterWithLimit(context.Background(), "10200", 20, 10)
	if err != nil {
		t.Fatalf("IssuesFromFilterWithLimit() returned error: %v", err)
	}

	call := stub.lastCall()
	if call.Method != "getIssuesFromFilterWithLimit" {
		t.Errorf("method = %q", call.Method)
	}
	expectArgs(t, call, []stubArg{
		{Name: "in0", Type: "xsd:string", Value: "testtoken"},
		{Name: "in1", Type: "xsd:string", Value: "10200"},
		{Name: "in2", Type: "xsd:int", Value: "20"},
		{Name: "in3", Type: "xsd:int", Value: "10"},
	})

	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	checkSampleIssue(t, &issues[0])
}
