package jirasoap

import (
	"context"
	"testing"
)

func TestComponents(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"getComponents": `<getComponentsReturn>
<item><id>10100</id><name>parser</name></item>
<item><id>10101</id><name>renderer</name></item>
</getComponentsReturn>`,
	})

	components, err := client.Components(context.Background(), "WID")
	if err != nil {
		t.Fatalf("Components() returned error: %v", err)
	}

	call := stub.lastCall()
	if call.Method != "getComponents" {
		t.Errorf("method = %q", call.Method)
	}
	expectArgs(t, call, []stubArg{
		{Name: "in0", Type: "xsd:string", Value: "testtoken"},
		{Name: "in1", Type: "xsd:string", Value: "WID"},
	})

	if len(components) != 2 {
		t.Fatalf("got %d components, want 2", len(components))
	}
	if components[0].ID != "10100" || components[0].Name != "parser" {
		t.Errorf("components[0] = %+v", components[0])
	}
}

func TestVersions(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"getVersions": `<getVersionsReturn>
<item><id>10001</id><name>1.2</name></item>
</getVersionsReturn>`,
	})

	versions, err := client.Versions(context.Background(), "WID")
	if err != nil {
		t.Fatalf("Versions() returned error: %v", err)
	}

	call := stub.lastCall()
	if call.Method != "getVersions" {
		t.Errorf("method = %q", call.Method)
	}

	if len(versions) != 1 {
		t.Fatalf("got %d versions, want 1", len(versions))
	}
	if versions[0].ID != "10001" || versions[0].Name != "1.2" {
		t.Errorf("versions[0] = %+v", versions[0])
	}
}
