package jirasoap

import (
	"context"
	"testing"
	"time"
)

func TestServerInfo(t *testing.T) {
	client, stub := newStubClient(t, map[string]string{
		"getServerInfo": `<getServerInfoReturn><baseUrl>https://tracker.example.com</baseUrl><buildDate>2009-06-01T00:00:00.000+0000</buildDate><buildNumber>466</buildNumber><edition>Enterprise</edition><version>3.13.5</version></getServerInfoReturn>`,
	})

	info, err := client.ServerInfo(context.Background())
	if err != nil {
		t.Fatalf("ServerInfo() returned error: %v", err)
	}

	call := stub.lastCall()
	if call.Method != "getServerInfo" {
		t.Errorf("method = %q", call.Method)
	}
	expectArgs(t, call, []stubArg{
		{Name: "in0", Type: "xsd:string", Value: "testtoken"},
	})

	if info.Version != "3.13.5" {
		t.Errorf("Version = %q, want \"3.13.5\"", info.Version)
	}
	if info.Edition != "Enterprise" {
		t.Errorf("Edition = %q", info.Edition)
	}
	if info.BuildNumber != "466" {
		t.Errorf("BuildNumber = %q", info.BuildNumber)
	}
	wantBuilt := time.Date(2009, 6, 1, 0, 0, 0, 0, time.UTC)
	if !info.BuildDate.Equal(wantBuilt) {
		t.Errorf("BuildDate = %v, want %v", info.BuildDate.Time, wantBuilt)
	}
}
