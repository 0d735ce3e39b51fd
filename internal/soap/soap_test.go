package soap

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const issueResponse = `<?xml version="1.0" encoding="utf-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
 <soapenv:Body>
  <getIssueResponse><getIssueReturn><key>WID-1</key></getIssueReturn></getIssueResponse>
 </soapenv:Body>
</soapenv:Envelope>`

const faultResponse = `<?xml version="1.0" encoding="utf-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
 <soapenv:Body>
  <soapenv:Fault>
   <faultcode>soapenv:Server.userException</faultcode>
   <faultstring>RemoteAuthenticationException: Invalid token</faultstring>
  </soapenv:Fault>
 </soapenv:Body>
</soapenv:Envelope>`

func TestCallSendsSOAPRequest(t *testing.T) {
	var gotContentType, gotSOAPAction, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotSOAPAction = r.Header.Get("SOAPAction")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte(issueResponse))
	}))
	defer server.Close()

	client := New(server.URL)
	payload, err := client.Call(context.Background(), "getIssue", []Arg{String("token"), String("WID-1")})
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}

	if gotContentType != `text/xml; charset="utf-8"` {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotSOAPAction != `""` {
		t.Errorf("SOAPAction = %q, want empty quoted string", gotSOAPAction)
	}
	if !strings.Contains(gotBody, "getIssue") {
		t.Errorf("request body missing method name: %s", gotBody)
	}
	if !strings.Contains(string(payload), "<key>WID-1</key>") {
		t.Errorf("payload = %s", payload)
	}
}

func TestCallReturnsFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(faultResponse))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Call(context.Background(), "getIssue", []Arg{String("badtoken"), String("WID-1")})
	if err == nil {
		t.Fatal("Call() returned nil error for fault response")
	}

	var fault *Fault
	if !errors.As(err, &fault) {
		t.Fatalf("error is %T, want *Fault", err)
	}
	if !strings.Contains(fault.String, "Invalid token") {
		t.Errorf("faultstring = %q", fault.String)
	}
}

func TestCallReturnsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Call(context.Background(), "getIssue", []Arg{String("token"), String("WID-1")})
	if err == nil {
		t.Fatal("Call() returned nil error for 502 response")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error is %T, want *StatusError", err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", statusErr.StatusCode)
	}
}

func TestCallHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL)
	_, err := client.Call(ctx, "getIssue", []Arg{String("token"), String("WID-1")})
	if err == nil {
		t.Fatal("Call() returned nil error for canceled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled in chain", err)
	}
}

func TestCallTracesTraffic(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(issueResponse))
	}))
	defer server.Close()

	type traced struct {
		callID    string
		direction string
		method    string
	}
	var calls []traced
	client := New(server.URL, WithTrace(func(callID, direction, method string, payload []byte) {
		calls = append(calls, traced{callID, direction, method})
	}))

	if _, err := client.Call(context.Background(), "getIssue", []Arg{String("token"), String("WID-1")}); err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("trace hook called %d times, want 2", len(calls))
	}
	if calls[0].direction != "send" || calls[1].direction != "recv" {
		t.Errorf("directions = %q, %q, want send then recv", calls[0].direction, calls[1].direction)
	}
	if calls[0].callID == "" || calls[0].callID != calls[1].callID {
		t.Errorf("callID not shared between send and recv: %q vs %q", calls[0].callID, calls[1].callID)
	}
	if calls[0].method != "getIssue" {
		t.Errorf("method = %q, want \"getIssue\"", calls[0].method)
	}
}
