// Package jirasoap is a client for the legacy issue-tracking server's SOAP
// interface (jirasoapservice-v2). Every method is a thin wrapper over one
// remote procedure: it serializes its arguments into an RPC-encoded call,
// posts it, and maps the XML response into a typed record (Issue, Worklog,
// NamedEntity).
//
// The client holds no protocol state. Each call is a single synchronous
// round trip; there is no retry, caching, or session handling. The session
// token passed to NewClient travels unchanged as the first argument of
// every procedure.
//
//	client := jirasoap.NewClient("https://tracker.example.com", token)
//	issues, err := client.IssuesFromJQLSearch(ctx, `project = CORE AND status = Open`, 50)
//
// Field ids accepted by UpdateIssue differ in places from the element
// names the server returns; see the Field constants, in particular
// FieldAffectsVersions.
package jirasoap
