package jirasoap

import (
	"encoding/xml"
	"fmt"
	"time"
)

// timeFormats are the xsd:dateTime shapes observed from server builds, in
// order of preference. Older builds omit the zone.
var timeFormats = []string{
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

// Time is a time.Time that serializes as the server's xsd:dateTime form.
// An empty element or absent field decodes to the zero value; the zero
// value marshals to nothing.
type Time struct {
	time.Time
}

// NewTime wraps a time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

func parseTime(s string) (time.Time, error) {
	for _, format := range timeFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", s)
}

// UnmarshalXML decodes the element's character data as a timestamp.
func (t *Time) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := parseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalXML writes the timestamp in the server's dateTime form. Zero
// values are omitted entirely.
func (t Time) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if t.IsZero() {
		return nil
	}
	return e.EncodeElement(t.Format(timeFormats[0]), start)
}

// NamedEntity is an id/name pair as the server returns it for workflow
// actions, components, versions, statuses and priorities.
type NamedEntity struct {
	ID   string `xml:"id"`
	Name string `xml:"name"`
}

// FieldValue is a name/value pair requesting a partial update of a single
// issue field. Values holds the new value set; most fields take exactly
// one value, collection fields (components, versions) take the ids of the
// new members.
type FieldValue struct {
	ID     string   `xml:"id"`
	Values []string `xml:"values>item"`
}

// Field ids recognized by UpdateIssue and ProgressWorkflowAction. The
// server silently ignores unrecognized ids, so misspelling one is a no-op
// rather than an error.
const (
	FieldSummary     = "summary"
	FieldDescription = "description"
	FieldEnvironment = "environment"
	FieldAssignee    = "assignee"
	FieldReporter    = "reporter"
	FieldPriority    = "priority"
	FieldResolution  = "resolution"
	FieldDueDate     = "duedate"
	FieldComponents  = "components"

	// FieldAffectsVersions updates the collection the issue record exposes
	// as AffectsVersions. The server returns it under the affectsVersions
	// element but only recognizes "versions" as the update field id.
	FieldAffectsVersions = "versions"

	// FieldFixVersions is "fixVersions" in both directions.
	FieldFixVersions = "fixVersions"
)

// SetField builds a single-valued FieldValue.
func SetField(id, value string) FieldValue {
	return FieldValue{ID: id, Values: []string{value}}
}

// CustomFieldValue carries the values of one custom field on an issue.
type CustomFieldValue struct {
	CustomfieldID string   `xml:"customfieldId"`
	Key           string   `xml:"key"`
	Values        []string `xml:"values>item"`
}

// Issue mirrors the server's issue record. Field names follow the remote
// schema's element names; no validation happens client-side.
type Issue struct {
	ID          string `xml:"id"`
	Key         string `xml:"key"`
	Summary     string `xml:"summary"`
	Description string `xml:"description"`
	Environment string `xml:"environment"`
	Project     string `xml:"project"`
	Type        string `xml:"type"`
	Status      string `xml:"status"`
	Priority    string `xml:"priority"`
	Resolution  string `xml:"resolution"`
	Reporter    string `xml:"reporter"`
	Assignee    string `xml:"assignee"`
	Created     Time   `xml:"created"`
	Updated     Time   `xml:"updated"`
	DueDate     Time   `xml:"duedate"`
	Votes       int    `xml:"votes"`

	Components        []NamedEntity      `xml:"components>item"`
	AffectsVersions   []NamedEntity      `xml:"affectsVersions>item"`
	FixVersions       []NamedEntity      `xml:"fixVersions>item"`
	CustomFieldValues []CustomFieldValue `xml:"customFieldValues>item"`
}

// Worklog is a record of time spent against an issue.
type Worklog struct {
	ID                 string `xml:"id"`
	Author             string `xml:"author"`
	Comment            string `xml:"comment"`
	StartDate          Time   `xml:"startDate"`
	TimeSpent          string `xml:"timeSpent"`
	TimeSpentInSeconds int64  `xml:"timeSpentInSeconds"`
}

// ServerInfo describes the remote server build.
type ServerInfo struct {
	BaseURL     string `xml:"baseUrl"`
	BuildDate   Time   `xml:"buildDate"`
	BuildNumber string `xml:"buildNumber"`
	Edition     string `xml:"edition"`
	Version     string `xml:"version"`
}
