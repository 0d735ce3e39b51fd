package soap

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

// Namespaces used by the legacy SOAP endpoint.
const (
	envelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	encodingNS = "http://schemas.xmlsoap.org/soap/encoding/"
	xsdNS      = "http://www.w3.org/2001/XMLSchema"
	xsiNS      = "http://www.w3.org/2001/XMLSchema-instance"

	// ServiceNS is the namespace of the remote service's RPC methods.
	ServiceNS = "http://soap.rpc.jira.atlassian.com"
)

// DateTimeFormat is the xsd:dateTime shape the server emits and accepts.
const DateTimeFormat = "2006-01-02T15:04:05.000-0700"

// Arg is a single positional argument of a remote procedure call.
// Arguments are serialized in order as in0, in1, ... with an xsi:type
// attribute, which is how the server's RPC-encoded binding names them.
type Arg struct {
	name    string
	xsiType string
	value   interface{}
}

// String builds an xsd:string argument.
func String(v string) Arg {
	return Arg{xsiType: "xsd:string", value: v}
}

// Int builds an xsd:int argument.
func Int(v int) Arg {
	return Arg{xsiType: "xsd:int", value: strconv.Itoa(v)}
}

// Long builds an xsd:long argument.
func Long(v int64) Arg {
	return Arg{xsiType: "xsd:long", value: strconv.FormatInt(v, 10)}
}

// DateTime builds an xsd:dateTime argument.
func DateTime(v time.Time) Arg {
	return Arg{xsiType: "xsd:dateTime", value: v.Format(DateTimeFormat)}
}

// Struct builds a structured argument. The value's exported fields are
// serialized as child elements per its xml tags. xsiType names the remote
// schema type, e.g. "ns1:RemoteIssue".
func Struct(xsiType string, v interface{}) Arg {
	return Arg{xsiType: xsiType, value: v}
}

// Array builds an array argument. The value must be a struct whose xml tags
// emit one child element per array item (the "item" convention used
// throughout this package).
func Array(v interface{}) Arg {
	return Arg{xsiType: "soapenc:Array", value: v}
}

// MarshalXML writes the argument as <inN xsi:type="...">...</inN>.
func (a Arg) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{
		Name: xml.Name{Local: a.name},
		Attr: []xml.Attr{{Name: xml.Name{Local: "xsi:type"}, Value: a.xsiType}},
	}
	return e.EncodeElement(a.value, start)
}

type requestEnvelope struct {
	XMLName xml.Name `xml:"soapenv:Envelope"`
	EnvNS   string   `xml:"xmlns:soapenv,attr"`
	EncNS   string   `xml:"xmlns:soapenc,attr"`
	XSDNS   string   `xml:"xmlns:xsd,attr"`
	XSINS   string   `xml:"xmlns:xsi,attr"`
	Body    requestBody
}

type requestBody struct {
	XMLName xml.Name `xml:"soapenv:Body"`
	Call    methodCall
}

type methodCall struct {
	XMLName  xml.Name
	NS       string `xml:"xmlns:ns1,attr"`
	Encoding string `xml:"soapenv:encodingStyle,attr"`
	Args     []Arg
}

// buildRequest serializes a method call into a full request envelope.
// Argument names are assigned positionally (in0, in1, ...).
func buildRequest(method string, args []Arg) ([]byte, error) {
	named := make([]Arg, len(args))
	for i, a := range args {
		a.name = fmt.Sprintf("in%d", i)
		named[i] = a
	}
	env := requestEnvelope{
		EnvNS: envelopeNS,
		EncNS: encodingNS,
		XSDNS: xsdNS,
		XSINS: xsiNS,
		Body: requestBody{
			Call: methodCall{
				XMLName:  xml.Name{Local: "ns1:" + method},
				NS:       ServiceNS,
				Encoding: encodingNS,
				Args:     named,
			},
		},
	}
	out, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}
	return append([]byte(xml.Header), out...), nil
}

// responseEnvelope captures the body of a response without interpreting the
// method-specific payload. The first non-Fault body child is the
// <methodResponse> element; its inner XML is handed back to the caller.
type responseEnvelope struct {
	Body struct {
		Fault   *Fault          `xml:"Fault"`
		Payload responsePayload `xml:",any"`
	} `xml:"Body"`
}

type responsePayload struct {
	XMLName xml.Name
	Raw     []byte `xml:",innerxml"`
}

func decodeEnvelope(data []byte, env *responseEnvelope) error {
	return xml.Unmarshal(data, env)
}

// DecodePayload unmarshals a method response payload (the inner XML of the
// <methodResponse> element, as returned by Call) into v. Fields of v match
// the <methodReturn> element by name, e.g. `xml:"getIssueReturn"`.
func DecodePayload(payload []byte, v interface{}) error {
	wrapped := make([]byte, 0, len(payload)+9)
	wrapped = append(wrapped, "<r>"...)
	wrapped = append(wrapped, payload...)
	wrapped = append(wrapped, "</r>"...)
	return xml.Unmarshal(wrapped, v)
}
