package soap

import "fmt"

// Fault is a SOAP fault returned by the server in place of a method
// response. It satisfies error so callers can match it with errors.As.
type Fault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
	Actor  string `xml:"faultactor"`
	Detail string `xml:"detail"`
}

func (f *Fault) Error() string {
	if f.String == "" {
		return fmt.Sprintf("soap fault: %s", f.Code)
	}
	return fmt.Sprintf("soap fault: %s: %s", f.Code, f.String)
}

// StatusError is returned when the server answers with a non-2xx status
// that does not carry a parseable fault.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}
