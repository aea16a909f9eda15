package calcom

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for request building and response handling.
var (
	ErrMissingPathParam = errors.New("missing path parameter")
	ErrMissingParam     = errors.New("missing required parameter")
	ErrKindMismatch     = errors.New("parameter kind mismatch")
	ErrUnknownParam     = errors.New("unknown parameter")
	ErrInvalidEnum      = errors.New("value not in enum")
	ErrNullNotAllowed   = errors.New("null not allowed")
	ErrMissingField     = errors.New("missing required field")
	ErrFieldType        = errors.New("invalid field type")
	ErrResponseTooLarge = errors.New("response body too large")
	ErrNoHost           = errors.New("no host configured")
)

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// ValidationError reports bad input detected before any network call.
// Field is the wire name of the offending field or parameter.
type ValidationError struct {
	Field   string
	Allowed []string
	Value   any
	Err     error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validate ")
	b.WriteString(e.Field)
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Value != nil {
		fmt.Fprintf(&b, " (got %v)", e.Value)
	}
	if len(e.Allowed) > 0 {
		b.WriteString(", must be one of [")
		b.WriteString(strings.Join(e.Allowed, ", "))
		b.WriteString("]")
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// TransportError wraps network-level failures: refused connections,
// timeouts, TLS errors and cancellation.
type TransportError struct {
	Op     string
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the failure was caused by a deadline.
func (e *TransportError) Timeout() bool {
	var te interface{ Timeout() bool }
	if errors.As(e.Err, &te) && te.Timeout() {
		return true
	}
	return errors.Is(e.Err, errCallTimeout) || errors.Is(e.Err, errConnectTimeout) || errors.Is(e.Err, errReadTimeout)
}

// APIError is returned for any non-2xx response. Payload holds the decoded
// body when the operation maps the status to a body type; otherwise it is nil
// and Body carries the raw bytes.
type APIError struct {
	Op      string
	Status  int
	Header  http.Header
	Body    []byte
	Payload any
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("%s: %d %s", e.Op, e.Status, http.StatusText(e.Status))
	if len(e.Body) > 0 && e.Payload == nil {
		msg += ": " + truncate(string(e.Body), 256)
	}
	return msg
}

// StatusCode returns the HTTP status code.
func (e *APIError) StatusCode() int { return e.Status }

// DecodeError reports a response body that does not match the type declared
// for its status code.
type DecodeError struct {
	Op          string
	Status      int
	ContentType string
	Body        []byte
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode %d response (%s): %v", e.Op, e.Status, e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status code of the undecodable response.
func (e *DecodeError) StatusCode() int { return e.Status }

// ErrorStatus extracts the HTTP status code from an error. Returns 0 if the
// error does not implement StatusCoder.
func ErrorStatus(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
