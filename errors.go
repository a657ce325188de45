package enterprise

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind discriminates the origin of an Error.
type Kind string

const (
	// KindTransport is a network, TLS or local scheduling failure that is not
	// attributable to the remote application.
	KindTransport Kind = "transport"
	// KindDecode means a 2xx response body did not match the expected shape.
	KindDecode Kind = "decode"
	// KindAPI means the cluster answered with a non-2xx status.
	KindAPI Kind = "api"
	// KindConfig is a construction-time configuration problem.
	KindConfig Kind = "config"
	// KindRequest is a malformed Request (programmer error).
	KindRequest Kind = "request"
)

// Transport error codes.
const (
	CodeTimeout      = "timeout"
	CodeCanceled     = "canceled"
	CodeDNS          = "dns"
	CodeTLS          = "tls"
	CodeConnection   = "connection"
	CodeRead         = "read"
	CodeNetwork      = "network"
	CodeClientClosed = "client_closed"
	CodeRateLimit    = "rate_limit"
)

// CodeDecode is the Code carried by every KindDecode error.
const CodeDecode = "decode"

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrTransport = &Error{Kind: KindTransport}
	ErrDecode    = &Error{Kind: KindDecode}
	ErrAPI       = &Error{Kind: KindAPI}
	ErrConfig    = &Error{Kind: KindConfig}
	ErrRequest   = &Error{Kind: KindRequest}
)

// Error is the single error type returned by every Client operation.
//
// StatusCode is set for KindAPI. Code is the transport code, the API's
// error_code, or "decode".
type Error struct {
	Kind       Kind
	StatusCode int
	Code       string
	Message    string
	Cause      error

	Op        string
	Method    string
	URL       string
	RequestID string
	Duration  time.Duration
}

// Error implements error.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := string(e.Kind)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s %d", msg, e.StatusCode)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Code)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	return "redis enterprise: " + msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *Error) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Kind: %s\n", e.Kind)
	if e.Code != "" {
		info += fmt.Sprintf("Code: %s\n", e.Code)
	}
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if e.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", e.RequestID)
	}
	if e.Op != "" {
		info += fmt.Sprintf("Operation: %s\n", e.Op)
	}
	if e.Method != "" {
		info += fmt.Sprintf("Method: %s\n", e.Method)
	}
	if e.URL != "" {
		info += fmt.Sprintf("URL: %s\n", e.URL)
	}
	if e.Duration > 0 {
		info += fmt.Sprintf("Duration: %v\n", e.Duration)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}

// KindOf returns the Kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func statusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e.StatusCode
	}
	return 0
}

func transportCodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindTransport {
		return e.Code
	}
	return ""
}

// IsNotFound reports a 404 from the cluster.
func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

// IsUnauthorized reports a 401 or 403 from the cluster.
func IsUnauthorized(err error) bool {
	s := statusOf(err)
	return s == http.StatusUnauthorized || s == http.StatusForbidden
}

// IsConflict reports a 409 from the cluster.
func IsConflict(err error) bool {
	return statusOf(err) == http.StatusConflict
}

// IsRateLimited reports a 429 from the cluster or a local limiter refusal.
func IsRateLimited(err error) bool {
	return statusOf(err) == http.StatusTooManyRequests || transportCodeOf(err) == CodeRateLimit
}

// IsClusterBusy reports a 503, which the cluster uses while it is reconfiguring.
func IsClusterBusy(err error) bool {
	return statusOf(err) == http.StatusServiceUnavailable
}

// IsServerError reports any 5xx from the cluster.
func IsServerError(err error) bool {
	return statusOf(err) >= 500
}

// IsTimeout reports a transport timeout.
func IsTimeout(err error) bool {
	return transportCodeOf(err) == CodeTimeout
}

// IsRetryable reports failures a caller may reasonably retry. The client
// itself never retries.
func IsRetryable(err error) bool {
	if IsTimeout(err) || IsRateLimited(err) || IsServerError(err) {
		return true
	}
	switch transportCodeOf(err) {
	case CodeConnection, CodeNetwork, CodeRead:
		return true
	}
	return false
}

func configError(message string, cause error) *Error {
	return &Error{Kind: KindConfig, Message: message, Cause: cause}
}

func requestError(req Request, message string, cause error) *Error {
	return &Error{
		Kind:    KindRequest,
		Message: message,
		Cause:   cause,
		Op:      req.Name,
		Method:  req.Method,
	}
}
