package offerclient

import (
	"errors"
	"fmt"
)

// Kind classifies why a call to the Offers Service failed.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTransport: the request never got a response (connection refused, DNS, canceled).
	KindTransport
	// KindStatus: the service answered with a non-2xx status other than 404.
	KindStatus
	// KindNotFound: the service answered 404.
	KindNotFound
	// KindDecode: the response body was not the expected JSON.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "unreachable"
	case KindStatus:
		return "rejected"
	case KindNotFound:
		return "not found"
	case KindDecode:
		return "bad response"
	default:
		return "unknown"
	}
}

// Error is returned by every Client method on failure.
type Error struct {
	Kind       Kind
	Op         string // "list", "create", "update", "delete"
	ID         string // offer id, when the call addressed one
	StatusCode int    // 0 when no response was received
	Body       string // truncated response body, for diagnostics
	Err        error
}

func (e *Error) Error() string {
	msg := e.Op + " offer"
	if e.Op == "list" {
		msg = "list offers"
	}
	if e.ID != "" {
		msg += " " + e.ID
	}
	msg += ": " + e.Kind.String()
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (%d)", e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// StatusCode extracts the HTTP status from err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}
