// Package progress describes the outcome of console operations for the
// status line.
package progress

import (
	"fmt"
	"time"
)

// Status indicates the state of an operation.
type Status string

const (
	StatusRunning Status = "running"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event is one status line update.
type Event struct {
	Op        string // "load", "create", "update", "delete"
	Message   string
	Status    Status
	Timestamp time.Time
}

// Running reports an operation that has been sent and awaits its response.
func Running(op, message string) Event {
	return Event{Op: op, Message: message, Status: StatusRunning, Timestamp: time.Now()}
}

// Done reports a successful operation.
func Done(op, message string) Event {
	return Event{Op: op, Message: message, Status: StatusDone, Timestamp: time.Now()}
}

// Failed reports a failed operation.
func Failed(op string, err error) Event {
	return Event{Op: op, Message: fmt.Sprintf("%s failed: %v", op, err), Status: StatusError, Timestamp: time.Now()}
}

// IsError reports whether the event describes a failure.
func (e Event) IsError() bool {
	return e.Status == StatusError
}

// IsZero reports whether nothing has been reported yet.
func (e Event) IsZero() bool {
	return e.Status == "" && e.Message == ""
}
