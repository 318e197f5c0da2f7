package progress

import (
	"errors"
	"testing"
)

func TestStatus_Constants(t *testing.T) {
	if StatusRunning != "running" {
		t.Errorf("StatusRunning: expected 'running', got %q", StatusRunning)
	}
	if StatusDone != "done" {
		t.Errorf("StatusDone: expected 'done', got %q", StatusDone)
	}
	if StatusError != "error" {
		t.Errorf("StatusError: expected 'error', got %q", StatusError)
	}
}

func TestConstructors_SetTimestampAndStatus(t *testing.T) {
	for _, ev := range []Event{
		Running("load", "Loading offers"),
		Done("create", "Offer added"),
		Failed("delete", errors.New("boom")),
	} {
		if ev.Timestamp.IsZero() {
			t.Errorf("%s: expected timestamp to be set", ev.Op)
		}
		if ev.IsZero() {
			t.Errorf("%s: expected non-zero event", ev.Op)
		}
	}
}

func TestFailed_Message(t *testing.T) {
	ev := Failed("update", errors.New("not found"))
	if !ev.IsError() {
		t.Error("Failed: expected IsError")
	}
	if ev.Message != "update failed: not found" {
		t.Errorf("Failed: got message %q", ev.Message)
	}
}

func TestEvent_ZeroValue(t *testing.T) {
	var ev Event
	if !ev.IsZero() {
		t.Error("zero Event: expected IsZero")
	}
	if ev.IsError() {
		t.Error("zero Event: expected not IsError")
	}
}
