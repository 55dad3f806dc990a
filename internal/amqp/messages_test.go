package amqp

import (
	"testing"
	"time"
)

func TestExportMessageRoundTrip(t *testing.T) {
	msg := NewExportMessage(42)
	if msg.ID != 42 {
		t.Fatalf("ID = %d, want 42", msg.ID)
	}
	if msg.Timestamp.IsZero() {
		t.Fatal("Timestamp should be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := ExportMessageFromJSON(body)
	if err != nil {
		t.Fatalf("ExportMessageFromJSON: %v", err)
	}
	if got.ID != msg.ID {
		t.Errorf("round trip ID = %d, want %d", got.ID, msg.ID)
	}
	if !got.Timestamp.Equal(msg.Timestamp.Truncate(time.Nanosecond)) {
		t.Errorf("round trip Timestamp = %v, want %v", got.Timestamp, msg.Timestamp)
	}
}

func TestExportMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := ExportMessageFromJSON([]byte("not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
