package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	d := DateOf(time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2026-08-23"` {
		t.Errorf("Expected \"2026-08-23\", got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("Round trip changed date: %s vs %s", back, d)
	}
}

func TestDateRejectsBadInput(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"23/08/2026"`), &d); err == nil {
		t.Error("Expected error for non-ISO date, got nil")
	}
}

func TestRecordJSONShape(t *testing.T) {
	rec := Record{
		LastReviewed: DateOf(time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)),
		Card:         Card(`{"due":"2026-08-30T00:00:00Z"}`),
		ReviewLog:    LogEntry(`{"rating":"Good"}`),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// The persisted field names are part of the on-disk contract.
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"last_reviewed", "card", "review_log"} {
		if _, ok := shape[key]; !ok {
			t.Errorf("Missing persisted key %q in %s", key, data)
		}
	}
}
