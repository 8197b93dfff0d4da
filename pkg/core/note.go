package core

import (
	"encoding/json"
	"time"
)

// NoteID identifies a note by its path relative to the notes root,
// slash-separated regardless of platform. It is the stable key of the
// review log: one record per ID.
type NoteID string

// Card is the scheduling engine's per-note state. The core treats it as
// an opaque payload and persists it byte-verbatim; only the engine knows
// its fields.
type Card = json.RawMessage

// LogEntry is the engine's record of a single review event. Stored for
// audit/history, never inspected by the core.
type LogEntry = json.RawMessage

// Record is the persisted review state of one note.
type Record struct {
	LastReviewed Date     `json:"last_reviewed"`
	Card         Card     `json:"card"`
	ReviewLog    LogEntry `json:"review_log"`
}

// dateLayout is the wire format of Date ("2025-08-23").
const dateLayout = "2006-01-02"

// Date is a calendar day, serialized as "YYYY-MM-DD".
type Date struct {
	t time.Time
}

// DateOf truncates an instant to its calendar day in local time.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Equal reports whether two dates are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String returns the date in "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.t.Format(dateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.t.Format(dateLayout)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(dateLayout, string(text))
	if err != nil {
		return err
	}
	d.t = t
	return nil
}
