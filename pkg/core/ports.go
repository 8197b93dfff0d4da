package core

import (
	"context"
	"time"
)

// Catalog enumerates the reviewable notes. Adhering to this interface
// keeps the session independent of the underlying storage (filesystem,
// memory, remote).
type Catalog interface {
	// Discover returns every reviewable note ID under the catalog root,
	// in walk order. The order is deterministic for an unchanged tree.
	Discover(ctx context.Context) ([]NoteID, error)
}

// Store is the persistent mapping from note ID to its latest review
// record. It is the sole authority on whether a note has been reviewed
// and when it is next due.
type Store interface {
	// Get retrieves the record for id, if any.
	Get(id NoteID) (Record, bool)

	// Put replaces or inserts the record for id. In-memory only; call
	// Save to persist.
	Put(id NoteID, rec Record)

	// Save persists the full mapping durably. Interrupting a Save must
	// never leave a torn file behind.
	Save() error

	// Len returns the number of records.
	Len() int

	// IDs returns every recorded note ID in sorted order.
	IDs() []NoteID
}

// Engine is the scheduling algorithm collaborator. Card and LogEntry
// payloads are owned by the engine and round-trip through the store
// unchanged.
type Engine interface {
	// NewCard returns the initial scheduling state for a note that has
	// never been reviewed. A new card is immediately due.
	NewCard(id NoteID) (Card, error)

	// Review applies one rating to a card, returning the updated card
	// and a log entry describing the event.
	Review(card Card, r Rating) (Card, LogEntry, error)

	// Due extracts the next-due instant from a card.
	Due(card Card) (time.Time, error)
}
