package srn

import (
	"fmt"
	"time"

	"github.com/aretw0/srn/pkg/core"
)

// RecordSource is the read side of the store the selector consults.
type RecordSource interface {
	Get(id core.NoteID) (core.Record, bool)
}

// DueReader extracts due instants from opaque cards.
type DueReader interface {
	Due(card core.Card) (time.Time, error)
}

// SelectDue filters the catalog down to the notes due at now, in
// catalog order, capped at limit (DefaultDueLimit when limit <= 0).
//
// A note is due when it has no record yet (new notes are always due,
// regardless of how old the file is) or when its card's due instant is
// at or before now. No further prioritization is applied; ties are
// broken purely by catalog traversal order. Deliberately simple.
func SelectDue(catalog []core.NoteID, records RecordSource, due DueReader, now time.Time, limit int) ([]core.NoteID, error) {
	if limit <= 0 {
		limit = DefaultDueLimit
	}

	var queue []core.NoteID
	for _, id := range catalog {
		if len(queue) >= limit {
			break
		}

		rec, ok := records.Get(id)
		if !ok {
			queue = append(queue, id)
			continue
		}

		at, err := due.Due(rec.Card)
		if err != nil {
			return nil, fmt.Errorf("due date of %s: %w", id, err)
		}
		if !at.After(now) {
			queue = append(queue, id)
		}
	}
	return queue, nil
}
