package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"

	"github.com/aretw0/srn/pkg/core"
)

// Store persists the review log as a single pretty-printed JSON file:
// a top-level object keyed by note ID, values holding the last-reviewed
// date and the engine's opaque card/review_log payloads.
//
// The whole mapping is rewritten on every Save so that an interrupted
// session loses at most the review in progress. Saves replace the file
// atomically. A single reviewer process at a time is assumed; there is
// no cross-process locking.
//
// Store implements core.Store.
type Store struct {
	fsys    afero.Fs
	path    string
	records map[core.NoteID]core.Record
}

// Open loads the review log at path. A missing file yields an empty
// store (first run). A file that exists but does not parse yields an
// error wrapping core.ErrStoreCorrupt; the file is left untouched for
// manual recovery.
func Open(fsys afero.Fs, path string) (*Store, error) {
	s := &Store{
		fsys:    fsys,
		path:    path,
		records: make(map[core.NoteID]core.Record),
	}

	data, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read review log %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrStoreCorrupt, path, err)
	}
	return s, nil
}

// Path returns the file the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Get retrieves the record for id, if any.
func (s *Store) Get(id core.NoteID) (core.Record, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Put replaces or inserts the record for id. In-memory only.
func (s *Store) Put(id core.NoteID, rec core.Record) {
	s.records[id] = rec
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// IDs returns every recorded note ID in sorted order.
func (s *Store) IDs() []core.NoteID {
	ids := make([]core.NoteID, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Save serializes the full mapping, pretty-printed for human
// inspection, and atomically replaces the file on disk. Failures wrap
// core.ErrStoreWrite.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", core.ErrStoreWrite, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(s.fsys, s.path, data, 0644); err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrStoreWrite, s.path, err)
	}
	return nil
}
