// Package srn orchestrates spaced-repetition review sessions over a
// directory of Markdown notes: discovery, due selection, the interactive
// rating loop, and durable persistence of per-note scheduling state.
//
// The scheduling algorithm itself lives behind the core.Engine port; the
// default wiring uses the FSRS scheduler from github.com/sky-flux/flux.
package srn

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sky-flux/flux"
	"github.com/spf13/afero"

	"github.com/aretw0/srn/pkg/adapters/fs"
	"github.com/aretw0/srn/pkg/adapters/fsrs"
	"github.com/aretw0/srn/pkg/core"
)

// Service wires the catalog, store, and engine into the operations the
// CLI exposes. Construct with New.
type Service struct {
	cfg    Config
	fsys   afero.Fs
	engine core.Engine
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	now    func() time.Time
}

// New creates a review service for the given configuration.
//
//	svc, err := srn.New(srn.Config{NotesRoot: "/home/me/wiki"})
func New(cfg Config, opts ...Option) (*Service, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.fsys == nil {
		o.fsys = afero.NewOsFs()
	}
	if o.engine == nil {
		engine, err := fsrs.NewEngine(flux.SchedulerConfig{})
		if err != nil {
			return nil, err
		}
		o.engine = engine
	}
	if o.in == nil {
		o.in = os.Stdin
	}
	if o.out == nil {
		o.out = os.Stdout
	}

	return &Service{
		cfg:    cfg,
		fsys:   o.fsys,
		engine: o.engine,
		logger: o.logger,
		in:     o.in,
		out:    o.out,
		now:    o.now,
	}, nil
}

// Config returns the effective configuration after defaulting.
func (s *Service) Config() Config {
	return s.cfg
}

// DueQueue computes the current due queue without reviewing anything.
func (s *Service) DueQueue(ctx context.Context) ([]core.NoteID, error) {
	catalog, store, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return SelectDue(catalog, store, s.engine, s.now(), s.cfg.DueLimit)
}

// Review runs one interactive session over the current due queue.
func (s *Service) Review(ctx context.Context) (Summary, error) {
	catalog, store, err := s.load(ctx)
	if err != nil {
		return Summary{}, err
	}

	queue, err := SelectDue(catalog, store, s.engine, s.now(), s.cfg.DueLimit)
	if err != nil {
		return Summary{}, err
	}

	session := &Session{
		Queue:   queue,
		Store:   store,
		Engine:  s.engine,
		In:      s.in,
		Out:     s.out,
		Now:     s.now,
		Preview: s.title,
		Logger:  s.logger,
	}
	return session.Run(ctx)
}

// Entry is one line of the persisted review history.
type Entry struct {
	ID           core.NoteID `json:"id"`
	LastReviewed core.Date   `json:"last_reviewed"`
	Due          time.Time   `json:"due"`
}

// Entries returns the persisted review state, one entry per recorded
// note, sorted by ID.
func (s *Service) Entries(ctx context.Context) ([]Entry, error) {
	store, err := fs.Open(s.fsys, s.cfg.ReviewLogFile)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, store.Len())
	for _, id := range store.IDs() {
		rec, _ := store.Get(id)
		due, err := s.engine.Due(rec.Card)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", id, err)
		}
		entries = append(entries, Entry{
			ID:           id,
			LastReviewed: rec.LastReviewed,
			Due:          due,
		})
	}
	return entries, nil
}

// load discovers the catalog and opens the store, the common front half
// of every operation. The store loads once per operation; mutations are
// persisted by the session's per-note saves.
func (s *Service) load(ctx context.Context) ([]core.NoteID, *fs.Store, error) {
	catalog := fs.NewCatalog(s.fsys, s.cfg.NotesRoot, s.cfg.Ignore, s.logger)
	ids, err := catalog.Discover(ctx)
	if err != nil {
		return nil, nil, err
	}

	store, err := fs.Open(s.fsys, s.cfg.ReviewLogFile)
	if err != nil {
		return nil, nil, err
	}
	return ids, store, nil
}

// title reads a note and extracts its first-heading title. Returns ""
// on any failure; a preview must never break a session.
func (s *Service) title(id core.NoteID) string {
	path := filepath.Join(s.cfg.NotesRoot, filepath.FromSlash(string(id)))
	content, err := afero.ReadFile(s.fsys, path)
	if err != nil {
		if s.logger != nil {
			s.logger.Debug("failed to read note for preview", "id", id, "error", err)
		}
		return ""
	}
	return Title(content)
}
