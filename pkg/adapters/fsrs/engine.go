// Package fsrs adapts the flux FSRS scheduler to the core scheduling
// engine port. Card and review-log payloads cross the boundary as raw
// JSON so the rest of the module never depends on flux's field layout.
package fsrs

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/sky-flux/flux"

	"github.com/aretw0/srn/pkg/core"
)

// Engine implements core.Engine on top of a flux.Scheduler.
type Engine struct {
	sched *flux.Scheduler
	now   func() time.Time
}

// Option defines a functional option for configuring the engine.
type Option func(*Engine)

// WithClock overrides the time source. Useful for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an engine with the given scheduler configuration.
// The zero config uses flux's FSRS defaults.
func NewEngine(cfg flux.SchedulerConfig, opts ...Option) (*Engine, error) {
	sched, err := flux.NewScheduler(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	e := &Engine{
		sched: sched,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// NewCard returns the initial scheduling state for a never-reviewed
// note. The card is due immediately.
func (e *Engine) NewCard(id core.NoteID) (core.Card, error) {
	c := flux.NewCard(cardID(id))
	c.Due = e.now()
	return marshalCard(c)
}

// Review applies one rating to a card and returns the updated card and
// the event log entry.
func (e *Engine) Review(card core.Card, r core.Rating) (core.Card, core.LogEntry, error) {
	if !r.IsValid() {
		return nil, nil, fmt.Errorf("%w: %d", core.ErrInvalidRating, int(r))
	}

	var c flux.Card
	if err := json.Unmarshal(card, &c); err != nil {
		return nil, nil, fmt.Errorf("%w: card payload: %v", core.ErrStoreCorrupt, err)
	}

	updated, entry := e.sched.ReviewCard(c, flux.Rating(r), e.now())

	cardJSON, err := marshalCard(updated)
	if err != nil {
		return nil, nil, err
	}
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode review log entry: %w", err)
	}
	return cardJSON, core.LogEntry(entryJSON), nil
}

// Due extracts the next-due instant from a card payload.
func (e *Engine) Due(card core.Card) (time.Time, error) {
	var probe struct {
		Due time.Time `json:"due"`
	}
	if err := json.Unmarshal(card, &probe); err != nil {
		return time.Time{}, fmt.Errorf("%w: card payload: %v", core.ErrStoreCorrupt, err)
	}
	if probe.Due.IsZero() {
		return time.Time{}, fmt.Errorf("%w: card payload has no due field", core.ErrStoreCorrupt)
	}
	return probe.Due, nil
}

func marshalCard(c flux.Card) (core.Card, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode card: %w", err)
	}
	return core.Card(data), nil
}

// cardID derives flux's numeric card ID from the note ID. The store is
// keyed by note ID; this hash only satisfies flux's card shape, and must
// be stable across runs so review logs stay attributable.
func cardID(id core.NoteID) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64())
}
