package srn

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/srn/pkg/core"
)

// quitSentinel is the answer that ends a session early.
const quitSentinel = "q"

// Summary describes how a session ended. Both a drained queue and a
// user quit are successful terminations.
type Summary struct {
	Reviewed int
	Quit     bool
}

// Session drives one interactive review pass over a due queue: present
// a note, collect a difficulty, feed the inverted rating to the engine,
// persist, repeat. Fully synchronous; every step blocks.
//
// The store file is saved after every single rating, so interrupting
// the process between notes never loses a completed review.
type Session struct {
	Queue  []core.NoteID
	Store  core.Store
	Engine core.Engine
	In     io.Reader
	Out    io.Writer

	// Now overrides the time source; nil means time.Now.
	Now func() time.Time

	// Preview returns a display title for a note; nil disables titles.
	Preview func(id core.NoteID) string

	Logger *slog.Logger
}

// Run walks the due queue until it is drained, the user quits, or an
// error occurs. Progress persisted before an error is retained.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	now := s.Now
	if now == nil {
		now = time.Now
	}
	in := bufio.NewReader(s.In)

	if len(s.Queue) == 0 {
		fmt.Fprintln(s.Out, "No notes due for review.")
		return sum, nil
	}

	for _, id := range s.Queue {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		s.present(id)
		if !s.acknowledge(in) {
			sum.Quit = true
			break
		}

		difficulty, quit := s.askDifficulty(in)
		if quit {
			sum.Quit = true
			break
		}

		if err := s.record(id, difficulty, now()); err != nil {
			return sum, err
		}
		sum.Reviewed++
	}

	if s.Logger != nil {
		s.Logger.Info("session finished", "reviewed", sum.Reviewed, "quit", sum.Quit)
	}
	return sum, nil
}

// present prints the note identity, with its title when one is known.
func (s *Session) present(id core.NoteID) {
	fmt.Fprintf(s.Out, "\nReview: %s", id)
	if s.Preview != nil {
		if title := s.Preview(id); title != "" {
			fmt.Fprintf(s.Out, " (%s)", title)
		}
	}
	fmt.Fprintln(s.Out)
}

// acknowledge blocks until the reviewer confirms they finished reading.
// Returns false on end of input, which is treated as a quit.
func (s *Session) acknowledge(in *bufio.Reader) bool {
	fmt.Fprint(s.Out, "Press Enter when done reviewing...")
	_, err := in.ReadString('\n')
	return err == nil
}

// askDifficulty prompts until it gets the quit sentinel or an integer
// in [1,4]. Invalid answers re-prompt in place, without limit; this is
// a validation loop, not an error path. End of input counts as quit.
func (s *Session) askDifficulty(in *bufio.Reader) (core.Difficulty, bool) {
	for {
		fmt.Fprint(s.Out, "How difficult was it to review this note? (1-4). Press q to quit: ")
		line, err := in.ReadString('\n')
		answer := strings.TrimSpace(line)

		if answer == quitSentinel {
			return 0, true
		}
		if answer == "" && err != nil {
			return 0, true
		}

		difficulty, perr := core.ParseDifficulty(answer)
		if perr != nil {
			fmt.Fprintln(s.Out, "> Error! difficulty should be between 1 and 4. Please retry.")
			if err != nil {
				// Input is exhausted; re-prompting would spin forever.
				return 0, true
			}
			continue
		}
		return difficulty, false
	}
}

// record runs the scheduling engine for one rated note and persists the
// whole store before the next note is presented. This is the durability
// point: it is never batched and never skipped, including the last note.
func (s *Session) record(id core.NoteID, difficulty core.Difficulty, at time.Time) error {
	rating := difficulty.Rating()

	card, ok := cardFor(s.Store, id)
	if !ok {
		fresh, err := s.Engine.NewCard(id)
		if err != nil {
			return fmt.Errorf("new card for %s: %w", id, err)
		}
		card = fresh
	}

	updated, entry, err := s.Engine.Review(card, rating)
	if err != nil {
		return fmt.Errorf("review of %s: %w", id, err)
	}

	s.Store.Put(id, core.Record{
		LastReviewed: core.DateOf(at),
		Card:         updated,
		ReviewLog:    entry,
	})
	if err := s.Store.Save(); err != nil {
		return err
	}

	if s.Logger != nil {
		s.Logger.Debug("review recorded", "id", id, "difficulty", int(difficulty), "rating", int(rating))
	}
	return nil
}

func cardFor(store core.Store, id core.NoteID) (core.Card, bool) {
	rec, ok := store.Get(id)
	if !ok {
		return nil, false
	}
	return rec.Card, true
}
