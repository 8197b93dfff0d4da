package core

import "errors"

// Common errors. Callers use errors.Is to classify failures.
var (
	// ErrCatalogUnavailable means the notes root is missing or unreadable.
	// Fatal: no review happens without a catalog.
	ErrCatalogUnavailable = errors.New("notes root missing or unreadable")

	// ErrStoreCorrupt means the review log file exists but cannot be
	// parsed. Fatal: the file must be preserved for manual recovery,
	// never overwritten.
	ErrStoreCorrupt = errors.New("review log file is corrupt")

	// ErrStoreWrite means persisting the review log failed. Fatal: after
	// a successful rating, a failed save leaves memory and disk diverged.
	ErrStoreWrite = errors.New("review log write failed")

	// ErrInvalidDifficulty marks a reviewer answer outside [1,4]. The
	// session recovers by re-prompting; it never terminates on this.
	ErrInvalidDifficulty = errors.New("difficulty must be an integer between 1 and 4")

	// ErrInvalidRating marks a rating outside the engine's [1,4] range.
	ErrInvalidRating = errors.New("rating out of range")
)
