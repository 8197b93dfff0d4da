package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Rating is the recall-quality signal passed to the scheduling engine,
// in [1,4] where 1 is a failed recall and 4 an effortless one.
type Rating int

// IsValid reports whether r is in the engine's accepted range.
func (r Rating) IsValid() bool {
	return r >= 1 && r <= 4
}

// Difficulty is the reviewer's answer to "how difficult was this note?",
// in [1,4] where 1 is hardest and 4 easiest.
type Difficulty int

// IsValid reports whether d is in [1,4].
func (d Difficulty) IsValid() bool {
	return d >= 1 && d <= 4
}

// Rating converts a difficulty to the engine's rating scale. The scales
// run in opposite directions: the hardest note (1) earns the strongest
// scheduler signal (4), the easiest (4) the weakest (1).
func (d Difficulty) Rating() Rating {
	return Rating(5 - int(d))
}

// ParseDifficulty parses a reviewer's answer. Any input that is not an
// integer in [1,4] returns an error wrapping ErrInvalidDifficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	d := Difficulty(n)
	if !d.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDifficulty, n)
	}
	return d, nil
}
