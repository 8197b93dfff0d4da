package srn

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/aretw0/srn/pkg/core"
)

// options holds the internal configuration for the review service.
type options struct {
	fsys   afero.Fs
	engine core.Engine
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	now    func() time.Time
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration. Nil fields are
// resolved by the factory (OS filesystem, flux engine, stdio).
func defaultOptions() *options {
	return &options{
		now: time.Now,
	}
}

// WithFs sets the filesystem used for discovery and persistence.
// Useful for testing with an in-memory filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) {
		o.fsys = fsys
	}
}

// WithEngine injects a custom scheduling engine. If provided, the
// default FSRS engine is skipped.
func WithEngine(engine core.Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithInput sets the reader the interactive session reads answers from.
func WithInput(in io.Reader) Option {
	return func(o *options) {
		o.in = in
	}
}

// WithOutput sets the writer the interactive session prompts on.
func WithOutput(out io.Writer) Option {
	return func(o *options) {
		o.out = out
	}
}

// WithClock overrides the time source. Useful for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}
