package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/aretw0/srn/pkg/core"
)

// noteExt is the file suffix that marks a reviewable note.
const noteExt = ".md"

// Catalog discovers reviewable notes by walking a directory tree.
// It implements core.Catalog.
type Catalog struct {
	fsys   afero.Fs
	root   string
	ignore []string
	logger *slog.Logger
}

// NewCatalog creates a catalog rooted at root. Ignore patterns are
// doublestar globs matched against slash-normalized note IDs
// (e.g. "templates/**").
func NewCatalog(fsys afero.Fs, root string, ignore []string, logger *slog.Logger) *Catalog {
	return &Catalog{
		fsys:   fsys,
		root:   root,
		ignore: ignore,
		logger: logger,
	}
}

// Discover walks the root and returns every note ID in walk order.
// Dot directories (.git, .srn, ...) are skipped. The order is the
// filesystem walk order, deterministic for an unchanged tree.
func (c *Catalog) Discover(ctx context.Context) ([]core.NoteID, error) {
	info, err := c.fsys.Stat(c.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrCatalogUnavailable, c.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", core.ErrCatalogUnavailable, c.root)
	}

	var ids []core.NoteID
	err = afero.Walk(c.fsys, c.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if info.IsDir() {
			if path != c.root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() || !strings.HasSuffix(info.Name(), noteExt) {
			return nil
		}

		relPath, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		id := core.NoteID(filepath.ToSlash(relPath))

		if c.ignored(string(id)) {
			if c.logger != nil {
				c.logger.Debug("skipping ignored note", "id", id)
			}
			return nil
		}

		ids = append(ids, id)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking %s: %v", core.ErrCatalogUnavailable, c.root, err)
	}

	if c.logger != nil {
		c.logger.Debug("catalog discovered", "root", c.root, "notes", len(ids))
	}
	return ids, nil
}

// ignored reports whether id matches any configured ignore glob.
// Malformed patterns never match.
func (c *Catalog) ignored(id string) bool {
	for _, pattern := range c.ignore {
		if ok, err := doublestar.Match(pattern, id); err == nil && ok {
			return true
		}
	}
	return false
}
