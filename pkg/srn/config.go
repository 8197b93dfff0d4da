package srn

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDueLimit caps how many notes a single session presents.
	DefaultDueLimit = 5

	// DefaultLogFileName is the review log filename used when no
	// explicit path is configured; it lives inside the notes root.
	DefaultLogFileName = "review_log.json"
)

// Config configures a review service. All paths must be absolute; tilde
// expansion and config-file merging are the CLI's job.
type Config struct {
	// NotesRoot is the directory walked for .md notes. Required.
	NotesRoot string

	// ReviewLogFile is the persisted review log path. Empty means
	// <NotesRoot>/review_log.json.
	ReviewLogFile string

	// DueLimit caps the due queue. Zero or negative means DefaultDueLimit.
	DueLimit int

	// Ignore holds doublestar globs excluding notes from discovery,
	// matched against slash-normalized note IDs.
	Ignore []string
}

// withDefaults returns a copy with derived defaults filled in.
func (c Config) withDefaults() (Config, error) {
	if c.NotesRoot == "" {
		return Config{}, fmt.Errorf("notes root is required")
	}
	if c.ReviewLogFile == "" {
		c.ReviewLogFile = filepath.Join(c.NotesRoot, DefaultLogFileName)
	}
	if c.DueLimit <= 0 {
		c.DueLimit = DefaultDueLimit
	}
	return c, nil
}

// FileConfig is the optional on-disk configuration (~/.srn/config.yml).
// It supplies defaults; command-line flags override it.
type FileConfig struct {
	NotesRoot     string   `yaml:"notes_root"`
	ReviewLogFile string   `yaml:"review_log_file"`
	DueLimit      int      `yaml:"due_limit"`
	Ignore        []string `yaml:"ignore"`
}

// LoadFileConfig reads the YAML config at path. A missing file is not
// an error and yields the zero config.
func LoadFileConfig(fsys afero.Fs, path string) (FileConfig, error) {
	var fc FileConfig

	data, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}
