package srn

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	t.Run("LogFileDefaultsIntoNotesRoot", func(t *testing.T) {
		cfg, err := Config{NotesRoot: "/home/me/wiki"}.withDefaults()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/home/me/wiki", DefaultLogFileName), cfg.ReviewLogFile)
		assert.Equal(t, DefaultDueLimit, cfg.DueLimit)
	})

	t.Run("ExplicitValuesKept", func(t *testing.T) {
		cfg, err := Config{
			NotesRoot:     "/notes",
			ReviewLogFile: "/elsewhere/log.json",
			DueLimit:      12,
		}.withDefaults()
		require.NoError(t, err)
		assert.Equal(t, "/elsewhere/log.json", cfg.ReviewLogFile)
		assert.Equal(t, 12, cfg.DueLimit)
	})

	t.Run("NotesRootRequired", func(t *testing.T) {
		_, err := Config{}.withDefaults()
		assert.Error(t, err)
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("MissingFileYieldsZeroConfig", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		fc, err := LoadFileConfig(fsys, "/home/me/.srn/config.yml")
		require.NoError(t, err)
		assert.Equal(t, FileConfig{}, fc)
	})

	t.Run("ParsesYAML", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		content := []byte(`notes_root: ~/wiki
review_log_file: ~/wiki/review_log.json
due_limit: 7
ignore:
  - templates/**
  - archive/**
`)
		require.NoError(t, afero.WriteFile(fsys, "/home/me/.srn/config.yml", content, 0644))

		fc, err := LoadFileConfig(fsys, "/home/me/.srn/config.yml")
		require.NoError(t, err)
		assert.Equal(t, "~/wiki", fc.NotesRoot)
		assert.Equal(t, 7, fc.DueLimit)
		assert.Equal(t, []string{"templates/**", "archive/**"}, fc.Ignore)
	})

	t.Run("InvalidYAMLFails", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/home/me/.srn/config.yml", []byte("notes_root: [broken"), 0644))

		_, err := LoadFileConfig(fsys, "/home/me/.srn/config.yml")
		assert.Error(t, err)
	})
}
