package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/aretw0/srn/pkg/srn"
)

var (
	verbose   bool
	notesRoot string
	logFile   string
	ignore    []string
)

const (
	defaultNotesRoot = "~/wiki"
	configFilePath   = "~/.srn/config.yml"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "srn",
	Short: "Spaced repetition for your Markdown notes",
	Long: `srn walks a directory of Markdown notes and schedules re-reads
using the FSRS spaced-repetition algorithm. Rate each note after
reading it; srn computes when you should see it again.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&notesRoot, "notes", defaultNotesRoot, "Notes directory to review")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Review log file (default <notes>/review_log.json)")
	rootCmd.PersistentFlags().StringSliceVar(&ignore, "ignore", nil, "Glob patterns excluding notes from review (repeatable)")
}

// buildConfig merges built-in defaults, the optional ~/.srn/config.yml,
// and command-line flags, in that precedence order, then resolves all
// paths to absolute form before they reach the core.
func buildConfig(cmd *cobra.Command) (srn.Config, error) {
	fc, err := srn.LoadFileConfig(afero.NewOsFs(), expandPath(configFilePath))
	if err != nil {
		return srn.Config{}, err
	}

	cfg := srn.Config{
		NotesRoot:     fc.NotesRoot,
		ReviewLogFile: fc.ReviewLogFile,
		DueLimit:      fc.DueLimit,
		Ignore:        fc.Ignore,
	}

	if cfg.NotesRoot == "" || rootCmd.PersistentFlags().Changed("notes") {
		cfg.NotesRoot = notesRoot
	}
	if rootCmd.PersistentFlags().Changed("log-file") {
		cfg.ReviewLogFile = logFile
	}
	if len(ignore) > 0 {
		cfg.Ignore = append(cfg.Ignore, ignore...)
	}
	if f := cmd.Flags().Lookup("limit"); f != nil && f.Changed {
		if v, err := cmd.Flags().GetInt("limit"); err == nil {
			cfg.DueLimit = v
		}
	}

	cfg.NotesRoot = expandPath(cfg.NotesRoot)
	if cfg.ReviewLogFile != "" {
		cfg.ReviewLogFile = expandPath(cfg.ReviewLogFile)
	}
	return cfg, nil
}

// expandPath resolves a leading tilde and makes the path absolute.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
