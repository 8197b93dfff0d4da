package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/srn/pkg/srn"
)

var reviewLimit int

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review the notes that are due",
	Long: `Walk the due queue interactively. For each note, read it in your
editor, press Enter, then rate how difficult it was (1 hardest, 4
easiest). Press q to stop; everything rated so far is already saved.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := buildConfig(cmd)
		if err != nil {
			fatal("Error loading configuration", err)
		}

		svc, err := srn.New(cfg, srn.WithLogger(slog.Default()))
		if err != nil {
			fatal("Error initializing srn", err)
		}

		sum, err := svc.Review(cmd.Context())
		if err != nil {
			fatal("Error during review", err)
		}

		if sum.Reviewed > 0 {
			fmt.Printf("\nReviewed %d note(s). Progress saved to %s\n",
				sum.Reviewed, svc.Config().ReviewLogFile)
		}
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().IntVar(&reviewLimit, "limit", srn.DefaultDueLimit, "Maximum notes per session")
}
