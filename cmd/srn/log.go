package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/srn/pkg/srn"
)

var logJSON bool

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the persisted review history",
	Long:  `List every note that has been reviewed at least once, with its last review date and next due date.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := buildConfig(cmd)
		if err != nil {
			fatal("Error loading configuration", err)
		}

		svc, err := srn.New(cfg, srn.WithLogger(slog.Default()))
		if err != nil {
			fatal("Error initializing srn", err)
		}

		entries, err := svc.Entries(cmd.Context())
		if err != nil {
			fatal("Error reading review log", err)
		}

		if logJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(entries); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if len(entries) == 0 {
			fmt.Println("No reviews recorded yet.")
			return
		}
		for _, e := range entries {
			fmt.Printf("%s\tlast: %s\tdue: %s\n", e.ID, e.LastReviewed, e.Due.Local().Format(time.DateOnly))
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output in JSON format")
}
