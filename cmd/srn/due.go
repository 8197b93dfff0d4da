package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/srn/pkg/srn"
)

var dueLimit int

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List the notes currently due, without reviewing",
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

		queue, err := svc.DueQueue(cmd.Context())
		if err != nil {
			fatal("Error computing due queue", err)
		}

		if len(queue) == 0 {
			fmt.Println("No notes due for review.")
			return
		}
		for _, id := range queue {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
	dueCmd.Flags().IntVar(&dueLimit, "limit", srn.DefaultDueLimit, "Maximum notes to list")
}
