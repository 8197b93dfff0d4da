package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by goreleaser; the default marks local builds.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of srn",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("srn version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
