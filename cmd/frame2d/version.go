package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the release version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the frame2d version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frame2d v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
