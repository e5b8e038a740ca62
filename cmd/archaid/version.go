package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// getVersionCommand returns the version command
func getVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the archaid version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("archaid %s\n", Version)
		},
	}
}
