package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "cinereview",
	Short:        "Movie review board: submit reviews and browse the most recent ones",
	SilenceUsage: true,
	// serve is the default
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, recentCmd)
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}
