package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "courtsim",
	Short: "Five-on-five basketball simulation toolkit",
	Long:  "courtsim simulates a full-court basketball match between two five-man rosters and replays its play-by-play logs.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(boxscoreCmd)
	rootCmd.AddCommand(dashboardCmd)
}
