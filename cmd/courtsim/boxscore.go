package main

import (
	"os"

	"github.com/spf13/cobra"

	"courtsim/internal/sim"
)

var boxscoreInput string

var boxscoreCmd = &cobra.Command{
	Use:   "boxscore",
	Short: "Print the final box score of a logged match",
	Long:  "boxscore reads the .boxscore file written beside a play-by-play log and prints it as tables.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := sim.ReadBoxScoreFile(boxscoreInput)
		if err != nil {
			return err
		}
		sim.PrintBoxScore(os.Stdout, b)
		return nil
	},
}

func init() {
	boxscoreCmd.Flags().StringVar(&boxscoreInput, "input", "", "Path to the .boxscore file")
	boxscoreCmd.MarkFlagRequired("input")
}
