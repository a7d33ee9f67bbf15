package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"courtsim/internal/config"
	"courtsim/internal/sim"
)

var (
	replayInput  string
	replaySpeed  float64
	replayOutput string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay a play-by-play log file",
	Long:  "replay feeds events from a JSONL log back to STDOUT or GreptimeDB, paced on simulated match seconds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if replayInput == "" {
			return fmt.Errorf("input file required")
		}
		if replaySpeed <= 0 {
			return fmt.Errorf("speed must be positive, got %v", replaySpeed)
		}
		writer, err := newReplayWriter(replayOutput, config.Default().Export)
		if err != nil {
			return err
		}
		return sim.ReplayLogFile(replayInput, writer, replaySpeed)
	},
}

func init() {
	replayCmd.Flags().StringVar(&replayInput, "input", "", "Path to play-by-play log file")
	replayCmd.Flags().Float64Var(&replaySpeed, "speed", 1.0, "Playback speed multiplier")
	replayCmd.Flags().StringVar(&replayOutput, "output", outputJSON, "Output mode: json or color")
	replayCmd.MarkFlagRequired("input")
}
