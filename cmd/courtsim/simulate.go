package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"courtsim/internal/admin"
	"courtsim/internal/config"
	"courtsim/internal/logging"
	"courtsim/internal/match"
	"courtsim/internal/sim"
)

var (
	simConfigPath string
	simSchemaPath string
	simTick       time.Duration
	simOutput     string
	simLogFile    string
	simSeed       int64
	simAdminAddr  string
	simLogLevel   string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulated match",
	Long:  "simulate plays a match tick by tick, streaming play-by-play events to the chosen output and optional log file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := resolveOutput(simOutput, term.IsTerminal(int(os.Stdout.Fd())))
		if err != nil {
			return err
		}
		// the TUI owns the terminal, so logs only go to stderr in the line modes
		var logOut io.Writer = os.Stderr
		if mode == outputTUI {
			logOut = io.Discard
		}
		log, err := logging.NewWithLevel(logOut, simLogLevel)
		if err != nil {
			return err
		}

		cfg, err := config.Load(simConfigPath, simSchemaPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = simSeed
		}
		league, err := cfg.League()
		if err != nil {
			return err
		}
		settings, err := cfg.Settings(league)
		if err != nil {
			return err
		}
		settings.MatchID = uuid.New().String()
		settings.Start = time.Now().UTC()

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		game, err := match.New(settings, match.NewRand(seed))
		if err != nil {
			return err
		}

		tickInterval := simTick
		if envTick := os.Getenv("TICK_INTERVAL"); envTick != "" {
			d, err := time.ParseDuration(envTick)
			if err != nil {
				return err
			}
			tickInterval = d
		}

		writer, cleanup, err := newWriters(mode, settings, simLogFile, cfg.Export)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = logging.NewContext(ctx, log)

		simulator := sim.NewSimulator(game, writer, tickInterval)
		// interactive sessions stay up after the final buzzer so the user can reset
		simulator.StopWhenOver(mode != outputTUI && simAdminAddr == "")

		if simAdminAddr != "" {
			srv := admin.NewServer(simulator)
			go func() {
				if err := srv.Start(ctx, simAdminAddr); err != nil {
					log.Error("admin server failed", "addr", simAdminAddr, "err", err)
				}
			}()
			if as, ok := writer.(sim.AdminStatusWriter); ok {
				as.SetAdminStatus(true)
			}
		}

		log.Info("match configured",
			"match_id", settings.MatchID,
			"home", settings.Home.Name,
			"away", settings.Away.Name,
			"seed", seed,
			"tick", tickInterval,
			"output", mode)
		simulator.Run(ctx)
		log.Info("simulation stopped", "match_id", settings.MatchID)
		return nil
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simConfigPath, "config", "config/match.yaml", "Path to match configuration YAML")
	simulateCmd.Flags().StringVar(&simSchemaPath, "schema", "schemas/match.cue", "Path to CUE schema file")
	simulateCmd.Flags().DurationVar(&simTick, "tick", 50*time.Millisecond, "Wall-clock tick interval (0 runs as fast as possible)")
	simulateCmd.Flags().StringVar(&simOutput, "output", outputAuto, "Output mode: auto, json, color or tui")
	simulateCmd.Flags().StringVar(&simLogFile, "log-file", "", "Path to export play-by-play events (JSONL)")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (0 seeds from the wall clock)")
	simulateCmd.Flags().StringVar(&simAdminAddr, "admin", "", "Listen address of the admin UI, e.g. :8080")
	simulateCmd.Flags().StringVar(&simLogLevel, "log-level", "info", "Log level: debug, info, warn or error")
}
