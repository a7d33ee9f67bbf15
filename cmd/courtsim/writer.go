package main

import (
	"fmt"
	"os"

	"courtsim/internal/config"
	"courtsim/internal/match"
	"courtsim/internal/sim"
)

const (
	outputAuto  = "auto"
	outputJSON  = "json"
	outputColor = "color"
	outputTUI   = "tui"
)

// resolveOutput maps the --output flag to a concrete mode. auto picks the
// TUI on a terminal and JSON lines otherwise.
func resolveOutput(mode string, tty bool) (string, error) {
	switch mode {
	case outputAuto, "":
		if tty {
			return outputTUI, nil
		}
		return outputJSON, nil
	case outputJSON, outputColor, outputTUI:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown output mode %q", mode)
	}
}

// newWriters sets up the event writers for a match based on the output mode,
// the optional log file and the GreptimeDB env vars. It returns the writer and
// a cleanup function to close any resources.
func newWriters(mode string, settings match.Settings, logFile string, exp config.Export) (sim.EventWriter, func(), error) {
	base, err := baseWriter(mode, settings)
	if err != nil {
		return nil, nil, err
	}
	return attachWriters(base, logFile, exp)
}

// attachWriters fans base out to the optional GreptimeDB and log file
// writers. base is closed when one of them fails to open.
func attachWriters(base sim.EventWriter, logFile string, exp config.Export) (sim.EventWriter, func(), error) {
	cleanup := func() {}
	if c, ok := base.(interface{ Close() error }); ok {
		cleanup = func() { c.Close() }
	}
	writers := []sim.EventWriter{base}

	db, err := greptimeWriter(exp)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if db != nil {
		writers = append(writers, db)
	}

	if logFile != "" {
		fw, err := sim.NewFileWriter(logFile, logFile+".boxscore")
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		writers = append(writers, fw)
	}

	if len(writers) == 1 {
		return base, cleanup, nil
	}
	mw := sim.NewMultiWriter(writers...)
	return mw, func() { mw.Close() }, nil
}

// baseWriter chooses the primary writer for the output mode.
func baseWriter(mode string, settings match.Settings) (sim.EventWriter, error) {
	switch mode {
	case outputJSON:
		return sim.NewJSONStdoutWriter(), nil
	case outputColor:
		return sim.NewColorStdoutWriter(&settings), nil
	case outputTUI:
		return sim.NewTUIWriter(settings), nil
	default:
		return nil, fmt.Errorf("unknown output mode %q", mode)
	}
}

// greptimeWriter returns a GreptimeDB writer when GREPTIMEDB_ENDPOINT is set,
// or nil. Table names fall back to the configured export section.
func greptimeWriter(exp config.Export) (*sim.GreptimeDBWriter, error) {
	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}
	eventTable := exp.EventTable
	if v := os.Getenv("GREPTIMEDB_EVENT_TABLE"); v != "" {
		eventTable = v
	}
	statTable := exp.StatTable
	if v := os.Getenv("GREPTIMEDB_STAT_TABLE"); v != "" {
		statTable = v
	}
	return sim.NewGreptimeDBWriter(endpoint, exp.Database, eventTable, statTable)
}

// newReplayWriter creates the writer replayed events are forwarded to.
func newReplayWriter(mode string, exp config.Export) (sim.EventWriter, error) {
	db, err := greptimeWriter(exp)
	if err != nil {
		return nil, err
	}
	if db != nil {
		return db, nil
	}
	switch mode {
	case outputColor:
		return sim.NewColorStdoutWriter(nil), nil
	case outputJSON, outputAuto, "":
		return sim.NewJSONStdoutWriter(), nil
	default:
		return nil, fmt.Errorf("unknown replay output %q", mode)
	}
}
