package sim

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"courtsim/internal/match"
)

// ReplayLog replays events from r to writer, paced on the simulated live
// seconds between events. A speed >0 accelerates playback; speed <= 0 skips
// pacing. A reset or a new match in the log is not waited on.
func ReplayLog(r io.Reader, writer EventWriter, speed float64) error {
	dec := json.NewDecoder(r)
	var prev *match.Event
	for {
		var e match.Event
		if err := dec.Decode(&e); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if prev != nil && speed > 0 {
			if d := replayGap(*prev, e, speed); d > 0 {
				time.Sleep(d)
			}
		}
		if err := writer.WriteEvent(e); err != nil {
			return err
		}
		prev = &e
	}
}

// replayGap is the wait before next. Elapsed going backwards means the match
// was reset.
func replayGap(prev, next match.Event, speed float64) time.Duration {
	if prev.MatchID != next.MatchID || next.Elapsed <= prev.Elapsed {
		return 0
	}
	return time.Duration(float64(time.Second) * (next.Elapsed - prev.Elapsed) / speed)
}

// ReplayLogFile opens a file and replays its events.
func ReplayLogFile(path string, writer EventWriter, speed float64) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ReplayLog(f, writer, speed)
}
