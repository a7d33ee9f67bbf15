package sim

import (
	"context"
	"time"

	"courtsim/internal/logging"
	"courtsim/internal/match"
)

// Run ticks the match until ctx is done, or until the match is over when
// StopWhenOver is set.
func (s *Simulator) Run(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Info("match starting", "tick_interval", s.tickInterval)
	if s.tickInterval <= 0 {
		for {
			select {
			case <-ctx.Done():
				log.Info("match stopping")
				return
			default:
			}
			if done := s.tick(ctx); done {
				log.Info("match finished")
				return
			}
		}
	}

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if done := s.tick(ctx); done {
				log.Info("match finished")
				return
			}
		case <-ctx.Done():
			log.Info("match stopping")
			return
		}
	}
}

// tick advances the match one step and writes what it produced. Output is
// written after the lock is released so writers may call back into the
// simulator. It reports whether Run should stop.
func (s *Simulator) tick(ctx context.Context) bool {
	s.mu.Lock()
	s.game.Tick()
	events := s.game.Drain()
	frame := s.game.Snapshot()
	over := s.game.Over()
	var box *match.BoxScore
	if over && !s.boxWritten {
		b := s.game.BoxScore()
		box = &b
		s.boxWritten = true
	}
	subs := make([]chan match.Snapshot, 0, len(s.subs))
	for ch := range s.subs {
		subs = append(subs, ch)
	}
	s.mu.Unlock()

	s.write(ctx, events, frame, box)
	for _, ch := range subs {
		select {
		case ch <- frame:
		default:
		}
	}
	return over && s.stopWhenOver
}

func (s *Simulator) write(ctx context.Context, events []match.Event, frame match.Snapshot, box *match.BoxScore) {
	if s.writer == nil {
		return
	}
	log := logging.FromContext(ctx)
	if len(events) > 0 {
		if bw, ok := s.writer.(batchEventWriter); ok {
			if err := bw.WriteEvents(events); err != nil {
				log.Error("event batch write failed", "events", len(events), "err", err)
			}
		} else {
			for _, e := range events {
				if err := s.writer.WriteEvent(e); err != nil {
					log.Error("event write failed", "seq", e.Seq, "kind", e.Kind, "err", err)
				}
			}
		}
	}
	if fw, ok := s.writer.(FrameWriter); ok {
		if err := fw.WriteFrame(frame); err != nil {
			log.Error("frame write failed", "tick", frame.Tick, "err", err)
		}
	}
	if box != nil {
		if bw, ok := s.writer.(BoxScoreWriter); ok {
			if err := bw.WriteBoxScore(*box); err != nil {
				log.Error("box score write failed", "match_id", box.MatchID, "err", err)
			}
		}
		home, away := box.Teams[0], box.Teams[1]
		log.Info("final score", "home", home.Name, "home_score", home.Score, "away", away.Name, "away_score", away.Score, "periods", box.Period)
	}
}
