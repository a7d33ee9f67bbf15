// Simulator owning one match and its tick loop
package sim

import (
	"sync"
	"time"

	"courtsim/internal/geom"
	"courtsim/internal/match"
)

// Match is the game a Simulator drives. *match.Game implements it.
type Match interface {
	Tick()
	Drain() []match.Event
	Snapshot() match.Snapshot
	BoxScore() match.BoxScore
	Scores() (int, int)
	Over() bool
	TogglePause() bool
	ToggleUser() bool
	ToggleMenu() bool
	Reset()
	UserShoot() bool
	UserPass(position int) bool
	SetUserTarget(geom.Point)
}

// EventWriter receives play-by-play events.
type EventWriter interface {
	WriteEvent(match.Event) error
}

// Optional: writers may support batch mode
type batchEventWriter interface {
	WriteEvents([]match.Event) error
}

// BoxScoreWriter receives the final box score of a match.
type BoxScoreWriter interface {
	WriteBoxScore(match.BoxScore) error
}

// FrameWriter receives a snapshot after every tick.
type FrameWriter interface {
	WriteFrame(match.Snapshot) error
}

// Controls are the operator commands a display can issue.
type Controls interface {
	TogglePause() bool
	ToggleUser() bool
	ToggleMenu() bool
	Reset()
	UserShoot() bool
	UserPass(position int) bool
	MoveUser(dx, dy float64)
}

// ControlsReceiver is implemented by writers that accept operator input.
type ControlsReceiver interface {
	SetControls(Controls)
}

// AdminStatusWriter allows writers to receive admin UI status updates.
type AdminStatusWriter interface {
	SetAdminStatus(listening bool)
}

// Simulator runs a match on a fixed tick and fans its output out to a
// writer. Control methods serialise with ticks so operator input always
// lands between two steps.
type Simulator struct {
	game         Match
	writer       EventWriter
	tickInterval time.Duration
	stopWhenOver bool
	boxWritten   bool
	subs         map[chan match.Snapshot]struct{}
	mu           sync.Mutex
}

// NewSimulator wraps game. A zero tick interval runs as fast as possible.
func NewSimulator(game Match, writer EventWriter, tickInterval time.Duration) *Simulator {
	s := &Simulator{
		game:         game,
		writer:       writer,
		tickInterval: tickInterval,
		subs:         make(map[chan match.Snapshot]struct{}),
	}
	if cr, ok := writer.(ControlsReceiver); ok {
		cr.SetControls(s)
	}
	return s
}

// StopWhenOver makes Run return once the final buzzer has sounded.
func (s *Simulator) StopWhenOver(stop bool) { s.stopWhenOver = stop }

// Snapshot returns the current frame.
func (s *Simulator) Snapshot() match.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// BoxScore returns the current box score.
func (s *Simulator) BoxScore() match.BoxScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.BoxScore()
}

// Scores returns home and away points.
func (s *Simulator) Scores() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Scores()
}

// Over reports whether the match has finished.
func (s *Simulator) Over() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Over()
}

// TogglePause freezes or resumes the match.
func (s *Simulator) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.TogglePause()
}

// ToggleUser switches operator control of the home team.
func (s *Simulator) ToggleUser() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ToggleUser()
}

// ToggleMenu shows or leaves the start menu.
func (s *Simulator) ToggleMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.ToggleMenu()
}

// Reset restarts the match.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
	s.boxWritten = false
}

// UserShoot shoots for the controlled agent.
func (s *Simulator) UserShoot() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.UserShoot()
}

// UserPass passes to the teammate playing the given position.
func (s *Simulator) UserPass(position int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.UserPass(position)
}

// SetUserTarget sends the controlled agent toward pt.
func (s *Simulator) SetUserTarget(pt geom.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.SetUserTarget(pt)
}

// MoveUser steers the controlled agent by an offset in feet from where it
// stands.
func (s *Simulator) MoveUser(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.game.Snapshot()
	for _, p := range snap.Players {
		if p.User {
			scale := snap.Court.Scale
			s.game.SetUserTarget(geom.Point{X: p.X + dx*scale, Y: p.Y + dy*scale})
			return
		}
	}
}

// Subscribe registers for a snapshot after every tick. Slow subscribers
// miss frames rather than stall the match. The returned func unsubscribes.
func (s *Simulator) Subscribe() (<-chan match.Snapshot, func()) {
	ch := make(chan match.Snapshot, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
		})
	}
}
