package match

import "time"

// EventKind classifies a play-by-play entry.
type EventKind string

const (
	EventStart     EventKind = "start"
	EventShot      EventKind = "shot"
	EventBlock     EventKind = "block"
	EventSteal     EventKind = "steal"
	EventRebound   EventKind = "rebound"
	EventAssist    EventKind = "assist"
	EventScore     EventKind = "score"
	EventShotClock EventKind = "shot_clock"
	EventOvertime  EventKind = "overtime"
	EventFinal     EventKind = "final"
	EventControl   EventKind = "control"
)

// Event is one line of play-by-play.
type Event struct {
	MatchID   string    `json:"match_id"`
	Seq       int       `json:"seq"`
	Kind      EventKind `json:"kind"`
	Period    int       `json:"period"`
	Clock     string    `json:"clock"`
	ShotClock int       `json:"shot_clock"`
	Elapsed   float64   `json:"elapsed"`
	Player    string    `json:"player,omitempty"`
	Other     string    `json:"other,omitempty"`
	Team      string    `json:"team,omitempty"`
	Text      string    `json:"text"`
	HomeScore int       `json:"home_score"`
	AwayScore int       `json:"away_score"`
	Timestamp time.Time `json:"ts"`
}

func (g *Game) narrate(kind EventKind, p, other *Player, text string) {
	g.seq++
	one, two := g.registry.Scores()
	e := Event{
		MatchID:   g.settings.MatchID,
		Seq:       g.seq,
		Kind:      kind,
		Period:    g.period,
		Clock:     g.clock.Timestamp(),
		ShotClock: int(g.clock.ShotRemaining()),
		Elapsed:   g.clock.LiveElapsed(),
		Text:      text,
		HomeScore: one,
		AwayScore: two,
		Timestamp: g.now(),
	}
	if p != nil {
		e.Player = p.Name
		e.Team = g.registry.TeamOf(p).Name
	}
	if other != nil {
		e.Other = other.Name
	}
	g.events = append(g.events, e)
}

// Drain returns the events produced since the last call.
func (g *Game) Drain() []Event {
	out := g.events
	g.events = nil
	return out
}
