package match

import (
	"fmt"
	"time"

	"courtsim/internal/geom"
)

// PlayerView is a read-only projection of an agent for outer surfaces.
type PlayerView struct {
	Name     string  `json:"name"`
	Label    string  `json:"label"`
	Team     int     `json:"team"`
	Position int     `json:"position"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	R        float64 `json:"r"`
	HasBall  bool    `json:"has_ball"`
	User     bool    `json:"user"`
	Offense  bool    `json:"offense"`
}

// TeamView summarises a team for the scoreboard.
type TeamView struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Score   int    `json:"score"`
	Offense bool   `json:"offense"`
}

// BallView is the ball's position.
type BallView struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	InFlight bool    `json:"in_flight"`
}

// CourtView carries the court geometry a renderer needs.
type CourtView struct {
	Scale       float64    `json:"scale"`
	TotalWidth  float64    `json:"total_width"`
	TotalHeight float64    `json:"total_height"`
	Margin      float64    `json:"margin"`
	Width       float64    `json:"width"`
	Height      float64    `json:"height"`
	CircleR     float64    `json:"circle_r"`
	HoopOne     geom.Point `json:"hoop_one"`
	HoopTwo     geom.Point `json:"hoop_two"`
}

// Snapshot is a frame of the match state.
type Snapshot struct {
	MatchID     string       `json:"match_id"`
	Tick        int64        `json:"tick"`
	Period      int          `json:"period"`
	GameClock   string       `json:"game_clock"`
	ShotClock   int          `json:"shot_clock"`
	GameSeconds float64      `json:"game_seconds"`
	Court       CourtView    `json:"court"`
	Teams       [2]TeamView  `json:"teams"`
	Players     []PlayerView `json:"players"`
	Ball        BallView     `json:"ball"`
	Paused      bool         `json:"paused"`
	Menu        bool         `json:"menu"`
	Over        bool         `json:"over"`
	BallInHoop  bool         `json:"ball_in_hoop"`
	UserPlaying bool         `json:"user_playing"`
	Timestamp   time.Time    `json:"ts"`
}

// Snapshot returns the current frame.
func (g *Game) Snapshot() Snapshot {
	secs := int(g.clock.GameElapsed())
	s := Snapshot{
		MatchID:     g.settings.MatchID,
		Tick:        g.clock.Ticks(),
		Period:      g.period,
		GameClock:   fmt.Sprintf("%02d:%02d", secs/60, secs%60),
		ShotClock:   int(g.clock.ShotRemaining()),
		GameSeconds: g.clock.GameElapsed(),
		Court: CourtView{
			Scale:       g.court.Scale,
			TotalWidth:  g.court.TotalWidth(),
			TotalHeight: g.court.TotalHeight(),
			Margin:      g.court.Margin,
			Width:       g.court.Width,
			Height:      g.court.Height,
			CircleR:     g.court.CircleR,
			HoopOne:     g.court.HoopOne,
			HoopTwo:     g.court.HoopTwo,
		},
		Ball:        BallView{X: g.ball.Location.X, Y: g.ball.Location.Y, InFlight: g.ball.InFlight()},
		Paused:      g.paused,
		Menu:        g.inMenu,
		Over:        g.over,
		BallInHoop:  g.ballInHoop,
		UserPlaying: g.userPlaying,
		Timestamp:   g.now(),
	}
	for i := 0; i < 2; i++ {
		t := g.registry.Team(i)
		s.Teams[i] = TeamView{Name: t.Name, Color: t.Color, Score: t.Score(), Offense: t.OnOffense()}
	}
	for _, p := range g.players {
		label := p.LastName()
		if g.isUser(p) {
			label = "USER"
		}
		if p.HasBall {
			s.Ball.X, s.Ball.Y = p.Location.X, p.Location.Y
		}
		s.Players = append(s.Players, PlayerView{
			Name:     p.Name,
			Label:    label,
			Team:     p.Team,
			Position: p.Position,
			X:        p.Location.X,
			Y:        p.Location.Y,
			R:        p.R,
			HasBall:  p.HasBall,
			User:     g.isUser(p),
			Offense:  p.OnOffense,
		})
	}
	return s
}
