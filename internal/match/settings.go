package match

import (
	"fmt"
	"time"
)

// PlayerSpec is the fixed attribute bundle an agent is created from.
type PlayerSpec struct {
	Name     string  `json:"name" yaml:"name"`
	Position int     `json:"position" yaml:"position"`
	Speed    float64 `json:"speed" yaml:"speed"`
}

// TeamSpec describes one roster of five.
type TeamSpec struct {
	Name    string       `json:"name" yaml:"name"`
	Color   string       `json:"color" yaml:"color"`
	Players []PlayerSpec `json:"players" yaml:"players"`
}

// Settings parameterise a match. Times are simulated seconds.
type Settings struct {
	MatchID             string
	Start               time.Time
	Scale               float64
	SecondsPerTick      float64
	PeriodSeconds       float64
	OvertimeSeconds     float64
	ShotClockSeconds    float64
	AssistWindowSeconds float64
	// Tempo is the per-tick chance (0-100) that an agent on offense decides.
	Tempo float64
	// BallSpeed is the ball's travel per tick in court units.
	BallSpeed      float64
	UserSpeedBoost float64
	StartInMenu    bool
	Home           TeamSpec
	Away           TeamSpec
}

// DefaultSettings returns the constants of the classic exhibition game
// for the given rosters.
func DefaultSettings(home, away TeamSpec) Settings {
	return Settings{
		Scale:               8,
		SecondsPerTick:      0.05,
		PeriodSeconds:       10 * 60,
		OvertimeSeconds:     2 * 60,
		ShotClockSeconds:    24,
		AssistWindowSeconds: 2.5,
		Tempo:               50,
		BallSpeed:           60,
		UserSpeedBoost:      1.2,
		Home:                home,
		Away:                away,
	}
}

// Validate checks that both rosters hold one player per position class.
func (s Settings) Validate() error {
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	if s.SecondsPerTick <= 0 {
		return fmt.Errorf("seconds per tick must be positive, got %v", s.SecondsPerTick)
	}
	if s.PeriodSeconds <= 0 || s.ShotClockSeconds <= 0 {
		return fmt.Errorf("period and shot clock lengths must be positive")
	}
	for _, t := range []TeamSpec{s.Home, s.Away} {
		if err := ValidateTeam(t); err != nil {
			return err
		}
	}
	if s.Home.Name == s.Away.Name {
		return fmt.Errorf("home and away teams must differ, both are %q", s.Home.Name)
	}
	return nil
}

// ValidateTeam checks a roster holds five players, one per position class,
// each with a positive speed.
func ValidateTeam(t TeamSpec) error {
	if len(t.Players) != teamSize {
		return fmt.Errorf("team %q has %d players, want %d", t.Name, len(t.Players), teamSize)
	}
	seen := make(map[int]bool, teamSize)
	for _, p := range t.Players {
		if p.Position < 1 || p.Position > teamSize {
			return fmt.Errorf("team %q: player %q has position %d", t.Name, p.Name, p.Position)
		}
		if seen[p.Position] {
			return fmt.Errorf("team %q: position %d assigned twice", t.Name, p.Position)
		}
		if p.Speed <= 0 {
			return fmt.Errorf("team %q: player %q needs a positive speed", t.Name, p.Name)
		}
		seen[p.Position] = true
	}
	return nil
}
