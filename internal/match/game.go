package match

import (
	"fmt"
	"math"
	"time"

	"courtsim/internal/court"
	"courtsim/internal/geom"
)

// Game is one match between two teams of five. It is not safe for
// concurrent use; callers serialise Tick and the control methods.
type Game struct {
	settings Settings
	rng      Rand
	court    *court.Court
	clock    *Clock
	registry *Registry
	players  []*Player
	ball     *Ball

	user        *Player
	userPlaying bool
	paused      bool
	inMenu      bool
	over        bool
	announced   bool
	ballInHoop  bool
	period      int

	seq    int
	events []Event
}

// New sets up a match with both teams spread around the centre circle and
// the home point guard holding the ball.
func New(s Settings, rng Rand) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match settings: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("match needs a random source")
	}
	g := &Game{settings: s, rng: rng, court: court.New(s.Scale)}
	g.init()
	return g, nil
}

func (g *Game) init() {
	g.clock = NewClock(g.settings.SecondsPerTick, g.settings.PeriodSeconds, g.settings.ShotClockSeconds)
	g.registry = newRegistry(g, g.settings.Home, g.settings.Away)
	g.players = g.registry.Players()
	g.ball = &Ball{}
	g.user = g.players[0]
	g.userPlaying = false
	g.paused = false
	g.inMenu = g.settings.StartInMenu
	g.over = false
	g.announced = false
	g.ballInHoop = false
	g.period = 1
	g.spawnAroundCircle()
	for _, p := range g.players {
		p.Spot = p.Location
	}
	g.players[0].HasBall = true
	g.ball.Location = g.players[0].Location
	g.narrate(EventStart, nil, nil, "Game start!")
}

// spawnAroundCircle places the ten agents evenly on a ring three circle
// radii around centre court, home clockwise from the top and away after
// them in reverse roster order.
func (g *Game) spawnAroundCircle() {
	centre := g.court.Centre()
	r := g.court.CircleR * 3
	angle := math.Pi / 2
	place := func(p *Player) {
		angle -= 2 * math.Pi / 10
		p.Location = geom.Point{X: centre.X + r*math.Cos(angle), Y: centre.Y - r*math.Sin(angle)}
		p.StartLocation = p.Location
		p.Spot = p.Location
	}
	for _, p := range g.registry.Team(0).Players {
		place(p)
	}
	away := g.registry.Team(1).Players
	for i := len(away) - 1; i >= 0; i-- {
		place(away[i])
	}
}

// Tick advances the match by one step: clocks, then the ball, then every
// agent in roster order. Paused and menu ticks only accrue paused time.
func (g *Game) Tick() {
	if g.over {
		return
	}
	if g.paused || g.inMenu {
		g.clock.Advance(false)
		return
	}
	g.clock.Advance(true)
	if g.clock.ShotClockExpired() {
		g.shotClockViolation()
	}
	if g.clock.PeriodExpired() {
		g.timeExpires()
		if g.over {
			return
		}
	}
	if g.ball.InFlight() {
		g.stepBall()
	}
	tempo := g.settings.Tempo / 100
	for _, p := range g.players {
		if g.isUser(p) {
			if p.Inbounding {
				p.transitionDecision()
			}
			p.MoveToSpot()
			continue
		}
		switch {
		case p.InTransition || p.Inbounding:
			p.transitionDecision()
		case p.OnDefense:
			p.defensiveDecision()
		case p.OnOffense:
			if g.rng.Float64() < tempo {
				p.offensiveDecision()
			}
		}
		p.MoveToSpot()
	}
}

func (g *Game) shotClockViolation() {
	g.narrate(EventShotClock, nil, nil, "BZZT. Shot clock expired!")
	g.clock.ResetShotClock()
	inbounding := g.registry.DefenseTeam()
	g.ball.Dest = nil
	g.ball.Passer = nil
	for _, p := range g.players {
		p.HasBall = false
		p.Inbounding = false
	}
	g.registry.SwitchOffense()
	g.ballInHoop = true
	inbounding.Players[0].Inbounding = true
}

func (g *Game) timeExpires() {
	one, two := g.registry.Scores()
	if one == two {
		g.period++
		g.narrate(EventOvertime, nil, nil, "OVERTIME - additional time.")
		g.spawnAroundCircle()
		g.clock.StartPeriod(g.settings.OvertimeSeconds)
		return
	}
	if !g.announced {
		winner := g.registry.Team(0).Name
		if two > one {
			winner = g.registry.Team(1).Name
		}
		g.narrate(EventFinal, nil, nil, fmt.Sprintf("GAME OVER. The %s are the winners.", winner))
		g.announced = true
	}
	g.over = true
}

func (g *Game) holder() *Player {
	for _, p := range g.players {
		if p.HasBall {
			return p
		}
	}
	return nil
}

// now is the match start plus live simulated time.
func (g *Game) now() time.Time {
	return g.settings.Start.Add(time.Duration(g.clock.LiveElapsed() * float64(time.Second)))
}

func (g *Game) isUser(p *Player) bool { return g.userPlaying && p == g.user }

// Court returns the court geometry.
func (g *Game) Court() *court.Court { return g.court }

// Clock returns the match clocks.
func (g *Game) Clock() *Clock { return g.clock }

// Registry returns the teams.
func (g *Game) Registry() *Registry { return g.registry }

// Ball returns the ball.
func (g *Game) Ball() *Ball { return g.ball }

// Players returns the ten agents in roster order.
func (g *Game) Players() []*Player { return g.players }

// Settings returns the match parameters.
func (g *Game) Settings() Settings { return g.settings }

// Scores returns home and away points.
func (g *Game) Scores() (int, int) { return g.registry.Scores() }

// Over reports whether the match has been decided.
func (g *Game) Over() bool { return g.over }

// Paused reports whether the match is paused.
func (g *Game) Paused() bool { return g.paused }

// InMenu reports whether the start menu is showing.
func (g *Game) InMenu() bool { return g.inMenu }

// Period returns the current period, 1 for regulation.
func (g *Game) Period() int { return g.period }

// User returns the controlled agent and whether user control is on.
func (g *Game) User() (*Player, bool) { return g.user, g.userPlaying }

// Holder returns the agent holding the ball, if any.
func (g *Game) Holder() *Player { return g.holder() }

// BallInHoop reports whether a dead ball waits to be inbounded.
func (g *Game) BallInHoop() bool { return g.ballInHoop }
