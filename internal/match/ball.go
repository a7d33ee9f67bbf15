package match

import (
	"fmt"
	"math"

	"courtsim/internal/geom"
)

// Destination is where a ball in flight resolves. It is one of ToPlayer,
// HoopMade, HoopMissed or ToRebounder.
type Destination interface {
	destination()
}

// ToPlayer is a pass to a teammate.
type ToPlayer struct{ Player *Player }

// HoopMade is a shot already credited as made.
type HoopMade struct {
	Shooter *Player
	Points  int
}

// HoopMissed is a missed shot awaiting a rebounder.
type HoopMissed struct{ Shooter *Player }

// ToRebounder carries a missed shot off the rim to the chosen rebounder.
type ToRebounder struct{ Player *Player }

func (ToPlayer) destination()    {}
func (HoopMade) destination()    {}
func (HoopMissed) destination()  {}
func (ToRebounder) destination() {}

// Ball is the single ball of a match.
type Ball struct {
	Location geom.Point
	Origin   geom.Point
	Target   geom.Point
	Dest     Destination
	Passer   *Player
	PassTick int64
}

// InFlight reports whether the ball is travelling.
func (b *Ball) InFlight() bool { return b.Dest != nil }

func (b *Ball) launch(from, to geom.Point, dest Destination) {
	b.Location, b.Origin, b.Target, b.Dest = from, from, to, dest
}

func (b *Ball) launchPass(passer, mate *Player, liveTick int64) {
	b.launch(passer.Location, mate.Location, ToPlayer{Player: mate})
	b.Passer = passer
	b.PassTick = liveTick
}

func (b *Ball) land() {
	b.Location = b.Target
	b.Dest = nil
}

func (g *Game) destinationRadius(d Destination) float64 {
	switch d := d.(type) {
	case ToPlayer:
		return d.Player.R
	case ToRebounder:
		return d.Player.R
	default:
		return g.court.HoopRadius
	}
}

// stepBall advances a ball in flight by one tick and resolves it on arrival.
func (g *Game) stepBall() {
	b := g.ball
	speed := g.settings.BallSpeed
	if geom.Distance(b.Location, b.Target) <= g.destinationRadius(b.Dest)+speed {
		g.arrive()
		return
	}
	if pass, ok := b.Dest.(ToPlayer); ok && g.interceptPass(pass) {
		return
	}
	b.Location = geom.Polar(b.Location, geom.Angle(b.Location, b.Target), speed)
}

func (g *Game) arrive() {
	b := g.ball
	dest := b.Dest
	b.land()
	switch d := dest.(type) {
	case ToPlayer:
		d.Player.HasBall = true
	case HoopMade:
		g.madeShot(d)
	case HoopMissed:
		r := g.selectRebounder()
		if r == nil {
			return
		}
		b.launch(b.Location, r.Location, ToRebounder{Player: r})
	case ToRebounder:
		g.clock.ResetShotClock()
		d.Player.rebound()
		if d.Player.OnDefense {
			g.registry.SwitchOffense()
		}
		b.Passer = nil
	}
}

// selectRebounder picks the eligible agent nearest the rim the shot was
// taken at. Defenders are always eligible; each offensive agent only with
// probability 0.05 per position class.
func (g *Game) selectRebounder() *Player {
	hoop := g.registry.OffenseTeam().AttackHoop
	var best *Player
	bestDist := math.Inf(1)
	for _, p := range g.players {
		if p.OnOffense && g.rng.Float64() >= 0.05*float64(p.Position) {
			continue
		}
		if d := geom.Distance(p.Location, hoop); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// interceptPass gives each defender near the ball one chance to steal it.
// Smaller defenders steal more often.
func (g *Game) interceptPass(pass ToPlayer) bool {
	b := g.ball
	for _, opp := range g.registry.DefenseTeam().Players {
		reach := g.court.BallRadius + opp.R
		if geom.Distance(b.Location, opp.Location) >= reach {
			continue
		}
		if g.rng.Float64() >= 0.05/float64(opp.Position) {
			continue
		}
		g.narrate(EventSteal, opp, b.Passer, opp.Name+" stole the ball!")
		g.registry.SwitchOffense()
		opp.HasBall = true
		if b.Passer != nil {
			b.Passer.Stats.TOV++
		}
		opp.Stats.STL++
		pass.Player.HasBall = false
		g.clock.ResetShotClock()
		b.Location = opp.Location
		b.Dest = nil
		b.Passer = nil
		return true
	}
	return false
}

func (g *Game) madeShot(d HoopMade) {
	b := g.ball
	if passer := b.Passer; passer != nil && passer != d.Shooter && passer.Team == d.Shooter.Team &&
		g.clock.Since(b.PassTick) < g.settings.AssistWindowSeconds {
		passer.Stats.AST++
		g.narrate(EventAssist, passer, d.Shooter, fmt.Sprintf("(%s got the assist.)", passer.Name))
	}
	b.Passer = nil
	g.clock.ResetShotClock()
	g.ballInHoop = true
	g.registry.SwitchOffense()
	g.registry.OffenseTeam().Players[0].Inbounding = true
	one, two := g.registry.Scores()
	g.narrate(EventScore, d.Shooter, nil, fmt.Sprintf("%s[%d] - %s[%d]",
		g.registry.Team(0).Name, one, g.registry.Team(1).Name, two))
}
