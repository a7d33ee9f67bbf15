package match

import (
	"math"

	"courtsim/internal/geom"
)

func (p *Player) defensiveDecision() {
	if p.Matchup.HasBall {
		p.onBallDefense()
		return
	}
	p.offBallDefense()
}

// onBallDefense stands between the matched carrier and the defended hoop,
// closer to the carrier the nearer it gets to the hoop.
func (p *Player) onBallDefense() {
	opp := p.Matchup.Location
	hoop := p.DefendHoop
	dist := math.Pow(geom.Distance(opp, hoop)*p.g.court.Scale, 0.45)
	p.Spot = geom.Polar(opp, geom.Angle(opp, hoop), dist)
}

// offBallDefense shades from the matched opponent toward the ball. When the
// opponent is inbounding the defender waits around half court.
func (p *Player) offBallDefense() {
	g := p.g
	if p.Matchup.Inbounding {
		centre := g.court.Centre()
		yr := g.court.Height/2 - p.R
		p.Spot = geom.Point{
			X: between(g.rng, centre.X-g.court.CircleR, centre.X+g.court.CircleR),
			Y: between(g.rng, centre.Y-yr, centre.Y+yr),
		}
		return
	}
	opp := p.Matchup.Location
	ball := p.ballLocation()
	dist := math.Pow(geom.Distance(opp, ball)*g.court.Scale, 0.485)
	p.Spot = geom.Polar(opp, geom.Angle(opp, ball), dist)
}

// ballLocation is the carrier's location, else the ball in flight, else the
// hoop it was last scored through.
func (p *Player) ballLocation() geom.Point {
	g := p.g
	if h := g.holder(); h != nil {
		return h.Location
	}
	if g.ball.InFlight() {
		return g.ball.Location
	}
	if p.OnDefense {
		return p.AttackHoop
	}
	return p.DefendHoop
}
