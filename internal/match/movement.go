package match

import (
	"math"

	"courtsim/internal/geom"
)

// accelerate derives the current speed from distance covered since the last
// stop, as v^2 = v0^2 + 2ax.
func (p *Player) accelerate() {
	a := p.Speed
	if p.g.isUser(p) {
		a *= p.g.settings.UserSpeedBoost
	}
	x := geom.Distance(p.Location, p.StartLocation)
	p.CurrentSpeed = math.Sqrt(p.StartSpeed*p.StartSpeed + 2*a*x)
}

// InBounds reports whether the agent's disc is clear of every boundary by
// more than its current step.
func (p *Player) InBounds() bool {
	c := p.g.court
	eps := p.CurrentSpeed
	x, y := p.Location.X, p.Location.Y
	if x-p.R-c.Margin <= eps || c.Margin+c.Width-(x+p.R) <= eps {
		return false
	}
	if y-p.R-c.Margin <= eps || c.Margin+c.Height-(y+p.R) <= eps {
		return false
	}
	return true
}

// AtSpot reports arrival at the target. Arriving restarts acceleration.
func (p *Player) AtSpot() bool {
	if p.almostEqual(p.Location.X, p.Spot.X) && p.almostEqual(p.Location.Y, p.Spot.Y) {
		p.StartLocation = p.Location
		return true
	}
	return false
}

// MoveToSpot heads toward the target and takes one step unless arrived.
func (p *Player) MoveToSpot() {
	angle := geom.Angle(p.Location, p.Spot)
	p.Dir = geom.Point{X: math.Cos(angle), Y: math.Sin(angle)}
	if !p.AtSpot() {
		p.move()
	}
}

func (p *Player) move() {
	p.accelerate()
	prev := p.Location
	dx, dy := p.Dir.X*p.CurrentSpeed, p.Dir.Y*p.CurrentSpeed
	p.Location = prev.Add(dx, dy)
	if !p.InBounds() {
		p.Spot = prev.Add(-dx, -dy)
	}
	for _, opp := range p.Opponents {
		if !p.overlaps(opp) {
			continue
		}
		if p.HasBall && opp.OnDefense && p.possibleSteal(opp) {
			break
		}
		dir := 1.0
		if p.g.rng.Intn(2) == 0 {
			dir = -1
		}
		p.Location = prev.Add(0, dir*p.CurrentSpeed)
		p.Spot = prev.Add(-dx, -dy)
	}
}

// possibleSteal lets a defender strip the carrier on contact. Smaller
// carriers are stripped more often.
func (p *Player) possibleSteal(opp *Player) bool {
	g := p.g
	if g.rng.Float64() >= 0.01/float64(p.Position) {
		return false
	}
	g.narrate(EventSteal, opp, p, opp.Name+" stole the ball out of "+p.Name+"'s hands!")
	p.HasBall = false
	opp.HasBall = true
	g.registry.SwitchOffense()
	g.clock.ResetShotClock()
	p.Stats.TOV++
	opp.Stats.STL++
	return true
}
