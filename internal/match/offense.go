package match

import (
	"fmt"
	"math"

	"courtsim/internal/court"
	"courtsim/internal/geom"
)

// FieldGoalProbability models make chance from shot distance and nearest
// defender distance, both in feet. Long shots can go negative and never
// fall.
func FieldGoalProbability(shotFt, defenderFt float64) float64 {
	return (67.6 - 1.05*shotFt) / (1 + math.Exp(-(0.273*defenderFt + 0.349))) / 100
}

func (p *Player) offensiveDecision() {
	if p.HasBall {
		p.onBallOffense()
		return
	}
	p.offBallOffense()
}

func (p *Player) onBallOffense() {
	chance := p.g.rng.Float64()
	t := p.Tendencies
	switch {
	case chance < t[tendPass]:
		p.bestPass()
	case chance < t[tendShoot]:
		if p.OpenForShot() {
			p.Shoot()
		}
	case chance < t[tendDrive]:
		if p.OpenLane(p.Matchup) {
			p.drive()
		}
	case chance < t[tendHold]:
		p.Spot = p.Location
	default:
		p.Spot = p.NewSpot()
	}
}

func (p *Player) offBallOffense() {
	if p.AtSpot() && p.g.rng.Float64() < 1.0/3 {
		p.Spot = p.NewSpot()
	}
}

// OpenLane reports whether the agent has an angle past the defender toward
// the hoop, or is already closer to the hoop than the defender.
func (p *Player) OpenLane(def *Player) bool {
	hoop := p.AttackHoop
	a := geom.Distance(hoop, def.Location)
	b := p.R + def.R
	c := math.Hypot(a, b)
	defAngle := geom.LawOfCosines(b, a, c)

	b = geom.Distance(def.Location, p.Location)
	c = geom.Distance(p.Location, hoop)
	selfAngle := geom.LawOfCosines(b, a, c)
	return selfAngle > defAngle || c < a
}

func (p *Player) drive() {
	p.Spot = p.AttackHoop
	if geom.Distance(p.Location, p.AttackHoop) < 2*p.g.court.Scale {
		p.Shoot()
	}
}

// OpenForShot reports whether a jump shot is reasonable: very close to the
// hoop, or in range with every opponent at least three feet away. Position
// 4 and 5 players never take threes.
func (p *Player) OpenForShot() bool {
	c := p.g.court
	shotDistance := geom.Distance(p.Location, p.AttackHoop)
	if shotDistance < 5*c.Scale {
		return true
	}
	openDistance := 3 * c.Scale
	shotRange := 17.5 * c.Scale
	if p.Position < 4 {
		shotRange = c.HoopToTop3 + 2*openDistance
	}
	if shotDistance > shotRange {
		return false
	}
	for _, opp := range p.Opponents {
		if geom.Distance(p.Location, opp.Location) < openDistance {
			return false
		}
	}
	return true
}

// IsThreePointer classifies a shot from the current location.
func (p *Player) IsThreePointer() bool {
	c := p.g.court
	x, y := p.Location.X, p.Location.Y
	hoop := p.AttackHoop
	corner3x := c.Margin + c.Corner3Length
	inCorner := (p.side == court.Left && x < corner3x) ||
		(p.side == court.Right && x > c.TotalWidth()-corner3x)
	if inCorner {
		return y < hoop.Y-c.HoopToCorner3 || y > hoop.Y+c.HoopToCorner3
	}
	return geom.Distance(p.Location, hoop) > c.HoopToTop3
}

// Shoot releases a shot. Points are credited at release; the ball then
// flies to the hoop carrying the outcome.
func (p *Player) Shoot() {
	g := p.g
	three := p.IsThreePointer()
	if three {
		p.Stats.ThreePA++
	}
	p.Stats.FGA++
	p.HasBall = false
	text := p.Name + " shot the ball..."

	// bigger shooters are easier to block
	blockChance := 0.1 * float64(p.Position)
	for _, opp := range p.Opponents {
		if !p.overlaps(opp) {
			continue
		}
		if g.rng.Float64() < blockChance {
			opp.Stats.BLK++
			g.narrate(EventBlock, p, opp, fmt.Sprintf("%s and had it blocked by %s!", text, opp.Name))
			p.blockedShot()
			return
		}
	}

	shotFt := g.court.Feet(geom.Distance(p.Location, p.AttackHoop))
	defFt := g.court.Feet(geom.Distance(p.Location, p.Matchup.Location))
	if g.rng.Float64() < FieldGoalProbability(shotFt, defFt) {
		points := 2
		if three {
			points = 3
			p.Stats.ThreePM++
			text += " and made a three!"
		} else {
			text += " and made the shot."
		}
		p.Stats.PTS += points
		p.Stats.FGM++
		g.narrate(EventShot, p, nil, text)
		g.ball.launch(p.Location, p.AttackHoop, HoopMade{Shooter: p, Points: points})
		return
	}
	g.narrate(EventShot, p, nil, text+" and missed it.")
	g.ball.launch(p.Location, p.AttackHoop, HoopMissed{Shooter: p})
}

// blockedShot hands the ball to a uniformly chosen agent of the ten.
func (p *Player) blockedShot() {
	g := p.g
	rebounder := g.players[g.rng.Intn(len(g.players))]
	rebounder.rebound()
	if rebounder.Team != p.Team {
		g.registry.SwitchOffense()
	}
	g.clock.ResetShotClock()
	g.ball.Passer = nil
}

func (p *Player) rebound() {
	g := p.g
	if g.userPlaying && p.Team == 0 {
		g.user = p
	}
	if p.OnOffense {
		p.Stats.ORB++
		g.narrate(EventRebound, p, nil, p.Name+" got the offensive rebound!")
	} else {
		p.Stats.DRB++
		g.narrate(EventRebound, p, nil, p.Name+" got the rebound.")
	}
	p.Stats.TRB++
	p.HasBall = true
}
