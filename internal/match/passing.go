package match

import (
	"sort"

	"courtsim/internal/geom"
)

// TryPass throws to mate when both the mate's defender and the passer's own
// defender sit farther from the passing line than their radius.
func (p *Player) TryPass(mate *Player) bool {
	if mate == p || mate.Team != p.Team {
		return false
	}
	a, b := p.Location, mate.Location
	d := geom.PointLineDistance(mate.Matchup.Location, a, b)
	d2 := geom.PointLineDistance(p.Matchup.Location, a, b)
	if d <= mate.Matchup.R || d2 <= p.Matchup.R {
		return false
	}
	p.HasBall = false
	p.g.ball.launchPass(p, mate, p.g.clock.LiveTicks())
	return true
}

// bestPass tries teammates from closest to the hoop outward and stops at the
// first pass that is thrown.
func (p *Player) bestPass() {
	mates := make([]*Player, len(p.Teammates))
	copy(mates, p.Teammates)
	hoop := p.AttackHoop
	sort.SliceStable(mates, func(i, j int) bool {
		return geom.Distance(mates[i].Location, hoop) < geom.Distance(mates[j].Location, hoop)
	})
	for _, mate := range mates {
		if mate == p {
			continue
		}
		if p.TryPass(mate) {
			return
		}
	}
}

func (p *Player) passToGuard() {
	for _, guard := range p.Teammates[:2] {
		if p.TryPass(guard) {
			p.InTransition = false
			return
		}
		p.Spot = p.NewSpot()
	}
}
