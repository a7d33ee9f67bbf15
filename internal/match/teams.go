package match

import (
	"sort"

	"courtsim/internal/court"
	"courtsim/internal/geom"
)

// Team groups five agents sharing hoops and a court half.
type Team struct {
	Name       string
	Color      string
	Players    []*Player
	AttackHoop geom.Point
	DefendHoop geom.Point
	Side       court.Side
}

// Score sums the points of every member.
func (t *Team) Score() int {
	var pts int
	for _, p := range t.Players {
		pts += p.Stats.PTS
	}
	return pts
}

// OnOffense reports whether the team currently has possession.
func (t *Team) OnOffense() bool { return t.Players[0].OnOffense }

// Registry owns both teams and the relationships between their agents.
type Registry struct {
	teams   [2]*Team
	players []*Player
}

func newRegistry(g *Game, home, away TeamSpec) *Registry {
	r := &Registry{}
	specs := [2]TeamSpec{home, away}
	for i, spec := range specs {
		t := &Team{Name: spec.Name, Color: spec.Color}
		if i == 0 {
			t.Side, t.AttackHoop, t.DefendHoop = court.Left, g.court.HoopOne, g.court.HoopTwo
		} else {
			t.Side, t.AttackHoop, t.DefendHoop = court.Right, g.court.HoopTwo, g.court.HoopOne
		}
		roster := make([]PlayerSpec, len(spec.Players))
		copy(roster, spec.Players)
		sort.SliceStable(roster, func(a, b int) bool { return roster[a].Position < roster[b].Position })
		for _, ps := range roster {
			p := newPlayer(g, ps, i)
			p.AttackHoop, p.DefendHoop, p.side = t.AttackHoop, t.DefendHoop, t.Side
			p.OnOffense = i == 0
			p.OnDefense = i != 0
			p.InTransition = p.OnOffense
			t.Players = append(t.Players, p)
		}
		r.teams[i] = t
	}
	for i, t := range r.teams {
		other := r.teams[1-i]
		for n, p := range t.Players {
			p.Teammates = t.Players
			p.Opponents = other.Players
			p.Matchup = other.Players[n]
		}
		r.players = append(r.players, t.Players...)
	}
	return r
}

// Team returns the home (0) or away (1) team.
func (r *Registry) Team(i int) *Team { return r.teams[i] }

// TeamOf returns the team p plays for.
func (r *Registry) TeamOf(p *Player) *Team { return r.teams[p.Team] }

// Players returns all ten agents in roster order, home first.
func (r *Registry) Players() []*Player { return r.players }

// OffenseTeam returns the team in possession.
func (r *Registry) OffenseTeam() *Team {
	if r.teams[0].OnOffense() {
		return r.teams[0]
	}
	return r.teams[1]
}

// DefenseTeam returns the team without possession.
func (r *Registry) DefenseTeam() *Team {
	if r.teams[0].OnOffense() {
		return r.teams[1]
	}
	return r.teams[0]
}

// SwitchOffense flips possession. Every agent freezes in place and the new
// offense enters transition.
func (r *Registry) SwitchOffense() {
	for _, p := range r.players {
		p.OnOffense = !p.OnOffense
		p.OnDefense = !p.OnDefense
		p.Spot = p.Location
		p.InTransition = p.OnOffense
	}
}

// Scores returns home and away points.
func (r *Registry) Scores() (int, int) {
	return r.teams[0].Score(), r.teams[1].Score()
}
