package match

import (
	"math"

	"courtsim/internal/court"
	"courtsim/internal/geom"
)

type territory struct {
	rows []int
	cols []int
}

// grid cells each position is allowed to roam on the left half; cols run
// from the baseline toward half court
var territories = [teamSize]territory{
	{rows: []int{0, 1, 2, 3, 4}, cols: []int{3, 4}},
	{rows: []int{0, 1}, cols: []int{0, 1, 2}},
	{rows: []int{3, 4}, cols: []int{0, 1, 2}},
	{rows: []int{1, 2, 3}, cols: []int{1, 2}},
	{rows: []int{1, 2, 3}, cols: []int{0, 1}},
}

// NewSpot picks a random point inside the agent's positional territory on
// the half it attacks. The right half mirrors the left.
func (p *Player) NewSpot() geom.Point {
	g := p.g
	t := territories[clampPosition(p.Position)-1]
	row := t.rows[g.rng.Intn(len(t.rows))]
	col := t.cols[g.rng.Intn(len(t.cols))]
	if p.side == court.Right {
		row = absInt(row - 4)
		col = absInt(col - 4)
	}
	xs := g.court.XSpots(p.side)[col]
	ys := g.court.YSpots()[row]
	m := math.Ceil(p.R)
	return geom.Point{
		X: between(g.rng, xs.Min+m, xs.Max-m),
		Y: between(g.rng, ys.Min+m, ys.Max-m),
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
