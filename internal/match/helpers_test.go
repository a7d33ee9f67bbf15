package match

import (
	"testing"

	"courtsim/internal/geom"
)

// seqRand replays scripted draws and falls back to fixed values when the
// script runs out.
type seqRand struct {
	floats   []float64
	ints     []int
	fallback float64
}

func (r *seqRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.fallback
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func testTeams() (TeamSpec, TeamSpec) {
	home := TeamSpec{Name: "2012 Dream Team", Color: "red", Players: []PlayerSpec{
		{Name: "Chris Paul", Position: 1, Speed: 0.6},
		{Name: "Kobe Bryant", Position: 2, Speed: 0.5},
		{Name: "Kevin Durant", Position: 3, Speed: 0.4},
		{Name: "LeBron James", Position: 4, Speed: 0.3},
		{Name: "Tyson Chandler", Position: 5, Speed: 0.2},
	}}
	away := TeamSpec{Name: "1992 Dream Team", Color: "lightblue", Players: []PlayerSpec{
		{Name: "Magic Johnson", Position: 1, Speed: 0.6},
		{Name: "Michael Jordan", Position: 2, Speed: 0.5},
		{Name: "Larry Bird", Position: 3, Speed: 0.4},
		{Name: "Charles Barkley", Position: 4, Speed: 0.3},
		{Name: "Karl Malone", Position: 5, Speed: 0.2},
	}}
	return home, away
}

func newTestGame(t *testing.T, rng Rand) *Game {
	t.Helper()
	home, away := testTeams()
	s := DefaultSettings(home, away)
	s.MatchID = "test"
	g, err := New(s, rng)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func place(p *Player, x, y float64) {
	p.Location = geom.Point{X: x, Y: y}
	p.StartLocation = p.Location
	p.Spot = p.Location
}
