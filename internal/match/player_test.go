package match

import (
	"math"
	"testing"
)

func TestTendenciesCumulative(t *testing.T) {
	for pos := 1; pos <= 5; pos++ {
		tend := Tendencies(pos)
		for i := 1; i < len(tend); i++ {
			if tend[i] < tend[i-1] {
				t.Fatalf("position %d: thresholds decrease at %d: %v", pos, i, tend)
			}
		}
		if math.Abs(tend[4]-1) > 1e-12 {
			t.Fatalf("position %d: last threshold %v, want 1", pos, tend[4])
		}
	}
	// point guard passes 5 of 15
	if got := Tendencies(1)[0]; math.Abs(got-5.0/15) > 1e-12 {
		t.Fatalf("guard pass threshold = %v", got)
	}
}

func TestPlayerRadiusGrowsWithPosition(t *testing.T) {
	for pos := 2; pos <= 5; pos++ {
		if PlayerRadius(pos, 8) <= PlayerRadius(pos-1, 8) {
			t.Fatalf("radius for %d not larger than %d", pos, pos-1)
		}
	}
	if r := PlayerRadius(3, 8); math.Abs(r-18.25/12*8) > 1e-9 {
		t.Fatalf("small forward radius = %v", r)
	}
}

func TestAtSpotReflexive(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	for _, p := range g.Players() {
		p.Location.X += 17
		p.StartLocation.X -= 30
		p.Spot = p.Location
		if !p.AtSpot() {
			t.Fatalf("%s not at own location", p.Name)
		}
		if p.StartLocation != p.Location {
			t.Fatalf("%s arrival did not reset start location", p.Name)
		}
	}
}

func TestFieldGoalProbabilityMonotonic(t *testing.T) {
	for def := 0.0; def <= 20; def += 2.5 {
		prev := math.Inf(1)
		for shot := 0.0; shot <= 60; shot += 1 {
			p := FieldGoalProbability(shot, def)
			if p >= prev {
				t.Fatalf("FGP not decreasing in shot distance at shot=%v def=%v", shot, def)
			}
			prev = p
		}
	}
	for shot := 0.0; shot <= 60; shot += 5 {
		prev := math.Inf(-1)
		for def := 0.0; def <= 20; def += 0.5 {
			p := FieldGoalProbability(shot, def)
			if p <= prev {
				t.Fatalf("FGP not increasing in defender distance at shot=%v def=%v", shot, def)
			}
			prev = p
		}
	}
}

func TestStatsAdd(t *testing.T) {
	a := Stats{PTS: 2, FGM: 1, FGA: 3, TOV: 1}
	b := Stats{PTS: 3, FGM: 1, FGA: 1, ThreePM: 1, ThreePA: 1}
	sum := a.Add(b)
	if sum.PTS != 5 || sum.FGA != 4 || sum.ThreePM != 1 || sum.TOV != 1 {
		t.Fatalf("unexpected sum %+v", sum)
	}
	if len(sum.Values()) != len(StatKeys) {
		t.Fatalf("values and keys disagree")
	}
}

func TestLastName(t *testing.T) {
	p := &Player{Name: "Magic Johnson"}
	if p.LastName() != "Johnson" {
		t.Fatalf("got %q", p.LastName())
	}
	p.Name = "Nene"
	if p.LastName() != "Nene" {
		t.Fatalf("got %q", p.LastName())
	}
}

func TestOpenForShotAndThreePointer(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	c := g.Court()
	pg := g.Registry().Team(0).Players[0]
	center := g.Registry().Team(0).Players[4]

	place(pg, c.HoopOne.X+4*c.Scale, c.HoopOne.Y)
	if !pg.OpenForShot() {
		t.Fatalf("four feet from the rim should always be open")
	}
	if pg.IsThreePointer() {
		t.Fatalf("four footer counted as three")
	}

	place(pg, c.HoopOne.X+25*c.Scale, c.HoopOne.Y)
	if !pg.IsThreePointer() {
		t.Fatalf("25 footer should be a three")
	}
	if !pg.OpenForShot() {
		t.Fatalf("guard at 25ft with nobody near should be open")
	}

	place(center, c.HoopOne.X+20*c.Scale, c.HoopOne.Y)
	if center.OpenForShot() {
		t.Fatalf("center should not shoot from 20ft")
	}

	// corner three: level with the corner line and wide of the rim
	place(pg, c.Margin+2*c.Scale, c.HoopOne.Y-c.HoopToCorner3-1*c.Scale)
	if !pg.IsThreePointer() {
		t.Fatalf("corner shot should be a three")
	}
	place(pg, c.Margin+2*c.Scale, c.HoopOne.Y-c.HoopToCorner3+1*c.Scale)
	if pg.IsThreePointer() {
		t.Fatalf("inside the corner line should be a two")
	}
}

func TestOpenLanePastDefender(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	c := g.Court()
	pg := g.Registry().Team(0).Players[0]
	def := pg.Matchup
	place(def, c.HoopOne.X+20*c.Scale, c.HoopOne.Y)
	place(pg, c.HoopOne.X+10*c.Scale, c.HoopOne.Y)
	if !pg.OpenLane(def) {
		t.Fatalf("carrier already past defender should have a lane")
	}
	place(pg, c.HoopOne.X+30*c.Scale, c.HoopOne.Y)
	if pg.OpenLane(def) {
		t.Fatalf("defender squarely in the lane should close it")
	}
}

func TestNewSpotStaysInTerritory(t *testing.T) {
	g := newTestGame(t, NewRand(3))
	c := g.Court()
	half := c.HalfCourtX()
	for _, p := range g.Players() {
		for i := 0; i < 200; i++ {
			s := p.NewSpot()
			if s.Y < c.Margin || s.Y > c.Margin+c.Height {
				t.Fatalf("%s spot off court: %+v", p.Name, s)
			}
			if p.Team == 0 && s.X > half {
				t.Fatalf("%s spot in wrong half: %+v", p.Name, s)
			}
			if p.Team == 1 && s.X < half {
				t.Fatalf("%s spot in wrong half: %+v", p.Name, s)
			}
		}
	}
}
