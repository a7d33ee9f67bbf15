package match

import (
	"math"
	"testing"

	"courtsim/internal/geom"
)

func TestOnBallDefenseTightensNearHoop(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.5})
	pg := g.Registry().Team(0).Players[0]
	def := pg.Matchup
	hoop := def.DefendHoop

	place(pg, hoop.X+30*g.Court().Scale, hoop.Y)
	def.defensiveDecision()
	far := geom.Distance(def.Spot, pg.Location)
	want := math.Pow(geom.Distance(pg.Location, hoop)*g.Court().Scale, 0.45)
	if !geom.AlmostEqual(far, want, 1e-9) {
		t.Fatalf("on-ball gap %v, want %v", far, want)
	}
	if geom.Distance(def.Spot, hoop) >= geom.Distance(pg.Location, hoop) {
		t.Fatalf("defender should sit between the carrier and the hoop")
	}

	place(pg, hoop.X+8*g.Court().Scale, hoop.Y)
	def.defensiveDecision()
	if near := geom.Distance(def.Spot, pg.Location); near >= far {
		t.Fatalf("gap should shrink near the hoop: %v >= %v", near, far)
	}
}

func TestOffBallDefenseWaitsForInbound(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.5})
	sg := g.Registry().Team(0).Players[1]
	def := sg.Matchup
	sg.Inbounding = true
	def.defensiveDecision()
	c := g.Court()
	centre := c.Centre()
	if math.Abs(def.Spot.X-centre.X) > c.CircleR {
		t.Fatalf("inbound wait spot %+v too far from half court", def.Spot)
	}

	sg.Inbounding = false
	ball := g.Holder().Location
	def.defensiveDecision()
	want := math.Pow(geom.Distance(sg.Location, ball)*c.Scale, 0.485)
	if got := geom.Distance(def.Spot, sg.Location); !geom.AlmostEqual(got, want, 1e-9) {
		t.Fatalf("off-ball gap %v, want %v", got, want)
	}
}
