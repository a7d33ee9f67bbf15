package match

import (
	"testing"

	"courtsim/internal/geom"
)

func TestToggleUserFollowsBall(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	home := g.Registry().Team(0)
	home.Players[0].HasBall = false
	home.Players[2].HasBall = true
	if !g.ToggleUser() {
		t.Fatalf("expected user control on")
	}
	u, on := g.User()
	if !on || u != home.Players[2] {
		t.Fatalf("user should take the carrier, got %s", u.Name)
	}
	if g.Snapshot().Players[2].Label != "USER" {
		t.Fatalf("user label missing")
	}
	if g.ToggleUser() {
		t.Fatalf("expected user control off")
	}
}

func TestUserPassHandsControlToReceiver(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	home := g.Registry().Team(0)
	pg, sg := home.Players[0], home.Players[1]
	place(pg, 300, 200)
	place(sg, 300, 400)
	place(pg.Matchup, 500, 100)
	place(sg.Matchup, 500, 420)
	g.ToggleUser()

	if g.UserPass(1) {
		t.Fatalf("pass to self accepted")
	}
	if g.UserPass(9) {
		t.Fatalf("pass to unknown position accepted")
	}
	if !g.UserPass(2) {
		t.Fatalf("open pass refused")
	}
	if u, _ := g.User(); u != sg {
		t.Fatalf("control should move to the receiver, got %s", u.Name)
	}
	if g.UserShoot() {
		t.Fatalf("shot accepted without the ball")
	}
}

func TestUserShootAndTarget(t *testing.T) {
	rng := &seqRand{fallback: 0.99}
	g := newTestGame(t, rng)
	pg := g.Registry().Team(0).Players[0]
	if g.UserShoot() {
		t.Fatalf("shot accepted with user control off")
	}
	g.ToggleUser()
	target := geom.Point{X: 120, Y: 240}
	g.SetUserTarget(target)
	if pg.Spot != target {
		t.Fatalf("target not applied: %+v", pg.Spot)
	}
	rng.floats = []float64{0.999}
	if !g.UserShoot() {
		t.Fatalf("user shot refused")
	}
	if pg.Stats.FGA != 1 || !g.Ball().InFlight() {
		t.Fatalf("shot not released")
	}
}

func TestUserMovesFasterUnderControl(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	pg := g.Registry().Team(0).Players[0]
	place(pg, 300, 240)
	pg.StartLocation = geom.Point{X: 200, Y: 240}
	pg.accelerate()
	base := pg.CurrentSpeed
	g.ToggleUser()
	pg.accelerate()
	if pg.CurrentSpeed <= base {
		t.Fatalf("user boost not applied: %v <= %v", pg.CurrentSpeed, base)
	}
}

func TestInBoundsNearSideline(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	c := g.Court()
	p := g.Players()[0]
	place(p, c.Centre().X, c.Centre().Y)
	if !p.InBounds() {
		t.Fatalf("centre court should be in bounds")
	}
	place(p, c.Margin+p.R+1, c.Centre().Y)
	if p.InBounds() {
		t.Fatalf("hugging the sideline should be out of bounds")
	}
	place(p, c.Centre().X, c.Margin+c.Height-p.R)
	if p.InBounds() {
		t.Fatalf("hugging the baseline should be out of bounds")
	}
}
