package match

import (
	"testing"

	"courtsim/internal/geom"
)

func TestNewRejectsBadRoster(t *testing.T) {
	home, away := testTeams()
	away.Players[4].Position = 4
	if _, err := New(DefaultSettings(home, away), NewRand(1)); err == nil {
		t.Fatalf("expected duplicate position error")
	}
	home, away = testTeams()
	home.Players = home.Players[:4]
	if _, err := New(DefaultSettings(home, away), NewRand(1)); err == nil {
		t.Fatalf("expected short roster error")
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, NewRand(1))
	home := g.Registry().Team(0)
	away := g.Registry().Team(1)
	if !home.Players[0].HasBall || g.Holder() != home.Players[0] {
		t.Fatalf("home point guard should start with the ball")
	}
	for i, p := range home.Players {
		if !p.OnOffense || p.OnDefense || !p.InTransition {
			t.Fatalf("%s should start on offense in transition", p.Name)
		}
		if p.Matchup != away.Players[i] || away.Players[i].Matchup != p {
			t.Fatalf("%s matchup not symmetric", p.Name)
		}
	}
	centre := g.Court().Centre()
	for _, p := range g.Players() {
		d := geom.Distance(p.Location, centre)
		if d < 143.9 || d > 144.1 {
			t.Fatalf("%s spawned %v from centre", p.Name, d)
		}
	}
	evs := g.Drain()
	if len(evs) != 1 || evs[0].Kind != EventStart {
		t.Fatalf("expected a start event, got %+v", evs)
	}
	if len(g.Drain()) != 0 {
		t.Fatalf("drain should clear events")
	}
}

// A guard at the rim picks the shoot branch and hits it.
func TestScenarioForcedMake(t *testing.T) {
	rng := &seqRand{fallback: 0.99}
	g := newTestGame(t, rng)
	c := g.Court()
	pg := g.Registry().Team(0).Players[0]
	place(pg, c.HoopOne.X+4*c.Scale, c.HoopOne.Y)

	tend := pg.Tendencies
	rng.floats = []float64{(tend[tendPass] + tend[tendShoot]) / 2, 0}
	pg.onBallOffense()

	if pg.Stats.FGM != 1 || pg.Stats.FGA != 1 || pg.Stats.PTS != 2 {
		t.Fatalf("unexpected stats %+v", pg.Stats)
	}
	if pg.Stats.ThreePA != 0 || pg.HasBall {
		t.Fatalf("two pointer miscounted: %+v hasBall=%v", pg.Stats, pg.HasBall)
	}
	b := g.Ball()
	made, ok := b.Dest.(HoopMade)
	if !ok || made.Shooter != pg || made.Points != 2 {
		t.Fatalf("expected made flight, got %#v", b.Dest)
	}
	if b.Target != pg.AttackHoop || b.Target != c.HoopOne {
		t.Fatalf("ball headed to %+v", b.Target)
	}
	if one, _ := g.Scores(); one != 2 {
		t.Fatalf("home score %d", one)
	}
}

func TestForcedThree(t *testing.T) {
	rng := &seqRand{fallback: 0.99}
	g := newTestGame(t, rng)
	c := g.Court()
	pg := g.Registry().Team(0).Players[0]
	place(pg, c.HoopOne.X+25*c.Scale, c.HoopOne.Y)
	rng.floats = []float64{0}
	pg.Shoot()
	if pg.Stats.PTS != 3 || pg.Stats.ThreePM != 1 || pg.Stats.ThreePA != 1 || pg.Stats.FGM != 1 {
		t.Fatalf("unexpected stats %+v", pg.Stats)
	}
}

func TestShotClockViolation(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	x := g.Holder()
	g.clock.shotTicks = g.clock.shotLimit - 1
	g.Tick()

	if x.HasBall || g.Holder() != nil {
		t.Fatalf("possession should be cleared")
	}
	home, away := g.Registry().Team(0), g.Registry().Team(1)
	for _, p := range g.Players() {
		if p.OnOffense == p.OnDefense {
			t.Fatalf("%s has inconsistent flags", p.Name)
		}
	}
	if home.OnOffense() || !away.OnOffense() {
		t.Fatalf("possession did not flip")
	}
	if !away.Players[0].Inbounding {
		t.Fatalf("away point guard should inbound")
	}
	if g.Clock().ShotTicks() != 0 {
		t.Fatalf("shot clock not reset: %d", g.Clock().ShotTicks())
	}
	if !g.BallInHoop() {
		t.Fatalf("ball should be dead in the hoop")
	}
}

// Contact with a defender strips the carrier.
func TestScenarioContactSteal(t *testing.T) {
	rng := &seqRand{fallback: 0.99}
	g := newTestGame(t, rng)
	pg := g.Registry().Team(0).Players[0]
	def := pg.Matchup
	place(def, pg.Location.X+1, pg.Location.Y)
	g.clock.shotTicks = 100

	rng.floats = []float64{0}
	pg.move()

	if pg.HasBall || !def.HasBall {
		t.Fatalf("ball did not change hands")
	}
	if pg.Stats.TOV != 1 || def.Stats.STL != 1 {
		t.Fatalf("stats not credited: %+v %+v", pg.Stats, def.Stats)
	}
	if pg.OnOffense || !def.OnOffense {
		t.Fatalf("offense did not flip")
	}
	if g.Clock().ShotTicks() != 0 {
		t.Fatalf("shot clock not reset")
	}
}

// Pausing stops both clocks and books the paused time exactly.
func TestScenarioPause(t *testing.T) {
	g := newTestGame(t, NewRand(5))
	for i := 0; i < 50; i++ {
		g.Tick()
	}
	c := g.Clock()
	gameBefore, shotBefore, pausedBefore := c.GameElapsed(), c.ShotElapsed(), c.PausedDuration()

	if !g.TogglePause() {
		t.Fatalf("expected paused")
	}
	for i := 0; i < 40; i++ {
		g.Tick()
	}
	if g.TogglePause() {
		t.Fatalf("expected resumed")
	}
	if c.GameElapsed() != gameBefore || c.ShotElapsed() != shotBefore {
		t.Fatalf("clocks moved while paused")
	}
	if got := c.PausedDuration() - pausedBefore; got < 1.999 || got > 2.001 {
		t.Fatalf("paused duration grew by %v, want 2", got)
	}
}

func TestMenuCountsAsPaused(t *testing.T) {
	home, away := testTeams()
	s := DefaultSettings(home, away)
	s.StartInMenu = true
	g, err := New(s, NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	g.Tick()
	g.Tick()
	if g.Clock().LiveTicks() != 0 || g.Clock().PausedDuration() == 0 {
		t.Fatalf("menu ticks should only accrue paused time")
	}
	if g.TogglePause() {
		t.Fatalf("pause ignored in menu")
	}
	if g.ToggleMenu() {
		t.Fatalf("expected menu closed")
	}
	g.Tick()
	if g.Clock().LiveTicks() != 1 {
		t.Fatalf("expected one live tick")
	}
}

func TestRegulationEndsOrGoesToOvertime(t *testing.T) {
	g := newTestGame(t, NewRand(11))
	limit := int(g.clock.periodLimit)
	for i := 0; i < limit; i++ {
		g.Tick()
	}
	if !g.Over() && g.Period() != 2 {
		t.Fatalf("regulation ended without result: over=%v period=%v", g.Over(), g.Period())
	}
	one, two := g.Scores()
	if g.Over() && one == two {
		t.Fatalf("tied game marked over")
	}
}

func TestTiedRegulationGoesToOvertime(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	g.clock.periodTicks = g.clock.periodLimit - 1
	g.Tick()
	if g.Over() || g.Period() != 2 {
		t.Fatalf("tie should force overtime: over=%v period=%d", g.Over(), g.Period())
	}
	if g.clock.periodLimit != g.clock.ticksFor(g.settings.OvertimeSeconds) {
		t.Fatalf("overtime period length not applied")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newTestGame(t, &seqRand{fallback: 0.99})
	g.Registry().Team(1).Players[2].Stats.PTS = 2
	g.clock.periodTicks = g.clock.periodLimit - 1
	g.Tick()
	if !g.Over() {
		t.Fatalf("expected game over")
	}
	var final bool
	for _, e := range g.Drain() {
		if e.Kind == EventFinal {
			final = true
		}
	}
	if !final {
		t.Fatalf("missing final event")
	}
	ticks := g.Clock().Ticks()
	g.Tick()
	if g.Clock().Ticks() != ticks {
		t.Fatalf("ticks advanced after game over")
	}
	if g.ToggleUser() || g.TogglePause() {
		t.Fatalf("controls should be ignored after game over")
	}
	g.Reset()
	if g.Over() || g.Clock().Ticks() != 0 {
		t.Fatalf("reset did not restart the match")
	}
	for _, p := range g.Players() {
		if p.Stats != (Stats{}) {
			t.Fatalf("stats survived reset: %+v", p.Stats)
		}
	}
}

func TestLongRunInvariants(t *testing.T) {
	g := newTestGame(t, NewRand(42))
	for i := 0; i < 6000; i++ {
		g.Tick()
		holders := 0
		for _, p := range g.Players() {
			if p.OnOffense == p.OnDefense {
				t.Fatalf("tick %d: %s flags inconsistent", i, p.Name)
			}
			if p.HasBall {
				holders++
			}
			s := p.Stats
			if s.FGM > s.FGA || s.ThreePM > s.ThreePA || s.ThreePA > s.FGA {
				t.Fatalf("tick %d: %s shooting stats inconsistent %+v", i, p.Name, s)
			}
			if s.TRB != s.ORB+s.DRB {
				t.Fatalf("tick %d: %s rebounds inconsistent %+v", i, p.Name, s)
			}
			if s.PTS != 2*s.FGM+s.ThreePM {
				t.Fatalf("tick %d: %s points inconsistent %+v", i, p.Name, s)
			}
		}
		if holders > 1 {
			t.Fatalf("tick %d: %d players hold the ball", i, holders)
		}
		if g.Ball().InFlight() && holders != 0 {
			t.Fatalf("tick %d: ball in flight and held", i)
		}
		one, two := g.Scores()
		bs := g.BoxScore()
		if bs.Teams[0].Totals.PTS != one || bs.Teams[1].Totals.PTS != two {
			t.Fatalf("tick %d: score drifted from box score", i)
		}
		if g.Over() {
			break
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, NewRand(1))
	s := g.Snapshot()
	if len(s.Players) != 10 || s.Teams[0].Name != "2012 Dream Team" || !s.Teams[0].Offense {
		t.Fatalf("unexpected snapshot %+v", s)
	}
	if s.ShotClock != 24 || s.GameClock != "00:00" {
		t.Fatalf("unexpected clocks %q %d", s.GameClock, s.ShotClock)
	}
	if !s.Players[0].HasBall || s.Ball.X != s.Players[0].X {
		t.Fatalf("ball should sit with the carrier")
	}
	if s.Players[0].Label != "Paul" {
		t.Fatalf("label %q", s.Players[0].Label)
	}
}
