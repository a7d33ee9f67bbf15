package match

import (
	"fmt"
	"math"
)

// Clock measures simulated time in ticks. Paused ticks are counted apart so
// that game and shot clocks never include them.
type Clock struct {
	secondsPerTick float64
	periodLimit    int64
	shotLimit      int64

	ticks       int64
	liveTicks   int64
	periodTicks int64
	shotTicks   int64
	pausedTicks int64
}

// NewClock returns a clock for periods of periodSeconds and a shot clock of
// shotSeconds.
func NewClock(secondsPerTick, periodSeconds, shotSeconds float64) *Clock {
	c := &Clock{secondsPerTick: secondsPerTick}
	c.periodLimit = c.ticksFor(periodSeconds)
	c.shotLimit = c.ticksFor(shotSeconds)
	return c
}

func (c *Clock) ticksFor(seconds float64) int64 {
	return int64(math.Ceil(seconds/c.secondsPerTick - 1e-9))
}

// Advance records one tick. Only live ticks move the game and shot clocks.
func (c *Clock) Advance(live bool) {
	c.ticks++
	if !live {
		c.pausedTicks++
		return
	}
	c.liveTicks++
	c.periodTicks++
	c.shotTicks++
}

// ResetShotClock restarts the shot clock.
func (c *Clock) ResetShotClock() { c.shotTicks = 0 }

// StartPeriod restarts both clocks for a period of the given length.
func (c *Clock) StartPeriod(seconds float64) {
	c.periodLimit = c.ticksFor(seconds)
	c.periodTicks = 0
	c.shotTicks = 0
}

// ShotClockExpired reports whether the possession time limit is reached.
func (c *Clock) ShotClockExpired() bool { return c.shotTicks >= c.shotLimit }

// PeriodExpired reports whether the current period is over.
func (c *Clock) PeriodExpired() bool { return c.periodTicks >= c.periodLimit }

// GameElapsed is the simulated time played in the current period.
func (c *Clock) GameElapsed() float64 { return float64(c.periodTicks) * c.secondsPerTick }

// ShotElapsed is the simulated time of the current possession.
func (c *Clock) ShotElapsed() float64 { return float64(c.shotTicks) * c.secondsPerTick }

// ShotRemaining is the time left on the shot clock.
func (c *Clock) ShotRemaining() float64 {
	return math.Max(0, float64(c.shotLimit-c.shotTicks)*c.secondsPerTick)
}

// GameRemaining is the time left in the period.
func (c *Clock) GameRemaining() float64 {
	return math.Max(0, float64(c.periodLimit-c.periodTicks)*c.secondsPerTick)
}

// LiveElapsed is all unpaused time since the match started, across periods.
func (c *Clock) LiveElapsed() float64 { return float64(c.liveTicks) * c.secondsPerTick }

// LiveTicks returns the unpaused tick count since the match started.
func (c *Clock) LiveTicks() int64 { return c.liveTicks }

// ShotTicks returns the ticks elapsed on the shot clock.
func (c *Clock) ShotTicks() int64 { return c.shotTicks }

// Since returns the unpaused seconds elapsed since the given live tick.
func (c *Clock) Since(liveTick int64) float64 {
	return float64(c.liveTicks-liveTick) * c.secondsPerTick
}

// PausedDuration is the total time spent paused.
func (c *Clock) PausedDuration() float64 { return float64(c.pausedTicks) * c.secondsPerTick }

// Ticks returns every tick observed, paused or not.
func (c *Clock) Ticks() int64 { return c.ticks }

// Timestamp renders the elapsed period time as [mm:ss].
func (c *Clock) Timestamp() string {
	secs := int(c.GameElapsed())
	return fmt.Sprintf("[%02d:%02d]", secs/60, secs%60)
}
