package match

import "courtsim/internal/geom"

// Operator controls. They mutate state between ticks and are ignored once
// the match is over, except Reset.

// SetUserTarget sends the user agent toward pt.
func (g *Game) SetUserTarget(pt geom.Point) {
	if g.locked() {
		return
	}
	g.user.Spot = pt
}

// UserShoot shoots for the user agent when it holds the ball on offense.
func (g *Game) UserShoot() bool {
	if g.locked() || !g.userPlaying || !g.user.HasBall || !g.user.OnOffense {
		return false
	}
	g.user.Shoot()
	return true
}

// UserPass passes from the user agent to the teammate with the given
// position class. Control follows the ball to the receiver.
func (g *Game) UserPass(position int) bool {
	u := g.user
	if g.locked() || !g.userPlaying || !u.HasBall || position == u.Position {
		return false
	}
	if position < 1 || position > len(u.Teammates) {
		return false
	}
	mate := u.Teammates[position-1]
	if !u.TryPass(mate) {
		return false
	}
	g.user = mate
	return true
}

// ToggleUser switches manual control of the home team on or off. The user
// becomes whichever home agent holds the ball.
func (g *Game) ToggleUser() bool {
	if g.locked() {
		return g.userPlaying
	}
	g.userPlaying = !g.userPlaying
	for _, p := range g.registry.Team(0).Players {
		if p.HasBall {
			g.user = p
			break
		}
	}
	state := "off"
	if g.userPlaying {
		state = "on"
	}
	g.narrate(EventControl, g.user, nil, "User control "+state+".")
	return g.userPlaying
}

// TogglePause freezes or resumes the match.
func (g *Game) TogglePause() bool {
	if g.over || g.inMenu {
		return g.paused
	}
	g.paused = !g.paused
	return g.paused
}

// ToggleMenu shows or leaves the start menu.
func (g *Game) ToggleMenu() bool {
	if g.over {
		return g.inMenu
	}
	g.inMenu = !g.inMenu
	return g.inMenu
}

// Reset replaces all agent, ball and clock state with a fresh match.
func (g *Game) Reset() {
	g.seq = 0
	g.events = nil
	g.init()
}

func (g *Game) locked() bool { return g.over || g.inMenu }
