package match

import "courtsim/internal/court"

// userInboundReminderSeconds is the shot-clock elapsed time at which an
// idle user is nudged to inbound.
const userInboundReminderSeconds = 4

func (p *Player) transitionDecision() {
	if p.Inbounding {
		p.inbound()
		return
	}
	if !p.InTransition {
		return
	}
	guards := p.Teammates[:2]
	isGuard := p == guards[0] || p == guards[1]
	switch {
	case p.Position > 2 && p.HasBall:
		p.passToGuard()
	case isGuard && !(guards[0].HasBall || guards[1].HasBall):
		if !p.HasBall {
			p.Spot = p.NewSpot()
		}
	default:
		half := p.g.court.HalfCourtX()
		crossed := p.Location.X <= half
		if p.side == court.Right {
			crossed = p.Location.X >= half
		}
		if crossed {
			p.InTransition = false
		} else {
			p.Spot = p.NewSpot()
		}
	}
}

// inbound walks the inbounder to the defended hoop and hands it the ball on
// arrival. A user inbounder must walk there manually.
func (p *Player) inbound() {
	g := p.g
	if g.isUser(p) {
		if g.clock.ShotTicks() == g.clock.ticksFor(userInboundReminderSeconds) {
			g.narrate(EventControl, p, nil, "User needs to inbound the ball!")
		}
		if p.almostEqual(p.Location.X, p.DefendHoop.X) && p.almostEqual(p.Location.Y, p.DefendHoop.Y) {
			p.finishInbound()
		}
		return
	}
	p.Spot = p.DefendHoop
	if p.AtSpot() {
		p.finishInbound()
		p.InTransition = true
	}
}

func (p *Player) finishInbound() {
	p.Inbounding = false
	p.g.ballInHoop = false
	p.HasBall = true
}
