package arena

import (
	"math"

	"github.com/nvandessel/rps-arena/internal/geom"
)

// move integrates agent me's velocity and resolves collisions, then
// commits the result. Wall reflection happens first, independently per
// axis: a coordinate that would cross within Radius of an edge is
// folded back across the boundary and the matching velocity component
// is negated and damped. Obstacle resolution runs after that, at most
// twice, pushing the point to whichever inflated rectangle edge is
// nearest. Any bounce adds small jitter to both velocity axes before
// re-capping, so agents do not slide along surfaces indefinitely.
func (a *Arena) move(me int) {
	u := &a.agents[me]
	nx := u.X + u.VX
	ny := u.Y + u.VY

	bounced := false
	if nx < Radius {
		nx = Radius + (Radius - nx)
		u.VX = -u.VX * WallBounce
		bounced = true
	} else if nx > float64(a.width)-Radius {
		edge := float64(a.width) - Radius
		nx = edge - (nx - edge)
		u.VX = -u.VX * WallBounce
		bounced = true
	}
	if ny < Radius {
		ny = Radius + (Radius - ny)
		u.VY = -u.VY * WallBounce
		bounced = true
	} else if ny > float64(a.height)-Radius {
		edge := float64(a.height) - Radius
		ny = edge - (ny - edge)
		u.VY = -u.VY * WallBounce
		bounced = true
	}

	// Two passes at most: a push out of one block can land inside a
	// neighbor, but chains longer than that are tolerated for a tick.
	for pass := 0; pass < 2; pass++ {
		b, ok := a.field.FirstColliding(nx, ny, Radius)
		if !ok {
			break
		}
		left := b.X1 - Radius
		right := b.X2 + Radius
		top := b.Y1 - Radius
		bottom := b.Y2 + Radius

		dLeft := math.Abs(nx - left)
		dRight := math.Abs(nx - right)
		dTop := math.Abs(ny - top)
		dBottom := math.Abs(ny - bottom)

		// Nearest face wins; ties resolve left, right, top, bottom.
		switch m := min(dLeft, dRight, dTop, dBottom); {
		case m == dLeft:
			nx = left
			u.VX = -math.Abs(u.VX) * WallBounce
		case m == dRight:
			nx = right
			u.VX = math.Abs(u.VX) * WallBounce
		case m == dTop:
			ny = top
			u.VY = -math.Abs(u.VY) * WallBounce
		default:
			ny = bottom
			u.VY = math.Abs(u.VY) * WallBounce
		}
		bounced = true
	}

	if bounced {
		u.VX += uniform(a.rng, -BounceJitter, BounceJitter)
		u.VY += uniform(a.rng, -BounceJitter, BounceJitter)
		u.VX, u.VY = geom.CapSpeed(u.VX, u.VY, BaseSpeed)
	}

	u.X, u.Y = nx, ny
	a.obs.AgentMoved(me, u.X, u.Y)
}
