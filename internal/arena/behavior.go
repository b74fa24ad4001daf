package arena

import (
	"math"

	"github.com/nvandessel/rps-arena/internal/geom"
)

// steerForce computes the steering force for agent me from a snapshot
// of everyone else's position. The directional term follows the closest
// choice rule: find the nearest prey and the nearest predator by
// squared distance, then either pursue or flee whichever is closer,
// with a tie favoring pursuit. Allies within MinSeparation each add a
// short-range push apart, and a final uniform jitter on both axes
// breaks symmetric stand-offs.
//
// The prey check is tried before the predator check per rival, so in a
// two-kind game where the same kind is both prey and predator it counts
// as prey only.
func (a *Arena) steerForce(me int) (fx, fy float64) {
	self := &a.agents[me]
	prey := a.kinds.Beats(self.Kind)
	predator := a.kinds.LosesTo(self.Kind)

	preyIdx, predIdx := -1, -1
	bestPreyD2 := math.Inf(1)
	bestPredD2 := math.Inf(1)
	for i := range a.agents {
		if i == me {
			continue
		}
		u := &a.agents[i]
		d2 := geom.Dist2(self.X, self.Y, u.X, u.Y)
		if u.Kind == prey && d2 < bestPreyD2 {
			bestPreyD2 = d2
			preyIdx = i
		} else if u.Kind == predator && d2 < bestPredD2 {
			bestPredD2 = d2
			predIdx = i
		}
	}

	switch {
	case preyIdx >= 0 && predIdx >= 0:
		if bestPreyD2 <= bestPredD2 {
			dx, dy := geom.Normalize(a.agents[preyIdx].X-self.X, a.agents[preyIdx].Y-self.Y)
			fx += dx * Attraction
			fy += dy * Attraction
		} else {
			dx, dy := geom.Normalize(self.X-a.agents[predIdx].X, self.Y-a.agents[predIdx].Y)
			fx += dx * Repulsion
			fy += dy * Repulsion
		}
	case preyIdx >= 0:
		dx, dy := geom.Normalize(a.agents[preyIdx].X-self.X, a.agents[preyIdx].Y-self.Y)
		fx += dx * Attraction
		fy += dy * Attraction
	case predIdx >= 0:
		dx, dy := geom.Normalize(self.X-a.agents[predIdx].X, self.Y-a.agents[predIdx].Y)
		fx += dx * Repulsion
		fy += dy * Repulsion
	}

	// Mild repel from allies closer than MinSeparation, growing with
	// proximity.
	for i := range a.agents {
		if i == me || a.agents[i].Kind != self.Kind {
			continue
		}
		u := &a.agents[i]
		d2 := geom.Dist2(self.X, self.Y, u.X, u.Y)
		if d2 < MinSeparation*MinSeparation {
			dx, dy := geom.Normalize(self.X-u.X, self.Y-u.Y)
			strength := AllyRepel * (MinSeparation / math.Max(math.Sqrt(d2), 1.0))
			fx += dx * strength
			fy += dy * strength
		}
	}

	fx += uniform(a.rng, -SteerJitter, SteerJitter)
	fy += uniform(a.rng, -SteerJitter, SteerJitter)
	return fx, fy
}

// applyForces adds agent me's steering force to its velocity and caps
// the result at BaseSpeed. Positions are untouched here, so later
// agents in the same phase still steer off the same snapshot.
func (a *Arena) applyForces(me int) {
	fx, fy := a.steerForce(me)
	u := &a.agents[me]
	u.VX += fx
	u.VY += fy
	u.VX, u.VY = geom.CapSpeed(u.VX, u.VY, BaseSpeed)
}
