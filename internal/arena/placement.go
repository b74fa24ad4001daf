package arena

import (
	"math"

	"github.com/nvandessel/rps-arena/internal/geom"
	"github.com/nvandessel/rps-arena/internal/species"
)

// place builds the game's population: exactly perKind agents of every
// kind, shuffled, then positioned in two phases. The constrained phase
// keeps agents out of obstacles and at least MinSeparation apart; any
// agents left over when its attempt budget runs out are placed by the
// fallback phase, which drops the separation rule but still avoids
// obstacles until its own budget runs out.
//
// The rng consumption order is fixed: one shuffle, then per accepted
// agent x, y (with rejected draws consuming x, y too), then angle, then
// speed. Placement is therefore bit-reproducible from the seed.
func (a *Arena) place() {
	kinds := make([]species.Kind, 0, a.kinds.Len()*a.perKind)
	for k := 0; k < a.kinds.Len(); k++ {
		for i := 0; i < a.perKind; i++ {
			kinds = append(kinds, species.Kind(k))
		}
	}
	a.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	a.agents = make([]Agent, 0, len(kinds))

	placed := 0
	attempts := 0
	maxAttempts := len(kinds) * placementAttemptsPerUnit
	for placed < len(kinds) && attempts < maxAttempts {
		attempts++
		x := a.uniformX()
		y := a.uniformY()

		if a.field.PointInAny(x, y, Radius) {
			continue
		}
		tooClose := false
		for i := range a.agents {
			if geom.Dist2(x, y, a.agents[i].X, a.agents[i].Y) < MinSeparation*MinSeparation {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		a.spawn(kinds[placed], x, y)
		placed++
	}

	// Whatever remains is placed without the separation constraint.
	for _, k := range kinds[placed:] {
		var x, y float64
		for tries := 0; tries < fallbackTries; tries++ {
			x = a.uniformX()
			y = a.uniformY()
			if !a.field.PointInAny(x, y, Radius) {
				break
			}
		}
		a.spawn(k, x, y)
	}
}

// spawn appends an agent at (x, y) with a random heading and a random
// speed in [0, BaseSpeed), then announces it to the observer.
func (a *Arena) spawn(k species.Kind, x, y float64) {
	angle := a.rng.Float64() * 2 * math.Pi
	speed := a.rng.Float64() * BaseSpeed
	a.agents = append(a.agents, Agent{
		Kind: k,
		X:    x,
		Y:    y,
		VX:   math.Cos(angle) * speed,
		VY:   math.Sin(angle) * speed,
	})
	a.obs.AgentCreated(len(a.agents)-1, k, x, y)
}

// uniformX draws an x coordinate inside the play bounds, margin kept
// from both edges. uniformY is the same for y.
func (a *Arena) uniformX() float64 {
	return uniform(a.rng, PlacementMargin, float64(a.width)-PlacementMargin)
}

func (a *Arena) uniformY() float64 {
	return uniform(a.rng, PlacementMargin, float64(a.height)-PlacementMargin)
}
