package arena

import (
	"math/rand"
	"testing"

	"github.com/nvandessel/rps-arena/internal/geom"
	"github.com/nvandessel/rps-arena/internal/obstacle"
)

func TestConstrainedPlacementKeepsSeparation(t *testing.T) {
	// Nine agents in an 800x800 arena leave the constrained phase with
	// a huge attempt surplus, so every pair honors MinSeparation.
	a := newTestArena(11, testParams(800, 800, 3))

	agents := a.Agents()
	for i := range agents {
		for j := i + 1; j < len(agents); j++ {
			d2 := geom.Dist2(agents[i].X, agents[i].Y, agents[j].X, agents[j].Y)
			if d2 < MinSeparation*MinSeparation {
				t.Errorf("agents %d and %d placed %v apart, want at least %v",
					i, j, d2, float64(MinSeparation*MinSeparation))
			}
		}
	}
}

func TestPlacementAvoidsSpanningObstacle(t *testing.T) {
	// A block spanning the full play width splits placement into two
	// sub-regions. No agent center may land inside the block inflated
	// by the agent radius.
	field := obstacle.Field{{X1: 0, Y1: 90, X2: 200, Y2: 110}}
	a := New(testParams(200, 200, 2), nil)
	a.Reset(rand.New(rand.NewSource(5)), field)

	for i, u := range a.Agents() {
		if field.PointInAny(u.X, u.Y, Radius) {
			t.Errorf("agent %d placed at (%v, %v), inside the inflated block", i, u.X, u.Y)
		}
	}
}

func TestPlacementFallsBackWhenCrowded(t *testing.T) {
	// 150 agents cannot all keep MinSeparation inside 100x100; the
	// fallback phase must still deliver the full population.
	a := newTestArena(13, testParams(100, 100, 50))

	if got, want := a.Len(), 150; got != want {
		t.Fatalf("Len() = %d, want %d after fallback placement", got, want)
	}
	for k, n := range a.Counts() {
		if n != 50 {
			t.Errorf("kind %d has %d agents, want 50", k, n)
		}
	}
}

func TestPlacementInitialSpeedWithinCap(t *testing.T) {
	a := newTestArena(17, testParams(400, 400, 10))
	for i, u := range a.Agents() {
		if s := u.VX*u.VX + u.VY*u.VY; s > BaseSpeed*BaseSpeed {
			t.Errorf("agent %d starts at squared speed %v, cap is %v", i, s, float64(BaseSpeed*BaseSpeed))
		}
	}
}

func TestPlacementNotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	a := New(testParams(300, 300, 2), obs)
	a.Reset(rand.New(rand.NewSource(1)), nil)

	if len(obs.created) != a.Len() {
		t.Fatalf("observer saw %d creations, want %d", len(obs.created), a.Len())
	}
	for i, id := range obs.created {
		if id != i {
			t.Errorf("creation %d announced id %d, want ids in placement order", i, id)
		}
	}
}
