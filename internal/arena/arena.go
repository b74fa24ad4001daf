// Package arena implements the simulation engine: a population of
// agents on a bounded plane, steered toward prey and away from
// predators each tick, bouncing off walls and obstacles, and converting
// rivals on contact until one kind remains.
//
// The engine is single-threaded and step-driven. Each Step runs the
// phases in a fixed order: forces for every agent from a positional
// snapshot, then movement, then contact resolution, then the
// fast-forward check. All randomness flows through the one *rand.Rand
// handed to Reset, in a fixed consumption order, so a game's full
// trajectory is a pure function of its seed.
package arena

import (
	"math/rand"
	"time"

	"github.com/nvandessel/rps-arena/internal/obstacle"
	"github.com/nvandessel/rps-arena/internal/species"
)

// MinDelay is the floor for the inter-tick delay, and the value
// fast-forward collapses the delay to.
const MinDelay = time.Millisecond

// Params carries the per-session settings the engine needs. They stay
// fixed across every game of a session; only the seed and the obstacle
// layout change between games.
type Params struct {
	Kinds        *species.Set
	Width        int
	Height       int
	UnitsPerKind int

	// BaseDelay is the inter-tick delay a new game starts with. Values
	// under MinDelay are coerced up to it.
	BaseDelay time.Duration

	// FastForward enables collapsing the delay once only a directly
	// resolvable two-kind matchup remains.
	FastForward bool
}

// Arena is the mutable simulation state for one game at a time. Reset
// rebuilds it for each new game; Step advances it one tick. Not safe
// for concurrent use.
type Arena struct {
	kinds   *species.Set
	width   int
	height  int
	perKind int

	agents []Agent
	field  obstacle.Field
	rng    *rand.Rand
	obs    Observer

	ffEnabled bool
	ffActive  bool
	baseDelay time.Duration
	delay     time.Duration
}

// New builds an engine from params. A nil observer is replaced with
// NopObserver. Reset must be called before the first Step.
func New(p Params, obs Observer) *Arena {
	if obs == nil {
		obs = NopObserver{}
	}
	if p.UnitsPerKind < 1 {
		p.UnitsPerKind = 1
	}
	if p.BaseDelay < MinDelay {
		p.BaseDelay = MinDelay
	}
	return &Arena{
		kinds:     p.Kinds,
		width:     p.Width,
		height:    p.Height,
		perKind:   p.UnitsPerKind,
		obs:       obs,
		ffEnabled: p.FastForward,
		baseDelay: p.BaseDelay,
		delay:     p.BaseDelay,
	}
}

// Reset prepares a new game: restores the base tick delay, clears the
// fast-forward latch, installs the game's obstacle field, and places a
// fresh population drawn from rng. The same rng keeps feeding the
// per-tick jitter afterwards, so callers seed it once per game.
func (a *Arena) Reset(rng *rand.Rand, field obstacle.Field) {
	a.rng = rng
	a.field = field
	a.ffActive = false
	a.delay = a.baseDelay
	a.place()
}

// Step advances the simulation one tick: forces, movement, contact,
// fast-forward, in that order. It reports whether any agent changed
// kind this tick.
func (a *Arena) Step() (converted bool) {
	for i := range a.agents {
		a.applyForces(i)
	}
	for i := range a.agents {
		a.move(i)
	}
	converted = a.resolveContacts()
	a.maybeFastForward()
	return converted
}

// Agents returns a copy of the current population.
func (a *Arena) Agents() []Agent {
	out := make([]Agent, len(a.agents))
	copy(out, a.agents)
	return out
}

// Len returns the population size, which is constant for a whole game.
func (a *Arena) Len() int { return len(a.agents) }

// Field returns the obstacle layout active for the current game.
func (a *Arena) Field() obstacle.Field { return a.field }

// Counts tallies live agents per kind, indexed by species.Kind.
func (a *Arena) Counts() []int {
	counts := make([]int, a.kinds.Len())
	for i := range a.agents {
		counts[a.agents[i].Kind]++
	}
	return counts
}

// Winner returns the surviving kind once exactly one kind remains. The
// second result is false while the game is still contested.
func (a *Arena) Winner() (species.Kind, bool) {
	if len(a.agents) == 0 {
		return 0, false
	}
	first := a.agents[0].Kind
	for i := 1; i < len(a.agents); i++ {
		if a.agents[i].Kind != first {
			return 0, false
		}
	}
	return first, true
}

// Delay returns the current inter-tick delay. Paced drivers read this
// before every timer re-arm so a fast-forward collapse takes effect on
// the next tick.
func (a *Arena) Delay() time.Duration { return a.delay }

// FastForwardActive reports whether the fast-forward latch has fired
// this game.
func (a *Arena) FastForwardActive() bool { return a.ffActive }

// uniform draws from [lo, hi), matching every uniform draw the engine
// makes (placement coordinates, headings, jitter).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
