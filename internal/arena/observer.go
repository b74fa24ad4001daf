package arena

import "github.com/nvandessel/rps-arena/internal/species"

// Observer receives simulation state changes as they happen. It exists
// for renderers: the arena pushes creation, movement, and conversion
// events so a display can mirror the agent set without polling. All
// calls are synchronous from the simulation goroutine and must never
// mutate simulation state.
type Observer interface {
	// AgentCreated fires once per agent during placement.
	AgentCreated(id int, kind species.Kind, x, y float64)

	// AgentMoved fires after an agent's position is committed each tick.
	AgentMoved(id int, x, y float64)

	// AgentConverted fires when contact changes an agent's kind.
	AgentConverted(id int, kind species.Kind)
}

// NopObserver ignores every event. It stands in whenever no renderer is
// attached, such as headless runs and tests.
type NopObserver struct{}

func (NopObserver) AgentCreated(int, species.Kind, float64, float64) {}
func (NopObserver) AgentMoved(int, float64, float64)                 {}
func (NopObserver) AgentConverted(int, species.Kind)                 {}
