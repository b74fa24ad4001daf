package arena

import "github.com/nvandessel/rps-arena/internal/species"

// Agent is one simulated unit. Position and velocity are mutated in
// place by the force and motion phases; Kind is mutated in place by the
// contact phase. Agents are created at game reset and never removed
// mid-game, so an agent's index in the arena is a stable identity for
// the whole game.
type Agent struct {
	Kind species.Kind
	X, Y float64
	VX   float64
	VY   float64
}
