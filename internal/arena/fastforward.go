package arena

import "github.com/nvandessel/rps-arena/internal/species"

// maybeFastForward collapses the tick delay to MinDelay once exactly
// two kinds remain and one beats the other, since such a matchup can
// only end one way and pacing it out wastes wall-clock time. The latch
// is one way: once active it holds until the next Reset, and the delay
// only ever shrinks mid-game. A game already running at MinDelay has
// nothing to collapse, so the latch stays unset there.
func (a *Arena) maybeFastForward() {
	if !a.ffEnabled || a.ffActive {
		return
	}
	present := a.presentKinds()
	if len(present) != 2 {
		return
	}
	x, y := present[0], present[1]
	if a.kinds.Beats(x) == y || a.kinds.Beats(y) == x {
		if a.delay > MinDelay {
			a.delay = MinDelay
			a.ffActive = true
		}
	}
}

// presentKinds lists the distinct kinds alive, in kind order.
func (a *Arena) presentKinds() []species.Kind {
	seen := make([]bool, a.kinds.Len())
	for i := range a.agents {
		seen[a.agents[i].Kind] = true
	}
	var present []species.Kind
	for k, ok := range seen {
		if ok {
			present = append(present, species.Kind(k))
		}
	}
	return present
}
