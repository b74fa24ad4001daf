package arena

import "github.com/nvandessel/rps-arena/internal/geom"

// resolveContacts scans every unordered agent pair in store order and
// applies the conversion rule to pairs of rival kinds within
// ContactRadius: the beaten agent takes the winner's kind on the spot.
// Kinds not in a beats relationship pass through each other untouched.
//
// Mutations land immediately during the scan, so a conversion early in
// the enumeration is visible to later pairs of the same tick and
// conversions can cascade through a cluster in one pass. That order
// dependence is intended; it matches the in-place store model.
func (a *Arena) resolveContacts() bool {
	const r2 = ContactRadius * ContactRadius
	converted := false
	for i := 0; i < len(a.agents); i++ {
		for j := i + 1; j < len(a.agents); j++ {
			ai, aj := &a.agents[i], &a.agents[j]
			if ai.Kind == aj.Kind {
				continue
			}
			if geom.Dist2(ai.X, ai.Y, aj.X, aj.Y) > r2 {
				continue
			}
			if a.kinds.Beats(ai.Kind) == aj.Kind {
				aj.Kind = ai.Kind
				a.obs.AgentConverted(j, aj.Kind)
				converted = true
			} else if a.kinds.Beats(aj.Kind) == ai.Kind {
				ai.Kind = aj.Kind
				a.obs.AgentConverted(i, ai.Kind)
				converted = true
			}
		}
	}
	return converted
}
