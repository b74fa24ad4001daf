package obstacle

import "math/rand"

// Size limits for randomly generated blocks, as fractions of the play
// area dimensions.
const (
	minSideFrac = 0.08 // smallest block side, per axis
	maxSideFrac = 0.40 // largest block side, per axis
	maxAreaFrac = 0.20 // per-block area cap relative to the play area
	minBlockDim = 4    // blocks thinner than this in either axis are rejected
)

// Generate draws up to count random blocks inside a width x height play
// area, keeping every block at least margin units away from the edges.
// Block sides are drawn uniformly from [0.08, 0.40] of the matching
// play-area dimension. A block whose area would exceed 20% of the play
// area has its height shrunk to fit, and is discarded when the shrunken
// height falls below the minimum side.
//
// At most count*30 attempts are made; coming up short is a valid
// outcome, not an error, so the returned field may hold fewer than
// count blocks. All randomness comes from rng in a fixed order (width,
// height, then x, y per attempt) so a seeded run reproduces the same
// layout.
func Generate(rng *rand.Rand, count, width, height, margin int, color string) Field {
	var field Field
	if count <= 0 {
		return field
	}

	maxArea := maxAreaFrac * float64(width*height)
	minW, maxW := int(minSideFrac*float64(width)), int(maxSideFrac*float64(width))
	minH, maxH := int(minSideFrac*float64(height)), int(maxSideFrac*float64(height))

	attempts := 0
	for len(field) < count && attempts < count*30 {
		attempts++
		w := randInt(rng, minW, maxW)
		h := randInt(rng, minH, maxH)
		if float64(w*h) > maxArea {
			h = int(maxArea / float64(max(w, 1)))
			if h < minH {
				continue
			}
		}
		x1 := randInt(rng, margin, max(margin, width-w-margin))
		y1 := randInt(rng, margin, max(margin, height-h-margin))
		if w < minBlockDim || h < minBlockDim {
			continue
		}
		field = append(field, Rect{
			X1: float64(x1), Y1: float64(y1),
			X2: float64(x1 + w), Y2: float64(y1 + h),
			Color: color,
		})
	}
	return field
}

// randInt draws uniformly from the inclusive range [lo, hi]. A
// degenerate range collapses to lo.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
