// Package obstacle models the static axis-aligned blocks that deflect
// agents inside the arena. Blocks enter a game three ways: none at all,
// randomly generated each reset, or loaded once from a blocks file and
// re-applied identically every reset.
package obstacle

// Rect is one block in play-area coordinates, with X1 <= X2 and
// Y1 <= Y2. Color is cosmetic and only consulted by the renderer.
type Rect struct {
	X1, Y1, X2, Y2 float64
	Color          string
}

// contains reports whether (x, y) lies inside the rectangle expanded
// symmetrically by margin on every side. Edges count as inside.
func (r Rect) contains(x, y, margin float64) bool {
	return r.X1-margin <= x && x <= r.X2+margin &&
		r.Y1-margin <= y && y <= r.Y2+margin
}

// Field is the set of blocks active for one game. Queries scan the
// slice in order and the first match wins. That ordering is load-bearing:
// which block claims an overlapping point decides which face an agent
// bounces off, so it must stay stable across resets of a fixed layout.
type Field []Rect

// PointInAny reports whether (x, y) falls inside any block expanded by
// margin.
func (f Field) PointInAny(x, y, margin float64) bool {
	for _, r := range f {
		if r.contains(x, y, margin) {
			return true
		}
	}
	return false
}

// FirstColliding returns the first block containing (x, y) with margin.
// The second result is false when the point is clear of every block.
func (f Field) FirstColliding(x, y, margin float64) (Rect, bool) {
	for _, r := range f {
		if r.contains(x, y, margin) {
			return r, true
		}
	}
	return Rect{}, false
}
