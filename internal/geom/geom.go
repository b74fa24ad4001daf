// Package geom provides the small set of 2D primitives the arena engine
// needs: squared distance, normalization, and speed capping. Positions and
// velocities are kept as plain float64 pairs throughout the engine, so the
// helpers here operate on scalars rather than a vector type.
package geom

import "math"

// Dist2 returns the squared Euclidean distance between (x1,y1) and (x2,y2).
// Callers compare against squared thresholds to avoid the sqrt.
func Dist2(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// Normalize returns the unit vector in the direction of (dx,dy).
// The zero vector normalizes to (0,0).
func Normalize(dx, dy float64) (float64, float64) {
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return 0, 0
	}
	return dx / mag, dy / mag
}

// CapSpeed scales (vx,vy) down so its magnitude does not exceed cap.
// Direction is preserved; vectors at or under the cap are returned unchanged,
// and a vector is never scaled up.
func CapSpeed(vx, vy, cap float64) (float64, float64) {
	s := math.Hypot(vx, vy)
	if s > cap && s > 0 {
		scale := cap / s
		return vx * scale, vy * scale
	}
	return vx, vy
}
