package obstacle

import (
	"math/rand"
	"testing"
)

func TestGenerateRespectsBounds(t *testing.T) {
	const (
		width  = 800
		height = 800
		margin = 16
		count  = 10
	)
	rng := rand.New(rand.NewSource(42))
	field := Generate(rng, count, width, height, margin, "white")

	// Every candidate passes every filter in a roomy arena, so the
	// requested count is met exactly.
	if len(field) != count {
		t.Fatalf("generated %d blocks, want %d", len(field), count)
	}

	minSide := float64(int(minSideFrac * width))
	maxSide := float64(int(maxSideFrac * width))
	maxArea := maxAreaFrac * float64(width*height)
	for i, r := range field {
		w, h := r.X2-r.X1, r.Y2-r.Y1
		if r.X1 < margin || r.Y1 < margin || r.X2 > width-margin || r.Y2 > height-margin {
			t.Errorf("block %d = %+v extends past the edge margin", i, r)
		}
		if w < minSide || w > maxSide || h < minSide || h > maxSide {
			t.Errorf("block %d has sides %vx%v, want within [%v, %v]", i, w, h, minSide, maxSide)
		}
		if w*h > maxArea {
			t.Errorf("block %d area %v exceeds cap %v", i, w*h, maxArea)
		}
		if r.Color != "white" {
			t.Errorf("block %d color = %q, want white", i, r.Color)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)), 8, 800, 600, 16, "gray")
	b := Generate(rand.New(rand.NewSource(7)), 8, 800, 600, 16, "gray")

	if len(a) != len(b) {
		t.Fatalf("runs with the same seed produced %d and %d blocks", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("block %d differs between seeded runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateZeroCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if field := Generate(rng, 0, 800, 800, 16, "white"); len(field) != 0 {
		t.Errorf("Generate with count 0 returned %d blocks", len(field))
	}
	if field := Generate(rng, -3, 800, 800, 16, "white"); len(field) != 0 {
		t.Errorf("Generate with negative count returned %d blocks", len(field))
	}
}

func TestGenerateAcceptsShortfall(t *testing.T) {
	// In a 9x9 arena the largest possible side is 3, below the minimum
	// block dimension, so every candidate is rejected. The attempt cap
	// must terminate generation and hand back an empty field rather
	// than loop or error.
	rng := rand.New(rand.NewSource(3))
	field := Generate(rng, 50, 9, 9, 16, "white")
	if len(field) != 0 {
		t.Fatalf("generated %d blocks in an arena too small for any", len(field))
	}
}

func TestRandInt(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 1000; i++ {
		got := randInt(rng, 3, 5)
		if got < 3 || got > 5 {
			t.Fatalf("randInt(3, 5) = %d, want within [3, 5]", got)
		}
	}
	if got := randInt(rng, 9, 9); got != 9 {
		t.Errorf("randInt(9, 9) = %d, want 9", got)
	}
	// Inverted range collapses to lo, mirroring the edge-margin clamp.
	if got := randInt(rng, 10, 2); got != 10 {
		t.Errorf("randInt(10, 2) = %d, want 10", got)
	}
}
