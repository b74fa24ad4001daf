package ui

import (
	"image/color"
	"math"

	"github.com/nvandessel/rps-arena/internal/colorx"
	"github.com/nvandessel/rps-arena/internal/species"
)

// kindColors resolves one fill color per kind: the configured color
// when it parses, otherwise an evenly spaced hue so any number of
// kinds stays distinguishable.
func kindColors(set *species.Set) []color.RGBA {
	out := make([]color.RGBA, set.Len())
	for i := range out {
		spec := set.Color(species.Kind(i))
		if c, err := colorx.Parse(spec); err == nil {
			out[i] = c
			continue
		}
		out[i] = paletteColor(i, set.Len())
	}
	return out
}

// paletteColor returns the i-th of n evenly spaced hues.
func paletteColor(i, n int) color.RGBA {
	h := float64(i) / float64(n) * 360
	r, g, b := hsvToRGB(h, 0.85, 0.85)
	return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 0xff}
}

func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
