// Package colorx resolves the color strings accepted on the command
// line and in blocks files, and picks readable overlay colors for text
// drawn over arbitrary backgrounds.
package colorx

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Parse resolves a color name (the SVG 1.1 set) or a #RGB/#RRGGBB hex
// value. Names are case-insensitive.
func Parse(s string) (color.RGBA, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(c, "#") {
		return parseHex(c)
	}
	if rgba, ok := colornames.Map[c]; ok {
		return rgba, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(s string) (color.RGBA, error) {
	digits := s[1:]
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	switch len(digits) {
	case 3:
		// Each digit doubles: #fa0 means #ffaa00.
		r := uint8(v >> 8 & 0xf)
		g := uint8(v >> 4 & 0xf)
		b := uint8(v & 0xf)
		return color.RGBA{r * 17, g * 17, b * 17, 0xff}, nil
	case 6:
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
}

// ContrastOver returns "black" or "white", whichever reads better over
// c, using the Rec. 601 luma weights.
func ContrastOver(c color.Color) string {
	r, g, b, _ := c.RGBA()
	luma := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
	if luma >= 128 {
		return "black"
	}
	return "white"
}

// Contrast parses s and returns the readable overlay color name over
// it. Unparseable backgrounds fall back to "white".
func Contrast(s string) string {
	c, err := Parse(s)
	if err != nil {
		return "white"
	}
	return ContrastOver(c)
}

// Mean returns the average color of img. The windowed renderer uses it
// to pick overlay colors against background images.
func Mean(img image.Image) color.RGBA {
	bounds := img.Bounds()
	var rSum, gSum, bSum, n uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{uint8(rSum / n), uint8(gSum / n), uint8(bSum / n), 0xff}
}
