package colorx

import (
	"image"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.RGBA
	}{
		{"named", "red", color.RGBA{0xff, 0x00, 0x00, 0xff}},
		{"named uppercase", "WHITE", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"named with spaces", "  navy  ", color.RGBA{0x00, 0x00, 0x80, 0xff}},
		{"short hex", "#fa0", color.RGBA{0xff, 0xaa, 0x00, 0xff}},
		{"long hex", "#20A0C0", color.RGBA{0x20, 0xa0, 0xc0, 0xff}},
		{"short equals doubled", "#abc", color.RGBA{0xaa, 0xbb, 0xcc, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown name", "notacolor"},
		{"bad hex length", "#ab"},
		{"bad hex digits", "#gggggg"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) should fail", tt.input)
			}
		})
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"white background", "white", "black"},
		{"black background", "black", "white"},
		{"yellow is bright", "yellow", "black"},
		{"navy is dark", "navy", "white"},
		{"bright hex", "#ffeecc", "black"},
		{"dark hex", "#102030", "white"},
		{"unparseable falls back to white", "garbage", "white"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contrast(tt.input); got != tt.want {
				t.Errorf("Contrast(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestContrastOverBoundary(t *testing.T) {
	// Luma of uniform gray 128 is exactly 128, which counts as bright.
	if got := ContrastOver(color.RGBA{128, 128, 128, 255}); got != "black" {
		t.Errorf("ContrastOver(gray 128) = %q, want black", got)
	}
	if got := ContrastOver(color.RGBA{127, 127, 127, 255}); got != "white" {
		t.Errorf("ContrastOver(gray 127) = %q, want white", got)
	}
}

func TestMeanUniform(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{10, 20, 30, 255})
		}
	}

	got := Mean(img)
	want := color.RGBA{10, 20, 30, 255}
	if got != want {
		t.Errorf("Mean(uniform) = %v, want %v", got, want)
	}
}

func TestMeanMixed(t *testing.T) {
	// Half black, half white averages to mid gray.
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 0, 255})
	img.Set(0, 1, color.RGBA{255, 255, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})

	got := Mean(img)
	want := color.RGBA{127, 127, 127, 255}
	if got != want {
		t.Errorf("Mean(half black, half white) = %v, want %v", got, want)
	}
}

func TestMeanEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	got := Mean(img)
	if got != (color.RGBA{A: 0xff}) {
		t.Errorf("Mean(empty) = %v, want opaque black", got)
	}
}
