package obstacle

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name      string
		opt       string
		wantMode  Mode
		wantCount int
	}{
		{name: "zero", opt: "0", wantMode: ModeNone},
		{name: "zero with padding", opt: "00", wantMode: ModeNone},
		{name: "empty", opt: "", wantMode: ModeNone},
		{name: "count", opt: "12", wantMode: ModeRandom, wantCount: 12},
		{name: "count with whitespace", opt: " 7 ", wantMode: ModeRandom, wantCount: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := ParseSource(tt.opt)
			if err != nil {
				t.Fatalf("ParseSource(%q) error = %v", tt.opt, err)
			}
			if src.Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", src.Mode, tt.wantMode)
			}
			if src.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", src.Count, tt.wantCount)
			}
		})
	}
}

func TestParseSourceMissingFile(t *testing.T) {
	// Anything that is not all digits is treated as a path, including
	// a negative number.
	for _, opt := range []string{"nope.yaml", "-3"} {
		if _, err := ParseSource(opt); err == nil {
			t.Errorf("ParseSource(%q) error = nil, want error", opt)
		}
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := writeBlocksFile(t, `
blocks:
  - {top: 100, left: 50, width: 200, height: 40, color: "gray"}
  - {top: 300, left: 300, width: 60, height: 60}
`)
	field, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(field) != 2 {
		t.Fatalf("loaded %d blocks, want 2", len(field))
	}

	want := Rect{X1: 50, Y1: 100, X2: 250, Y2: 140, Color: "gray"}
	if field[0] != want {
		t.Errorf("blocks[0] = %+v, want %+v", field[0], want)
	}
	if field[1].Color != "" {
		t.Errorf("blocks[1].Color = %q, want empty for later defaulting", field[1].Color)
	}
}

func TestLoadFileJSON(t *testing.T) {
	path := writeBlocksFile(t, `{"blocks":[{"top":10,"left":20,"width":30,"height":40}]}`)
	field, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(field) != 1 {
		t.Fatalf("loaded %d blocks, want 1", len(field))
	}
	want := Rect{X1: 20, Y1: 10, X2: 50, Y2: 50}
	if field[0] != want {
		t.Errorf("blocks[0] = %+v, want %+v", field[0], want)
	}
}

func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no blocks key",
			content: `{}`,
			wantErr: "expected a 'blocks' list",
		},
		{
			name:    "missing height",
			content: `blocks: [{top: 1, left: 1, width: 10}]`,
			wantErr: "missing required key \"height\"",
		},
		{
			name:    "zero width",
			content: `blocks: [{top: 1, left: 1, width: 0, height: 10}]`,
			wantErr: "width must be a positive integer",
		},
		{
			name:    "negative top",
			content: `blocks: [{top: -5, left: 1, width: 10, height: 10}]`,
			wantErr: "top must be a positive integer",
		},
		{
			name:    "blocks not a list",
			content: `blocks: 3`,
			wantErr: "parsing blocks file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeBlocksFile(t, tt.content))
			if err == nil {
				t.Fatal("LoadFile() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFileEmptyListIsValid(t *testing.T) {
	field, err := LoadFile(writeBlocksFile(t, `blocks: []`))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(field) != 0 {
		t.Errorf("loaded %d blocks from an empty list", len(field))
	}
}

func TestBuildFileModeIsStableAcrossResets(t *testing.T) {
	path := writeBlocksFile(t, `
blocks:
  - {top: 100, left: 100, width: 50, height: 50}
  - {top: 200, left: 200, width: 80, height: 30, color: "black"}
`)
	src, err := ParseSource(path)
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	// Different rng states must not matter in file mode.
	a := src.Build(rand.New(rand.NewSource(1)), 800, 800, 16, "white")
	b := src.Build(rand.New(rand.NewSource(99)), 800, 800, 16, "white")

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("built %d and %d blocks, want 2 each", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("block %d differs across resets: %+v vs %+v", i, a[i], b[i])
		}
	}
	if a[0].Color != "white" {
		t.Errorf("blocks[0].Color = %q, want the white default", a[0].Color)
	}
	if a[1].Color != "black" {
		t.Errorf("blocks[1].Color = %q, want the file's black", a[1].Color)
	}
}

func TestBuildRandomModeRedrawsPerGame(t *testing.T) {
	src, err := ParseSource("6")
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}

	same1 := src.Build(rand.New(rand.NewSource(5)), 800, 800, 16, "white")
	same2 := src.Build(rand.New(rand.NewSource(5)), 800, 800, 16, "white")
	other := src.Build(rand.New(rand.NewSource(6)), 800, 800, 16, "white")

	if len(same1) != len(same2) {
		t.Fatalf("same seed built %d and %d blocks", len(same1), len(same2))
	}
	for i := range same1 {
		if same1[i] != same2[i] {
			t.Errorf("block %d differs for identical seeds", i)
		}
	}

	diff := len(other) != len(same1)
	for i := 0; !diff && i < len(other); i++ {
		diff = other[i] != same1[i]
	}
	if !diff {
		t.Error("different seeds produced an identical layout")
	}
}

func TestSourceDescribe(t *testing.T) {
	none, _ := ParseSource("0")
	if got := none.Describe(); got != "none" {
		t.Errorf("Describe() = %q, want none", got)
	}
	random, _ := ParseSource("4")
	if got := random.Describe(); got != "random(4)" {
		t.Errorf("Describe() = %q, want random(4)", got)
	}

	path := writeBlocksFile(t, `blocks: [{top: 1, left: 1, width: 10, height: 10}]`)
	file, err := ParseSource(path)
	if err != nil {
		t.Fatalf("ParseSource() error = %v", err)
	}
	if got := file.Describe(); got != "file:"+path {
		t.Errorf("Describe() = %q, want file:%s", got, path)
	}
}

func writeBlocksFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing blocks file: %v", err)
	}
	return path
}
