package obstacle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileBlock mirrors one entry of a blocks file. Pointer fields
// distinguish a missing key from an explicit zero.
type fileBlock struct {
	Top    *int    `yaml:"top"`
	Left   *int    `yaml:"left"`
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Color  *string `yaml:"color"`
}

// blocksFile is the schema of a fixed-layout blocks file:
//
//	blocks:
//	  - {top: 100, left: 100, width: 200, height: 40, color: "gray"}
//
// JSON works too since YAML parses it as a subset.
type blocksFile struct {
	Blocks []fileBlock `yaml:"blocks"`
}

// LoadFile reads and validates a blocks file, returning the canonical
// field in file order. Every block needs positive integer top, left,
// width, and height; color is optional and left empty here so the
// caller can substitute its contrast default per game.
func LoadFile(path string) (Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blocks file: %w", err)
	}

	var bf blocksFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing blocks file %s: %w", path, err)
	}
	if bf.Blocks == nil {
		return nil, fmt.Errorf("blocks file %s: expected a 'blocks' list", path)
	}

	field := make(Field, 0, len(bf.Blocks))
	for i, b := range bf.Blocks {
		if err := checkDim(path, i, "top", b.Top); err != nil {
			return nil, err
		}
		if err := checkDim(path, i, "left", b.Left); err != nil {
			return nil, err
		}
		if err := checkDim(path, i, "width", b.Width); err != nil {
			return nil, err
		}
		if err := checkDim(path, i, "height", b.Height); err != nil {
			return nil, err
		}
		r := Rect{
			X1: float64(*b.Left),
			Y1: float64(*b.Top),
			X2: float64(*b.Left + *b.Width),
			Y2: float64(*b.Top + *b.Height),
		}
		if b.Color != nil {
			r.Color = *b.Color
		}
		field = append(field, r)
	}
	return field, nil
}

func checkDim(path string, i int, name string, v *int) error {
	if v == nil {
		return fmt.Errorf("blocks file %s: blocks[%d] missing required key %q", path, i, name)
	}
	if *v <= 0 {
		return fmt.Errorf("blocks file %s: blocks[%d].%s must be a positive integer", path, i, name)
	}
	return nil
}
