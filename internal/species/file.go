package species

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// gameFile is the on-disk shape of a custom game definition.
// YAML is a superset of JSON, so both formats are accepted:
//
//	kinds:
//	  rock:     {label: "R", beats: scissors}
//	  paper:    {label: "P", beats: rock}
//	  scissors: {label: "S", beats: paper}
type gameFile struct {
	Kinds map[string]Spec `yaml:"kinds"`
}

// LoadFile reads a custom game definition and builds its Set.
// Shape errors abort with a descriptive error before any simulation
// state is constructed.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game file: %w", err)
	}

	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing game file %s: %w", path, err)
	}
	if len(file.Kinds) == 0 {
		return nil, fmt.Errorf("game file %s: expected a 'kinds' map with at least 2 entries", path)
	}

	set, err := FromSpecs(file.Kinds)
	if err != nil {
		return nil, fmt.Errorf("game file %s: %w", path, err)
	}
	return set, nil
}
