// Package species defines the cyclic kind set an arena is played with: the
// finite list of kinds, their display labels, and the total beats/loses-to
// relations that drive pursuit, evasion, and conversion.
//
// Kinds are represented as indexes into a Set so that conversion is a plain
// field write and relation lookups are slice indexing. Kind order is the
// sorted order of the configured names; log headers, count rows, and the
// renderer legend all follow it.
package species

import (
	"fmt"
	"sort"
)

// Kind identifies one entry of a Set by index.
type Kind int

// Spec describes one kind as configured. Label defaults to the kind name,
// Color is cosmetic and only consumed by the renderer.
type Spec struct {
	Label string `yaml:"label"`
	Beats string `yaml:"beats"`
	Color string `yaml:"color"`
}

// Set is an immutable kind set with its beats and loses-to tables.
// The zero value is not usable; construct with Default or FromSpecs.
type Set struct {
	names   []string
	labels  []string
	colors  []string
	beats   []Kind
	losesTo []Kind
}

// Default returns the standard rock/paper/scissors set with emoji labels.
func Default() *Set {
	s, err := FromSpecs(map[string]Spec{
		"rock":     {Label: "\U0001FAA8", Beats: "scissors"},
		"paper":    {Label: "\U0001F4C4", Beats: "rock"},
		"scissors": {Label: "✂️", Beats: "paper"},
	})
	if err != nil {
		// The built-in set is statically valid.
		panic(err)
	}
	return s
}

// FromSpecs builds a Set from configured kind specs, validating shape:
// at least two kinds, every beats target present and distinct from its
// owner, and the beats relation invertible so loses-to can be derived
// (each kind beaten by exactly one kind). Whether the relation forms a
// single cycle is assumed, not enforced.
func FromSpecs(specs map[string]Spec) (*Set, error) {
	if len(specs) < 2 {
		return nil, fmt.Errorf("kind set needs at least 2 kinds, got %d", len(specs))
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		if name == "" {
			return nil, fmt.Errorf("kind name must not be empty")
		}
		names = append(names, name)
	}
	sort.Strings(names)

	index := make(map[string]Kind, len(names))
	for i, name := range names {
		index[name] = Kind(i)
	}

	s := &Set{
		names:   names,
		labels:  make([]string, len(names)),
		colors:  make([]string, len(names)),
		beats:   make([]Kind, len(names)),
		losesTo: make([]Kind, len(names)),
	}

	for i, name := range names {
		spec := specs[name]
		label := spec.Label
		if label == "" {
			label = name
		}
		s.labels[i] = label
		s.colors[i] = spec.Color

		if spec.Beats == "" {
			return nil, fmt.Errorf("kind %q: missing required key 'beats'", name)
		}
		target, ok := index[spec.Beats]
		if !ok {
			return nil, fmt.Errorf("kind %q beats unknown kind %q", name, spec.Beats)
		}
		if target == Kind(i) {
			return nil, fmt.Errorf("kind %q cannot beat itself", name)
		}
		s.beats[i] = target
	}

	// Derive loses-to by inverting beats; the inversion must be total.
	seen := make([]bool, len(names))
	for i := range names {
		target := s.beats[i]
		if seen[target] {
			return nil, fmt.Errorf("kind %q is beaten by more than one kind", names[target])
		}
		seen[target] = true
		s.losesTo[target] = Kind(i)
	}

	return s, nil
}

// Len returns the number of kinds in the set.
func (s *Set) Len() int { return len(s.names) }

// Name returns the canonical name of k.
func (s *Set) Name(k Kind) string { return s.names[k] }

// Label returns the display label of k.
func (s *Set) Label(k Kind) string { return s.labels[k] }

// Color returns the configured cosmetic color of k, or "" for none.
func (s *Set) Color(k Kind) string { return s.colors[k] }

// Beats returns the kind that k converts on contact.
func (s *Set) Beats(k Kind) Kind { return s.beats[k] }

// LosesTo returns the kind that converts k on contact.
func (s *Set) LosesTo(k Kind) Kind { return s.losesTo[k] }

// Index returns the kind with the given name.
func (s *Set) Index(name string) (Kind, bool) {
	for i, n := range s.names {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Names returns the kind names in canonical (sorted) order.
// The returned slice is a copy.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Labels returns the display labels in kind order. The returned slice is a copy.
func (s *Set) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}
