package symbols

import (
	"fmt"
	"sort"
)

// Kind identifies what kind of Sass symbol a mapping renames.
type Kind string

const (
	KindMixin    Kind = "mixin"
	KindFunction Kind = "function"
	KindVariable Kind = "variable"
)

// Kinds lists every symbol kind in the order migrations apply them.
var Kinds = []Kind{KindMixin, KindFunction, KindVariable}

// ParseKind converts a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMixin, KindFunction, KindVariable:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown symbol kind %q", s)
}

// Mapping maps a legacy Sass symbol name to its replacement in the module API.
// Names never carry the `$` sigil or a namespace.
type Mapping map[string]string

// Clone returns a shallow copy of m. A nil mapping clones to an empty one.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SortedKeys returns the keys of m sorted by descending length, ties broken
// lexicographically. Processing longer names first keeps `$mat-blue` from
// being rewritten inside `$mat-blue-grey`.
func SortedKeys(m Mapping) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortLongestFirst(keys)
	return keys
}

// SortLongestFirst sorts names in place by descending length, then lexicographically.
func SortLongestFirst(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
}

// Set groups the mappings for every symbol kind.
type Set struct {
	Mixins    Mapping `yaml:"mixins,omitempty" json:"mixins,omitempty"`
	Functions Mapping `yaml:"functions,omitempty" json:"functions,omitempty"`
	Variables Mapping `yaml:"variables,omitempty" json:"variables,omitempty"`
}

// Get returns the mapping for the given kind.
func (s Set) Get(kind Kind) Mapping {
	switch kind {
	case KindMixin:
		return s.Mixins
	case KindFunction:
		return s.Functions
	case KindVariable:
		return s.Variables
	}
	return nil
}

// Merge returns a new Set holding s overlaid with other. Entries in other win.
func (s Set) Merge(other Set) Set {
	return Set{
		Mixins:    merge(s.Mixins, other.Mixins),
		Functions: merge(s.Functions, other.Functions),
		Variables: merge(s.Variables, other.Variables),
	}
}

// Len reports the total number of entries across all kinds.
func (s Set) Len() int {
	return len(s.Mixins) + len(s.Functions) + len(s.Variables)
}

func merge(base, overlay Mapping) Mapping {
	out := base.Clone()
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
