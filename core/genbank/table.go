package genbank

import (
	"fmt"

	"gbkit-core/location"
)

// FeatureTable holds a record's features in file order. Iteration order
// is the order the features appeared in the record; duplicate keys are
// distinguished by occurrence index.
type FeatureTable struct {
	entries []*Feature
}

// Len returns the number of features.
func (t *FeatureTable) Len() int { return len(t.entries) }

// All returns the features in file order.
func (t *FeatureTable) All() []*Feature { return t.entries }

// Get returns the nth (0-based) feature with the given key.
func (t *FeatureTable) Get(key string, occurrence int) (*Feature, bool) {
	n := 0
	for _, f := range t.entries {
		if f.Key != key {
			continue
		}
		if n == occurrence {
			return f, true
		}
		n++
	}
	return nil, false
}

// Location returns the parsed location of the nth feature with the
// given key. The parse is memoized per feature, not per location text,
// so duplicate location strings across distinct features each get their
// own tree.
func (t *FeatureTable) Location(key string, occurrence int) (location.Location, error) {
	f, ok := t.Get(key, occurrence)
	if !ok {
		return nil, fmt.Errorf("genbank: no feature %q (occurrence %d)", key, occurrence)
	}
	return f.Location()
}
