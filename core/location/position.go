// Package location models GenBank feature-location expressions: a small
// recursive grammar of positions, ranges and compound operators, parsed
// into an immutable tree and resolved against a dna.Sequence.
package location

import "strconv"

// Fuzz classifies how trustworthy a coordinate is.
type Fuzz uint8

const (
	Exact   Fuzz = iota
	Before       // "<n": the true position is at or before n
	After        // ">n": the true position is at or after n
	Unknown      // "?": no usable coordinate
)

func (f Fuzz) String() string {
	switch f {
	case Exact:
		return "exact"
	case Before:
		return "before"
	case After:
		return "after"
	case Unknown:
		return "unknown"
	}
	return "invalid"
}

// Position is one 1-based coordinate on a sequence, possibly fuzzy.
// Positions are created by the parser and never modified afterwards.
type Position struct {
	Coord uint
	Fuzz  Fuzz
}

// Known reports whether the position carries a usable coordinate.
// Before/After markers are informational; only Unknown blocks resolution.
func (p Position) Known() bool { return p.Fuzz != Unknown }

func (p Position) String() string {
	switch p.Fuzz {
	case Before:
		return "<" + strconv.FormatUint(uint64(p.Coord), 10)
	case After:
		return ">" + strconv.FormatUint(uint64(p.Coord), 10)
	case Unknown:
		return "?"
	}
	return strconv.FormatUint(uint64(p.Coord), 10)
}
