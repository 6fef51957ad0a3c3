// Package dna holds the in-memory nucleotide sequence and its
// complement tables. Coordinates follow the GenBank convention:
// 1-based and inclusive on both ends.
package dna

import "fmt"

// Sequence is a flat, read-only nucleotide string. The zero value is an
// empty sequence.
type Sequence struct {
	bases string
}

// New wraps an already-unwrapped origin string (no whitespace, no line
// numbering) in a Sequence.
func New(bases string) *Sequence {
	return &Sequence{bases: bases}
}

// Len returns the number of bases.
func (s *Sequence) Len() int { return len(s.bases) }

// String returns the full sequence.
func (s *Sequence) String() string { return s.bases }

// OutOfBoundsError reports a slice request outside the sequence, or with
// start past end. Bounds are never clamped.
type OutOfBoundsError struct {
	Start, End uint
	Length     int
}

func (e *OutOfBoundsError) Error() string {
	if e.Start > e.End {
		return fmt.Sprintf("dna: inverted slice %d..%d", e.Start, e.End)
	}
	return fmt.Sprintf("dna: slice %d..%d outside sequence of length %d", e.Start, e.End, e.Length)
}

// At returns the base at pos (1-based).
func (s *Sequence) At(pos uint) (byte, error) {
	if pos < 1 || pos > uint(len(s.bases)) {
		return 0, &OutOfBoundsError{Start: pos, End: pos, Length: len(s.bases)}
	}
	return s.bases[pos-1], nil
}

// Slice returns the inclusive range [start, end]. It requires
// 1 <= start <= end <= Len().
func (s *Sequence) Slice(start, end uint) (string, error) {
	if start < 1 || end > uint(len(s.bases)) || start > end {
		return "", &OutOfBoundsError{Start: start, End: end, Length: len(s.bases)}
	}
	return s.bases[start-1 : end], nil
}
