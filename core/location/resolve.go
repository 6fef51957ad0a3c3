package location

import (
	"fmt"

	"gbkit-core/dna"
)

// Resolve evaluates loc against seq and returns the addressed
// subsequence, with strand orientation applied. Unmapped bases under a
// complement pass through unchanged; use ResolveWith for the strict
// policy.
//
// Resolution is a pure function of (loc, seq): no state is kept between
// calls. Failures come back as a *ResolveError wrapping the underlying
// cause (dna.OutOfBoundsError, FuzzyPositionError, ErrRemoteRecord, or
// dna.InvalidBaseError under the strict policy).
func Resolve(loc Location, seq *dna.Sequence) (string, error) {
	return ResolveWith(loc, seq, dna.PassThrough)
}

// ResolveWith is Resolve with an explicit complement policy.
func ResolveWith(loc Location, seq *dna.Sequence, pol dna.Policy) (string, error) {
	s, err := loc.resolve(seq, pol)
	if err != nil {
		if _, ok := err.(*ResolveError); !ok {
			err = &ResolveError{Part: -1, Loc: loc.String(), Err: err}
		}
		return "", err
	}
	return s, nil
}

func (l Single) resolve(seq *dna.Sequence, _ dna.Policy) (string, error) {
	if !l.Pos.Known() {
		return "", &FuzzyPositionError{Pos: l.Pos}
	}
	b, err := seq.At(l.Pos.Coord)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (l Range) resolve(seq *dna.Sequence, _ dna.Policy) (string, error) {
	// Before/After markers keep their numeric bound; only Unknown
	// blocks resolution.
	if !l.Start.Known() {
		return "", &FuzzyPositionError{Pos: l.Start}
	}
	if !l.End.Known() {
		return "", &FuzzyPositionError{Pos: l.End}
	}
	return seq.Slice(l.Start.Coord, l.End.Coord)
}

func (l Between) resolve(seq *dna.Sequence, _ dna.Policy) (string, error) {
	// A between-site sits between two bases and addresses none of them.
	if l.First < 1 || l.First > uint(seq.Len()) {
		return "", &dna.OutOfBoundsError{Start: l.First, End: l.First, Length: seq.Len()}
	}
	return "", nil
}

func (l Remote) resolve(*dna.Sequence, dna.Policy) (string, error) {
	return "", fmt.Errorf("%s: %w", l.Accession, ErrRemoteRecord)
}

func (l Complement) resolve(seq *dna.Sequence, pol dna.Policy) (string, error) {
	s, err := l.Inner.resolve(seq, pol)
	if err != nil {
		return "", err
	}
	return dna.ReverseComplement(s, pol)
}

func (l Join) resolve(seq *dna.Sequence, pol dna.Policy) (string, error) {
	return resolveParts(l, l.Parts, seq, pol)
}

func (l Order) resolve(seq *dna.Sequence, pol dna.Policy) (string, error) {
	return resolveParts(l, l.Parts, seq, pol)
}

// resolveParts concatenates the parts in declared order. The first
// failing part aborts the whole resolution; its index is recorded so a
// caller can tell which segment of the compound broke.
func resolveParts(whole Location, parts []Location, seq *dna.Sequence, pol dna.Policy) (string, error) {
	var b []byte
	for i, part := range parts {
		s, err := part.resolve(seq, pol)
		if err != nil {
			return "", &ResolveError{Part: i, Loc: whole.String(), Err: err}
		}
		b = append(b, s...)
	}
	return string(b), nil
}
