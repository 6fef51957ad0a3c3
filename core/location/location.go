package location

import (
	"strconv"
	"strings"

	"gbkit-core/dna"
)

// Location is one node of a parsed feature-location expression. The set
// of implementations is closed: Single, Range, Between, Remote,
// Complement, Join and Order. Every variant supports exactly one
// evaluation, via Resolve, which is what makes compounds composable.
//
// Trees are immutable after parsing, so any number of resolutions may
// run concurrently over the same tree and sequence.
type Location interface {
	// String re-serializes the node in GenBank notation.
	String() string

	// resolve keeps the variant set closed to this package.
	resolve(seq *dna.Sequence, pol dna.Policy) (string, error)
}

// Single addresses one base.
type Single struct {
	Pos Position
}

func (l Single) String() string { return l.Pos.String() }

// Range addresses the inclusive span Start..End. For exact positions
// Start.Coord <= End.Coord holds; the parser rejects inverted ranges
// instead of swapping them.
type Range struct {
	Start, End Position
}

func (l Range) String() string { return l.Start.String() + ".." + l.End.String() }

// Between addresses the site between two adjacent bases (First^Second),
// e.g. an endonucleolytic cut site. Second is either First+1 or, for the
// origin of a circular molecule, 1.
type Between struct {
	First, Second uint
}

// Circular reports whether the site is the origin of a circular molecule.
func (l Between) Circular() bool { return l.Second == 1 }

func (l Between) String() string {
	return uitoa(l.First) + "^" + uitoa(l.Second)
}

// Remote qualifies an inner location with the accession of another
// record (accession:location).
type Remote struct {
	Accession string
	Inner     Location
}

func (l Remote) String() string { return l.Accession + ":" + l.Inner.String() }

// Complement marks the reverse strand: the inner location is resolved
// first and the result reverse-complemented.
type Complement struct {
	Inner Location
}

func (l Complement) String() string { return "complement(" + l.Inner.String() + ")" }

// Join is the ordered 5'→3' assembly of its parts. The order is
// semantically significant (it may be non-monotonic, e.g. trans-splicing)
// and is never re-sorted.
type Join struct {
	Parts []Location
}

func (l Join) String() string { return compoundString("join", l.Parts) }

// Order is the order(...) compound: parts that belong together without a
// claim about how they join. Resolution concatenates them exactly like
// Join.
type Order struct {
	Parts []Location
}

func (l Order) String() string { return compoundString("order", l.Parts) }

func compoundString(op string, parts []Location) string {
	var b strings.Builder
	b.WriteString(op)
	b.WriteByte('(')
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	b.WriteByte(')')
	return b.String()
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

// Span returns the outermost coordinates covered by loc. It reports
// ok=false when a span is not defined: fuzzy Unknown bounds, remote
// references, or nested compounds.
func Span(loc Location) (start, end uint, ok bool) {
	switch l := loc.(type) {
	case Single:
		if !l.Pos.Known() {
			return 0, 0, false
		}
		return l.Pos.Coord, l.Pos.Coord, true
	case Range:
		if !l.Start.Known() || !l.End.Known() {
			return 0, 0, false
		}
		return l.Start.Coord, l.End.Coord, true
	case Between:
		return l.First, l.Second, true
	case Complement:
		return Span(l.Inner)
	}
	return 0, 0, false
}

// Introns returns the ranges of seqLen not covered by the joined parts,
// in template order. It assumes the parts are monotonic exons on the
// forward strand, which is how intron lookups are used; parts without a
// defined span make the computation impossible.
func (l Join) Introns(seqLen uint) ([]Range, error) {
	if seqLen < 1 {
		return nil, &ResolveError{Part: -1, Loc: l.String(), Err: errEmptySequence}
	}
	var introns []Range
	next := uint(1)
	for i, part := range l.Parts {
		start, end, ok := Span(part)
		if !ok {
			return nil, &ResolveError{Part: i, Loc: l.String(), Err: errNoSpan}
		}
		if start > next {
			introns = append(introns, exactRange(next, start-1))
		}
		next = end + 1
	}
	if seqLen >= next {
		introns = append(introns, exactRange(next, seqLen))
	}
	return introns, nil
}

func exactRange(start, end uint) Range {
	return Range{Start: Position{Coord: start}, End: Position{Coord: end}}
}
