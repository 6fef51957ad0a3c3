package location

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbkit-core/dna"
)

func mustParse(t *testing.T, raw string) Location {
	t.Helper()
	loc, err := Parse(raw)
	require.NoError(t, err, "parse %q", raw)
	return loc
}

func TestResolveSingle(t *testing.T) {
	seq := dna.New("ACGTACGT")
	got, err := Resolve(mustParse(t, "5"), seq)
	require.NoError(t, err)
	assert.Equal(t, "A", got)
}

func TestResolveRange(t *testing.T) {
	seq := dna.New("ACGTACGT")
	got, err := Resolve(mustParse(t, "2..4"), seq)
	require.NoError(t, err)
	assert.Equal(t, "CGT", got)
}

func TestResolveRangeLength(t *testing.T) {
	seq := dna.New("ACGTACGTACGTACGTACGT")
	for _, raw := range []string{"1..1", "3..7", "1..20", "<2..>9"} {
		loc := mustParse(t, raw)
		got, err := Resolve(loc, seq)
		require.NoError(t, err, "resolve %q", raw)
		r := loc.(Range)
		assert.Equal(t, int(r.End.Coord-r.Start.Coord+1), len(got), "length of %q", raw)
	}
}

func TestResolveComplement(t *testing.T) {
	got, err := Resolve(mustParse(t, "complement(1..4)"), dna.New("AAGT"))
	require.NoError(t, err)
	assert.Equal(t, "ACTT", got)

	// Self-complementary input maps to itself.
	got, err = Resolve(mustParse(t, "complement(1..4)"), dna.New("ACGT"))
	require.NoError(t, err)
	assert.Equal(t, "ACGT", got)
}

func TestResolveComplementTwiceRestores(t *testing.T) {
	seq := dna.New("ACGTACGTAC")
	inner := mustParse(t, "2..9")
	plain, err := Resolve(inner, seq)
	require.NoError(t, err)

	once, err := Resolve(Complement{Inner: inner}, seq)
	require.NoError(t, err)
	assert.Len(t, once, len(plain))

	twice, err := dna.ReverseComplement(once, dna.PassThrough)
	require.NoError(t, err)
	assert.Equal(t, plain, twice)
}

func TestResolveJoin(t *testing.T) {
	seq := dna.New("ACGTACGT")
	got, err := Resolve(mustParse(t, "join(1..2,5..6)"), seq)
	require.NoError(t, err)
	assert.Equal(t, "ACAC", got)
}

func TestResolveJoinConcatenatesDeclaredOrder(t *testing.T) {
	seq := dna.New("ACGTACGT")
	a := mustParse(t, "5..6")
	b := mustParse(t, "1..2")

	ra, err := Resolve(a, seq)
	require.NoError(t, err)
	rb, err := Resolve(b, seq)
	require.NoError(t, err)

	// Non-monotonic join order is preserved, never coordinate-sorted.
	got, err := Resolve(Join{Parts: []Location{a, b}}, seq)
	require.NoError(t, err)
	assert.Equal(t, ra+rb, got)
}

func TestResolveJoinWithComplementPart(t *testing.T) {
	got, err := Resolve(mustParse(t, "join(1..2,complement(5..6))"), dna.New("ACGTAAGT"))
	require.NoError(t, err)
	assert.Equal(t, "ACTT", got)
}

func TestResolveOrder(t *testing.T) {
	got, err := Resolve(mustParse(t, "order(1..2,5..6)"), dna.New("ACGTACGT"))
	require.NoError(t, err)
	assert.Equal(t, "ACAC", got)
}

func TestResolveBetween(t *testing.T) {
	got, err := Resolve(mustParse(t, "3^4"), dna.New("ACGTACGT"))
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = Resolve(mustParse(t, "30^31"), dna.New("ACGTACGT"))
	var oob *dna.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
}

func TestResolveOutOfBounds(t *testing.T) {
	seq := dna.New("ACGTACGTAC") // length 10
	_, err := Resolve(mustParse(t, "1..100"), seq)

	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	var oob *dna.OutOfBoundsError
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, uint(100), oob.End)
	assert.Equal(t, 10, oob.Length)
}

func TestResolveFuzzyUnknown(t *testing.T) {
	seq := dna.New("ACGTACGT")
	for _, raw := range []string{"?", "?..5", "2..?"} {
		_, err := Resolve(mustParse(t, raw), seq)
		var fuzzy *FuzzyPositionError
		require.ErrorAs(t, err, &fuzzy, "input %q", raw)
	}
}

func TestResolveFuzzyMarkersStillResolve(t *testing.T) {
	// Before/After keep their numeric bound; only Unknown blocks.
	got, err := Resolve(mustParse(t, "<2..>4"), dna.New("ACGTACGT"))
	require.NoError(t, err)
	assert.Equal(t, "CGT", got)
}

func TestResolveJoinReportsFailingPart(t *testing.T) {
	seq := dna.New("ACGTACGT") // length 8
	_, err := Resolve(mustParse(t, "join(1..2,5..600,7..8)"), seq)

	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 1, rerr.Part)
	var oob *dna.OutOfBoundsError
	assert.True(t, errors.As(err, &oob))
}

func TestResolveRemoteFails(t *testing.T) {
	_, err := Resolve(mustParse(t, "J00194:1..4"), dna.New("ACGTACGT"))
	require.ErrorIs(t, err, ErrRemoteRecord)
	assert.Contains(t, err.Error(), "J00194")
}

func TestResolveStrictPolicy(t *testing.T) {
	seq := dna.New("AC-T")
	loc := mustParse(t, "complement(1..4)")

	got, err := ResolveWith(loc, seq, dna.PassThrough)
	require.NoError(t, err)
	assert.Equal(t, "A-GT", got)

	_, err = ResolveWith(loc, seq, dna.Strict)
	var bad *dna.InvalidBaseError
	require.ErrorAs(t, err, &bad)
}

func TestJoinIntrons(t *testing.T) {
	j := mustParse(t, "join(10..21,30..45)").(Join)
	introns, err := j.Introns(120)
	require.NoError(t, err)
	require.Len(t, introns, 3)
	assert.Equal(t, "1..9", introns[0].String())
	assert.Equal(t, "22..29", introns[1].String())
	assert.Equal(t, "46..120", introns[2].String())
}

func TestJoinIntronsFlushEnds(t *testing.T) {
	j := mustParse(t, "join(1..5,9..20)").(Join)
	introns, err := j.Introns(20)
	require.NoError(t, err)
	require.Len(t, introns, 1)
	assert.Equal(t, "6..8", introns[0].String())
}
