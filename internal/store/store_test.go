package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbkit/internal/writers"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestAddRecordIdempotent(t *testing.T) {
	st := openTest(t)
	require.NoError(t, st.AddRecord("SYN00001", "SYNPLAS", 120))
	require.NoError(t, st.AddRecord("SYN00001", "SYNPLAS", 120))
}

func TestFeatureRoundTrip(t *testing.T) {
	st := openTest(t)
	require.NoError(t, st.AddRecord("SYN00001", "SYNPLAS", 120))

	rows := []writers.Row{
		{
			Accession: "SYN00001", Key: "gene", Location: "10..45",
			Strand: "+", Start: 10, End: 45, Length: 36,
			Qualifiers: map[string]string{"gene": "demoA"},
		},
		{
			Accession: "SYN00001", Key: "CDS", Location: "join(10..21,30..45)",
			Strand:     "+",
			Qualifiers: map[string]string{"gene": "demoA", "product": "demo protein A"},
		},
	}
	require.NoError(t, st.AddFeature(rows[0], "ACGT"))
	require.NoError(t, st.AddFeature(rows[1], "TTTT"))

	got, err := st.Features("SYN00001")
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Insertion order is preserved.
	assert.Equal(t, "gene", got[0].Key)
	assert.Equal(t, uint(10), got[0].Start)
	assert.Equal(t, "demoA", got[0].Qualifiers["gene"])
	assert.Equal(t, "demo protein A", got[1].Product)

	none, err := st.Features("OTHER")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFeaturesAllAccessions(t *testing.T) {
	st := openTest(t)
	require.NoError(t, st.AddRecord("A1", "A", 10))
	require.NoError(t, st.AddRecord("B1", "B", 10))
	require.NoError(t, st.AddFeature(writers.Row{Accession: "A1", Key: "gene", Location: "1..4", Strand: "+"}, ""))
	require.NoError(t, st.AddFeature(writers.Row{Accession: "B1", Key: "gene", Location: "1..4", Strand: "+"}, ""))

	got, err := st.Features("")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSeqByOccurrence(t *testing.T) {
	st := openTest(t)
	require.NoError(t, st.AddRecord("SYN00001", "SYNPLAS", 120))
	require.NoError(t, st.AddFeature(writers.Row{Accession: "SYN00001", Key: "gene", Location: "1..4", Strand: "+"}, "ACGT"))
	require.NoError(t, st.AddFeature(writers.Row{Accession: "SYN00001", Key: "gene", Location: "5..8", Strand: "+"}, "TGCA"))

	seq, err := st.Seq("SYN00001", "gene", 1)
	require.NoError(t, err)
	assert.Equal(t, "TGCA", seq)

	_, err = st.Seq("SYN00001", "gene", 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no feature "gene" (occurrence 2)`)
}
