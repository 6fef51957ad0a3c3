package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gbkit/internal/version"
)

const demoRecord = `LOCUS       SYNPLAS                 120 bp    DNA     circular SYN 25-AUG-2026
DEFINITION  Synthetic plasmid.
ACCESSION   SYN00001
VERSION     SYN00001.1
KEYWORDS    .
SOURCE      synthetic DNA construct
  ORGANISM  synthetic DNA construct
            other sequences; artificial sequences.
FEATURES             Location/Qualifiers
     gene            10..45
                     /gene="demoA"
     CDS             join(10..21,30..45)
                     /gene="demoA"
                     /product="demo protein A"
     misc_feature    complement(50..70)
                     /note="reverse strand element"
ORIGIN
        1 acgtacgtac gtacgtacgt acgtacgtac gtacgtacgt acgtacgtac gtacgtacgt
       61 tgcatgcatg catgcatgca tgcatgcatg catgcatgca tgcatgcatg catgcatgca
//
`

var demoSeq = strings.Repeat("ACGT", 15) + strings.Repeat("TGCA", 15)

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.gb")
	require.NoError(t, os.WriteFile(path, []byte(demoRecord), 0o644))
	return path
}

func run(t *testing.T, argv ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(context.Background(), append(argv, "--no-color"), &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestVersion(t *testing.T) {
	stdout, _, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "gbkit version "+version.Version+"\n", stdout)
}

func TestExtractFeature(t *testing.T) {
	path := writeFixture(t)
	stdout, stderr, code := run(t, "extract", "-i", path, "--feature", "CDS")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, demoSeq[9:21]+demoSeq[29:45]+"\n", stdout)
}

func TestExtractFeatureFASTA(t *testing.T) {
	path := writeFixture(t)
	stdout, stderr, code := run(t, "extract", "-i", path, "--feature", "gene", "--format", "fasta")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Equal(t, ">SYN00001|gene 10..45", lines[0])
	assert.Equal(t, demoSeq[9:45], strings.Join(lines[1:], ""))
}

func TestExtractLiteralLocation(t *testing.T) {
	path := writeFixture(t)
	stdout, stderr, code := run(t, "extract", "-i", path, "--location", "complement(1..4)")
	require.Equal(t, 0, code, stderr)
	// ACGT is its own reverse complement.
	assert.Equal(t, "ACGT\n", stdout)
}

func TestExtractFeatureXorLocation(t *testing.T) {
	path := writeFixture(t)

	_, stderr, code := run(t, "extract", "-i", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "exactly one of --feature or --location")

	_, _, code = run(t, "extract", "-i", path, "--feature", "CDS", "--location", "1..4")
	assert.Equal(t, 2, code)
}

func TestExtractBadLocationFails(t *testing.T) {
	path := writeFixture(t)
	_, stderr, code := run(t, "extract", "-i", path, "--location", "join(1..2,5..600)")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "gbkit:")
}

func TestFeaturesTSV(t *testing.T) {
	path := writeFixture(t)
	stdout, stderr, code := run(t, "features", "-i", path)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "accession\tkey"))
	assert.Contains(t, lines[2], "join(10..21,30..45)")
}

func TestFeaturesKeyFilter(t *testing.T) {
	path := writeFixture(t)
	stdout, _, code := run(t, "features", "-i", path, "--key", "gene", "--format", "jsonl")
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"key":"gene"`)
}

func TestMeta(t *testing.T) {
	path := writeFixture(t)
	stdout, _, code := run(t, "meta", "-i", path)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "SYNPLAS")
	assert.Contains(t, stdout, "120 bp")
	assert.Contains(t, stdout, "circular")
}

func TestIntrons(t *testing.T) {
	path := writeFixture(t)
	stdout, stderr, code := run(t, "introns", "-i", path, "--feature", "CDS")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "1..9\n22..29\n46..120\n", stdout)
}

func TestIntronsRejectsSimpleLocation(t *testing.T) {
	path := writeFixture(t)
	_, stderr, code := run(t, "introns", "-i", path, "--feature", "gene")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "is not a join")
}

func TestDiffIdentical(t *testing.T) {
	path := writeFixture(t)
	stdout, _, code := run(t, "diff", "-i", path, "--against", path, "--feature", "CDS")
	require.Equal(t, 0, code)
	assert.Equal(t, "identical\n", stdout)
}

func TestDiffMutation(t *testing.T) {
	path := writeFixture(t)
	mutated := filepath.Join(t.TempDir(), "mut.gb")
	// Flip one base inside the CDS's first exon (position 12, row one).
	text := strings.Replace(demoRecord, "acgtacgtac gt", "acgtacgtac gg", 1)
	require.NoError(t, os.WriteFile(mutated, []byte(text), 0o644))

	stdout, stderr, code := run(t, "diff", "-i", path, "--against", mutated, "--feature", "CDS")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "--- SYN00001:CDS")
	assert.Contains(t, stdout, "@@")
}

func TestIndexAndList(t *testing.T) {
	path := writeFixture(t)
	db := filepath.Join(t.TempDir(), "features.db")

	stdout, stderr, code := run(t, "index", "-d", db, path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "indexed "+path)

	stdout, stderr, code = run(t, "index", "-d", db, "--list", "SYN00001")
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[3], "complement(50..70)")
}

func TestIndexNothingToDo(t *testing.T) {
	_, stderr, code := run(t, "index")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "nothing to do")
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	_, _, code := run(t, "version", "--bogus")
	assert.Equal(t, 2, code)
}

func TestMissingInputFileFails(t *testing.T) {
	_, _, code := run(t, "meta", "-i", filepath.Join(t.TempDir(), "absent.gb"))
	assert.Equal(t, 1, code)
}
