// Package diffutil produces unified diffs of extracted sequences so
// two records' versions of a feature can be compared base-by-base.
package diffutil

import (
	"github.com/pmezard/go-difflib/difflib"
)

// width is the number of bases per compared line; diffing wrapped lines
// keeps hunks readable for long features.
const width = 60

// Unified returns a classic unified diff (---/+++ headers, @@ hunks) of
// the two sequences, wrapped at 60 columns. An empty string means the
// sequences are identical.
func Unified(aName, bName, a, b string, contextLines int) (string, error) {
	if a == b {
		return "", nil
	}
	if contextLines <= 0 {
		contextLines = 3
	}
	u := difflib.UnifiedDiff{
		A:        wrap(a),
		B:        wrap(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  contextLines,
	}
	return difflib.GetUnifiedDiffString(u)
}

func wrap(seq string) []string {
	lines := make([]string, 0, len(seq)/width+1)
	for len(seq) > width {
		lines = append(lines, seq[:width]+"\n")
		seq = seq[width:]
	}
	return append(lines, seq+"\n")
}
