package genbank

import (
	"io"
	"os"

	"gbkit-core/dna"
)

// Record is one fully parsed GenBank entry.
type Record struct {
	Metadata Metadata
	Features *FeatureTable
	Sequence *dna.Sequence
}

// Parse reads a single record from r, in section order: metadata,
// feature table, origin.
func Parse(r io.Reader) (*Record, error) {
	rd := newReader(r)

	meta, err := parseMetadata(rd)
	if err != nil {
		return nil, err
	}
	features, err := parseFeatures(rd)
	if err != nil {
		return nil, err
	}
	seq, err := parseOrigin(rd)
	if err != nil {
		return nil, err
	}
	if rd.err != nil {
		return nil, rd.err
	}
	return &Record{Metadata: meta, Features: features, Sequence: seq}, nil
}

// ParseFile reads a single record from the named file.
func ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
