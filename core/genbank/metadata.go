package genbank

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Metadata is the header section of a record, LOCUS through COMMENT.
type Metadata struct {
	LocusName    string
	Length       int
	MoleculeType string
	Topology     string // linear/circular; empty when the LOCUS line omits it
	Division     string
	Updated      string // modification date, as written
	Definition   string
	Accession    string
	Version      string
	Keywords     string
	Source       string
	Organism     string
	References   []Reference
}

// Reference is one REFERENCE block.
type Reference struct {
	Reference string // e.g. "1  (bases 1 to 120)"
	Authors   string
	Title     string
	Journal   string
	PubMed    string
}

func parseMetadata(rd *reader) (Metadata, error) {
	var m Metadata

	locus, ok := rd.keyword("LOCUS")
	if !ok {
		return m, errors.New("genbank: missing LOCUS line")
	}
	if err := parseLocus(locus, &m); err != nil {
		return m, err
	}

	if m.Definition, ok = rd.multiline("DEFINITION", " "); !ok {
		return m, errors.New("genbank: missing DEFINITION")
	}
	if m.Accession, ok = rd.keyword("ACCESSION"); !ok {
		return m, errors.New("genbank: missing ACCESSION")
	}
	if m.Version, ok = rd.keyword("VERSION"); !ok {
		return m, errors.New("genbank: missing VERSION")
	}
	rd.multiline("DBLINK", " ") // present in newer records, not kept
	if m.Keywords, ok = rd.multiline("KEYWORDS", " "); !ok {
		return m, errors.New("genbank: missing KEYWORDS")
	}
	if m.Source, ok = rd.keyword("SOURCE"); !ok {
		return m, errors.New("genbank: missing SOURCE")
	}
	if m.Organism, ok = rd.multiline("ORGANISM", "\n"); !ok {
		return m, errors.New("genbank: missing ORGANISM")
	}

	for {
		ref, ok := rd.multiline("REFERENCE", " ")
		if !ok {
			break
		}
		r := Reference{Reference: ref}
		if r.Authors, ok = rd.multiline("AUTHORS", " "); !ok {
			return m, errors.New("genbank: reference missing AUTHORS")
		}
		if r.Title, ok = rd.multiline("TITLE", " "); !ok {
			return m, errors.New("genbank: reference missing TITLE")
		}
		if r.Journal, ok = rd.multiline("JOURNAL", " "); !ok {
			return m, errors.New("genbank: reference missing JOURNAL")
		}
		r.PubMed, _ = rd.multiline("PUBMED", " ")
		m.References = append(m.References, r)
	}

	rd.multiline("COMMENT", " ") // not kept

	return m, nil
}

// parseLocus splits the LOCUS line:
//
//	name length bp moltype [topology] division date
func parseLocus(rest string, m *Metadata) error {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return fmt.Errorf("genbank: malformed LOCUS line %q", rest)
	}
	m.LocusName = fields[0]
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return fmt.Errorf("genbank: malformed LOCUS length %q", fields[1])
	}
	m.Length = n

	fields = fields[2:]
	if len(fields) > 0 && strings.EqualFold(fields[0], "bp") {
		fields = fields[1:]
	}
	switch len(fields) {
	case 4:
		m.MoleculeType, m.Topology, m.Division, m.Updated = fields[0], fields[1], fields[2], fields[3]
	case 3:
		m.MoleculeType, m.Division, m.Updated = fields[0], fields[1], fields[2]
	case 2:
		m.MoleculeType, m.Division = fields[0], fields[1]
	case 1:
		m.MoleculeType = fields[0]
	}
	return nil
}
