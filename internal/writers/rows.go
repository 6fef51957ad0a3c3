package writers

import (
	"gbkit-core/genbank"
	"gbkit-core/location"
)

// Row is the flattened, output-ready view of one feature.
type Row struct {
	Accession  string            `json:"accession"`
	Key        string            `json:"key"`
	Location   string            `json:"location"`
	Strand     string            `json:"strand"`
	Start      uint              `json:"start,omitempty"`
	End        uint              `json:"end,omitempty"`
	Length     int               `json:"length,omitempty"`
	Product    string            `json:"product,omitempty"`
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
}

// FromRecord flattens a record's feature table, in file order. Start
// and End stay zero for features whose location has no simple span
// (compounds, fuzzy-unknown bounds).
func FromRecord(rec *genbank.Record) []Row {
	rows := make([]Row, 0, rec.Features.Len())
	for _, f := range rec.Features.All() {
		r := Row{
			Accession: rec.Metadata.Accession,
			Key:       f.Key,
			Location:  f.RawLocation,
			Strand:    "+",
		}
		if loc, err := f.Location(); err == nil {
			if _, ok := loc.(location.Complement); ok {
				r.Strand = "-"
			}
			if s, e, ok := location.Span(loc); ok && e >= s {
				r.Start, r.End = s, e
				r.Length = int(e - s + 1)
			}
		}
		if len(f.Qualifiers) > 0 {
			r.Qualifiers = make(map[string]string, len(f.Qualifiers))
			for _, q := range f.Qualifiers {
				if _, dup := r.Qualifiers[q.Name]; !dup {
					r.Qualifiers[q.Name] = q.Value
				}
			}
			r.Product = r.Qualifiers["product"]
		}
		rows = append(rows, r)
	}
	return rows
}
