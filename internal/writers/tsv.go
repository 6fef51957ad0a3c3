package writers

import (
	"fmt"
	"io"
	"strconv"
)

// TSVHeader is the column row for the tsv format.
const TSVHeader = "accession\tkey\tlocation\tstrand\tstart\tend\tlength\tproduct"

func init() {
	RegisterFeature("tsv", func(w io.Writer, rows []Row) error {
		return WriteTSV(w, rows, true)
	})
}

// WriteTSV writes one tab-delimited line per feature. Spanless
// locations leave start/end/length empty rather than printing zeros.
func WriteTSV(w io.Writer, rows []Row, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		start, end, length := "", "", ""
		if r.End >= r.Start && r.Start > 0 {
			start = strconv.FormatUint(uint64(r.Start), 10)
			end = strconv.FormatUint(uint64(r.End), 10)
			length = strconv.Itoa(r.Length)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Accession, r.Key, r.Location, r.Strand, start, end, length, r.Product,
		); err != nil {
			return err
		}
	}
	return nil
}
