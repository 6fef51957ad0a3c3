package writers

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
)

func init() {
	RegisterFeature("pretty", WritePretty)
}

// WritePretty renders a human-readable feature listing. Color obeys the
// package-global color.NoColor switch, which the CLI sets from config.
func WritePretty(w io.Writer, rows []Row) error {
	key := color.New(color.FgCyan, color.Bold)
	loc := color.New(color.FgYellow)
	dim := color.New(color.Faint)

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-16s %s", key.Sprint(r.Key), loc.Sprint(r.Location)); err != nil {
			return err
		}
		if r.Strand == "-" {
			if _, err := fmt.Fprintf(w, " %s", dim.Sprint("(reverse strand)")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		names := make([]string, 0, len(r.Qualifiers))
		for n := range r.Qualifiers {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			v := r.Qualifiers[n]
			if v == "" {
				if _, err := fmt.Fprintf(w, "    /%s\n", dim.Sprint(n)); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "    /%s=%s\n", dim.Sprint(n), v); err != nil {
				return err
			}
		}
	}
	return nil
}
