package writers

import (
	"fmt"
	"io"
)

const fastaWidth = 60

// WriteFASTA writes one FASTA record, sequence wrapped at 60 columns.
func WriteFASTA(w io.Writer, id, desc, seq string) error {
	if desc != "" {
		if _, err := fmt.Fprintf(w, ">%s %s\n", id, desc); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, ">%s\n", id); err != nil {
			return err
		}
	}
	for len(seq) > fastaWidth {
		if _, err := fmt.Fprintln(w, seq[:fastaWidth]); err != nil {
			return err
		}
		seq = seq[fastaWidth:]
	}
	_, err := fmt.Fprintln(w, seq)
	return err
}
