package writers

import (
	"bufio"
	"encoding/json"
	"io"
)

func init() {
	RegisterFeature("jsonl", WriteJSONL)
}

// WriteJSONL streams each row as one JSON object per line.
func WriteJSONL(w io.Writer, rows []Row) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}
