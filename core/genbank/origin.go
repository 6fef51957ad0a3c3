package genbank

import (
	"errors"
	"strings"

	"gbkit-core/dna"
)

// parseOrigin unwraps the numbered ORIGIN rows into one flat,
// uppercased sequence. The block ends at the record terminator "//" or
// at the first line that does not look like an origin row.
func parseOrigin(rd *reader) (*dna.Sequence, error) {
	if _, ok := rd.keyword("ORIGIN"); !ok {
		return nil, errors.New("genbank: missing ORIGIN block")
	}
	var b strings.Builder
	for {
		line, ok := rd.next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "//" {
			break
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 2 || !allDigits(fields[0]) {
			rd.unread(line)
			break
		}
		for _, f := range fields[1:] {
			b.WriteString(strings.ToUpper(f))
		}
	}
	return dna.New(b.String()), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
