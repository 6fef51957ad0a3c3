// Package genbank parses GenBank flat-file records: the metadata
// header, the feature table and the origin sequence block. Everything
// here is line-oriented scanning; the location grammar lives in
// gbkit-core/location.
package genbank

import (
	"bufio"
	"io"
	"strings"
)

// reader walks a flat file line by line with one line of pushback,
// skipping blank lines. GenBank is strictly line-oriented, so one line
// of lookahead is all the section parsers need.
type reader struct {
	sc      *bufio.Scanner
	pending string
	has     bool
	err     error
}

func newReader(r io.Reader) *reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	return &reader{sc: sc}
}

// next returns the next non-blank line; ok=false at end of input.
func (r *reader) next() (string, bool) {
	if r.has {
		r.has = false
		return r.pending, true
	}
	for r.sc.Scan() {
		line := r.sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true
	}
	r.err = r.sc.Err()
	return "", false
}

func (r *reader) unread(line string) {
	r.pending = line
	r.has = true
}

// Keyword data continues on the next line when it is indented by twelve
// spaces.
const continuationIndent = "            "

func (r *reader) continuation() (string, bool) {
	line, ok := r.next()
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(line, continuationIndent) {
		r.unread(line)
		return "", false
	}
	return strings.TrimSpace(line), true
}

// keyword consumes the next line if its trimmed form starts with kw and
// returns the remainder.
func (r *reader) keyword(kw string) (string, bool) {
	line, ok := r.next()
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, kw) {
		r.unread(line)
		return "", false
	}
	return strings.TrimSpace(trimmed[len(kw):]), true
}

// multiline reads a keyword line plus any continuations, joined by delim.
func (r *reader) multiline(kw, delim string) (string, bool) {
	base, ok := r.keyword(kw)
	if !ok {
		return "", false
	}
	for {
		line, ok := r.continuation()
		if !ok {
			return base, true
		}
		base += delim + line
	}
}
