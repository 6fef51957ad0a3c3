// Package writers renders feature rows and extracted sequences in the
// supported output formats. Formats register themselves in init()
// blocks; dispatch goes through the registry so commands never switch
// on format names.
package writers

import (
	"fmt"
	"io"
	"sort"
)

var featureWriters = map[string]func(w io.Writer, rows []Row) error{}

// RegisterFeature installs a feature-table writer (last registration
// wins).
func RegisterFeature(format string, fn func(io.Writer, []Row) error) {
	featureWriters[format] = fn
}

// WriteFeatures renders rows in the named format.
func WriteFeatures(format string, w io.Writer, rows []Row) error {
	fn, ok := featureWriters[format]
	if !ok {
		return fmt.Errorf("unknown format %q (have %v)", format, Formats())
	}
	return fn(w, rows)
}

// Formats lists the registered formats, sorted for help text.
func Formats() []string {
	out := make([]string, 0, len(featureWriters))
	for f := range featureWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
