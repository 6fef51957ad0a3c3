package location

import (
	"errors"
	"fmt"
)

// SyntaxError reports malformed location text. No partial tree is ever
// returned alongside one.
type SyntaxError struct {
	Raw    string // the offending substring
	Offset int    // byte offset of Raw in the input
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("location: %s at offset %d", e.Msg, e.Offset)
	}
	return fmt.Sprintf("location: %s at offset %d: %q", e.Msg, e.Offset, e.Raw)
}

// FuzzyPositionError reports an attempt to resolve a position whose
// coordinate is unknown. Guessing would corrupt the extracted sequence,
// so the caller has to decide what to do.
type FuzzyPositionError struct {
	Pos Position
}

func (e *FuzzyPositionError) Error() string {
	return fmt.Sprintf("location: cannot resolve fuzzy position %s", e.Pos)
}

// ErrRemoteRecord marks resolution of a remote (accession-qualified)
// location when only the local record's sequence is available.
var ErrRemoteRecord = errors.New("referenced record not loaded")

var (
	errEmptySequence = errors.New("sequence length must be positive")
	errNoSpan        = errors.New("part has no resolvable span")
)

// ResolveError wraps any failure during resolution. Part is the index of
// the failing member for join/order compounds, -1 otherwise.
type ResolveError struct {
	Part int
	Loc  string // re-serialized location that failed
	Err  error
}

func (e *ResolveError) Error() string {
	if e.Part >= 0 {
		return fmt.Sprintf("location: resolving %s: part %d: %v", e.Loc, e.Part, e.Err)
	}
	return fmt.Sprintf("location: resolving %s: %v", e.Loc, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

func syntaxErrorf(raw string, offset int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Raw: raw, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
