package dna

import "fmt"

// Policy controls what ReverseComplement does with a byte that has no
// IUPAC complement (gap characters, stray punctuation, digits).
type Policy uint8

const (
	// PassThrough copies unmapped bytes to the output unchanged.
	PassThrough Policy = iota
	// Strict rejects the whole operation on the first unmapped byte.
	Strict
)

// complement maps every IUPAC nucleotide code to its complement,
// upper and lower case. Zero means "no mapping".
var complement [256]byte

func init() {
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'},
		{'R', 'Y'}, {'K', 'M'},
		{'B', 'V'}, {'D', 'H'},
		{'S', 'S'}, {'W', 'W'}, {'N', 'N'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
		complement[p.a+'a'-'A'] = p.b + 'a' - 'A'
		complement[p.b+'a'-'A'] = p.a + 'a' - 'A'
	}
}

// InvalidBaseError reports a byte with no IUPAC complement under the
// Strict policy.
type InvalidBaseError struct {
	Base byte
	Pos  int // 1-based offset in the input string
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("dna: no complement for %q at %d", e.Base, e.Pos)
}

// Complement returns the IUPAC complement of b and whether a mapping
// exists. Case is preserved.
func Complement(b byte) (byte, bool) {
	c := complement[b]
	if c == 0 {
		return b, false
	}
	return c, true
}

// ReverseComplement returns the reverse complement of seq. Unmapped
// bytes follow pol.
func ReverseComplement(seq string, pol Policy) (string, error) {
	n := len(seq)
	if n == 0 {
		return "", nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c, ok := Complement(b)
		if !ok && pol == Strict {
			return "", &InvalidBaseError{Base: b, Pos: n - i}
		}
		out[i] = c
	}
	return string(out), nil
}
