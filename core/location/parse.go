package location

import (
	"strconv"
	"strings"
)

// Parse converts raw GenBank location text into its expression tree.
// The grammar, matched character-for-character against real records:
//
//	location   := join | order | complement | remote | between | range | single
//	join       := "join(" location ("," location)* ")"
//	order      := "order(" location ("," location)* ")"
//	complement := "complement(" location ")"
//	remote     := accession ":" location
//	between    := integer "^" integer
//	range      := position ".." position
//	single     := position
//	position   := ["<" | ">"] integer | "?"
//
// Tokenization is whitespace-insensitive. On malformed input Parse
// returns a *SyntaxError identifying the offending substring; no partial
// tree is ever returned.
func Parse(raw string) (Location, error) {
	p := &parser{in: raw}
	loc, err := p.location()
	if err != nil {
		return nil, err
	}
	p.space()
	if p.pos < len(p.in) {
		return nil, syntaxErrorf(p.in[p.pos:], p.pos, "trailing characters")
	}
	return loc, nil
}

type parser struct {
	in  string
	pos int
}

func (p *parser) space() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t' || p.in[p.pos] == '\n' || p.in[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.in) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.in[p.pos]
}

// operator consumes `name` if it introduces a compound (name followed by
// an opening parenthesis); a bare prefix like "joined" or "orderX:.." is
// left alone for the accession path.
func (p *parser) operator(name string) bool {
	rest := p.in[p.pos:]
	if !strings.HasPrefix(rest, name) {
		return false
	}
	i := p.pos + len(name)
	for i < len(p.in) && p.in[i] == ' ' {
		i++
	}
	if i >= len(p.in) || p.in[i] != '(' {
		return false
	}
	p.pos += len(name)
	return true
}

func (p *parser) location() (Location, error) {
	p.space()
	if p.eof() {
		return nil, syntaxErrorf("", p.pos, "empty location")
	}
	switch {
	case p.operator("join"):
		parts, err := p.argList("join")
		if err != nil {
			return nil, err
		}
		return Join{Parts: flatten(parts, true)}, nil
	case p.operator("order"):
		parts, err := p.argList("order")
		if err != nil {
			return nil, err
		}
		return Order{Parts: flatten(parts, false)}, nil
	case p.operator("complement"):
		inner, err := p.singleArg("complement")
		if err != nil {
			return nil, err
		}
		return Complement{Inner: inner}, nil
	}
	return p.simple()
}

// argList parses "(" location ("," location)* ")". The empty list is a
// syntax error: join()/order() address nothing.
func (p *parser) argList(op string) ([]Location, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	p.space()
	if p.peek() == ')' {
		return nil, syntaxErrorf(op+"()", p.pos, "empty %s list", op)
	}
	var parts []Location
	for {
		loc, err := p.location()
		if err != nil {
			return nil, err
		}
		parts = append(parts, loc)
		p.space()
		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return parts, nil
		default:
			return nil, syntaxErrorf(p.rest(), p.pos, "expected ',' or ')' in %s", op)
		}
	}
}

func (p *parser) singleArg(op string) (Location, error) {
	if err := p.expect('('); err != nil {
		return nil, err
	}
	loc, err := p.location()
	if err != nil {
		return nil, err
	}
	p.space()
	if p.peek() == ',' {
		return nil, syntaxErrorf(p.rest(), p.pos, "%s takes a single location", op)
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	return loc, nil
}

func (p *parser) expect(c byte) error {
	p.space()
	if p.peek() != c {
		return syntaxErrorf(p.rest(), p.pos, "expected %q", string(c))
	}
	p.pos++
	return nil
}

// simple parses the non-compound forms: remote, between, range, single.
func (p *parser) simple() (Location, error) {
	p.space()
	start := p.pos

	if acc, ok := p.accession(); ok {
		inner, err := p.location()
		if err != nil {
			return nil, err
		}
		return Remote{Accession: acc, Inner: inner}, nil
	}

	first, err := p.position()
	if err != nil {
		return nil, err
	}
	p.space()

	switch {
	case strings.HasPrefix(p.in[p.pos:], ".."):
		p.pos += 2
		second, err := p.position()
		if err != nil {
			return nil, err
		}
		if first.Fuzz == Exact && second.Fuzz == Exact && first.Coord > second.Coord {
			return nil, syntaxErrorf(p.in[start:p.pos], start, "inverted range")
		}
		return Range{Start: first, End: second}, nil

	case p.peek() == '^':
		p.pos++
		if first.Fuzz != Exact {
			return nil, syntaxErrorf(p.in[start:p.pos], start, "between-site bounds must be exact")
		}
		second, err := p.position()
		if err != nil {
			return nil, err
		}
		if second.Fuzz != Exact {
			return nil, syntaxErrorf(p.in[start:p.pos], start, "between-site bounds must be exact")
		}
		if second.Coord != first.Coord+1 && second.Coord != 1 {
			return nil, syntaxErrorf(p.in[start:p.pos], start, "between-site bounds must be adjacent (or wrap to 1)")
		}
		return Between{First: first.Coord, Second: second.Coord}, nil
	}

	return Single{Pos: first}, nil
}

// accession consumes an identifier followed by ':'. Identifiers contain
// at least one letter, which is what separates them from coordinates.
func (p *parser) accession() (string, bool) {
	i := p.pos
	hasLetter := false
	for i < len(p.in) && isIdent(p.in[i]) {
		if isLetter(p.in[i]) {
			hasLetter = true
		}
		i++
	}
	if !hasLetter || i == p.pos || i >= len(p.in) || p.in[i] != ':' {
		return "", false
	}
	acc := p.in[p.pos:i]
	p.pos = i + 1
	return acc, true
}

func (p *parser) position() (Position, error) {
	p.space()
	start := p.pos

	fuzz := Exact
	switch p.peek() {
	case '<':
		fuzz = Before
		p.pos++
	case '>':
		fuzz = After
		p.pos++
	case '?':
		p.pos++
		return Position{Fuzz: Unknown}, nil
	}

	digits := p.pos
	for !p.eof() && p.in[p.pos] >= '0' && p.in[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == digits {
		return Position{}, syntaxErrorf(p.rest(), start, "malformed position")
	}
	v, err := strconv.ParseUint(p.in[digits:p.pos], 10, 64)
	if err != nil {
		return Position{}, syntaxErrorf(p.in[start:p.pos], start, "malformed position")
	}
	if v < 1 {
		return Position{}, syntaxErrorf(p.in[start:p.pos], start, "coordinate must be >= 1")
	}
	return Position{Coord: uint(v), Fuzz: fuzz}, nil
}

func (p *parser) rest() string {
	const max = 20
	r := p.in[p.pos:]
	if len(r) > max {
		r = r[:max]
	}
	return r
}

// flatten splices nested compounds of the same kind into the enclosing
// part list, so join(join(a,b),c) resolves as join(a,b,c) with
// unambiguous part indices.
func flatten(parts []Location, join bool) []Location {
	out := make([]Location, 0, len(parts))
	for _, part := range parts {
		if join {
			if j, ok := part.(Join); ok {
				out = append(out, j.Parts...)
				continue
			}
		} else {
			if o, ok := part.(Order); ok {
				out = append(out, o.Parts...)
				continue
			}
		}
		out = append(out, part)
	}
	return out
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isIdent(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '.' || c == '_' || c == '-'
}
