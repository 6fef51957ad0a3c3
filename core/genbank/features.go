package genbank

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gbkit-core/location"
)

// Qualifier is one /name=value annotation of a feature. Valueless
// qualifiers (e.g. /pseudo) have an empty Value.
type Qualifier struct {
	Name  string
	Value string
}

// Feature is one entry of the feature table. The location text is kept
// raw and parsed on first use.
type Feature struct {
	Key         string
	RawLocation string
	Qualifiers  []Qualifier

	once   sync.Once
	loc    location.Location
	locErr error
}

// Location parses RawLocation on first call and memoizes the result:
// the same tree (or the same *location.SyntaxError) comes back on every
// later call, and the single write is safe under concurrent access.
func (f *Feature) Location() (location.Location, error) {
	f.once.Do(func() {
		f.loc, f.locErr = location.Parse(f.RawLocation)
	})
	return f.loc, f.locErr
}

// Qualifier returns the value of the first qualifier with this name.
func (f *Feature) Qualifier(name string) (string, bool) {
	for _, q := range f.Qualifiers {
		if q.Name == name {
			return q.Value, true
		}
	}
	return "", false
}

// Feature lines start at column 6; qualifier and wrapped-location lines
// are indented deeper (column 22 in practice).
const (
	featureIndent = "     "
	deepIndent    = "      "
)

func parseFeatures(rd *reader) (*FeatureTable, error) {
	if _, ok := rd.keyword("FEATURES"); !ok {
		return nil, errors.New("genbank: missing FEATURES table")
	}

	t := &FeatureTable{}
	for {
		line, ok := rd.next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, featureIndent) ||
			len(line) <= len(featureIndent) ||
			line[len(featureIndent)] == ' ' {
			rd.unread(line)
			break
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("genbank: malformed feature line %q", strings.TrimSpace(line))
		}
		f := &Feature{Key: fields[0], RawLocation: fields[1]}
		if err := parseFeatureBody(rd, f); err != nil {
			return nil, err
		}
		t.entries = append(t.entries, f)
	}
	return t, nil
}

// parseFeatureBody consumes the deep-indented lines following a feature
// line: wrapped location text first, then qualifiers.
func parseFeatureBody(rd *reader, f *Feature) error {
	for {
		line, ok := rd.next()
		if !ok {
			return nil
		}
		if !strings.HasPrefix(line, deepIndent) {
			rd.unread(line)
			return nil
		}
		body := strings.TrimSpace(line)
		if !strings.HasPrefix(body, "/") {
			// Location expressions wrap without a separator.
			f.RawLocation += body
			continue
		}
		q, err := parseQualifier(rd, body[1:])
		if err != nil {
			return fmt.Errorf("genbank: feature %s: %w", f.Key, err)
		}
		f.Qualifiers = append(f.Qualifiers, q)
	}
}

func parseQualifier(rd *reader, body string) (Qualifier, error) {
	name, value, found := strings.Cut(body, "=")
	if !found {
		return Qualifier{Name: name}, nil
	}
	if strings.HasPrefix(value, `"`) {
		v := value[1:]
		for !strings.HasSuffix(v, `"`) {
			line, ok := rd.next()
			if !ok || !strings.HasPrefix(line, deepIndent) {
				if ok {
					rd.unread(line)
				}
				return Qualifier{}, fmt.Errorf("unterminated quoted value for /%s", name)
			}
			v += " " + strings.TrimSpace(line)
		}
		value = strings.TrimSuffix(v, `"`)
	}
	return Qualifier{Name: name, Value: value}, nil
}
