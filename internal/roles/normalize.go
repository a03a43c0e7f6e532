// Package roles canonicalizes free-form role text so that "Líder ",
// "LIDER" and "lider" compare equal.
package roles

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize strips diacritics, lower-cases, trims and collapses internal
// whitespace. It is idempotent.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(strings.ToLower(stripped)), " ")
}

// NormalizeValue normalizes a single value of unknown type. Anything that is
// not text yields "".
func NormalizeValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Normalize(s)
}

// NormalizeList accepts a list of values, a single string, or anything else.
// Order is preserved, empty results are dropped and duplicates are kept.
func NormalizeList(v any) []string {
	switch val := v.(type) {
	case []string:
		return NormalizeAll(val)
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if n := NormalizeValue(item); n != "" {
				out = append(out, n)
			}
		}
		return out
	case string:
		if n := Normalize(val); n != "" {
			return []string{n}
		}
	}
	return []string{}
}

// NormalizeAll normalizes every element, dropping the ones that end up empty.
func NormalizeAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if n := Normalize(v); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Set is a membership set of canonical roles.
type Set map[string]struct{}

// NewSet builds a set from already canonical roles.
func NewSet(canonical []string) Set {
	s := make(Set, len(canonical))
	for _, r := range canonical {
		s[r] = struct{}{}
	}
	return s
}

// Has reports whether the canonical role is in the set.
func (s Set) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// Capitalize upper-cases the first letter of a canonical role for display.
func Capitalize(role string) string {
	if role == "" {
		return ""
	}
	r := []rune(role)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
