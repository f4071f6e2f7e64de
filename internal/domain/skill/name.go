package skill

import (
	"strings"
	"unicode"
)

// NormalizeName trims the raw name and title-cases it, so "  go lang " and
// "GO LANG" both resolve to "Go Lang". Catalog lookups compare the
// normalized form case-insensitively.
func NormalizeName(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// DedupeNames normalizes a batch of raw names and drops case-insensitive
// duplicates, preserving first-seen order. Blank entries are skipped.
func DedupeNames(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		name := NormalizeName(r)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
