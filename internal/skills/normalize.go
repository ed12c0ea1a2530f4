// Package skills provides skill name normalization and the read-only
// synonym/category dictionary consumed by the skill matcher.
package skills

import "strings"

// Normalize canonicalizes a skill string for comparison: lowercase, trimmed,
// with internal whitespace collapsed to single spaces. All skill comparisons
// in the matcher happen on normalized names.
func Normalize(skill string) string {
	fields := strings.Fields(strings.ToLower(skill))
	return strings.Join(fields, " ")
}

// NormalizeAll normalizes a slice of skill names, dropping entries that
// normalize to empty and deduplicating while preserving order.
func NormalizeAll(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		n := Normalize(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
