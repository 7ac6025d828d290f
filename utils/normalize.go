package utils

import "strings"

// accentFold maps Latin-1 accented letters to their ASCII base. Event keys
// arrive from mobile keyboards that autocorrect into accented forms
// ("estrés", "día"); folding keeps one canonical spelling per category.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'ä': 'a', 'â': 'a', 'ã': 'a',
	'é': 'e', 'è': 'e', 'ë': 'e', 'ê': 'e',
	'í': 'i', 'ì': 'i', 'ï': 'i', 'î': 'i',
	'ó': 'o', 'ò': 'o', 'ö': 'o', 'ô': 'o', 'õ': 'o',
	'ú': 'u', 'ù': 'u', 'ü': 'u', 'û': 'u',
	'ñ': 'n', 'ç': 'c',
}

// NormalizeEventKey lower-cases, folds accents, and unifies the separator so
// "Día_Libre" and "day-off" style spellings both hit the knowledge base with
// a single canonical key. Characters outside the fold table pass through
// unchanged; an unknown category should fail the lookup, not be guessed at.
func NormalizeEventKey(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		if r == '_' || r == ' ' {
			r = '-'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeDayKey lower-cases and trims an incoming weekday name. Unknown
// days are not rejected here; the schedule resolver handles them.
func NormalizeDayKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
