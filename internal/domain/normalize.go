package domain

import "strings"

// NormalizeTerm prepares a search term for a dictionary lookup:
// leading/trailing whitespace is trimmed and the result is lowercased.
// Inner whitespace is kept as typed.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// NormalizeHeadword prepares a headword for storage: surrounding whitespace
// is trimmed and every inner whitespace run becomes a single space. Case,
// diacritics, hyphens and apostrophes are preserved.
func NormalizeHeadword(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// DedupKey returns the case-insensitive key under which word records collapse.
func DedupKey(headword string) string {
	return strings.ToLower(headword)
}
