package model

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeKey is the single normalization point for keys and queries.
// Only case is folded: a query of spaces matches keys starting with spaces.
// A new Caser is created per call because Casers carry state.
func NormalizeKey(s string) string {
	return cases.Lower(language.Und).String(s)
}

// DisplayKey upper-cases the first letter of a normalized key and leaves
// the rest alone, so "granny smith" becomes "Granny smith".
func DisplayKey(key string) string {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError {
		return key
	}
	return string(unicode.ToTitle(r)) + key[size:]
}
