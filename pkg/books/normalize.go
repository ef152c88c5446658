package books

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers keep per-call state, so each call builds its own.

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Capitalize upper-cases the first character and lower-cases the rest.
func Capitalize(s string) string {
	lower := cases.Lower(language.English).String(s)
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return string(unicode.ToTitle(r)) + lower[size:]
}

// fold returns the caseless form of s used for comparisons.
func fold(s string) string {
	return cases.Fold().String(s)
}
