package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/guregu/null.v4"
)

// Capitalize upper-cases the first character of str and leaves the rest
// untouched. Null or empty input yields null.
func Capitalize(str null.String) null.String {
	if !str.Valid || str.String == "" {
		return null.String{}
	}

	first, size := utf8.DecodeRuneInString(str.String)
	upper := cases.Upper(language.Und).String(string(first))

	return null.StringFrom(upper + str.String[size:])
}

// Normalize lower-cases str, strips diacritics and trims surrounding
// whitespace, so "  Árbol " becomes "arbol".
func Normalize(str string) string {
	// transformers keep state, so the chain is built per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

	ret, _, err := transform.String(t, strings.ToLower(str))
	if err != nil {
		ret = strings.ToLower(str)
	}

	return trimJSSpace(ret)
}

// StringEquals compares a and b ignoring case, diacritics and surrounding
// whitespace. Two null strings are equal; a null and a non-null string are not.
func StringEquals(a, b null.String) bool {
	if !a.Valid || !b.Valid {
		return a.Valid == b.Valid
	}
	return Normalize(a.String) == Normalize(b.String)
}
