package utils

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// jsWhitespace is the \s class of JavaScript regular expressions, which
// covers Unicode spaces and not only ASCII ones.
const jsWhitespace = `\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	emailAtom = `[^<>()\[\]\\.,;:` + jsWhitespace + `@"]+`

	emailRegex = regexp.MustCompile(
		`^((` + emailAtom + `(\.` + emailAtom + `)*)|("[^\n\r\x{2028}\x{2029}]+"))` +
			`@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`,
	)
)

// ValidateEmail reports whether email has the shape of an email address.
// The address is lower-cased with full Unicode case mapping first, so "İ"
// becomes "i" plus a combining dot and no longer matches the domain class.
// It does not check length limits or whether the domain exists.
//
//	ValidateEmail("test@example.com") // true
//	ValidateEmail("test@example")     // false
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(cases.Lower(language.Und).String(email))
}
