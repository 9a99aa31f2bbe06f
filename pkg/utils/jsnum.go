package utils

import (
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const maxFixedDigits = 100

// jsFloatPrefix matches the longest prefix accepted by parseFloat.
var jsFloatPrefix = regexp.MustCompile(`^[+-]?(Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)

// isJSSpace reports whether r is whitespace or a line terminator in the
// ECMAScript sense. Unlike unicode.IsSpace it includes U+FEFF and excludes
// U+0085.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

func trimJSSpace(s string) string {
	return strings.TrimFunc(s, isJSSpace)
}

// jsRound rounds to the nearest integer with ties going towards +Inf.
func jsRound(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return f
}

// toFixed formats x with exactly digits decimals. Rounding is done on the
// exact binary value of x and exact ties go away from zero.
func toFixed(x float64, digits int) string {
	if digits < 0 {
		digits = 0
	} else if digits > maxFixedDigits {
		digits = maxFixedDigits
	}

	if math.IsNaN(x) {
		return "NaN"
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	if math.IsInf(x, 1) {
		return sign + "Infinity"
	}
	if x >= 1e21 {
		return sign + strconv.FormatFloat(x, 'g', -1, 64)
	}

	r := new(big.Rat).SetFloat64(x)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)

	// n = floor((num*10^digits)/denom + 1/2)
	num := new(big.Int).Mul(r.Num(), scale)
	num.Lsh(num, 1)
	num.Add(num, r.Denom())
	den := new(big.Int).Lsh(r.Denom(), 1)
	n := num.Quo(num, den)

	m := n.String()
	if digits > 0 {
		if len(m) <= digits {
			m = strings.Repeat("0", digits+1-len(m)) + m
		}
		m = m[:len(m)-digits] + "." + m[len(m)-digits:]
	}

	return sign + m
}

// parseFloat parses the longest numeric prefix of s after leading
// whitespace. It returns NaN when there is no such prefix.
func parseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isJSSpace)
	prefix := jsFloatPrefix.FindString(s)
	if prefix == "" {
		return math.NaN()
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// parseInt parses the leading integer of s the way parseInt without a radix
// does: leading whitespace is skipped, an optional sign is read, and a 0x
// prefix switches to base 16. ok is false when no digits are found.
func parseInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, isJSSpace)

	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := strings.IndexFunc(s, func(r rune) bool {
		if base == 16 {
			return !unicode.Is(unicode.ASCII_Hex_Digit, r)
		}
		return r < '0' || r > '9'
	})
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:end], base, 0)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}

	return int(v), true
}
