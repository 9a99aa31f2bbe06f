package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"gopkg.in/guregu/null.v4"

	"github.com/osumi/utils/pkg/logger"
)

var ErrMalformedURLEncoding = errors.New("malformed url encoding")

// url.QueryEscape already writes spaces as "+" and escapes !'()*; only the
// tilde is left readable.
var urlEncodeReplacer = strings.NewReplacer("~", "%7E")

var urlDecodeReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
	"%7E", "~",
)

// URLEncode encodes str the way PHP's urlencode does: everything except
// letters, digits and "-_." is percent-encoded and spaces become "+".
// Null input yields null.
//
//	URLEncode(null.StringFrom("test osumi urlencode")) // "test+osumi+urlencode"
func URLEncode(str null.String) null.String {
	if !str.Valid {
		return null.String{}
	}
	return null.StringFrom(urlEncodeReplacer.Replace(url.QueryEscape(str.String)))
}

// URLDecode reverses URLEncode. Null or empty input yields "".
// Invalid escapes, or escapes that decode to invalid UTF-8, return
// ErrMalformedURLEncoding.
func URLDecode(str null.String) (string, error) {
	if !str.Valid || str.String == "" {
		return "", nil
	}

	ret, err := url.PathUnescape(urlDecodeReplacer.Replace(str.String))
	if err != nil {
		logger.Warnf("URLDecode: %v", err)
		return "", fmt.Errorf("%w: %v", ErrMalformedURLEncoding, err)
	}

	if !utf8.ValidString(ret) {
		logger.Warnf("URLDecode: %q does not decode to valid UTF-8", str.String)
		return "", fmt.Errorf("%w: invalid UTF-8 in %q", ErrMalformedURLEncoding, str.String)
	}

	return ret, nil
}
