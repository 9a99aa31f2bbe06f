package utils

import (
	"strings"

	"gopkg.in/guregu/null.v4"

	"github.com/osumi/utils/pkg/logger"
)

// DefaultDecimals is the number of decimals FormatNumber callers usually want.
const DefaultDecimals = 2

// ConvertRange linearly rescales value from [oldMin, oldMax] to
// [newMin, newMax], rounded to 4 decimal places.
//
// oldMax must differ from oldMin. A degenerate source range yields ±Inf or NaN.
//
//	ConvertRange(0xff, 0, 255, 0, 1) // 1
//	ConvertRange(25, 0, 100, 32, 212) // 77
func ConvertRange(value, oldMin, oldMax, newMin, newMax float64) float64 {
	if oldMax == oldMin {
		logger.Warnf("ConvertRange: empty source range [%v, %v]", oldMin, oldMax)
	}

	scaled := (value-oldMin)*(newMax-newMin)/(oldMax-oldMin) + newMin
	return jsRound(scaled*10000) / 10000
}

// FormatNumber formats num with the given number of decimals, using a comma
// as the decimal mark. A null num yields "".
//
//	FormatNumber(null.FloatFrom(15.267), 2) // "15,27"
func FormatNumber(num null.Float, decimals int) string {
	if !num.Valid {
		return ""
	}
	return strings.Replace(toFixed(num.Float64, decimals), ".", ",", 1)
}

// ToNumber parses a number written with a decimal comma. Null or empty
// input yields 0, and input without a leading number yields NaN.
//
// Only the first comma is replaced, so thousands separators are not supported:
// "1,234,5" parses as 1.234.
func ToNumber(str null.String) float64 {
	if !str.Valid || str.String == "" {
		return 0
	}
	return parseFloat(strings.Replace(str.String, ",", ".", 1))
}

// GetTwoNumberDecimal rounds value to 2 decimal places.
func GetTwoNumberDecimal(value float64) float64 {
	return parseFloat(toFixed(jsRound(value*100)/100, 2))
}
