package utils

import (
	"fmt"
	"math"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// BytesToSize returns a human readable size for an amount of bytes, such as
// "1.0 KB" for 1024. Zero or negative amounts yield "n/a".
//
// Amounts below one kilobyte are written as "<n> Bytes)", trailing
// parenthesis included, and are kept that way for compatibility with
// existing output.
func BytesToSize(bytes int64) string {
	if bytes <= 0 {
		return "n/a"
	}

	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizeUnits) {
		i = len(sizeUnits) - 1
	}

	if i == 0 {
		return fmt.Sprintf("%d %s)", bytes, sizeUnits[i])
	}

	return toFixed(float64(bytes)/math.Pow(1024, float64(i)), 1) + " " + sizeUnits[i]
}
