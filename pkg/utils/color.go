package utils

import (
	"regexp"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var hexColorRegex = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

// ColorValues is an RGB color with every component in [0, 1].
type ColorValues struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Color returns c as a colorful.Color.
func (c ColorValues) Color() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// HexToRgbFloat parses a "#rrggbb" color, with or without the leading "#",
// into its components. Returns nil if hex is not a six digit hex color.
//
//	HexToRgbFloat("#ff0000") // &ColorValues{R: 1, G: 0, B: 0}
func HexToRgbFloat(hex string) *ColorValues {
	m := hexColorRegex.FindStringSubmatch(hex)
	if m == nil {
		return nil
	}

	return &ColorValues{
		R: hexComponent(m[1]),
		G: hexComponent(m[2]),
		B: hexComponent(m[3]),
	}
}

func hexComponent(s string) float64 {
	// the regexp guarantees two hex digits
	v, _ := strconv.ParseUint(s, 16, 8)
	return ConvertRange(float64(v), 0, 255, 0, 1)
}

// RgbFloatToHex returns c as a lower-case "#rrggbb" string. Components
// outside [0, 1] are clamped.
func RgbFloatToHex(c ColorValues) string {
	return c.Color().Clamped().Hex()
}
