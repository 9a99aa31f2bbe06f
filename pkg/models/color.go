package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/osumi/utils/pkg/utils"
)

var ErrInvalidColor = errors.New("invalid hex color")

// Color is an RGB color stored as float components in [0, 1].
type Color struct {
	utils.ColorValues
}

// ParseColor parses a "#rrggbb" or "rrggbb" color.
func ParseColor(hex string) (Color, error) {
	c := utils.HexToRgbFloat(hex)
	if c == nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return Color{ColorValues: *c}, nil
}

// ColorFrom converts a colorful.Color.
func ColorFrom(c colorful.Color) Color {
	return Color{ColorValues: utils.ColorValues{R: c.R, G: c.G, B: c.B}}
}

func (c Color) Hex() string {
	return utils.RgbFloatToHex(c.ColorValues)
}

func (c Color) String() string {
	return c.Hex()
}

// BlendWith mixes c and o in RGB space. t is the weight of o.
func (c Color) BlendWith(o Color, t float64) Color {
	return ColorFrom(c.Color().BlendRgb(o.Color(), t))
}

// UnmarshalJSON accepts both the {"r":..,"g":..,"b":..} form and a hex string.
func (c *Color) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := ParseColor(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	return json.Unmarshal(data, &c.ColorValues)
}
