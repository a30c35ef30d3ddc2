package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const colorClass = "color"

// Color represents an RGBA value with channels in the 0..1 range,
// optionally tagged with the swatch it was picked from
type Color struct {
	Class    string  `json:"_class"`
	Alpha    float64 `json:"alpha"`
	Blue     float64 `json:"blue"`
	Green    float64 `json:"green"`
	Red      float64 `json:"red"`
	SwatchID string  `json:"swatchID,omitempty"`
}

// NewColor creates an untagged color
func NewColor(red, green, blue, alpha float64) *Color {
	return &Color{Class: colorClass, Red: red, Green: green, Blue: blue, Alpha: alpha}
}

// ParseHex parses "#rrggbb" or "#rrggbbaa"
func ParseHex(hex string) (*Color, error) {
	value := strings.TrimPrefix(hex, "#")
	if len(value) != 6 && len(value) != 8 {
		return nil, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", hex)
	}
	channels := make([]float64, 4)
	channels[3] = 1
	for i := 0; i < len(value)/2; i++ {
		v, err := strconv.ParseUint(value[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid channel %d in %q: %w", i, hex, err)
		}
		channels[i] = float64(v) / 255
	}
	return NewColor(channels[0], channels[1], channels[2], channels[3]), nil
}

// MustParseHex is like ParseHex but panics on error
func MustParseHex(hex string) *Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns "#RRGGBB", with an alpha byte appended when the color is not opaque
func (c *Color) Hex() string {
	if c == nil {
		return ""
	}
	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	result := fmt.Sprintf("#%02X%02X%02X", channel(c.Red), channel(c.Green), channel(c.Blue))
	if c.Alpha < 1 {
		result += fmt.Sprintf("%02X", channel(c.Alpha))
	}
	return result
}

// SameRGBA returns true if both colors have identical channels; swatch tags are ignored
func (c *Color) SameRGBA(other *Color) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Alpha == other.Alpha &&
		c.Red == other.Red &&
		c.Green == other.Green &&
		c.Blue == other.Blue
}

// SetRGBA copies channels from other, keeping the swatch tag
func (c *Color) SetRGBA(other *Color) {
	c.Alpha = other.Alpha
	c.Red = other.Red
	c.Green = other.Green
	c.Blue = other.Blue
}

// Clone creates a copy of the color
func (c *Color) Clone() *Color {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
