// Package valueobject contains immutable domain values with their own
// encoding rules.
package valueobject

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned when a color string cannot be
// decoded as a #RRGGBB hex value.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Color is a display color with red/green/blue components in [0, 1].
// Alpha is not modeled; colors are assumed opaque. The canonical
// persisted form is the 6-hex-digit string produced by Hex.
type Color struct {
	R float64
	G float64
	B float64
}

// NewColor builds a color from channel values, clamping each to [0, 1].
func NewColor(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// Hex encodes the color as "#RRGGBB" using rounded 0-255 channel
// values. This is the canonical persisted form; ColorFromHex accepts
// anything Hex produces.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// ColorFromHex decodes a "#RRGGBB" string. The leading "#" is optional
// and surrounding whitespace is ignored; exactly six hex digits must
// remain. Malformed input yields ErrInvalidColorFormat, never a panic.
func ColorFromHex(s string) (Color, error) {
	sanitized := strings.ToUpper(strings.TrimSpace(s))
	sanitized = strings.TrimPrefix(sanitized, "#")

	if len(sanitized) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	rgb, err := strconv.ParseUint(sanitized, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	return Color{
		R: float64((rgb&0xFF0000)>>16) / 255.0,
		G: float64((rgb&0x00FF00)>>8) / 255.0,
		B: float64(rgb&0x0000FF) / 255.0,
	}, nil
}

// DefaultColor is the gray fallback used when a persisted color string
// fails to decode. Decode failures on read are cosmetic and must not
// block the user.
func DefaultColor() Color {
	c, _ := ColorFromHex("#AEAFB4")
	return c
}

func channelByte(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
