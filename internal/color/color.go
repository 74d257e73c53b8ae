// Package color parses, formats and transforms theme colors.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for values that are not a supported hex color.
var ErrInvalidColor = errors.New("invalid color")

// Color is an RGBA color. R, G and B are in [0,255]; A is in [0,1].
type Color struct {
	R, G, B float64
	A       float64
}

// RGBA builds a Color from 0-255 channels and a 0-1 alpha.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Parse accepts #rgb, #rgba, #rrggbb and #rrggbbaa. Channels are whole
// numbers and alpha is rounded to two decimals.
func Parse(value string) (Color, error) {
	s := strings.TrimSpace(value)
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	hex := s[1:]
	// colorful.Hex stops scanning at the first non-hex digit.
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	alpha := "ff"
	switch len(hex) {
	case 3:
	case 4:
		alpha = strings.Repeat(hex[3:], 2)
		hex = hex[:3]
	case 6:
	case 8:
		alpha = hex[6:]
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, value)
	}

	return Color{
		R: math.Round(c.R * 255),
		G: math.Round(c.G * 255),
		B: math.Round(c.B * 255),
		A: math.Round(float64(a)/255*100) / 100,
	}, nil
}

// MustParse is Parse for static tables; it panics on error.
func MustParse(value string) Color {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate rejects non-finite channels.
func (c Color) Validate() error {
	for _, v := range [...]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite channel in %+v", ErrInvalidColor, c)
		}
	}
	return nil
}

// Hex formats the color with rounded channels: #rrggbb when opaque,
// #rrggbbaa otherwise.
func (c Color) Hex() string {
	rgb := c.HexRGB()
	a := channel(c.A * 255)
	if a == 255 {
		return rgb
	}
	return fmt.Sprintf("%s%02x", rgb, a)
}

// HexRGB formats the color without alpha.
func (c Color) HexRGB() string {
	col := colorful.Color{
		R: float64(channel(c.R)) / 255,
		G: float64(channel(c.G)) / 255,
		B: float64(channel(c.B)) / 255,
	}
	return col.Hex()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clampUnit(a)
	return c
}

// Sum is the channel sum used as a brightness proxy.
func (c Color) Sum() float64 {
	return c.R + c.G + c.B
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v)))
}

func clamp(v float64) float64 {
	return math.Min(math.Max(v, 0), 255)
}

func clampUnit(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
