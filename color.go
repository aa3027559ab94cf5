package paintkit

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface, returning alpha-premultiplied
// 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A) * 65535)
	g = uint32(clamp01(c.G*c.A) * 65535)
	b = uint32(clamp01(c.B*c.A) * 65535)
	a = uint32(clamp01(c.A) * 65535)
	return
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// Un-premultiply so channels are independent of alpha.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components in the range [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// NormalizeChannel maps a color channel written in either the 0-1 or 0-255
// range onto the canonical [0, 1] range: values above 1 are treated as 8-bit
// and divided by 255, everything else is returned unchanged.
//
// This is a heuristic inherited from the CSS-ish inputs this package accepts.
// A channel written as exactly 1 on a 0-255 scale is indistinguishable from a
// fully saturated 0-1 channel, and resolves to 1. The >1 boundary is part of
// the package contract and is pinned by tests; do not "fix" it.
func NormalizeChannel(v float64) float64 {
	if v > 1 {
		return v / 255
	}
	return v
}

// ParseColor decodes a color literal: a #-prefixed hex code in RGB, RGBA,
// RRGGBB, or RRGGBBAA form, or a CSS named color such as "cornflowerblue".
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBA{}, fmt.Errorf("paintkit: empty color string")
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return RGBA{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
			A: float64(c.A) / 255,
		}, nil
	}
	return RGBA{}, fmt.Errorf("paintkit: unknown color %q", s)
}

// Hex creates a color from a hex string such as "#FF5733".
// Invalid input yields opaque black; use ParseColor to detect errors.
func Hex(hex string) RGBA {
	hex = strings.TrimPrefix(hex, "#")
	c, err := parseHexColor(hex)
	if err != nil {
		return RGBA{A: 1}
	}
	return c
}

// parseHexColor decodes hex digits (without the leading '#') into a color.
func parseHexColor(hex string) (RGBA, error) {
	var r, g, b uint32
	a := uint32(255)
	var err error

	read := func(s string) uint32 {
		var v uint32
		for i := 0; i < len(s); i++ {
			d := hexDigit(s[i])
			if d < 0 {
				err = fmt.Errorf("paintkit: invalid hex color digit %q", s[i])
				return 0
			}
			v = v*16 + uint32(d)
		}
		return v
	}

	switch len(hex) {
	case 3: // RGB
		r, g, b = read(hex[0:1])*17, read(hex[1:2])*17, read(hex[2:3])*17
	case 4: // RGBA
		r, g, b, a = read(hex[0:1])*17, read(hex[1:2])*17, read(hex[2:3])*17, read(hex[3:4])*17
	case 6: // RRGGBB
		r, g, b = read(hex[0:2]), read(hex[2:4]), read(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b, a = read(hex[0:2]), read(hex[2:4]), read(hex[4:6]), read(hex[6:8])
	default:
		return RGBA{}, fmt.Errorf("paintkit: invalid hex color length %d", len(hex))
	}
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
