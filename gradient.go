package paintkit

import "errors"

// DefaultAngle is the gradient angle, in degrees, used when a gradient
// string carries no angle token. 180 degrees points top-to-bottom, matching
// the CSS default for linear-gradient.
const DefaultAngle = 180.0

// ErrTooFewStops is returned when a gradient resolves to fewer than two
// color stops. A gradient needs at least two anchors to define a ramp.
var ErrTooFewStops = errors.New("paintkit: gradient needs at least two color stops")

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is the structured result of parsing a linear-gradient string.
//
// Stops are kept in source order, exactly as written. Explicit offsets are
// never sorted or re-validated, so a caller that writes stops out of order
// gets them back out of order. The only normalization applied is the one in
// normalizeStops: missing offsets are filled in evenly and the final stop is
// pinned to 1.0.
//
// A Gradient is created whole by a parse call and never mutated afterwards;
// callers sharing one through [FromString] must treat it as read-only.
type Gradient struct {
	Angle float64     // Direction in degrees.
	Stops []ColorStop // Color anchors in source order.
}

// rawStop is a parser-internal (color, offset) pair. hasOffset false means
// the source text gave no percentage and normalizeStops must assign one.
type rawStop struct {
	color     RGBA
	offset    float64
	hasOffset bool
}

// normalizeStops converts raw parsed stops into final ColorStops.
//
// Stops without an explicit offset are assigned i/(n-1) using their index in
// the full list, so a gradient written entirely without percentages comes out
// evenly spaced. The last stop's offset is then overwritten to exactly 1.0
// regardless of what the input said; a gradient always terminates at the 1.0
// mark. Fails with ErrTooFewStops for fewer than two entries.
func normalizeStops(raw []rawStop) ([]ColorStop, error) {
	if len(raw) < 2 {
		return nil, ErrTooFewStops
	}
	stops := make([]ColorStop, len(raw))
	for i, rs := range raw {
		off := rs.offset
		if !rs.hasOffset {
			off = float64(i) / float64(len(raw)-1)
		}
		stops[i] = ColorStop{Offset: off, Color: rs.color}
	}
	stops[len(stops)-1].Offset = 1.0
	return stops, nil
}

// ColorAt returns the gradient color at position t along the 0-1 axis.
//
// Stops are scanned in source order and the first pair bracketing t is
// interpolated; t outside the covered range clamps to the nearest end color.
// An empty gradient samples as Transparent.
func (g *Gradient) ColorAt(t float64) RGBA {
	stops := g.Stops
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}
	t = clamp01(t)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 0; i < len(stops)-1; i++ {
		s0, s1 := stops[i], stops[i+1]
		if t < s0.Offset || t > s1.Offset {
			continue
		}
		if s1.Offset == s0.Offset {
			return s0.Color
		}
		local := (t - s0.Offset) / (s1.Offset - s0.Offset)
		return s0.Color.Lerp(s1.Color, local)
	}
	return stops[len(stops)-1].Color
}

// FourPointOffsets are the fixed sample positions used by FourPoint. They
// match the four color slots of the bundled gradient shader.
var FourPointOffsets = [4]float64{0, 1.0 / 3, 2.0 / 3, 1}

// FourPoint samples the gradient at the four fixed offsets, producing the
// exact color set a four-slot gradient shader consumes. Gradients with any
// number of stops autofill down (or up) to four points.
func (g *Gradient) FourPoint() [4]ColorStop {
	var points [4]ColorStop
	for i, off := range FourPointOffsets {
		points[i] = ColorStop{Offset: off, Color: g.ColorAt(off)}
	}
	return points
}
