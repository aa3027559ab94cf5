package paintkit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Structural parse errors. Anything else that goes wrong inside a gradient
// string (a bad channel number, an unknown color word, a garbled angle) is
// absorbed with a local default instead of failing the parse.
var (
	// ErrNoGradient is returned when the input does not contain the
	// "linear-gradient(" marker followed by a closing ");".
	ErrNoGradient = errors.New("paintkit: input is not a linear-gradient call")

	// ErrTruncatedRGBA is returned when an rgba( token is not followed by
	// the three continuation tokens its comma-split form requires.
	ErrTruncatedRGBA = errors.New("paintkit: rgba() color is missing channel tokens")
)

const (
	gradientMarker = "linear-gradient("
	gradientClose  = ");"
	rgbaMarker     = "rgba("
)

// extractParams returns the parameter text between "linear-gradient(" and
// the first subsequent ");". Extraction is purely textual: the close marker
// is the two-character sequence, not a balanced parenthesis.
func extractParams(s string) (string, error) {
	start := strings.Index(s, gradientMarker)
	if start < 0 {
		return "", ErrNoGradient
	}
	rest := s[start+len(gradientMarker):]
	end := strings.Index(rest, gradientClose)
	if end < 0 {
		return "", ErrNoGradient
	}
	return rest[:end], nil
}

// tokenCursor walks the comma-separated parameter tokens of a gradient call.
// The rgba( form spans four consecutive tokens, which the orchestrator pulls
// through take instead of indexing past the end of a slice.
type tokenCursor struct {
	tokens []string
	pos    int
}

func newTokenCursor(params string) *tokenCursor {
	return &tokenCursor{tokens: strings.Split(params, ",")}
}

func (c *tokenCursor) done() bool {
	return c.pos >= len(c.tokens)
}

// next consumes and returns the next token.
func (c *tokenCursor) next() string {
	tok := c.tokens[c.pos]
	c.pos++
	return tok
}

// take consumes the next n tokens, reporting false without consuming
// anything if fewer than n remain.
func (c *tokenCursor) take(n int) ([]string, bool) {
	if c.pos+n > len(c.tokens) {
		return nil, false
	}
	toks := c.tokens[c.pos : c.pos+n]
	c.pos += n
	return toks, true
}

// ParseLinearGradient parses a CSS-style linear-gradient string of the form
//
//	linear-gradient(<angle>deg, <color>[ <stop>%], <color>[ <stop>%], ...);
//
// where <color> is a hex code, a CSS named color, or rgba(r, g, b, a[ stop%]).
// rgba channels may be written 0-1 or 0-255 (see [NormalizeChannel]).
//
// The returned Gradient has stop offsets normalized per [Gradient]: missing
// offsets are filled evenly and the final offset is forced to exactly 1.0.
// Absent an angle token the angle defaults to [DefaultAngle].
func ParseLinearGradient(input string) (*Gradient, error) {
	params, err := extractParams(input)
	if err != nil {
		return nil, err
	}

	angle := DefaultAngle
	var raw []rawStop

	cur := newTokenCursor(params)
	for !cur.done() {
		tok := cur.next()
		switch {
		case strings.Contains(tok, "deg"):
			parseAngle(tok, &angle)
		case strings.Contains(tok, rgbaMarker):
			rest, ok := cur.take(3)
			if !ok {
				return nil, ErrTruncatedRGBA
			}
			st, err := parseRGBAStop(tok, rest)
			if err != nil {
				return nil, err
			}
			raw = append(raw, st)
		default:
			st, ok, err := parseLiteralStop(tok)
			if err != nil {
				return nil, err
			}
			if ok {
				raw = append(raw, st)
			}
		}
	}

	stops, err := normalizeStops(raw)
	if err != nil {
		return nil, err
	}
	return &Gradient{Angle: angle, Stops: stops}, nil
}

// SetString parses the given linear-gradient string into g, reporting
// success. On failure g is left unchanged; no partial result is applied.
// This is the boolean boundary for callers that do not care why a string
// was rejected; use ParseLinearGradient to get the reason.
func (g *Gradient) SetString(input string) bool {
	parsed, err := ParseLinearGradient(input)
	if err != nil {
		return false
	}
	*g = *parsed
	return true
}

// parseAngle updates angle from a token containing "deg". An unparsable
// numeric prefix leaves the current angle in place; angle garbling is never
// fatal to the surrounding gradient.
func parseAngle(tok string, angle *float64) {
	num := strings.TrimSpace(strings.Replace(tok, "deg", "", 1))
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		Logger().Debug("paintkit: ignoring unparsable angle token", "token", tok)
		return
	}
	*angle = v
}

// parseRGBAStop decodes the four-token rgba form. tok is the token carrying
// the "rgba(" marker (its remainder is the red channel); rest holds the
// green, blue, and alpha tokens. The alpha token is split on ") " to peel
// off a trailing stop percentage, e.g. "1) 50%".
func parseRGBAStop(tok string, rest []string) (rawStop, error) {
	red := tok[strings.Index(tok, rgbaMarker)+len(rgbaMarker):]
	st := rawStop{color: RGBA{
		R: parseChannel(red, 0),
		G: parseChannel(rest[0], 0),
		B: parseChannel(rest[1], 0),
	}}

	parts := strings.SplitN(rest[2], ") ", 2)
	st.color.A = parseChannel(parts[0], 1)
	if len(parts) == 2 {
		off, err := parseOffset(parts[1])
		if err != nil {
			return rawStop{}, err
		}
		st.offset, st.hasOffset = off, true
	}
	return st, nil
}

// parseLiteralStop decodes a "<color>[ <stop>%]" token where <color> is a
// hex code or named color. An undecodable color word contributes nothing
// (ok is false); a malformed stop percentage is a structural error.
func parseLiteralStop(tok string) (st rawStop, ok bool, err error) {
	fields := strings.Fields(tok)
	if len(fields) == 0 {
		return rawStop{}, false, nil
	}
	c, cerr := ParseColor(fields[0])
	if cerr != nil {
		Logger().Debug("paintkit: skipping unrecognized color token", "token", fields[0])
		return rawStop{}, false, nil
	}
	st = rawStop{color: c}
	if len(fields) > 1 {
		off, oerr := parseOffset(fields[1])
		if oerr != nil {
			return rawStop{}, false, oerr
		}
		st.offset, st.hasOffset = off, true
	}
	return st, true, nil
}

// parseChannel parses one numeric color channel and normalizes it onto
// [0, 1]. Unparsable channels fall back to the given default: 0 for color
// channels, 1 for alpha, so a garbled channel darkens rather than aborts.
func parseChannel(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return NormalizeChannel(v)
}

// parseOffset parses a stop percentage like "19.05%" onto the 0-1 axis.
func parseOffset(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("paintkit: invalid stop offset %q: %w", s, err)
	}
	return v / 100, nil
}
