package paintkit

import (
	"errors"
	"testing"
)

func TestParseLinearGradient_HexWithAngle(t *testing.T) {
	g, err := ParseLinearGradient(
		"linear-gradient(90deg, #0380FD 0%, #406FC8 19.05%, #2B398F 49.48%, #FF77C1 100%);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}

	if g.Angle != 90 {
		t.Errorf("angle = %v, want 90", g.Angle)
	}
	if len(g.Stops) != 4 {
		t.Fatalf("got %d stops, want 4", len(g.Stops))
	}

	wantOffsets := []float64{0, 0.1905, 0.4948, 1.0}
	for i, w := range wantOffsets {
		if absDiff(g.Stops[i].Offset, w) > colorEpsilon {
			t.Errorf("stop %d offset = %v, want %v", i, g.Stops[i].Offset, w)
		}
	}
	// Last stop is pinned to exactly 1.0 (already 1.0 here).
	if g.Stops[3].Offset != 1.0 {
		t.Errorf("last offset = %v, want exactly 1.0", g.Stops[3].Offset)
	}

	wantColors := []RGBA{Hex("#0380FD"), Hex("#406FC8"), Hex("#2B398F"), Hex("#FF77C1")}
	for i, w := range wantColors {
		if !colorsEqual(g.Stops[i].Color, w, colorEpsilon) {
			t.Errorf("stop %d color = %+v, want %+v", i, g.Stops[i].Color, w)
		}
	}
}

func TestParseLinearGradient_RGBAFormDefaultAngle(t *testing.T) {
	g, err := ParseLinearGradient(
		"linear-gradient(rgba(255,0,0,1) 0%, rgba(0,0,255,1) 100%);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}

	if g.Angle != DefaultAngle {
		t.Errorf("angle = %v, want default %v", g.Angle, DefaultAngle)
	}
	if len(g.Stops) != 2 {
		t.Fatalf("got %d stops, want 2", len(g.Stops))
	}
	if !colorsEqual(g.Stops[0].Color, Red, colorEpsilon) {
		t.Errorf("stop 0 color = %+v, want red", g.Stops[0].Color)
	}
	if !colorsEqual(g.Stops[1].Color, Blue, colorEpsilon) {
		t.Errorf("stop 1 color = %+v, want blue", g.Stops[1].Color)
	}
	if g.Stops[0].Offset != 0 || g.Stops[1].Offset != 1 {
		t.Errorf("offsets = [%v %v], want [0 1]", g.Stops[0].Offset, g.Stops[1].Offset)
	}
}

func TestParseLinearGradient_ZeroToOneChannels(t *testing.T) {
	// rgba channels written on the 0-1 scale pass through unscaled.
	g, err := ParseLinearGradient(
		"linear-gradient(rgba(1, 0, 0, 0.5) 0%, rgba(0.25, 0.5, 1, 0.5) 100%);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}
	want0 := RGBA{R: 1, G: 0, B: 0, A: 0.5}
	want1 := RGBA{R: 0.25, G: 0.5, B: 1, A: 0.5}
	if !colorsEqual(g.Stops[0].Color, want0, colorEpsilon) {
		t.Errorf("stop 0 color = %+v, want %+v", g.Stops[0].Color, want0)
	}
	if !colorsEqual(g.Stops[1].Color, want1, colorEpsilon) {
		t.Errorf("stop 1 color = %+v, want %+v", g.Stops[1].Color, want1)
	}
}

func TestParseLinearGradient_UnspecifiedOffsets(t *testing.T) {
	// No percentages at all: stops spread evenly, last pinned to 1.0.
	g, err := ParseLinearGradient("linear-gradient(red, lime, blue);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}
	want := []float64{0, 0.5, 1}
	for i, w := range want {
		if absDiff(g.Stops[i].Offset, w) > colorEpsilon {
			t.Errorf("stop %d offset = %v, want %v", i, g.Stops[i].Offset, w)
		}
	}
}

func TestParseLinearGradient_StructuralFailures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing prefix", "radial-gradient(red, blue);", ErrNoGradient},
		{"missing close", "linear-gradient(red, blue", ErrNoGradient},
		{"empty string", "", ErrNoGradient},
		{"no stops", "linear-gradient(90deg);", ErrTooFewStops},
		{"one stop", "linear-gradient(red);", ErrTooFewStops},
		{"only unknown colors", "linear-gradient(bogus, nonsense);", ErrTooFewStops},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ParseLinearGradient(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseLinearGradient(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if g != nil {
				t.Errorf("ParseLinearGradient(%q) returned partial result %+v", tt.input, g)
			}
		})
	}
}

func TestParseLinearGradient_TruncatedRGBA(t *testing.T) {
	// An rgba( token as the last token must fail cleanly, not panic.
	g, err := ParseLinearGradient("linear-gradient(red, rgba(255);")
	if !errors.Is(err, ErrTruncatedRGBA) {
		t.Errorf("error = %v, want ErrTruncatedRGBA", err)
	}
	if g != nil {
		t.Errorf("got partial result %+v", g)
	}
}

func TestParseLinearGradient_SoftFailures(t *testing.T) {
	// A garbled angle is ignored, leaving the default in place.
	g, err := ParseLinearGradient("linear-gradient(ninetydeg, red, blue);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}
	if g.Angle != DefaultAngle {
		t.Errorf("angle = %v, want default %v after unparsable angle", g.Angle, DefaultAngle)
	}

	// An unknown color word is skipped; the remaining stops still parse.
	g, err = ParseLinearGradient("linear-gradient(notacolor, red, blue);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}
	if len(g.Stops) != 2 {
		t.Errorf("got %d stops, want 2 after skipping unknown color", len(g.Stops))
	}

	// A garbled rgba channel falls back to 0 (1 for alpha).
	g, err = ParseLinearGradient("linear-gradient(rgba(x, 0, 255, y) 0%, blue 100%);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}
	want := RGBA{R: 0, G: 0, B: 1, A: 1}
	if !colorsEqual(g.Stops[0].Color, want, colorEpsilon) {
		t.Errorf("stop 0 color = %+v, want %+v", g.Stops[0].Color, want)
	}
}

func TestParseLinearGradient_NegativeAngle(t *testing.T) {
	g, err := ParseLinearGradient("linear-gradient(-45deg, red, blue);")
	if err != nil {
		t.Fatalf("ParseLinearGradient: %v", err)
	}
	if g.Angle != -45 {
		t.Errorf("angle = %v, want -45", g.Angle)
	}
}

func TestGradientSetString(t *testing.T) {
	var g Gradient
	if !g.SetString("linear-gradient(90deg, red, blue);") {
		t.Fatal("SetString returned false for a valid gradient")
	}
	if g.Angle != 90 || len(g.Stops) != 2 {
		t.Errorf("SetString result = %+v", g)
	}

	before := g
	if g.SetString("not a gradient") {
		t.Error("SetString returned true for invalid input")
	}
	if g.Angle != before.Angle || len(g.Stops) != len(before.Stops) {
		t.Error("failed SetString modified the gradient")
	}
}

func TestTokenCursor(t *testing.T) {
	cur := newTokenCursor("a,b,c")
	if cur.done() {
		t.Fatal("cursor done before consuming anything")
	}
	if got := cur.next(); got != "a" {
		t.Errorf("next() = %q, want %q", got, "a")
	}

	// Not enough tokens left: take must refuse without consuming.
	if _, ok := cur.take(3); ok {
		t.Error("take(3) succeeded with only 2 tokens left")
	}
	toks, ok := cur.take(2)
	if !ok || len(toks) != 2 || toks[0] != "b" || toks[1] != "c" {
		t.Errorf("take(2) = %v, %v", toks, ok)
	}
	if !cur.done() {
		t.Error("cursor not done after consuming all tokens")
	}
}

func TestFromStringCaching(t *testing.T) {
	const input = "linear-gradient(0deg, #102030 0%, #405060 100%);"

	g1, err := FromString(input)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}
	g2, err := FromString(input)
	if err != nil {
		t.Fatalf("FromString (cached): %v", err)
	}
	if g1 != g2 {
		t.Error("FromString did not return the cached *Gradient on repeat parse")
	}

	// Failures are not cached and keep failing.
	if _, err := FromString("nope"); !errors.Is(err, ErrNoGradient) {
		t.Errorf("FromString(invalid) error = %v, want ErrNoGradient", err)
	}
}
