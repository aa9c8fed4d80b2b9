package imaging

import (
	"math"
	"testing"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

func TestColorDifferenceIdentical(t *testing.T) {
	c := munsell.RGB{R: 128, G: 64, B: 32}

	d := ColorDifference(c, c)
	if d.DeltaE76 != 0 || d.DeltaE2000 != 0 {
		t.Errorf("ΔE: got %v / %v, want 0", d.DeltaE76, d.DeltaE2000)
	}
	if d.DeltaValue != 0 || d.DeltaChroma != 0 {
		t.Errorf("Munsell deltas: got %v / %d, want 0", d.DeltaValue, d.DeltaChroma)
	}
	if !d.SameHue || !d.SameNotation {
		t.Error("identical colors should share hue and notation")
	}
}

func TestColorDifferenceBlackWhite(t *testing.T) {
	d := ColorDifference(munsell.RGB{}, munsell.RGB{R: 255, G: 255, B: 255})

	if math.Abs(d.DeltaE76-100) > 0.05 {
		t.Errorf("ΔE76: got %v, want about 100", d.DeltaE76)
	}
	if d.DeltaE2000 <= 0 {
		t.Errorf("ΔE2000: got %v, want positive", d.DeltaE2000)
	}
	if d.DeltaValue != 10 {
		t.Errorf("DeltaValue: got %v, want 10", d.DeltaValue)
	}
	if d.DeltaChroma != 0 {
		t.Errorf("DeltaChroma: got %d, want 0", d.DeltaChroma)
	}
	if !d.SameHue {
		t.Error("two neutrals should share the neutral hue")
	}
	if d.SameNotation {
		t.Error("black and white should not share a notation")
	}
}

func TestColorDifferenceHue(t *testing.T) {
	// 5YR 5.3/19 against 5P 3.2/24.
	d := ColorDifference(munsell.RGB{R: 255}, munsell.RGB{B: 255})

	if d.SameHue {
		t.Error("red and blue should not share a hue")
	}
	if d.DeltaValue != -2.1 {
		t.Errorf("DeltaValue: got %v, want -2.1", d.DeltaValue)
	}
	if d.DeltaChroma != 5 {
		t.Errorf("DeltaChroma: got %d, want 5", d.DeltaChroma)
	}
}

func TestComparePoints(t *testing.T) {
	img := quadrantImage(20, 20)

	res, err := ComparePoints(img, Point{X: 2, Y: 2}, Point{X: 15, Y: 15}, 0)
	if err != nil {
		t.Fatalf("ComparePoints failed: %v", err)
	}
	if res.First.Color.Hex != "#FF0000" || res.Second.Color.Hex != "#FFFFFF" {
		t.Errorf("colors: got %s and %s", res.First.Color.Hex, res.Second.Color.Hex)
	}
	if res.DistancePixels != 18.38 {
		t.Errorf("DistancePixels: got %v, want 18.38", res.DistancePixels)
	}
	if res.SameHue || res.SameNotation {
		t.Error("red and white should differ in hue and notation")
	}
	if res.DeltaE76 <= 0 {
		t.Errorf("DeltaE76: got %v, want positive", res.DeltaE76)
	}

	if _, err := ComparePoints(img, Point{X: 2, Y: 2}, Point{X: 25, Y: 2}, 0); err == nil {
		t.Error("expected error for second point outside the image")
	}
	if _, err := ComparePoints(img, Point{X: -1, Y: 2}, Point{X: 5, Y: 2}, 0); err == nil {
		t.Error("expected error for first point outside the image")
	}
}
