package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

func TestPickColorExactPixel(t *testing.T) {
	img := quadrantImage(20, 20)

	tests := []struct {
		name     string
		x, y     int
		hex      string
		notation string
		label    string
	}{
		{"red quadrant", 2, 3, "#FF0000", "5YR 5.3/19", "Vivid Medium Yellow-Red"},
		{"green quadrant", 15, 2, "#00FF00", "5GY 8.8/22", "Vivid Pale Green-Yellow"},
		{"blue quadrant", 4, 17, "#0000FF", "5P 3.2/24", "Vivid Dark Purple"},
		{"white quadrant", 19, 19, "#FFFFFF", "N 10/", "White"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pick, err := PickColor(img, tt.x, tt.y, 0)
			if err != nil {
				t.Fatalf("PickColor failed: %v", err)
			}
			if pick.X != tt.x || pick.Y != tt.y || pick.Radius != 0 {
				t.Errorf("echoed point: got (%d,%d) r=%d", pick.X, pick.Y, pick.Radius)
			}
			if pick.Alpha != 255 {
				t.Errorf("Alpha: got %d, want 255", pick.Alpha)
			}
			if pick.Color.Hex != tt.hex {
				t.Errorf("Hex: got %s, want %s", pick.Color.Hex, tt.hex)
			}
			if pick.Color.Notation != tt.notation {
				t.Errorf("Notation: got %s, want %s", pick.Color.Notation, tt.notation)
			}
			if pick.Color.Name != tt.label {
				t.Errorf("Name: got %s, want %s", pick.Color.Name, tt.label)
			}
		})
	}
}

func TestPickColorMatchesPipeline(t *testing.T) {
	c := color.NRGBA{R: 128, G: 64, B: 32, A: 255}
	img := solidImage(8, 8, c)

	pick, err := PickColor(img, 4, 4, 0)
	if err != nil {
		t.Fatalf("PickColor failed: %v", err)
	}
	if diff := cmp.Diff(munsell.Convert(128, 64, 32), pick.Color); diff != "" {
		t.Errorf("description mismatch (-want +got):\n%s", diff)
	}
}

func TestPickColorAlphaIgnoredForNaming(t *testing.T) {
	img := solidImage(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	pick, err := PickColor(img, 1, 1, 0)
	if err != nil {
		t.Fatalf("PickColor failed: %v", err)
	}
	if pick.Alpha != 128 {
		t.Errorf("Alpha: got %d, want 128", pick.Alpha)
	}
	if pick.Color.Hex != "#C86432" {
		t.Errorf("Hex: got %s, want #C86432", pick.Color.Hex)
	}
	if pick.Color.Notation != munsell.Convert(200, 100, 50).Notation {
		t.Errorf("Notation: got %s, want the opaque notation", pick.Color.Notation)
	}
}

func TestPickColorAveraged(t *testing.T) {
	t.Run("uniform window keeps the color", func(t *testing.T) {
		img := solidImage(20, 20, color.NRGBA{R: 60, G: 90, B: 150, A: 255})
		pick, err := PickColor(img, 10, 10, 3)
		if err != nil {
			t.Fatalf("PickColor failed: %v", err)
		}
		if pick.Color.Hex != "#3C5A96" {
			t.Errorf("Hex: got %s, want #3C5A96", pick.Color.Hex)
		}
		if pick.Color.Notation != "5PB 3.9/7" {
			t.Errorf("Notation: got %s, want 5PB 3.9/7", pick.Color.Notation)
		}
	})

	t.Run("window clipped at the corner", func(t *testing.T) {
		img := solidImage(10, 10, color.NRGBA{R: 255, G: 255, B: 0, A: 255})
		pick, err := PickColor(img, 0, 0, 5)
		if err != nil {
			t.Fatalf("PickColor failed: %v", err)
		}
		if pick.Color.Hex != "#FFFF00" {
			t.Errorf("Hex: got %s, want #FFFF00", pick.Color.Hex)
		}
	})

	t.Run("checkerboard averages to gray", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
		for y := 0; y < 10; y++ {
			for x := 0; x < 10; x++ {
				if (x+y)%2 == 0 {
					img.Set(x, y, color.White)
				} else {
					img.Set(x, y, color.Black)
				}
			}
		}

		// 5 white and 4 black pixels in the 3×3 window: 255*5/9 ≈ 141.7.
		pick, err := PickColor(img, 5, 5, 1)
		if err != nil {
			t.Fatalf("PickColor failed: %v", err)
		}
		rgb := pick.Color.RGB
		for _, ch := range []uint8{rgb.R, rgb.G, rgb.B} {
			if ch < 141 || ch > 142 {
				t.Errorf("averaged channel: got %d, want 141-142 (rgb %+v)", ch, rgb)
			}
		}
		if !pick.Color.Neutral {
			t.Errorf("averaged gray should be neutral, got %s", pick.Color.Notation)
		}
	})
}

func TestPickColorErrors(t *testing.T) {
	img := solidImage(10, 10, color.White)

	tests := []struct {
		name   string
		x, y   int
		radius int
	}{
		{"negative x", -1, 5, 0},
		{"negative y", 5, -1, 0},
		{"x at width", 10, 5, 0},
		{"y at height", 5, 10, 0},
		{"negative radius", 5, 5, -1},
		{"radius too large", 5, 5, MaxSampleRadius + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := PickColor(img, tt.x, tt.y, tt.radius); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

type fixedSampler struct {
	rgb munsell.RGB
	err error
}

func (s fixedSampler) Sample(x, y int) (munsell.RGB, error) {
	return s.rgb, s.err
}

func TestDescribeSampler(t *testing.T) {
	d, err := Describe(fixedSampler{rgb: munsell.RGB{R: 0, G: 255, B: 255}}, 0, 0)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if d.Notation != "5BG 9.1/9" || d.Name != "Strong Pale Blue-Green" {
		t.Errorf("got %s %q, want 5BG 9.1/9 \"Strong Pale Blue-Green\"", d.Notation, d.Name)
	}

	boom := errors.New("no frame")
	if _, err := Describe(fixedSampler{err: boom}, 0, 0); !errors.Is(err, boom) {
		t.Errorf("expected sampler error, got %v", err)
	}
}

func TestImageSampler(t *testing.T) {
	s := ImageSampler{Image: quadrantImage(10, 10)}

	rgb, err := s.Sample(8, 8)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if rgb != (munsell.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("got %+v, want white", rgb)
	}

	if _, err := s.Sample(10, 0); err == nil {
		t.Error("expected error for out of bounds sample")
	}
}

func TestPickColorsMulti(t *testing.T) {
	img := quadrantImage(20, 20)

	points := []LabeledPoint{
		{X: 15, Y: 15, Label: "sky"},
		{X: 2, Y: 2},
		{X: 15, Y: 2, Label: "leaf"},
	}

	res, err := PickColorsMulti(img, points, 1)
	if err != nil {
		t.Fatalf("PickColorsMulti failed: %v", err)
	}
	if len(res.Picks) != len(points) {
		t.Fatalf("got %d picks, want %d", len(res.Picks), len(points))
	}

	want := []struct {
		label string
		hex   string
	}{
		{"sky", "#FFFFFF"},
		{"", "#FF0000"},
		{"leaf", "#00FF00"},
	}
	for i, w := range want {
		p := res.Picks[i]
		if p.Label != w.label || p.Color.Hex != w.hex {
			t.Errorf("pick %d: got %q %s, want %q %s", i, p.Label, p.Color.Hex, w.label, w.hex)
		}
		if p.X != points[i].X || p.Y != points[i].Y || p.Radius != 1 {
			t.Errorf("pick %d: echoed (%d,%d) r=%d", i, p.X, p.Y, p.Radius)
		}
	}

	bad := append(points, LabeledPoint{X: 50, Y: 50})
	if _, err := PickColorsMulti(img, bad, 0); err == nil {
		t.Error("expected error when one point is outside the image")
	}
}

func TestDominantColors(t *testing.T) {
	img := quadrantImage(10, 10)

	res, err := DominantColors(img, 10, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if res.TotalPixels != 100 {
		t.Errorf("TotalPixels: got %d, want 100", res.TotalPixels)
	}

	// Equal shares are ordered by hex; 255 quantizes to 240.
	wantHex := []string{"#0000F0", "#00F000", "#F00000", "#F0F0F0"}
	if len(res.Colors) != len(wantHex) {
		t.Fatalf("got %d colors, want %d", len(res.Colors), len(wantHex))
	}
	for i, c := range res.Colors {
		if c.Hex != wantHex[i] {
			t.Errorf("color %d: got %s, want %s", i, c.Hex, wantHex[i])
		}
		if c.Percentage != 25 {
			t.Errorf("color %d: got %.2f%%, want 25%%", i, c.Percentage)
		}
		d := munsell.Describe(c.RGB)
		if c.Notation != d.Notation || c.Name != d.Name {
			t.Errorf("color %d: got %s %q, want %s %q", i, c.Notation, c.Name, d.Notation, d.Name)
		}
	}
}

func TestDominantColorsCountAndRegion(t *testing.T) {
	img := quadrantImage(10, 10)

	res, err := DominantColors(img, 2, nil)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(res.Colors) != 2 {
		t.Errorf("got %d colors, want 2", len(res.Colors))
	}

	res, err = DominantColors(img, 5, &Region{X1: 0, Y1: 0, X2: 5, Y2: 5})
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}
	if res.TotalPixels != 25 {
		t.Errorf("TotalPixels: got %d, want 25", res.TotalPixels)
	}
	if len(res.Colors) != 1 || res.Colors[0].Hex != "#F00000" || res.Colors[0].Percentage != 100 {
		t.Errorf("region palette: got %+v, want only #F00000 at 100%%", res.Colors)
	}
}

func TestDominantColorsErrors(t *testing.T) {
	img := quadrantImage(10, 10)

	tests := []struct {
		name   string
		count  int
		region *Region
	}{
		{"zero count", 0, nil},
		{"empty region", 3, &Region{X1: 5, Y1: 5, X2: 5, Y2: 8}},
		{"inverted region", 3, &Region{X1: 8, Y1: 8, X2: 2, Y2: 2}},
		{"region past edge", 3, &Region{X1: 0, Y1: 0, X2: 11, Y2: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DominantColors(img, tt.count, tt.region); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestPickColorMatchesImageSampler(t *testing.T) {
	img := quadrantImage(20, 20)
	img.Set(9, 9, color.NRGBA{R: 255, A: 64})

	for _, radius := range []int{0, 1, 3} {
		pick, err := PickColor(img, 9, 9, radius)
		if err != nil {
			t.Fatalf("PickColor radius %d failed: %v", radius, err)
		}
		want, err := Describe(ImageSampler{Image: img, Radius: radius}, 9, 9)
		if err != nil {
			t.Fatalf("Describe radius %d failed: %v", radius, err)
		}
		if diff := cmp.Diff(want, pick.Color); diff != "" {
			t.Errorf("radius %d: description mismatch (-sampler +pick):\n%s", radius, diff)
		}
		// Alpha always comes from the picked pixel itself.
		if pick.Alpha != 64 {
			t.Errorf("radius %d: Alpha got %d, want 64", radius, pick.Alpha)
		}
	}
}
