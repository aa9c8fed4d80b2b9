package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

// MaxSampleRadius bounds the averaging window of a pick.
const MaxSampleRadius = 50

// Sampler returns the color shown at one point of a display surface.
//
// It is the only capability the Munsell pipeline needs from the outside
// world: whatever holds the pixels (a decoded photo, a video frame, a test
// fixture) turns a click point into one RGB triple.
type Sampler interface {
	Sample(x, y int) (munsell.RGB, error)
}

// ImageSampler samples a decoded image, averaging over Radius pixels
// around the point when Radius > 0.
type ImageSampler struct {
	Image  image.Image
	Radius int
}

// Sample implements Sampler.
func (s ImageSampler) Sample(x, y int) (munsell.RGB, error) {
	c, err := sampleNRGBA(s.Image, x, y, s.Radius)
	if err != nil {
		return munsell.RGB{}, err
	}
	return munsell.RGB{R: c.R, G: c.G, B: c.B}, nil
}

// Describe samples s at (x, y) and runs the Munsell pipeline on the result.
func Describe(s Sampler, x, y int) (munsell.Description, error) {
	rgb, err := s.Sample(x, y)
	if err != nil {
		return munsell.Description{}, err
	}
	return munsell.Describe(rgb), nil
}

// sampleNRGBA reads the non-premultiplied color at (x, y). With radius > 0
// it averages the window around the point, clipped to the image, by
// box-filtering the window down to a single pixel.
func sampleNRGBA(img image.Image, x, y, radius int) (color.NRGBA, error) {
	bounds := img.Bounds()
	if !(image.Point{X: x, Y: y}).In(bounds) {
		return color.NRGBA{}, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, bounds)
	}
	if radius < 0 || radius > MaxSampleRadius {
		return color.NRGBA{}, fmt.Errorf("sample radius %d outside 0-%d", radius, MaxSampleRadius)
	}

	if radius == 0 {
		return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA), nil
	}

	window := image.Rect(x-radius, y-radius, x+radius+1, y+radius+1).Intersect(bounds)
	averaged := imaging.Resize(imaging.Crop(img, window), 1, 1, imaging.Box)

	return averaged.NRGBAAt(0, 0), nil
}

// PickResult is one sampled point with its Munsell description.
type PickResult struct {
	X      int                 `json:"x"`      // X coordinate that was sampled
	Y      int                 `json:"y"`      // Y coordinate that was sampled
	Radius int                 `json:"radius"` // Averaging radius, 0 for a single pixel
	Alpha  uint8               `json:"alpha"`  // Alpha of the pixel at (X, Y), ignored for naming
	Color  munsell.Description `json:"color"`  // Notation, name, hex and intermediates
}

// PickColor samples (x, y) and describes the color.
//
// Parameters:
//   - img: The image to sample.
//   - x, y: Pixel coordinates (0-based, top-left origin).
//   - radius: 0 for the exact pixel, or the half-size of an averaging window
//     (at most MaxSampleRadius).
//
// Returns an error if the point lies outside the image or the radius is out
// of range. The Munsell conversion itself cannot fail.
func PickColor(img image.Image, x, y, radius int) (*PickResult, error) {
	d, err := Describe(ImageSampler{Image: img, Radius: radius}, x, y)
	if err != nil {
		return nil, err
	}

	return &PickResult{
		X:      x,
		Y:      y,
		Radius: radius,
		Alpha:  color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA).A,
		Color:  d,
	}, nil
}

// LabeledPoint is a pixel coordinate with an optional caller label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledPick is a PickResult with the label of the point it came from.
type LabeledPick struct {
	Label string `json:"label,omitempty"`
	PickResult
}

// MultiPickResult holds picks in the order the points were given.
type MultiPickResult struct {
	Picks []LabeledPick `json:"picks"`
}

// PickColorsMulti picks every point with the same radius. Any point outside
// the image fails the whole call; no partial results are returned.
func PickColorsMulti(img image.Image, points []LabeledPoint, radius int) (*MultiPickResult, error) {
	picks := make([]LabeledPick, 0, len(points))

	for _, p := range points {
		pick, err := PickColor(img, p.X, p.Y, radius)
		if err != nil {
			return nil, fmt.Errorf("failed to pick point (%d,%d): %w", p.X, p.Y, err)
		}
		picks = append(picks, LabeledPick{Label: p.Label, PickResult: *pick})
	}

	return &MultiPickResult{Picks: picks}, nil
}

// Region is a rectangle within an image; (X1,Y1) inclusive, (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts r to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// ColorFrequency is one palette entry of DominantColors.
type ColorFrequency struct {
	Hex        string      `json:"hex"`        // Quantized color "#RRGGBB"
	Percentage float64     `json:"percentage"` // Share of pixels, 0-100
	RGB        munsell.RGB `json:"rgb"`        // Quantized components
	Notation   string      `json:"notation"`   // Munsell notation of the quantized color
	Name       string      `json:"name"`       // Descriptive name of the quantized color
}

// DominantColorsResult lists palette entries, most frequent first.
type DominantColorsResult struct {
	Colors      []ColorFrequency `json:"colors"`
	TotalPixels int              `json:"total_pixels"`
}

// DominantColors returns the count most frequent colors of img, or of region
// when it is non-nil, each with its Munsell notation and name.
//
// # Color Quantization
//
// Channels are quantized to multiples of 16 (quantized = c / 16 * 16) so that
// near-identical colors are counted together. Ties in frequency are broken by
// hex string so the palette order is stable.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	bounds := img.Bounds()
	if region != nil {
		r := region.Rect()
		if r.Empty() {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		if !r.In(bounds) {
			return nil, fmt.Errorf("region %v outside image bounds %v", r, bounds)
		}
		bounds = r
	}

	counts := make(map[munsell.RGB]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			counts[munsell.RGB{R: c.R / 16 * 16, G: c.G / 16 * 16, B: c.B / 16 * 16}]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for rgb, n := range counts {
		d := munsell.Describe(rgb)
		colors = append(colors, ColorFrequency{
			Hex:        d.Hex,
			Percentage: float64(n) / float64(total) * 100,
			RGB:        rgb,
			Notation:   d.Notation,
			Name:       d.Name,
		})
	}

	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Hex < colors[j].Hex
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors, TotalPixels: total}, nil
}
