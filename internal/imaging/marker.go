package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

// Ring geometry, in pixels.
const (
	DefaultRingRadius = 12
	ringWidth         = 2
	haloWidth         = 2
	labelGap          = 4
)

// MarkOptions controls MarkPick.
type MarkOptions struct {
	SampleRadius int    // Averaging radius of the pick
	RingRadius   int    // Ring radius; DefaultRingRadius when 0
	RingColor    string // "#RRGGBB" override; empty picks black or white
	Label        bool   // Draw the Munsell notation next to the ring
}

// MarkResult is the annotated image plus the pick it shows.
type MarkResult struct {
	ImageResult
	Pick      PickResult `json:"pick"`
	RingColor string     `json:"ring_color"`
}

// MarkPick picks (x, y) and returns a copy of img with a ring around the
// point. The ring is black on a pure white sample and white otherwise, with
// a halo in the sampled color just outside it. With opts.Label the notation
// is written beside the ring on a dark backing.
func MarkPick(img image.Image, x, y int, opts MarkOptions) (*MarkResult, error) {
	pick, err := PickColor(img, x, y, opts.SampleRadius)
	if err != nil {
		return nil, err
	}

	radius := opts.RingRadius
	if radius == 0 {
		radius = DefaultRingRadius
	}
	if radius < ringWidth || radius > 500 {
		return nil, fmt.Errorf("ring radius %d outside %d-500", radius, ringWidth)
	}

	ring, err := ringColorFor(pick.Color.Hex, opts.RingColor)
	if err != nil {
		return nil, err
	}
	rgb := pick.Color.RGB
	halo := color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}

	bounds := img.Bounds()
	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	drawRing(canvas, x, y, radius, ring, halo)
	if opts.Label {
		drawLabel(canvas, x+radius+haloWidth+labelGap, y, pick.Color.Notation, radius)
	}

	encoded, err := encodePNG(canvas)
	if err != nil {
		return nil, err
	}

	return &MarkResult{
		ImageResult: *encoded,
		Pick:        *pick,
		RingColor:   munsell.RGB{R: ring.R, G: ring.G, B: ring.B}.Hex(),
	}, nil
}

// ringColorFor applies the override or the black-on-white rule.
func ringColorFor(sampleHex, override string) (color.NRGBA, error) {
	if override != "" {
		c, err := munsell.ParseHex(override)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("ring color: %w", err)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}
	if sampleHex == "#FFFFFF" {
		return color.NRGBA{A: 255}, nil
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nil
}

// drawRing paints an annulus of ringWidth at radius r around (cx, cy) and
// a haloWidth annulus just outside it.
func drawRing(img *image.NRGBA, cx, cy, r int, ring, halo color.NRGBA) {
	outer := r + ringWidth/2 + haloWidth
	bounds := img.Bounds()

	for dy := -outer; dy <= outer; dy++ {
		for dx := -outer; dx <= outer; dx++ {
			px, py := cx+dx, cy+dy
			if !(image.Point{X: px, Y: py}).In(bounds) {
				continue
			}
			d := math.Hypot(float64(dx), float64(dy))
			switch {
			case d >= float64(r-ringWidth/2) && d < float64(r+ringWidth/2):
				img.SetNRGBA(px, py, ring)
			case d >= float64(r+ringWidth/2) && d < float64(outer):
				img.SetNRGBA(px, py, halo)
			}
		}
	}
}

// drawLabel writes text with its baseline vertically centred on cy, starting
// at x. If the text would run off the right edge it is placed to the left of
// the ring instead.
func drawLabel(img *image.NRGBA, x, cy int, text string, ringRadius int) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(color.White), Face: face}

	width := d.MeasureString(text).Ceil()
	bounds := img.Bounds()
	if x+width+2 > bounds.Max.X {
		x = x - width - 2*(ringRadius+haloWidth+labelGap)
	}

	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	baseline := cy + (ascent-descent)/2

	backing := image.Rect(x-2, baseline-ascent-1, x+width+2, baseline+descent+1).Intersect(bounds)
	draw.Draw(img, backing, image.NewUniform(color.NRGBA{A: 180}), image.Point{}, draw.Over)

	d.Dot = fixed.P(x, baseline)
	d.DrawString(text)
}
