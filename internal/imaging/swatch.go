package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

// MaxRenderSize bounds the edge length of rendered swatches and zooms.
const MaxRenderSize = 2048

// Swatch renders a solid width×height PNG of c.
func Swatch(c munsell.RGB, width, height int) (*ImageResult, error) {
	if width < 1 || height < 1 || width > MaxRenderSize || height > MaxRenderSize {
		return nil, fmt.Errorf("swatch size %dx%d outside 1-%d", width, height, MaxRenderSize)
	}
	return encodePNG(imaging.New(width, height, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}))
}

// ZoomResult is a magnified crop around a pick point.
type ZoomResult struct {
	ImageResult
	Region Region  `json:"region"` // Source window, clipped to the image
	Scale  float64 `json:"scale"`
}

// ZoomAround crops a size×size window centred on (x, y), clipped to the
// image, and enlarges it by scale with nearest-neighbour resampling so
// individual pixels stay visible.
func ZoomAround(img image.Image, x, y, size int, scale float64) (*ZoomResult, error) {
	bounds := img.Bounds()
	if !(image.Point{X: x, Y: y}).In(bounds) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %v", x, y, bounds)
	}
	if size < 1 {
		return nil, fmt.Errorf("zoom size must be positive, got %d", size)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("zoom scale must be positive, got %v", scale)
	}

	half := size / 2
	window := image.Rect(x-half, y-half, x-half+size, y-half+size).Intersect(bounds)
	cropped := imaging.Crop(img, window)

	if scale != 1.0 {
		w := int(float64(window.Dx()) * scale)
		h := int(float64(window.Dy()) * scale)
		if w < 1 || h < 1 || w > MaxRenderSize || h > MaxRenderSize {
			return nil, fmt.Errorf("zoomed size %dx%d outside 1-%d", w, h, MaxRenderSize)
		}
		cropped = imaging.Resize(cropped, w, h, imaging.NearestNeighbor)
	}

	encoded, err := encodePNG(cropped)
	if err != nil {
		return nil, err
	}

	return &ZoomResult{
		ImageResult: *encoded,
		Region:      Region{X1: window.Min.X, Y1: window.Min.Y, X2: window.Max.X, Y2: window.Max.Y},
		Scale:       scale,
	}, nil
}
