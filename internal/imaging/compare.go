package imaging

import (
	"image"
	"math"

	"github.com/ironsheep/munsell-mcp/internal/munsell"
)

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Difference compares two colors perceptually and by Munsell notation.
type Difference struct {
	DeltaE76     float64 `json:"delta_e_cie76"`     // Euclidean L*a*b* distance
	DeltaE2000   float64 `json:"delta_e_ciede2000"` // CIEDE2000 distance
	DeltaValue   float64 `json:"delta_value"`       // Second minus first Munsell Value
	DeltaChroma  int     `json:"delta_chroma"`      // Second minus first Munsell Chroma
	SameHue      bool    `json:"same_hue"`
	SameNotation bool    `json:"same_notation"`
}

// ColorDifference compares a and b. ΔE values come from go-colorful and are
// reported on the usual 0-100 L* scale, rounded to two decimals.
func ColorDifference(a, b munsell.RGB) Difference {
	da, db := munsell.Describe(a), munsell.Describe(b)
	ca, cb := a.Colorful(), b.Colorful()

	return Difference{
		DeltaE76:     round2(ca.DistanceCIE76(cb) * 100),
		DeltaE2000:   round2(ca.DistanceCIEDE2000(cb) * 100),
		DeltaValue:   math.Round((db.Value-da.Value)*10) / 10,
		DeltaChroma:  db.Chroma - da.Chroma,
		SameHue:      da.Hue == db.Hue,
		SameNotation: da.Notation == db.Notation,
	}
}

// CompareResult compares the colors at two points of one image.
type CompareResult struct {
	First          PickResult `json:"first"`
	Second         PickResult `json:"second"`
	DistancePixels float64    `json:"distance_pixels"`
	Difference
}

// ComparePoints picks p1 and p2 with the same radius and compares them.
func ComparePoints(img image.Image, p1, p2 Point, radius int) (*CompareResult, error) {
	first, err := PickColor(img, p1.X, p1.Y, radius)
	if err != nil {
		return nil, err
	}
	second, err := PickColor(img, p2.X, p2.Y, radius)
	if err != nil {
		return nil, err
	}

	dx, dy := float64(p2.X-p1.X), float64(p2.Y-p1.Y)

	return &CompareResult{
		First:          *first,
		Second:         *second,
		DistancePixels: round2(math.Hypot(dx, dy)),
		Difference:     ColorDifference(first.Color.RGB, second.Color.RGB),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
