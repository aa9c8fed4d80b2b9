package munsell

import (
	"math"
	"strconv"
)

// HueCode is a Munsell hue sector label.
type HueCode string

// The ten principal Munsell hues at step 5. HueRP is declared for naming
// but never produced: its sector is folded into the 5R wraparound.
const (
	HueR  HueCode = "5R"
	HueYR HueCode = "5YR"
	HueY  HueCode = "5Y"
	HueGY HueCode = "5GY"
	HueG  HueCode = "5G"
	HueBG HueCode = "5BG"
	HueB  HueCode = "5B"
	HuePB HueCode = "5PB"
	HueP  HueCode = "5P"
	HueRP HueCode = "5RP"

	// HueNeutral marks an achromatic coordinate.
	HueNeutral HueCode = "N"
)

// chromaScale converts CIE chroma (C*ab) to Munsell chroma steps.
const chromaScale = 5.5

// hueSector is one half-open [Lower, Upper) slice of the hue circle, in
// degrees. A sector with Lower > Upper wraps through 0.
type hueSector struct {
	Lower, Upper float64
	Code         HueCode
}

// hueSectors partitions [0,360). Order matters only for readability; the
// intervals are disjoint.
var hueSectors = []hueSector{
	{332, 38, HueR},
	{38, 69, HueYR},
	{69, 105, HueY},
	{105, 140, HueGY},
	{140, 176, HueG},
	{176, 215, HueBG},
	{215, 255, HueB},
	{255, 295, HuePB},
	{295, 332, HueP},
}

func (s hueSector) contains(h float64) bool {
	if s.Lower > s.Upper {
		return h >= s.Lower || h < s.Upper
	}
	return h >= s.Lower && h < s.Upper
}

// HueSector maps a hue angle in degrees to its sector code. Angles outside
// [0,360) are normalized first.
func HueSector(h float64) HueCode {
	h = normalizeAngle(h)
	for _, s := range hueSectors {
		if s.contains(h) {
			return s.Code
		}
	}
	// unreachable for finite h
	return HueR
}

// Coordinate is an approximate Munsell coordinate.
type Coordinate struct {
	Hue    HueCode `json:"hue"`    // Hue sector, HueNeutral when Chroma is 0
	Value  float64 `json:"value"`  // Lightness 0-10, one decimal
	Chroma int     `json:"chroma"` // Saturation steps, >= 0
	Angle  float64 `json:"angle"`  // L*a*b* hue angle in degrees, 0 when neutral
}

// Neutral reports whether the coordinate is achromatic.
func (c Coordinate) Neutral() bool {
	return float64(c.Chroma) < 0.5
}

// Notation formats the coordinate as "5YR 5.3/19", or "N 5.4/" when neutral.
func (c Coordinate) Notation() string {
	v := formatValue(c.Value)
	if c.Neutral() {
		return "N " + v + "/"
	}
	return string(c.Hue) + " " + v + "/" + strconv.Itoa(c.Chroma)
}

// Approximate derives a Munsell coordinate from an L*a*b* color.
//
// Value is L/10 clamped to [0,10] and rounded to a tenth; Chroma is
// sqrt(a²+b²)/5.5 rounded to an integer; Hue is the sector containing
// atan2(b, a). A color whose Chroma rounds to zero is neutral regardless
// of its hue angle, and a == b == 0 never reaches atan2.
func Approximate(c Lab) Coordinate {
	value := roundTenth(clamp(c.L/10, 0, 10))

	if c.A == 0 && c.B == 0 {
		return Coordinate{Hue: HueNeutral, Value: value}
	}

	chroma := int(roundHalfUp(math.Hypot(c.A, c.B) / chromaScale))
	if float64(chroma) < 0.5 {
		return Coordinate{Hue: HueNeutral, Value: value}
	}

	angle := normalizeAngle(math.Atan2(c.B, c.A) * 180 / math.Pi)
	return Coordinate{
		Hue:    HueSector(angle),
		Value:  value,
		Chroma: chroma,
		Angle:  angle,
	}
}

func normalizeAngle(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -0 and values that round up to 360 after the shift
	if h >= 360 || h == 0 {
		return 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func roundTenth(v float64) float64 {
	return roundHalfUp(v*10) / 10
}

// formatValue prints v in its shortest form: 5, 5.4, 10.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
