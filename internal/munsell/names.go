package munsell

import "fmt"

var hueNames = map[HueCode]string{
	HueR:  "Red",
	HueYR: "Yellow-Red",
	HueY:  "Yellow",
	HueGY: "Green-Yellow",
	HueG:  "Green",
	HueBG: "Blue-Green",
	HueB:  "Blue",
	HuePB: "Purple-Blue",
	HueP:  "Purple",
	HueRP: "Red-Purple",
}

// HueName returns the English name of a hue code, or "Neutral" for codes
// outside the ten principal hues.
func HueName(code HueCode) string {
	if name, ok := hueNames[code]; ok {
		return name
	}
	return "Neutral"
}

// band labels every value at or above Min, up to the next band's Min.
type band struct {
	Min   float64
	Label string
}

// Brightness bands by Value, highest first.
var brightnessBands = []band{
	{8, "Pale"},
	{6, "Light"},
	{4, "Medium"},
	{2, "Dark"},
}

const deepest = "Deep"

// Saturation bands by Chroma, highest first.
var saturationBands = []band{
	{10, "Vivid"},
	{6, "Strong"},
	{2, "Moderate"},
}

const weakest = "Grayish"

// Suppressed qualifier pair: a Moderate Medium color is named by its hue alone.
const (
	plainBrightness = "Medium"
	plainSaturation = "Moderate"
)

// Achromatic cut-offs on Value.
const (
	whiteAbove = 8.5
	blackBelow = 1.5
)

type bandTable struct {
	bands []band
	floor string
}

func (bs bandTable) label(v float64) string {
	for _, b := range bs.bands {
		if v >= b.Min {
			return b.Label
		}
	}
	return bs.floor
}

var (
	brightness = bandTable{bands: brightnessBands, floor: deepest}
	saturation = bandTable{bands: saturationBands, floor: weakest}
)

// BrightnessBand returns the lightness qualifier for a Munsell Value.
func BrightnessBand(value float64) string {
	return brightness.label(value)
}

// SaturationBand returns the saturation qualifier for a Munsell Chroma.
func SaturationBand(chroma int) string {
	return saturation.label(float64(chroma))
}

// DescriptiveName builds a color name from a Value, a Chroma and a hue name.
//
// Achromatic colors (chroma 0) are "White" above V 8.5, "Black" below V 1.5
// and "Neutral Gray (V=x)" otherwise. Chromatic colors are named
// "<saturation> <brightness> <hue>", except that the Moderate/Medium
// combination is dropped and only the hue name remains.
func DescriptiveName(value float64, chroma int, hue string) string {
	if float64(chroma) < 0.5 {
		switch {
		case value > whiteAbove:
			return "White"
		case value < blackBelow:
			return "Black"
		default:
			return fmt.Sprintf("Neutral Gray (V=%s)", formatValue(value))
		}
	}

	s := SaturationBand(chroma)
	b := BrightnessBand(value)
	if s == plainSaturation && b == plainBrightness {
		return hue
	}
	return s + " " + b + " " + hue
}
