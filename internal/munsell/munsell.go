package munsell

// Description is the complete result of converting one sRGB color.
//
// Notation and Name are the primary outputs; the remaining fields expose the
// intermediate values for callers that display them.
type Description struct {
	Notation string  `json:"notation"`  // e.g. "5YR 5.3/19" or "N 5.4/"
	Name     string  `json:"name"`      // e.g. "Vivid Medium Yellow-Red"
	Hex      string  `json:"hex"`       // "#RRGGBB"
	RGB      RGB     `json:"rgb"`       // Input color
	Hue      HueCode `json:"hue"`       // Hue sector, "N" when neutral
	HueName  string  `json:"hue_name"`  // English hue name, "Neutral" when neutral
	Value    float64 `json:"value"`     // Munsell Value 0-10
	Chroma   int     `json:"chroma"`    // Munsell Chroma
	Neutral  bool    `json:"neutral"`   // True for achromatic colors
	Lab      Lab     `json:"lab"`       // Intermediate CIE L*a*b*
	Angle    float64 `json:"hue_angle"` // L*a*b* hue angle in degrees, 0 when neutral
}

// Convert describes the sRGB color (r, g, b). It is total over all uint8
// inputs and deterministic: equal inputs always give equal results.
func Convert(r, g, b uint8) Description {
	return Describe(RGB{R: r, G: g, B: b})
}

// Describe is Convert for an RGB value.
func Describe(c RGB) Description {
	lab := RGBToLab(c)
	coord := Approximate(lab)
	hueName := HueName(coord.Hue)

	return Description{
		Notation: coord.Notation(),
		Name:     DescriptiveName(coord.Value, coord.Chroma, hueName),
		Hex:      c.Hex(),
		RGB:      c,
		Hue:      coord.Hue,
		HueName:  hueName,
		Value:    coord.Value,
		Chroma:   coord.Chroma,
		Neutral:  coord.Neutral(),
		Lab:      lab,
		Angle:    coord.Angle,
	}
}

// ConvertInts validates untrusted channel values and describes the color.
// A channel outside [0,255] yields a *RangeError; nothing is clamped.
func ConvertInts(r, g, b int) (Description, error) {
	c, err := RGBFromInts(r, g, b)
	if err != nil {
		return Description{}, err
	}
	return Describe(c), nil
}

// RGBFromInts validates three channel values.
func RGBFromInts(r, g, b int) (RGB, error) {
	r8, err := checkChannel("r", r)
	if err != nil {
		return RGB{}, err
	}
	g8, err := checkChannel("g", g)
	if err != nil {
		return RGB{}, err
	}
	b8, err := checkChannel("b", b)
	if err != nil {
		return RGB{}, err
	}
	return RGB{R: r8, G: g8, B: b8}, nil
}

// ConvertHex parses a "#RRGGBB" string and describes the color.
func ConvertHex(s string) (Description, error) {
	c, err := ParseHex(s)
	if err != nil {
		return Description{}, err
	}
	return Describe(c), nil
}
