package munsell

import "github.com/lucasb-eyer/go-colorful"

// Linear is a gamma-expanded (linear-light) RGB triple in [0,1].
type Linear struct {
	R, G, B float64
}

// Linearize expands one sRGB channel to linear light.
//
// The channel is normalized to c/255, then divided by 12.92 at or below
// 0.04045 and raised as ((n+0.055)/1.055)^2.4 above it. go-colorful's
// LinearRgb implements exactly this transfer function.
func Linearize(c uint8) float64 {
	r, _, _ := colorful.Color{R: float64(c) / 255.0}.LinearRgb()
	return r
}

// LinearRGB expands all three channels of c.
func LinearRGB(c RGB) Linear {
	r, g, b := c.Colorful().LinearRgb()
	return Linear{R: r, G: g, B: b}
}
