package munsell

import "math"

// D65 reference white on the 0-100 scale.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// CIE L*a*b* companding constants.
const (
	labEpsilon = 0.008856
	labKappa   = 903.3
)

// XYZ is a CIE XYZ color scaled so that the D65 white has Y = 100.
type XYZ struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Lab is a CIE L*a*b* color. L is in [0,100]; A and B are unbounded.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// ToXYZ converts linear RGB to XYZ using the sRGB primaries under D65.
func ToXYZ(c Linear) XYZ {
	r, g, b := c.R*100, c.G*100, c.B*100
	return XYZ{
		X: r*0.4124 + g*0.3576 + b*0.1805,
		Y: r*0.2126 + g*0.7152 + b*0.0722,
		Z: r*0.0193 + g*0.1192 + b*0.9505,
	}
}

// ToLab converts XYZ to L*a*b* relative to the D65 white.
func ToLab(c XYZ) Lab {
	fx := labF(c.X / whiteX)
	fy := labF(c.Y / whiteY)
	fz := labF(c.Z / whiteZ)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// RGBToLab runs the full sRGB -> L*a*b* chain.
func RGBToLab(c RGB) Lab {
	return ToLab(ToXYZ(LinearRGB(c)))
}

// labF is the CIE companding function. The linear segment joins the cube
// root at labEpsilon.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3.0)
	}
	return (labKappa*t + 16) / 116
}
