// Package munsell converts 8-bit sRGB colors into an approximate Munsell
// notation and a short descriptive color name.
//
// The conversion is a chain of pure numeric transforms:
//
//	sRGB (0-255) -> linear RGB -> CIE XYZ (D65) -> CIE L*a*b* -> Munsell (H V/C)
//
// followed by two table lookups that turn the Munsell coordinate into a
// human-readable name such as "Strong Dark Yellow-Red" or "Neutral Gray (V=5.4)".
//
// # Approximation
//
// This is not the Munsell Renotation System. Value is derived from L*,
// Chroma from the L*a*b* chroma, and Hue from the L*a*b* hue angle mapped
// onto nine fixed 5-step hue sectors (5R, 5YR, 5Y, 5GY, 5G, 5BG, 5B, 5PB,
// 5P). The 5RP sector is folded into the 5R wraparound sector. The result
// is plausible, stable and internally consistent, not chart-exact.
//
// # Rounding
//
// Value is rounded to the nearest tenth and Chroma to the nearest integer,
// both with round-half-up semantics (x.5 goes up). Chroma below 0.5 after
// rounding makes the color neutral: the notation becomes "N V/" and the hue
// angle is ignored.
//
// # Thread Safety
//
// Every function in this package is a pure function of its arguments. There
// is no package state, no caching and no I/O; all functions may be called
// concurrently without coordination.
//
// # Input Validation
//
// Convert takes uint8 channels and is total. ConvertInts and ConvertHex are
// the boundary forms for untrusted input: out-of-range channels are rejected
// with a *RangeError, never clamped.
package munsell
