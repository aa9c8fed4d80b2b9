package munsell

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB color.
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color as an uppercase "#RRGGBB" string.
func (c RGB) Hex() string {
	return strings.ToUpper(c.Colorful().Hex())
}

// Colorful returns the color in go-colorful's normalized [0,1] form.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// ParseHex parses "#RRGGBB" or "RRGGBB" in either case. Surrounding space
// is trimmed; anything but six hex digits after the "#" is rejected.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 || strings.IndexFunc(s[1:], notHexDigit) >= 0 {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}
	col, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func notHexDigit(r rune) bool {
	return !unicode.Is(unicode.ASCII_Hex_Digit, r)
}
