package munsell

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation at the package boundary.
var (
	ErrOutOfRange = errors.New("channel out of range")
	ErrInvalidHex = errors.New("invalid hex color")
)

// RangeError reports a color channel outside [0,255].
type RangeError struct {
	Channel string // "r", "g" or "b"
	Value   int
}

func (e *RangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s=%d: %v (want 0-255)", e.Channel, e.Value, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func checkChannel(name string, v int) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, &RangeError{Channel: name, Value: v}
	}
	return uint8(v), nil
}
