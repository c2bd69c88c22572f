// Package colorspace provides the RGB color value type and the math used
// to score a match. It contains no external dependencies to keep game
// logic pure and testable.
package colorspace

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Color is an immutable RGB color. Channel mutations return a new value.
type Color struct {
	R, G, B uint8
}

// maxDistance is the Euclidean distance between black and white,
// sqrt(3 * 255^2). Used to normalize similarity into [0, 1].
var maxDistance = math.Sqrt(3 * 255 * 255)

// Channel indices for slider-style access.
const (
	ChannelR = iota
	ChannelG
	ChannelB
	ChannelCount
)

// Random returns a color with each channel uniformly sampled from [0, 255].
// The rng is injected so gameplay stays reproducible under a fixed seed.
func Random(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// Similarity returns the normalized inverse Euclidean distance between two
// colors: 1.0 for identical colors, 0.0 for black vs white.
func Similarity(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	dist := math.Sqrt(dr*dr + dg*dg + db*db)

	sim := 1.0 - dist/maxDistance
	if sim < 0 {
		return 0
	}
	return sim
}

// Hex returns the color as an uppercase hex string with leading #,
// e.g. "#FF00AA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses a hex color string into a Color. It accepts surrounding
// whitespace and an optional leading #, followed by exactly 6 or exactly 3
// hex digits. The 3-digit form expands each digit by duplication, so "f0a"
// is the same color as "ff00aa". Any other input returns ok=false.
//
// Invalid hex is expected input (the player is mid-keystroke), so this
// returns a bool rather than an error.
func ParseHex(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")

	if len(s) == 3 {
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = s[i]
			expanded[2*i+1] = s[i]
		}
		s = string(expanded[:])
	}

	if len(s) != 6 {
		return Color{}, false
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, false
		}
		channels[i] = hi<<4 | lo
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, true
}

// hexDigit converts a single hex character to its value.
func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// Channel returns the value of the given channel index.
func (c Color) Channel(ch int) uint8 {
	switch ch {
	case ChannelR:
		return c.R
	case ChannelG:
		return c.G
	case ChannelB:
		return c.B
	default:
		return 0
	}
}

// WithChannel returns a copy of the color with the given channel set to v,
// clamped to [0, 255]. Unknown channel indices return the color unchanged.
func (c Color) WithChannel(ch int, v int) Color {
	clamped := uint8(ClampInt(v, 0, 255))
	switch ch {
	case ChannelR:
		c.R = clamped
	case ChannelG:
		c.G = clamped
	case ChannelB:
		c.B = clamped
	}
	return c
}

// ClampInt restricts a value to be within [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
