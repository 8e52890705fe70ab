package anim

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses "#RRGGBB". Malformed input yields black.
func ParseHex(s string) RGB {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Hex returns c as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp blends a toward b by t in [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// DepthShade fades a card colour toward far as it recedes. z runs from near
// (full colour) down to far.
func DepthShade(near, far RGB, z, zNear, zFar float64) RGB {
	if zNear == zFar {
		return near
	}
	t := (zNear - z) / (zNear - zFar)
	return Lerp(near, far, t)
}
