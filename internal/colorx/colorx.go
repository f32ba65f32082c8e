// internal/colorx/colorx.go
package colorx

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexColorRegex = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// HSL holds a color as hue, saturation, and lightness, each in [0, 1].
type HSL struct {
	H float64
	S float64
	L float64
}

// HexToLuminance computes the WCAG relative luminance of a 6-digit hex color,
// with or without a leading "#". The second return value is false for any
// other shape: wrong length, non-hex characters, rgba(...) strings.
func HexToLuminance(hex string) (float64, bool) {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0, false
	}
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b), true
}

// IsDarkBackground classifies a background color value as dark when its
// relative luminance is below 0.5. Values whose luminance cannot be computed,
// such as rgba(...) strings, fall back to the caller-supplied default; pass
// false to treat unparsable backgrounds as light.
func IsDarkBackground(value string, fallback bool) bool {
	l, ok := HexToLuminance(value)
	if !ok {
		return fallback
	}
	return l < 0.5
}

// HexToHSL converts a 6-digit hex color to HSL. The second return value is
// false when the input is not a well-formed hex color.
func HexToHSL(hex string) (HSL, bool) {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return HSL{}, false
	}

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}, true
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h, S: s, L: l}, true
}

// HSLToHex converts hue, saturation, and lightness in [0, 1] to an upper-case
// "#RRGGBB" string, rounding each channel to the nearest integer in [0, 255].
func HSLToHex(h, s, l float64) string {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3.0)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3.0)
	}
	return fmt.Sprintf("#%02X%02X%02X", channelByte(r), channelByte(g), channelByte(b))
}

func parseHex(hex string) (r, g, b float64, ok bool) {
	h := strings.TrimPrefix(hex, "#")
	if !hexColorRegex.MatchString(h) {
		return 0, 0, 0, false
	}
	rv, _ := strconv.ParseUint(h[0:2], 16, 8)
	gv, _ := strconv.ParseUint(h[2:4], 16, 8)
	bv, _ := strconv.ParseUint(h[4:6], 16, 8)
	return float64(rv) / 255, float64(gv) / 255, float64(bv) / 255, true
}

// linearize maps an sRGB channel in [0, 1] to linear light per the WCAG
// formula.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

func channelByte(v float64) uint8 {
	rounded := math.Round(v * 255)
	if rounded < 0 {
		return 0
	}
	if rounded > 255 {
		return 255
	}
	return uint8(rounded)
}
