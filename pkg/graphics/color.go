package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// ColorFromNumber interprets n the way numeric colors are written in
// declarations: 0xRRGGBB is opaque, 0xAARRGGBB carries its own alpha.
func ColorFromNumber(n uint32) Color {
	if n <= 0xFFFFFF {
		return Color(0xFF000000 | n)
	}
	return Color(n)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// String formats opaque colors as #RRGGBB and the rest as #AARRGGBB.
func (c Color) String() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08X", uint32(c))
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorGray        = Color(0xFF808080)
)

// ParseColor parses the textual color forms accepted in declarations:
//
//	#rgb  #argb  #rrggbb  #aarrggbb
//	rgb(r, g, b)  rgba(r, g, b, a)
//	0xRRGGBB  0xAARRGGBB
//	CSS color names (red, teal, transparent, ...)
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(v, "#"):
		return parseHex(s, v[1:])
	case strings.HasPrefix(v, "0x"):
		n, err := strconv.ParseUint(v[2:], 16, 32)
		if err != nil {
			return 0, fluenterrors.TypeMismatch("color", s, "0xRRGGBB", "0xAARRGGBB")
		}
		return ColorFromNumber(uint32(n)), nil
	case strings.HasPrefix(v, "rgb"):
		return parseFunctional(s, v)
	case v == "transparent":
		return ColorTransparent, nil
	}
	if c, ok := colornames.Map[v]; ok {
		return RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fluenterrors.TypeMismatch("color", s, "#hex", "rgb()", "rgba()", "color name")
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(raw, digits string) (Color, error) {
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fluenterrors.TypeMismatch("color", raw, "#rgb", "#argb", "#rrggbb", "#aarrggbb")
	}
	switch len(digits) {
	case 3:
		r, g, b := uint8(n>>8&0xF), uint8(n>>4&0xF), uint8(n&0xF)
		return RGB(r*0x11, g*0x11, b*0x11), nil
	case 4:
		a, r, g, b := uint8(n>>12&0xF), uint8(n>>8&0xF), uint8(n>>4&0xF), uint8(n&0xF)
		return RGBA8(r*0x11, g*0x11, b*0x11, a*0x11), nil
	case 6:
		return Color(0xFF000000 | uint32(n)), nil
	case 8:
		return Color(uint32(n)), nil
	}
	return 0, fluenterrors.TypeMismatch("color", raw, "#rgb", "#argb", "#rrggbb", "#aarrggbb")
}

func parseFunctional(raw, v string) (Color, error) {
	open, end := strings.IndexByte(v, '('), strings.LastIndexByte(v, ')')
	if open < 0 || end < open {
		return 0, fluenterrors.TypeMismatch("color", raw, "rgb(r, g, b)", "rgba(r, g, b, a)")
	}
	fn := strings.TrimSpace(v[:open])
	parts := strings.Split(v[open+1:end], ",")
	want := 3
	if fn == "rgba" {
		want = 4
	} else if fn != "rgb" {
		return 0, fluenterrors.TypeMismatch("color", raw, "rgb(r, g, b)", "rgba(r, g, b, a)")
	}
	if len(parts) != want {
		return 0, fluenterrors.TypeMismatch("color", raw, fmt.Sprintf("%s with %d components", fn, want))
	}
	var rgb [3]uint8
	for i := range 3 {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return 0, fluenterrors.TypeMismatch("color", raw, "integer channel")
		}
		if n < 0 || n > 255 {
			return 0, fluenterrors.Constraint("color", "0 <= channel <= 255", n)
		}
		rgb[i] = uint8(n)
	}
	if want == 3 {
		return RGB(rgb[0], rgb[1], rgb[2]), nil
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return 0, fluenterrors.TypeMismatch("color", raw, "alpha number")
	}
	if !(a >= 0 && a <= 1) {
		return 0, fluenterrors.Constraint("color", "0 <= alpha <= 1", a)
	}
	return RGBA(rgb[0], rgb[1], rgb[2], a), nil
}
