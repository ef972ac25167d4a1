package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/resource"
)

// FontWeight is the CSS-aligned weight scale from x/image/font; the
// zero value is normal (400).
type FontWeight = font.Weight

// FontStyle is normal, italic or oblique.
type FontStyle = font.Style

// Font groups the text face properties that can be set at once.
type Font struct {
	Size   Length
	Weight FontWeight
	Family resource.Str
	Style  FontStyle
}

// Validate rejects negative sizes and weights outside 100..900.
func (f Font) Validate() error {
	if err := CheckNonNegative("font.size", f.Size); err != nil {
		return err
	}
	return CheckFontWeight("font.weight", f.Weight)
}

// CheckFontWeight rejects weights outside the 100..900 scale.
func CheckFontWeight(field string, w FontWeight) error {
	if w < font.WeightThin || w > font.WeightBlack {
		return fluenterrors.Constraint(field, "100 <= weight <= 900", WeightNumber(w))
	}
	return nil
}

// WeightNumber returns the CSS number for w (400 for normal).
func WeightNumber(w FontWeight) int {
	return 400 + int(w)*100
}

var fontWeightNames = map[string]FontWeight{
	"lighter": font.WeightLight,
	"normal":  font.WeightNormal,
	"regular": font.WeightNormal,
	"medium":  font.WeightMedium,
	"bold":    font.WeightBold,
	"bolder":  font.WeightExtraBold,
}

// ParseFontWeight accepts a CSS weight number (100..900, a multiple of 100),
// its decimal string, or a name such as "Bold" or "FontWeight.Medium".
func ParseFontWeight(v any) (FontWeight, error) {
	switch x := v.(type) {
	case FontWeight:
		return x, CheckFontWeight("fontWeight", x)
	case int:
		return fontWeightFromNumber(float64(x))
	case float64:
		return fontWeightFromNumber(x)
	case string:
		name := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(x), "FontWeight."))
		if w, ok := fontWeightNames[name]; ok {
			return w, nil
		}
		if n, err := strconv.ParseFloat(name, 64); err == nil {
			return fontWeightFromNumber(n)
		}
	}
	return 0, fluenterrors.TypeMismatch("fontWeight", v, "number", "FontWeight", "string")
}

func fontWeightFromNumber(n float64) (FontWeight, error) {
	if n < 100 || n > 900 || math.Mod(n, 100) != 0 {
		return 0, fluenterrors.Constraint("fontWeight", "100 <= weight <= 900, step 100", n)
	}
	return FontWeight(int(n)/100 - 4), nil
}

// ParseFontStyle maps "Normal", "Italic" or "FontStyle.Italic" to its value.
func ParseFontStyle(s string) (FontStyle, error) {
	switch strings.ToLower(strings.TrimPrefix(s, "FontStyle.")) {
	case "normal":
		return font.StyleNormal, nil
	case "italic":
		return font.StyleItalic, nil
	case "oblique":
		return font.StyleOblique, nil
	}
	return 0, fluenterrors.TypeMismatch("fontStyle", s, "FontStyle.Normal", "FontStyle.Italic")
}

// FormatFontWeight renders w as its CSS number.
func FormatFontWeight(w FontWeight) string {
	return fmt.Sprint(WeightNumber(w))
}
