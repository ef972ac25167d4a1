package graphics

import (
	"fmt"
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// BorderStyle is the stroke pattern of a border.
type BorderStyle int

const (
	BorderStyleSolid BorderStyle = iota
	BorderStyleDashed
	BorderStyleDotted
)

var borderStyleNames = [...]string{"Solid", "Dashed", "Dotted"}

func (s BorderStyle) String() string {
	if s >= 0 && int(s) < len(borderStyleNames) {
		return borderStyleNames[s]
	}
	return fmt.Sprintf("BorderStyle(%d)", int(s))
}

// ParseBorderStyle maps "Dashed" or "BorderStyle.Dashed" to its value.
func ParseBorderStyle(s string) (BorderStyle, bool) {
	s = strings.TrimPrefix(s, "BorderStyle.")
	for i, name := range borderStyleNames {
		if strings.EqualFold(name, s) {
			return BorderStyle(i), true
		}
	}
	return 0, false
}

// BorderOptions describes a uniform border.
type BorderOptions struct {
	Width  Length
	Color  ResourceColor
	Radius Length
	Style  BorderStyle
}

// Validate rejects negative widths and radii and undeclared styles.
func (b BorderOptions) Validate() error {
	if err := CheckNonNegative("border.width", b.Width); err != nil {
		return err
	}
	if err := CheckNonNegative("border.radius", b.Radius); err != nil {
		return err
	}
	if b.Style < 0 || int(b.Style) >= len(borderStyleNames) {
		return fluenterrors.Constraint("border.style", "declared BorderStyle", int(b.Style))
	}
	return nil
}
