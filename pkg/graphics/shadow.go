package graphics

import (
	"fmt"
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// ShadowType controls how a shadow is produced.
type ShadowType int

const (
	// ShadowTypeColor draws a solid, blurred copy of the shape.
	ShadowTypeColor ShadowType = iota
	// ShadowTypeBlur blurs the content behind the shape.
	ShadowTypeBlur
)

// String returns a human-readable representation of the shadow type.
func (s ShadowType) String() string {
	switch s {
	case ShadowTypeColor:
		return "color"
	case ShadowTypeBlur:
		return "blur"
	default:
		return fmt.Sprintf("ShadowType(%d)", int(s))
	}
}

// ShadowOptions defines a shadow to draw around a shape.
//
// Radius controls softness and must not be negative. A zero Color means the
// platform default shadow color.
type ShadowOptions struct {
	Radius  float64
	Type    ShadowType
	Color   ResourceColor
	OffsetX float64
	OffsetY float64
	// Fill draws the shadow under the shape as well as around it.
	Fill bool
}

// Validate rejects negative radii and unknown types.
func (s ShadowOptions) Validate() error {
	if !(s.Radius >= 0) {
		return fluenterrors.Constraint("shadow.radius", "v >= 0", s.Radius)
	}
	if s.Type != ShadowTypeColor && s.Type != ShadowTypeBlur {
		return fluenterrors.Constraint("shadow.type", "declared ShadowType", int(s.Type))
	}
	return nil
}

func (s ShadowOptions) String() string {
	return fmt.Sprintf("shadow(radius=%g, type=%s, color=%s, offset=%g,%g)", s.Radius, s.Type, s.Color, s.OffsetX, s.OffsetY)
}

func (ShadowOptions) isShadow() {}

// ShadowStyle selects one of the platform's predefined shadows.
type ShadowStyle int

const (
	ShadowStyleOuterDefaultXS ShadowStyle = iota
	ShadowStyleOuterDefaultSM
	ShadowStyleOuterDefaultMD
	ShadowStyleOuterDefaultLG
	ShadowStyleOuterFloatingSM
	ShadowStyleOuterFloatingMD
)

var shadowStyleNames = [...]string{
	"OuterDefaultXS", "OuterDefaultSM", "OuterDefaultMD", "OuterDefaultLG", "OuterFloatingSM", "OuterFloatingMD",
}

func (s ShadowStyle) String() string {
	if s >= 0 && int(s) < len(shadowStyleNames) {
		return shadowStyleNames[s]
	}
	return fmt.Sprintf("ShadowStyle(%d)", int(s))
}

// Validate rejects undeclared styles.
func (s ShadowStyle) Validate() error {
	if s < 0 || int(s) >= len(shadowStyleNames) {
		return fluenterrors.Constraint("shadow", "declared ShadowStyle", int(s))
	}
	return nil
}

// ParseShadowStyle maps "OuterDefaultSM" or "ShadowStyle.OuterDefaultSM" to its value.
func ParseShadowStyle(s string) (ShadowStyle, bool) {
	s = strings.TrimPrefix(s, "ShadowStyle.")
	for i, name := range shadowStyleNames {
		if strings.EqualFold(name, s) {
			return ShadowStyle(i), true
		}
	}
	return 0, false
}

func (ShadowStyle) isShadow() {}

// Shadow is either ShadowOptions or a predefined ShadowStyle.
type Shadow interface {
	isShadow()
	Validate() error
	String() string
}
