package graphics

import (
	"fmt"
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// GradientDirection is the direction a linear gradient runs when no angle is given.
type GradientDirection int

const (
	GradientDirectionBottom GradientDirection = iota
	GradientDirectionLeft
	GradientDirectionTop
	GradientDirectionRight
	GradientDirectionLeftTop
	GradientDirectionLeftBottom
	GradientDirectionRightTop
	GradientDirectionRightBottom
	GradientDirectionNone
)

var gradientDirectionNames = [...]string{
	"Bottom", "Left", "Top", "Right", "LeftTop", "LeftBottom", "RightTop", "RightBottom", "None",
}

// String returns a human-readable representation of the direction.
func (d GradientDirection) String() string {
	if d >= 0 && int(d) < len(gradientDirectionNames) {
		return gradientDirectionNames[d]
	}
	return fmt.Sprintf("GradientDirection(%d)", int(d))
}

// Valid reports whether d is a declared direction.
func (d GradientDirection) Valid() bool {
	return d >= 0 && int(d) < len(gradientDirectionNames)
}

// ParseGradientDirection maps "Top" or "GradientDirection.Top" to its value.
func ParseGradientDirection(s string) (GradientDirection, bool) {
	s = strings.TrimPrefix(s, "GradientDirection.")
	for i, name := range gradientDirectionNames {
		if strings.EqualFold(name, s) {
			return GradientDirection(i), true
		}
	}
	return 0, false
}

// GradientStop defines a color stop within a gradient.
type GradientStop struct {
	Color    ResourceColor
	Position float64
}

// LinearGradient describes a linear color transition. Angle, when set,
// takes precedence over Direction.
type LinearGradient struct {
	Angle     *float64
	Direction GradientDirection
	Stops     []GradientStop
	Repeating bool
}

// NewLinearGradient constructs a gradient running in direction d.
func NewLinearGradient(d GradientDirection, stops ...GradientStop) LinearGradient {
	return LinearGradient{Direction: d, Stops: cloneGradientStops(stops)}
}

// WithAngle returns a copy of the gradient rotated to angle degrees.
func (g LinearGradient) WithAngle(angle float64) LinearGradient {
	g.Angle = &angle
	g.Stops = cloneGradientStops(g.Stops)
	return g
}

// Validate checks that the gradient has at least two stops, that positions
// lie in [0, 1] and never decrease, and that the direction is declared.
func (g LinearGradient) Validate() error {
	if !g.Direction.Valid() {
		return fluenterrors.Constraint("linearGradient.direction", "declared GradientDirection", int(g.Direction))
	}
	if len(g.Stops) < 2 {
		return fluenterrors.Constraint("linearGradient.colors", "at least 2 stops", len(g.Stops))
	}
	prev := 0.0
	for i, stop := range g.Stops {
		field := fmt.Sprintf("linearGradient.colors[%d]", i)
		if stop.Color.IsZero() {
			return fluenterrors.MissingField("GradientStop", field+".color")
		}
		if !(stop.Position >= 0 && stop.Position <= 1) {
			return fluenterrors.Constraint(field+".position", "0 <= v <= 1", stop.Position)
		}
		if stop.Position < prev {
			return fluenterrors.Constraint(field+".position", "non-decreasing positions", stop.Position)
		}
		prev = stop.Position
	}
	return nil
}

func (g LinearGradient) String() string {
	var sb strings.Builder
	sb.WriteString("linearGradient(")
	if g.Angle != nil {
		fmt.Fprintf(&sb, "%gdeg", *g.Angle)
	} else {
		sb.WriteString(g.Direction.String())
	}
	for _, stop := range g.Stops {
		fmt.Fprintf(&sb, ", %s %g", stop.Color, stop.Position)
	}
	if g.Repeating {
		sb.WriteString(", repeating")
	}
	sb.WriteString(")")
	return sb.String()
}

func (LinearGradient) isFill() {}

func cloneGradientStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return nil
	}
	out := make([]GradientStop, len(stops))
	copy(out, stops)
	return out
}
