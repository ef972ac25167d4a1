package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/graphics"
)

// DividerAttribute is the attribute builder returned by [Divider].
type DividerAttribute struct {
	attr.Common[*DividerAttribute]
}

// Divider creates a separator line.
func Divider() *DividerAttribute {
	a := &DividerAttribute{}
	a.Init(a, "Divider", nil)
	return a
}

// Vertical draws the line vertically.
func (a *DividerAttribute) Vertical(v bool) *DividerAttribute {
	return a.Set("vertical", v)
}

// Color sets the line color.
func (a *DividerAttribute) Color(c graphics.ResourceColor) *DividerAttribute {
	return a.SetChecked("color", c, requireColor("color", c))
}

// StrokeWidth sets the line thickness.
func (a *DividerAttribute) StrokeWidth(w graphics.Length) *DividerAttribute {
	return a.SetChecked("strokeWidth", w, graphics.CheckNonNegative("strokeWidth", w))
}

// LineCap sets the end cap style.
func (a *DividerAttribute) LineCap(c LineCapStyle) *DividerAttribute {
	return a.SetChecked("lineCap", c, lineCapStyleNames.Check("lineCap", c))
}

func newDivider(args attr.Args) (*DividerAttribute, error) {
	if err := args.Arity("Divider", 0, 0); err != nil {
		return nil, err
	}
	return Divider(), nil
}

var dividerMethods = attr.Methods[*DividerAttribute]{
	"vertical":    attr.Unary("vertical", attr.Args.Bool, (*DividerAttribute).Vertical),
	"color":       attr.Unary("color", attr.Args.Color, (*DividerAttribute).Color),
	"strokeWidth": attr.Unary("strokeWidth", attr.Args.Length, (*DividerAttribute).StrokeWidth),
	"lineCap":     attr.Unary("lineCap", attr.EnumReader(lineCapStyleNames), (*DividerAttribute).LineCap),
}
