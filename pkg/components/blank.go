package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// BlankAttribute is the attribute builder returned by [Blank].
type BlankAttribute struct {
	attr.Common[*BlankAttribute]
}

// Blank creates a spacer that fills the remaining main-axis space of its
// Row or Column, never shrinking below minSize. A negative size is recorded
// as the attribute's error.
func Blank(minSize ...graphics.Length) *BlankAttribute {
	a := &BlankAttribute{}
	var m graphics.Length
	if len(minSize) > 0 {
		m = minSize[0]
	}
	a.Init(a, "Blank", m)
	switch {
	case len(minSize) > 1:
		a.Fail("min", fluenterrors.Constraint("min", "at most 1 argument", len(minSize)))
	case len(minSize) == 1:
		if err := graphics.CheckNonNegative("min", m); err != nil {
			a.Fail("min", err)
		}
	}
	return a
}

// Color fills the blank space.
func (a *BlankAttribute) Color(c graphics.ResourceColor) *BlankAttribute {
	return a.SetChecked("color", c, requireColor("color", c))
}

func newBlank(args attr.Args) (*BlankAttribute, error) {
	if err := args.Arity("Blank", 0, 1); err != nil {
		return nil, err
	}
	if !args.Has(0) {
		return Blank(), nil
	}
	m, err := args.Length(0, "min")
	if err != nil {
		return nil, err
	}
	return settled(Blank(m))
}

var blankMethods = attr.Methods[*BlankAttribute]{
	"color": attr.Unary("color", attr.Args.Color, (*BlankAttribute).Color),
}
