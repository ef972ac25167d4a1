package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/graphics"
)

// ToggleOptions configures a [Toggle]. Type is required.
type ToggleOptions struct {
	Type *ToggleType `json:"type" validate:"required"`
	IsOn bool        `json:"isOn"`
}

// SwitchStyle styles a Switch toggle.
type SwitchStyle struct {
	PointRadius       graphics.Length        `json:"pointRadius"`
	UnselectedColor   graphics.ResourceColor `json:"unselectedColor"`
	PointColor        graphics.ResourceColor `json:"pointColor"`
	TrackBorderRadius graphics.Length        `json:"trackBorderRadius"`
}

func (s SwitchStyle) validate() error {
	return attr.First(
		graphics.CheckNonNegative("switchStyle.pointRadius", s.PointRadius),
		graphics.CheckNonNegative("switchStyle.trackBorderRadius", s.TrackBorderRadius),
	)
}

// ToggleAttribute is the attribute builder returned by [Toggle].
type ToggleAttribute struct {
	attr.Common[*ToggleAttribute]
}

// Toggle creates a checkbox, switch or button style toggle.
func Toggle(opts ToggleOptions) (*ToggleAttribute, error) {
	if err := attr.ValidateOptions("ToggleOptions", opts); err != nil {
		return nil, err
	}
	t := *opts.Type
	if err := toggleTypeNames.Check("type", t); err != nil {
		return nil, err
	}
	a := &ToggleAttribute{}
	a.Init(a, "Toggle", ToggleOptions{Type: &t, IsOn: opts.IsOn})
	return a, nil
}

// SelectedColor sets the background when on.
func (a *ToggleAttribute) SelectedColor(c graphics.ResourceColor) *ToggleAttribute {
	return a.SetChecked("selectedColor", c, requireColor("selectedColor", c))
}

// SwitchPointColor sets the knob color of a Switch.
func (a *ToggleAttribute) SwitchPointColor(c graphics.ResourceColor) *ToggleAttribute {
	return a.SetChecked("switchPointColor", c, requireColor("switchPointColor", c))
}

// SwitchStyle styles a Switch.
func (a *ToggleAttribute) SwitchStyle(s SwitchStyle) *ToggleAttribute {
	return a.SetChecked("switchStyle", s, s.validate())
}

// OnChange registers a handler called with the new on state.
func (a *ToggleAttribute) OnChange(fn func(isOn bool)) *ToggleAttribute {
	return a.SetChecked("onChange", fn, attr.CheckNotNil("onChange", fn))
}

func newToggle(args attr.Args) (*ToggleAttribute, error) {
	if err := args.Arity("Toggle", 1, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[ToggleOptions]("ToggleOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return Toggle(o)
}

var toggleMethods = attr.Methods[*ToggleAttribute]{
	"selectedColor":    attr.Unary("selectedColor", attr.Args.Color, (*ToggleAttribute).SelectedColor),
	"switchPointColor": attr.Unary("switchPointColor", attr.Args.Color, (*ToggleAttribute).SwitchPointColor),
	"switchStyle":      attr.Unary("switchStyle", attr.ObjectReader[SwitchStyle]("SwitchStyle"), (*ToggleAttribute).SwitchStyle),
	"onChange":         attr.Unary("onChange", attr.CallbackReader[func(bool)](), (*ToggleAttribute).OnChange),
}
