package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/graphics"
)

// RadioOptions configures a [Radio]. Group and Value are required.
type RadioOptions struct {
	// Group names the set of mutually exclusive radios.
	Group string `json:"group" validate:"required"`
	// Value identifies this radio within its group.
	Value         string             `json:"value" validate:"required"`
	IndicatorType RadioIndicatorType `json:"indicatorType"`
}

// RadioStyle colors the radio states.
type RadioStyle struct {
	CheckedBackgroundColor graphics.ResourceColor `json:"checkedBackgroundColor"`
	UncheckedBorderColor   graphics.ResourceColor `json:"uncheckedBorderColor"`
	IndicatorColor         graphics.ResourceColor `json:"indicatorColor"`
}

// RadioAttribute is the attribute builder returned by [Radio].
type RadioAttribute struct {
	attr.Common[*RadioAttribute]
}

// Radio creates a radio button. A missing Group or Value is a
// MissingRequiredField error naming the field.
func Radio(opts RadioOptions) (*RadioAttribute, error) {
	if err := attr.ValidateOptions("RadioOptions", opts); err != nil {
		return nil, err
	}
	if err := radioIndicatorTypeNames.Check("indicatorType", opts.IndicatorType); err != nil {
		return nil, err
	}
	a := &RadioAttribute{}
	a.Init(a, "Radio", opts)
	return a, nil
}

// Checked sets whether this radio is the selected one of its group.
func (a *RadioAttribute) Checked(v bool) *RadioAttribute {
	return a.Set("checked", v)
}

// RadioStyle colors the radio states.
func (a *RadioAttribute) RadioStyle(s RadioStyle) *RadioAttribute {
	return a.Set("radioStyle", s)
}

// OnChange registers a handler called with the new checked state.
func (a *RadioAttribute) OnChange(fn func(checked bool)) *RadioAttribute {
	return a.SetChecked("onChange", fn, attr.CheckNotNil("onChange", fn))
}

func newRadio(args attr.Args) (*RadioAttribute, error) {
	if err := args.Arity("Radio", 1, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[RadioOptions]("RadioOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return Radio(o)
}

var radioMethods = attr.Methods[*RadioAttribute]{
	"checked":    attr.Unary("checked", attr.Args.Bool, (*RadioAttribute).Checked),
	"radioStyle": attr.Unary("radioStyle", attr.ObjectReader[RadioStyle]("RadioStyle"), (*RadioAttribute).RadioStyle),
	"onChange":   attr.Unary("onChange", attr.CallbackReader[func(bool)](), (*RadioAttribute).OnChange),
}
