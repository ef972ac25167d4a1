package components

import (
	"maps"

	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// ButtonOptions configures a [Button].
type ButtonOptions struct {
	// Label is set by ButtonWithLabel; a button without a label wraps a child.
	Label resource.Str `json:"label"`
	Type  ButtonType   `json:"type"`
	// StateEffect enables the pressed-state highlight; nil means enabled.
	StateEffect *bool           `json:"stateEffect"`
	ButtonStyle ButtonStyleMode `json:"buttonStyle"`
}

func (o ButtonOptions) validate() error {
	return attr.First(
		buttonTypeNames.Check("type", o.Type),
		buttonStyleModeNames.Check("buttonStyle", o.ButtonStyle),
	)
}

// LabelStyle styles the label of a text button.
type LabelStyle struct {
	Overflow    TextOverflow    `json:"overflow"`
	MaxLines    int             `json:"maxLines" validate:"gte=0"`
	MinFontSize graphics.Length `json:"minFontSize"`
	MaxFontSize graphics.Length `json:"maxFontSize"`
	Font        graphics.Font   `json:"font"`
}

func (s LabelStyle) validate() error {
	return attr.First(
		attr.ValidateOptions("LabelStyle", s),
		textOverflowNames.Check("labelStyle.overflow", s.Overflow),
		graphics.CheckNonNegative("labelStyle.minFontSize", s.MinFontSize),
		graphics.CheckNonNegative("labelStyle.maxFontSize", s.MaxFontSize),
		s.Font.Validate(),
	)
}

// ButtonAttribute is the attribute builder returned by [Button] and
// [ButtonWithLabel].
type ButtonAttribute struct {
	attr.Common[*ButtonAttribute]
	FontOps[*ButtonAttribute]
}

// Button creates a button that wraps a single child.
func Button(opts ...ButtonOptions) *ButtonAttribute {
	return newButtonAttribute(resource.Str{}, opts)
}

// ButtonWithLabel creates a text button.
func ButtonWithLabel(label resource.Str, opts ...ButtonOptions) *ButtonAttribute {
	a := newButtonAttribute(label, opts)
	if label.IsZero() {
		a.Fail("label", fluenterrors.MissingField("Button", "label"))
	}
	return a
}

func newButtonAttribute(label resource.Str, opts []ButtonOptions) *ButtonAttribute {
	var o ButtonOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	if !label.IsZero() {
		o.Label = label
	}
	a := &ButtonAttribute{}
	a.Init(a, "Button", o)
	a.FontOps = FontOps[*ButtonAttribute]{base: &a.Base}
	if len(opts) > 1 {
		return a.Fail("options", fluenterrors.Constraint("options", "at most 1 options record", len(opts)))
	}
	if err := o.validate(); err != nil {
		a.Fail("options", err)
	}
	return a
}

// Type sets the button outline.
func (a *ButtonAttribute) Type(t ButtonType) *ButtonAttribute {
	return a.SetChecked("type", t, buttonTypeNames.Check("type", t))
}

// StateEffect toggles the pressed-state highlight.
func (a *ButtonAttribute) StateEffect(v bool) *ButtonAttribute {
	return a.Set("stateEffect", v)
}

// LabelStyle styles the label text.
func (a *ButtonAttribute) LabelStyle(s LabelStyle) *ButtonAttribute {
	return a.SetChecked("labelStyle", s, s.validate())
}

func newButton(args attr.Args) (*ButtonAttribute, error) {
	if err := args.Arity("Button", 0, 2); err != nil {
		return nil, err
	}
	if !args.Has(0) {
		return Button(), nil
	}
	if _, isObject := args[0].(map[string]any); isObject {
		if args.Has(1) {
			return nil, fluenterrors.Constraint("Button", "options last", len(args))
		}
		o, err := decodeOptions[ButtonOptions]("ButtonOptions", args, 0)
		if err != nil {
			return nil, err
		}
		return settled(Button(o))
	}
	label, err := args.Str(0, "label")
	if err != nil {
		return nil, err
	}
	o, err := decodeOptions[ButtonOptions]("ButtonOptions", args, 1)
	if err != nil {
		return nil, err
	}
	return settled(ButtonWithLabel(label, o))
}

func buttonMethods() attr.Methods[*ButtonAttribute] {
	m := attr.Methods[*ButtonAttribute]{
		"type":        attr.Unary("type", attr.EnumReader(buttonTypeNames), (*ButtonAttribute).Type),
		"stateEffect": attr.Unary("stateEffect", attr.Args.Bool, (*ButtonAttribute).StateEffect),
		"labelStyle": attr.Unary("labelStyle", attr.ObjectReader[LabelStyle]("LabelStyle"),
			(*ButtonAttribute).LabelStyle),
	}
	maps.Copy(m, fontMethods(func(a *ButtonAttribute) FontOps[*ButtonAttribute] { return a.FontOps }))
	return m
}
