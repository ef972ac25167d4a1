package components

import (
	"fmt"

	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// Slider defaults applied to nil option fields.
const (
	DefaultSliderMax  = 100.0
	DefaultSliderStep = 1.0
)

// SliderOptions configures a [Slider]. Nil fields take their defaults:
// Max 100, Step 1, Value Min.
type SliderOptions struct {
	Value     *float64    `json:"value"`
	Min       float64     `json:"min"`
	Max       *float64    `json:"max"`
	Step      *float64    `json:"step"`
	Style     SliderStyle `json:"style"`
	Direction Axis        `json:"direction"`
	Reverse   bool        `json:"reverse"`
}

// resolved returns a copy with defaults applied.
func (o SliderOptions) resolved() SliderOptions {
	out := o
	out.Max = attr.Ptr(DefaultSliderMax)
	if o.Max != nil {
		out.Max = attr.Ptr(*o.Max)
	}
	out.Step = attr.Ptr(DefaultSliderStep)
	if o.Step != nil {
		out.Step = attr.Ptr(*o.Step)
	}
	out.Value = attr.Ptr(o.Min)
	if o.Value != nil {
		out.Value = attr.Ptr(*o.Value)
	}
	return out
}

// validate checks a resolved options record.
func (o SliderOptions) validate() error {
	lo, hi, step, v := o.Min, *o.Max, *o.Step, *o.Value
	if err := attr.First(
		attr.CheckFinite("min", lo),
		attr.CheckFinite("max", hi),
		attr.CheckFinite("step", step),
		attr.CheckFinite("value", v),
	); err != nil {
		return err
	}
	if lo >= hi {
		return fluenterrors.Constraint("max", "min < max", fmt.Sprintf("min=%g max=%g", lo, hi))
	}
	if step <= 0 || step > hi-lo {
		return fluenterrors.Constraint("step", fmt.Sprintf("0 < step <= %g", hi-lo), step)
	}
	return attr.First(
		attr.CheckRange("value", v, lo, hi),
		sliderStyleNames.Check("style", o.Style),
		axisNames.Check("direction", o.Direction),
	)
}

// SliderTips is the stored form of ShowTips.
type SliderTips struct {
	Show    bool
	Content resource.Str
}

// SliderAttribute is the attribute builder returned by [Slider].
type SliderAttribute struct {
	attr.Common[*SliderAttribute]
}

// Slider creates a slider. The stored options have defaults applied.
func Slider(opts ...SliderOptions) (*SliderAttribute, error) {
	var o SliderOptions
	switch {
	case len(opts) > 1:
		return nil, fluenterrors.Constraint("options", "at most 1 options record", len(opts))
	case len(opts) == 1:
		o = opts[0]
	}
	o = o.resolved()
	if err := o.validate(); err != nil {
		return nil, err
	}
	a := &SliderAttribute{}
	a.Init(a, "Slider", o)
	return a, nil
}

// BlockColor sets the knob color.
func (a *SliderAttribute) BlockColor(c graphics.ResourceColor) *SliderAttribute {
	return a.SetChecked("blockColor", c, requireColor("blockColor", c))
}

// TrackColor sets the track background to a color or a linear gradient.
func (a *SliderAttribute) TrackColor(fill graphics.Fill) *SliderAttribute {
	return a.SetChecked("trackColor", fill, checkFill("trackColor", fill))
}

// SelectedColor sets the filled part of the track.
func (a *SliderAttribute) SelectedColor(c graphics.ResourceColor) *SliderAttribute {
	return a.SetChecked("selectedColor", c, requireColor("selectedColor", c))
}

// ShowSteps draws step marks on the track.
func (a *SliderAttribute) ShowSteps(v bool) *SliderAttribute {
	return a.Set("showSteps", v)
}

// ShowTips shows a bubble while dragging, with optional fixed content in
// place of the value.
func (a *SliderAttribute) ShowTips(show bool, content ...resource.Str) *SliderAttribute {
	tips := SliderTips{Show: show}
	switch {
	case len(content) > 1:
		return a.Fail("showTips", fluenterrors.Constraint("showTips", "at most 1 content", len(content)))
	case len(content) == 1:
		tips.Content = content[0]
	}
	return a.Set("showTips", tips)
}

// TrackThickness sets the track height.
func (a *SliderAttribute) TrackThickness(t graphics.Length) *SliderAttribute {
	return a.SetChecked("trackThickness", t, graphics.CheckPositive("trackThickness", t))
}

// BlockBorderColor sets the knob outline color.
func (a *SliderAttribute) BlockBorderColor(c graphics.ResourceColor) *SliderAttribute {
	return a.SetChecked("blockBorderColor", c, requireColor("blockBorderColor", c))
}

// BlockBorderWidth sets the knob outline width.
func (a *SliderAttribute) BlockBorderWidth(w graphics.Length) *SliderAttribute {
	return a.SetChecked("blockBorderWidth", w, graphics.CheckNonNegative("blockBorderWidth", w))
}

// BlockSize sets the knob size.
func (a *SliderAttribute) BlockSize(s graphics.SizeOptions) *SliderAttribute {
	return a.SetChecked("blockSize", s, s.Validate())
}

// StepColor sets the step mark color.
func (a *SliderAttribute) StepColor(c graphics.ResourceColor) *SliderAttribute {
	return a.SetChecked("stepColor", c, requireColor("stepColor", c))
}

// StepSize sets the step mark diameter.
func (a *SliderAttribute) StepSize(s graphics.Length) *SliderAttribute {
	return a.SetChecked("stepSize", s, graphics.CheckNonNegative("stepSize", s))
}

// MinResponsiveDistance sets the drag distance below which the value does
// not change.
func (a *SliderAttribute) MinResponsiveDistance(d float64) *SliderAttribute {
	return a.SetChecked("minResponsiveDistance", d, attr.CheckNonNegative("minResponsiveDistance", d))
}

// OnChange registers a handler called with the new value and drag phase.
func (a *SliderAttribute) OnChange(fn func(value float64, mode SliderChangeMode)) *SliderAttribute {
	return a.SetChecked("onChange", fn, attr.CheckNotNil("onChange", fn))
}

func newSlider(args attr.Args) (*SliderAttribute, error) {
	if err := args.Arity("Slider", 0, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[SliderOptions]("SliderOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return Slider(o)
}

func invokeShowTips(a *SliderAttribute, args attr.Args) error {
	if err := args.Arity("showTips", 1, 2); err != nil {
		return err
	}
	show, err := args.Bool(0, "showTips")
	if err != nil {
		return err
	}
	if !args.Has(1) {
		a.ShowTips(show)
		return nil
	}
	content, err := args.Str(1, "content")
	if err != nil {
		return err
	}
	a.ShowTips(show, content)
	return nil
}

var sliderMethods = attr.Methods[*SliderAttribute]{
	"blockColor":       attr.Unary("blockColor", attr.Args.Color, (*SliderAttribute).BlockColor),
	"trackColor":       attr.Unary("trackColor", attr.Args.Fill, (*SliderAttribute).TrackColor),
	"selectedColor":    attr.Unary("selectedColor", attr.Args.Color, (*SliderAttribute).SelectedColor),
	"showSteps":        attr.Unary("showSteps", attr.Args.Bool, (*SliderAttribute).ShowSteps),
	"showTips":         invokeShowTips,
	"trackThickness":   attr.Unary("trackThickness", attr.Args.Length, (*SliderAttribute).TrackThickness),
	"blockBorderColor": attr.Unary("blockBorderColor", attr.Args.Color, (*SliderAttribute).BlockBorderColor),
	"blockBorderWidth": attr.Unary("blockBorderWidth", attr.Args.Length, (*SliderAttribute).BlockBorderWidth),
	"blockSize": attr.Unary("blockSize", attr.ObjectReader[graphics.SizeOptions]("SizeOptions"),
		(*SliderAttribute).BlockSize),
	"stepColor": attr.Unary("stepColor", attr.Args.Color, (*SliderAttribute).StepColor),
	"stepSize":  attr.Unary("stepSize", attr.Args.Length, (*SliderAttribute).StepSize),
	"minResponsiveDistance": attr.Unary("minResponsiveDistance", attr.Args.Float,
		(*SliderAttribute).MinResponsiveDistance),
	"onChange": attr.Unary("onChange", attr.CallbackReader[func(float64, SliderChangeMode)](),
		(*SliderAttribute).OnChange),
}
