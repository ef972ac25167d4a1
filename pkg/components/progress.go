package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// DefaultProgressTotal is the total used when ProgressOptions.Total is nil.
const DefaultProgressTotal = 100.0

// ProgressOptions configures a [Progress]. Value is required.
type ProgressOptions struct {
	Value *float64     `json:"value" validate:"required"`
	Total *float64     `json:"total" validate:"omitempty,gt=0"`
	Type  ProgressType `json:"type"`
}

// ProgressStyleOptions styles the indicator.
type ProgressStyleOptions struct {
	StrokeWidth graphics.Length `json:"strokeWidth"`
	// ScaleCount and ScaleWidth apply to ScaleRing indicators.
	ScaleCount         int             `json:"scaleCount" validate:"omitempty,gte=2"`
	ScaleWidth         graphics.Length `json:"scaleWidth"`
	EnableSmoothEffect *bool           `json:"enableSmoothEffect"`
}

func (s ProgressStyleOptions) validate() error {
	return attr.First(
		attr.ValidateOptions("ProgressStyleOptions", s),
		graphics.CheckNonNegative("style.strokeWidth", s.StrokeWidth),
		graphics.CheckNonNegative("style.scaleWidth", s.ScaleWidth),
	)
}

// ProgressAttribute is the attribute builder returned by [Progress].
type ProgressAttribute struct {
	attr.Common[*ProgressAttribute]
	total float64
}

// Progress creates a progress indicator. Value must lie in [0, Total].
// The stored options carry Total defaulted to DefaultProgressTotal.
func Progress(opts ProgressOptions) (*ProgressAttribute, error) {
	if err := attr.ValidateOptions("ProgressOptions", opts); err != nil {
		return nil, err
	}
	total := DefaultProgressTotal
	if opts.Total != nil {
		total = *opts.Total
	}
	value := *opts.Value
	if err := attr.First(
		attr.CheckRange("value", value, 0, total),
		progressTypeNames.Check("type", opts.Type),
	); err != nil {
		return nil, err
	}
	stored := ProgressOptions{Value: attr.Ptr(value), Total: attr.Ptr(total), Type: opts.Type}
	a := &ProgressAttribute{total: total}
	a.Init(a, "Progress", stored)
	return a, nil
}

// Value updates the current progress, which must stay within [0, total].
func (a *ProgressAttribute) Value(v float64) *ProgressAttribute {
	return a.SetChecked("value", v, attr.CheckRange("value", v, 0, a.total))
}

// Color sets the indicator foreground to a color or a linear gradient.
func (a *ProgressAttribute) Color(fill graphics.Fill) *ProgressAttribute {
	return a.SetChecked("color", fill, checkFill("color", fill))
}

// Style styles the indicator.
func (a *ProgressAttribute) Style(s ProgressStyleOptions) *ProgressAttribute {
	return a.SetChecked("style", s, s.validate())
}

func newProgress(args attr.Args) (*ProgressAttribute, error) {
	if err := args.Arity("Progress", 1, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[ProgressOptions]("ProgressOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return Progress(o)
}

var progressMethods = attr.Methods[*ProgressAttribute]{
	"value": attr.Unary("value", attr.Args.Float, (*ProgressAttribute).Value),
	"color": attr.Unary("color", attr.Args.Fill, (*ProgressAttribute).Color),
	"style": attr.Unary("style", attr.ObjectReader[ProgressStyleOptions]("ProgressStyleOptions"),
		(*ProgressAttribute).Style),
}

// checkFill rejects a nil fill, an unset color and an invalid gradient.
func checkFill(field string, fill graphics.Fill) error {
	switch f := fill.(type) {
	case nil:
		return fluenterrors.MissingField("argument", field)
	case graphics.ResourceColor:
		return requireColor(field, f)
	case graphics.LinearGradient:
		return f.Validate()
	}
	return nil
}
