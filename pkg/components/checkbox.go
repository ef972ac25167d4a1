package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// CheckboxOptions configures a [Checkbox].
type CheckboxOptions struct {
	// Name identifies the checkbox within its group.
	Name string `json:"name"`
	// Group joins a CheckboxGroup with the same group name.
	Group string `json:"group"`
}

// MarkStyle styles the check mark.
type MarkStyle struct {
	StrokeColor graphics.ResourceColor `json:"strokeColor"`
	Size        graphics.Length        `json:"size"`
	StrokeWidth graphics.Length        `json:"strokeWidth"`
}

func (m MarkStyle) validate() error {
	return attr.First(
		graphics.CheckNonNegative("mark.size", m.Size),
		graphics.CheckNonNegative("mark.strokeWidth", m.StrokeWidth),
	)
}

// CheckboxAttribute is the attribute builder returned by [Checkbox].
type CheckboxAttribute struct {
	attr.Common[*CheckboxAttribute]
}

// Checkbox creates a check box.
func Checkbox(opts ...CheckboxOptions) *CheckboxAttribute {
	a := &CheckboxAttribute{}
	var o CheckboxOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	a.Init(a, "Checkbox", o)
	if len(opts) > 1 {
		a.Fail("options", fluenterrors.Constraint("options", "at most 1 options record", len(opts)))
	}
	return a
}

// Select sets whether the box is checked.
func (a *CheckboxAttribute) Select(v bool) *CheckboxAttribute {
	return a.Set("select", v)
}

// SelectedColor sets the fill when checked.
func (a *CheckboxAttribute) SelectedColor(c graphics.ResourceColor) *CheckboxAttribute {
	return a.SetChecked("selectedColor", c, requireColor("selectedColor", c))
}

// UnselectedColor sets the border when unchecked.
func (a *CheckboxAttribute) UnselectedColor(c graphics.ResourceColor) *CheckboxAttribute {
	return a.SetChecked("unselectedColor", c, requireColor("unselectedColor", c))
}

// Mark styles the check mark.
func (a *CheckboxAttribute) Mark(m MarkStyle) *CheckboxAttribute {
	return a.SetChecked("mark", m, m.validate())
}

// Shape sets the box outline.
func (a *CheckboxAttribute) Shape(s CheckBoxShape) *CheckboxAttribute {
	return a.SetChecked("shape", s, checkBoxShapeNames.Check("shape", s))
}

// OnChange registers a handler called with the new checked state.
func (a *CheckboxAttribute) OnChange(fn func(checked bool)) *CheckboxAttribute {
	return a.SetChecked("onChange", fn, attr.CheckNotNil("onChange", fn))
}

func newCheckbox(args attr.Args) (*CheckboxAttribute, error) {
	if err := args.Arity("Checkbox", 0, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[CheckboxOptions]("CheckboxOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return settled(Checkbox(o))
}

var checkboxMethods = attr.Methods[*CheckboxAttribute]{
	"select":          attr.Unary("select", attr.Args.Bool, (*CheckboxAttribute).Select),
	"selectedColor":   attr.Unary("selectedColor", attr.Args.Color, (*CheckboxAttribute).SelectedColor),
	"unselectedColor": attr.Unary("unselectedColor", attr.Args.Color, (*CheckboxAttribute).UnselectedColor),
	"mark":            attr.Unary("mark", attr.ObjectReader[MarkStyle]("MarkStyle"), (*CheckboxAttribute).Mark),
	"shape":           attr.Unary("shape", attr.EnumReader(checkBoxShapeNames), (*CheckboxAttribute).Shape),
	"onChange":        attr.Unary("onChange", attr.CallbackReader[func(bool)](), (*CheckboxAttribute).OnChange),
}

// CheckboxGroupOptions configures a [CheckboxGroup].
type CheckboxGroupOptions struct {
	Group string `json:"group"`
}

// CheckboxGroupResult reports the checked members of a group.
type CheckboxGroupResult struct {
	Names  []string
	Status SelectStatus
}

// CheckboxGroupAttribute is the attribute builder returned by [CheckboxGroup].
type CheckboxGroupAttribute struct {
	attr.Common[*CheckboxGroupAttribute]
}

// CheckboxGroup creates a select-all control for the checkboxes sharing its
// group name.
func CheckboxGroup(opts ...CheckboxGroupOptions) *CheckboxGroupAttribute {
	a := &CheckboxGroupAttribute{}
	var o CheckboxGroupOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	a.Init(a, "CheckboxGroup", o)
	if len(opts) > 1 {
		a.Fail("options", fluenterrors.Constraint("options", "at most 1 options record", len(opts)))
	}
	return a
}

// SelectAll checks or clears every member.
func (a *CheckboxGroupAttribute) SelectAll(v bool) *CheckboxGroupAttribute {
	return a.Set("selectAll", v)
}

// SelectedColor sets the fill when checked.
func (a *CheckboxGroupAttribute) SelectedColor(c graphics.ResourceColor) *CheckboxGroupAttribute {
	return a.SetChecked("selectedColor", c, requireColor("selectedColor", c))
}

// UnselectedColor sets the border when unchecked.
func (a *CheckboxGroupAttribute) UnselectedColor(c graphics.ResourceColor) *CheckboxGroupAttribute {
	return a.SetChecked("unselectedColor", c, requireColor("unselectedColor", c))
}

// Mark styles the check mark.
func (a *CheckboxGroupAttribute) Mark(m MarkStyle) *CheckboxGroupAttribute {
	return a.SetChecked("mark", m, m.validate())
}

// CheckboxShape sets the box outline.
func (a *CheckboxGroupAttribute) CheckboxShape(s CheckBoxShape) *CheckboxGroupAttribute {
	return a.SetChecked("checkboxShape", s, checkBoxShapeNames.Check("checkboxShape", s))
}

// OnChange registers a handler called when group membership changes.
func (a *CheckboxGroupAttribute) OnChange(fn func(CheckboxGroupResult)) *CheckboxGroupAttribute {
	return a.SetChecked("onChange", fn, attr.CheckNotNil("onChange", fn))
}

func newCheckboxGroup(args attr.Args) (*CheckboxGroupAttribute, error) {
	if err := args.Arity("CheckboxGroup", 0, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[CheckboxGroupOptions]("CheckboxGroupOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return settled(CheckboxGroup(o))
}

var checkboxGroupMethods = attr.Methods[*CheckboxGroupAttribute]{
	"selectAll":       attr.Unary("selectAll", attr.Args.Bool, (*CheckboxGroupAttribute).SelectAll),
	"selectedColor":   attr.Unary("selectedColor", attr.Args.Color, (*CheckboxGroupAttribute).SelectedColor),
	"unselectedColor": attr.Unary("unselectedColor", attr.Args.Color, (*CheckboxGroupAttribute).UnselectedColor),
	"mark":            attr.Unary("mark", attr.ObjectReader[MarkStyle]("MarkStyle"), (*CheckboxGroupAttribute).Mark),
	"checkboxShape": attr.Unary("checkboxShape", attr.EnumReader(checkBoxShapeNames),
		(*CheckboxGroupAttribute).CheckboxShape),
	"onChange": attr.Unary("onChange", attr.CallbackReader[func(CheckboxGroupResult)](),
		(*CheckboxGroupAttribute).OnChange),
}
