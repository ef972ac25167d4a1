package components

import (
	"regexp"

	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// TextInputController moves the caret and selection of a TextInput.
type TextInputController struct {
	caret     int
	selection TextSelection
}

// NewTextInputController returns a controller with no selection.
func NewTextInputController() *TextInputController {
	return &TextInputController{selection: TextSelection{Start: -1, End: -1}}
}

// CaretPosition moves the caret to offset, which must be non-negative.
func (c *TextInputController) CaretPosition(offset int) error {
	if err := attr.CheckNonNegative("caretPosition", offset); err != nil {
		return err
	}
	c.caret = offset
	return nil
}

// SetTextSelection selects [start, end). Both bounds must be non-negative
// and start must not exceed end; on failure the selection is unchanged.
func (c *TextInputController) SetTextSelection(start, end int) error {
	err := attr.First(
		attr.CheckNonNegative("selectionStart", start),
		attr.CheckNonNegative("selectionEnd", end),
		attr.CheckOrdered("selection", "selectionStart", "selectionEnd", start, end),
	)
	if err != nil {
		return err
	}
	c.selection = TextSelection{Start: start, End: end}
	return nil
}

// Caret returns the caret offset.
func (c *TextInputController) Caret() int { return c.caret }

// Selection returns the current selection.
func (c *TextInputController) Selection() TextSelection { return c.selection }

// TextInputOptions configures a [TextInput].
type TextInputOptions struct {
	Placeholder resource.Str         `json:"placeholder"`
	Text        resource.Str         `json:"text"`
	Controller  *TextInputController `json:"-"`
}

// InputFilter is the stored form of the InputFilter attribute.
type InputFilter struct {
	Pattern *regexp.Regexp
	OnError func(string)
}

// TextInputAttribute is the attribute builder returned by [TextInput].
type TextInputAttribute struct {
	attr.Common[*TextInputAttribute]
}

// TextInput creates a single-line text field.
func TextInput(opts ...TextInputOptions) *TextInputAttribute {
	var o TextInputOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	a := &TextInputAttribute{}
	a.Init(a, "TextInput", o)
	if len(opts) > 1 {
		a.Fail("options", fluenterrors.Constraint("options", "at most 1 options record", len(opts)))
	}
	return a
}

// Type selects the keyboard and masking behavior.
func (a *TextInputAttribute) Type(t InputType) *TextInputAttribute {
	return a.SetChecked("type", t, inputTypeNames.Check("type", t))
}

// PlaceholderColor sets the placeholder text color.
func (a *TextInputAttribute) PlaceholderColor(c graphics.ResourceColor) *TextInputAttribute {
	return a.SetChecked("placeholderColor", c, requireColor("placeholderColor", c))
}

// PlaceholderFont sets the placeholder font.
func (a *TextInputAttribute) PlaceholderFont(f graphics.Font) *TextInputAttribute {
	return a.SetChecked("placeholderFont", f, f.Validate())
}

// CaretColor sets the caret color.
func (a *TextInputAttribute) CaretColor(c graphics.ResourceColor) *TextInputAttribute {
	return a.SetChecked("caretColor", c, requireColor("caretColor", c))
}

// MaxLength limits the number of characters.
func (a *TextInputAttribute) MaxLength(n int) *TextInputAttribute {
	return a.SetChecked("maxLength", n, attr.CheckNonNegative("maxLength", n))
}

// InputFilter only admits input matching pattern. onError, when given,
// receives the rejected text.
func (a *TextInputAttribute) InputFilter(pattern string, onError ...func(string)) *TextInputAttribute {
	if len(onError) > 1 {
		return a.Fail("inputFilter", fluenterrors.Constraint("inputFilter", "at most 1 error callback", len(onError)))
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return a.Fail("inputFilter", fluenterrors.Constraint("inputFilter", "valid regular expression", pattern))
	}
	f := InputFilter{Pattern: re}
	if len(onError) == 1 {
		if onError[0] == nil {
			return a.Fail("inputFilter", fluenterrors.MissingField("argument", "inputFilter.error"))
		}
		f.OnError = onError[0]
	}
	return a.Set("inputFilter", f)
}

// EnterKeyType sets the label of the keyboard enter key.
func (a *TextInputAttribute) EnterKeyType(t EnterKeyType) *TextInputAttribute {
	return a.SetChecked("enterKeyType", t, enterKeyTypeNames.Check("enterKeyType", t))
}

// ShowPasswordIcon toggles the reveal icon of password inputs.
func (a *TextInputAttribute) ShowPasswordIcon(show bool) *TextInputAttribute {
	return a.Set("showPasswordIcon", show)
}

// OnChange is called with the current text after every edit.
func (a *TextInputAttribute) OnChange(fn func(value string)) *TextInputAttribute {
	return a.SetChecked("onChange", fn, attr.CheckNotNil("onChange", fn))
}

// OnSubmit is called when the enter key is pressed.
func (a *TextInputAttribute) OnSubmit(fn func(EnterKeyType)) *TextInputAttribute {
	return a.SetChecked("onSubmit", fn, attr.CheckNotNil("onSubmit", fn))
}

func newTextInput(args attr.Args) (*TextInputAttribute, error) {
	if err := args.Arity("TextInput", 0, 1); err != nil {
		return nil, err
	}
	opts, err := decodeOptions[TextInputOptions]("TextInputOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return TextInput(opts), nil
}

func invokeInputFilter(a *TextInputAttribute, args attr.Args) error {
	if err := args.Arity("inputFilter", 1, 2); err != nil {
		return err
	}
	pattern, err := args.String(0, "inputFilter")
	if err != nil {
		return err
	}
	if !args.Has(1) {
		a.InputFilter(pattern)
		return nil
	}
	onError, err := attr.Callback[func(string)](args, 1, "inputFilter.error")
	if err != nil {
		return err
	}
	a.InputFilter(pattern, onError)
	return nil
}

var textInputMethods = attr.Methods[*TextInputAttribute]{
	"type":             attr.Unary("type", attr.EnumReader(inputTypeNames), (*TextInputAttribute).Type),
	"placeholderColor": attr.Unary("placeholderColor", attr.Args.Color, (*TextInputAttribute).PlaceholderColor),
	"placeholderFont":  attr.Unary("placeholderFont", readFont, (*TextInputAttribute).PlaceholderFont),
	"caretColor":       attr.Unary("caretColor", attr.Args.Color, (*TextInputAttribute).CaretColor),
	"maxLength":        attr.Unary("maxLength", attr.Args.Int, (*TextInputAttribute).MaxLength),
	"inputFilter":      invokeInputFilter,
	"enterKeyType":     attr.Unary("enterKeyType", attr.EnumReader(enterKeyTypeNames), (*TextInputAttribute).EnterKeyType),
	"showPasswordIcon": attr.Unary("showPasswordIcon", attr.Args.Bool, (*TextInputAttribute).ShowPasswordIcon),
	"onChange":         attr.Unary("onChange", attr.CallbackReader[func(string)](), (*TextInputAttribute).OnChange),
	"onSubmit":         attr.Unary("onSubmit", attr.CallbackReader[func(EnterKeyType)](), (*TextInputAttribute).OnSubmit),
}
