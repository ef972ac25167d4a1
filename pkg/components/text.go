package components

import (
	"maps"

	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// TextController lets the host close the selection menu of a Text.
type TextController struct {
	menuClosed bool
}

// CloseSelectionMenu dismisses the selection menu.
func (c *TextController) CloseSelectionMenu() {
	c.menuClosed = true
}

// MenuClosed reports whether CloseSelectionMenu has been called.
func (c *TextController) MenuClosed() bool {
	return c.menuClosed
}

// TextOptions configures [TextWithOptions].
type TextOptions struct {
	Controller *TextController `json:"-"`
}

// TextContent is the options record stored by Text factories.
type TextContent struct {
	Content    resource.Str
	Controller *TextController
}

// FontSettingOptions adjusts how Font is applied.
type FontSettingOptions struct {
	EnableVariableFontWeight bool `json:"enableVariableFontWeight"`
}

// TextFont is the stored form of Font.
type TextFont struct {
	Font     graphics.Font
	Settings *FontSettingOptions
}

// TextSelection is the stored form of Selection. -1 on both ends means no
// selection.
type TextSelection struct {
	Start, End int
}

// TextAttribute is the attribute builder returned by [Text] and
// [TextWithOptions].
type TextAttribute struct {
	attr.Common[*TextAttribute]
	FontOps[*TextAttribute]
	DecorationOps[*TextAttribute]
}

// Text creates a text component. Content is optional; Span children
// replace it.
func Text(content ...resource.Str) *TextAttribute {
	var c resource.Str
	if len(content) > 0 {
		c = content[0]
	}
	a := newTextAttribute(TextContent{Content: c})
	if len(content) > 1 {
		a.Fail("content", fluenterrors.Constraint("content", "at most 1 content", len(content)))
	}
	return a
}

// TextWithOptions creates a text component bound to a controller.
func TextWithOptions(content resource.Str, opts TextOptions) *TextAttribute {
	return newTextAttribute(TextContent{Content: content, Controller: opts.Controller})
}

func newTextAttribute(c TextContent) *TextAttribute {
	a := &TextAttribute{}
	a.Init(a, "Text", c)
	a.FontOps = FontOps[*TextAttribute]{base: &a.Base}
	a.DecorationOps = DecorationOps[*TextAttribute]{base: &a.Base}
	return a
}

// MinFontSize sets the lower bound for adaptive sizing.
func (a *TextAttribute) MinFontSize(s graphics.Length) *TextAttribute {
	return a.SetChecked("minFontSize", s, graphics.CheckNonNegative("minFontSize", s))
}

// MaxFontSize sets the upper bound for adaptive sizing.
func (a *TextAttribute) MaxFontSize(s graphics.Length) *TextAttribute {
	return a.SetChecked("maxFontSize", s, graphics.CheckNonNegative("maxFontSize", s))
}

// Font sets size, weight, family and style at once. Settings are optional.
func (a *TextAttribute) Font(f graphics.Font, settings ...FontSettingOptions) *TextAttribute {
	if len(settings) > 1 {
		return a.Fail("font", fluenterrors.Constraint("font", "at most 1 settings record", len(settings)))
	}
	v := TextFont{Font: f}
	if len(settings) == 1 {
		s := settings[0]
		v.Settings = &s
	}
	return a.SetChecked("font", v, f.Validate())
}

// TextAlign sets the horizontal alignment.
func (a *TextAttribute) TextAlign(v TextAlign) *TextAttribute {
	return a.SetChecked("textAlign", v, textAlignNames.Check("textAlign", v))
}

// LineHeight sets the line box height.
func (a *TextAttribute) LineHeight(h graphics.Length) *TextAttribute {
	return a.SetChecked("lineHeight", h, graphics.CheckNonNegative("lineHeight", h))
}

// TextOverflow sets how clipped text is shown.
func (a *TextAttribute) TextOverflow(v TextOverflow) *TextAttribute {
	return a.SetChecked("textOverflow", v, textOverflowNames.Check("textOverflow", v))
}

// MaxLines limits the number of lines. Zero removes the limit.
func (a *TextAttribute) MaxLines(n int) *TextAttribute {
	return a.SetChecked("maxLines", n, attr.CheckNonNegative("maxLines", n))
}

// TextCase transforms letter case.
func (a *TextAttribute) TextCase(v TextCase) *TextAttribute {
	return a.SetChecked("textCase", v, textCaseNames.Check("textCase", v))
}

// BaselineOffset shifts the text baseline.
func (a *TextAttribute) BaselineOffset(l graphics.Length) *TextAttribute {
	return a.Set("baselineOffset", l)
}

// CopyOption controls whether selected text can be copied.
func (a *TextAttribute) CopyOption(v CopyOptions) *TextAttribute {
	return a.SetChecked("copyOption", v, copyOptionsNames.Check("copyOption", v))
}

// Selection selects the characters in [start, end). Passing -1 for both
// bounds clears the selection. Otherwise both must be non-negative and start
// must not exceed end.
func (a *TextAttribute) Selection(start, end int) *TextAttribute {
	return a.SetChecked("selection", TextSelection{Start: start, End: end}, checkSelection(start, end))
}

func checkSelection(start, end int) error {
	if start == -1 && end == -1 {
		return nil
	}
	if start < 0 || end < 0 {
		return fluenterrors.Constraint("selection", "both -1 or both >= 0", TextSelection{Start: start, End: end})
	}
	return attr.CheckOrdered("selection", "start", "end", start, end)
}

func newText(args attr.Args) (*TextAttribute, error) {
	if err := args.Arity("Text", 0, 2); err != nil {
		return nil, err
	}
	if !args.Has(0) {
		return Text(), nil
	}
	content, err := args.Str(0, "content")
	if err != nil {
		return nil, err
	}
	if !args.Has(1) {
		return settled(Text(content))
	}
	ctrl, ok := args[1].(*TextController)
	if !ok {
		return nil, fluenterrors.TypeMismatch("controller", args[1], "TextController")
	}
	return settled(TextWithOptions(content, TextOptions{Controller: ctrl}))
}

func invokeFont(a *TextAttribute, args attr.Args) error {
	if err := args.Arity("font", 1, 2); err != nil {
		return err
	}
	f, err := readFont(args, 0, "font")
	if err != nil {
		return err
	}
	if !args.Has(1) {
		a.Font(f)
		return nil
	}
	s, err := attr.ObjectReader[FontSettingOptions]("FontSettingOptions")(args, 1, "settings")
	if err != nil {
		return err
	}
	a.Font(f, s)
	return nil
}

func invokeSelection(a *TextAttribute, args attr.Args) error {
	if err := args.Arity("selection", 2, 2); err != nil {
		return err
	}
	start, err := args.Int(0, "selectionStart")
	if err != nil {
		return err
	}
	end, err := args.Int(1, "selectionEnd")
	if err != nil {
		return err
	}
	a.Selection(start, end)
	return nil
}

func textMethods() attr.Methods[*TextAttribute] {
	m := attr.Methods[*TextAttribute]{
		"minFontSize":    attr.Unary("minFontSize", readFontSize, (*TextAttribute).MinFontSize),
		"maxFontSize":    attr.Unary("maxFontSize", readFontSize, (*TextAttribute).MaxFontSize),
		"font":           invokeFont,
		"textAlign":      attr.Unary("textAlign", attr.EnumReader(textAlignNames), (*TextAttribute).TextAlign),
		"lineHeight":     attr.Unary("lineHeight", attr.Args.Length, (*TextAttribute).LineHeight),
		"textOverflow":   attr.Unary("textOverflow", readTextOverflow, (*TextAttribute).TextOverflow),
		"maxLines":       attr.Unary("maxLines", attr.Args.Int, (*TextAttribute).MaxLines),
		"textCase":       attr.Unary("textCase", attr.EnumReader(textCaseNames), (*TextAttribute).TextCase),
		"baselineOffset": attr.Unary("baselineOffset", attr.Args.Length, (*TextAttribute).BaselineOffset),
		"copyOption":     attr.Unary("copyOption", attr.EnumReader(copyOptionsNames), (*TextAttribute).CopyOption),
		"selection":      invokeSelection,
	}
	maps.Copy(m, fontMethods(func(a *TextAttribute) FontOps[*TextAttribute] { return a.FontOps }))
	maps.Copy(m, decorationMethods(func(a *TextAttribute) DecorationOps[*TextAttribute] { return a.DecorationOps }))
	return m
}

// readTextOverflow accepts an enum member or an {overflow: ...} object.
func readTextOverflow(a attr.Args, i int, field string) (TextOverflow, error) {
	if a.Has(i) {
		if m, ok := a[i].(map[string]any); ok {
			var o struct {
				Overflow TextOverflow `json:"overflow"`
			}
			err := attr.Decode("TextOverflowOptions", m, &o)
			return o.Overflow, err
		}
	}
	return attr.Enum(a, i, field, textOverflowNames)
}

// SpanAttribute is the attribute builder returned by [Span].
type SpanAttribute struct {
	attr.Common[*SpanAttribute]
	FontOps[*SpanAttribute]
	DecorationOps[*SpanAttribute]
}

// Span creates a styled run inside a Text.
func Span(content resource.Str) *SpanAttribute {
	a := &SpanAttribute{}
	a.Init(a, "Span", content)
	a.FontOps = FontOps[*SpanAttribute]{base: &a.Base}
	a.DecorationOps = DecorationOps[*SpanAttribute]{base: &a.Base}
	return a
}

func newSpan(args attr.Args) (*SpanAttribute, error) {
	if err := args.Arity("Span", 1, 1); err != nil {
		return nil, err
	}
	content, err := args.Str(0, "content")
	if err != nil {
		return nil, err
	}
	return Span(content), nil
}

func spanMethods() attr.Methods[*SpanAttribute] {
	m := fontMethods(func(a *SpanAttribute) FontOps[*SpanAttribute] { return a.FontOps })
	maps.Copy(m, decorationMethods(func(a *SpanAttribute) DecorationOps[*SpanAttribute] { return a.DecorationOps }))
	return m
}
