package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// FontOps are the font setters shared by Text, Span and Button.
type FontOps[T any] struct {
	base *attr.Base[T]
}

func (f FontOps[T]) b() *attr.Base[T] { return bound(f.base) }

// FontColor sets the text color.
func (f FontOps[T]) FontColor(c graphics.ResourceColor) T {
	return f.b().SetChecked("fontColor", c, requireColor("fontColor", c))
}

// FontSize sets the text size. Unitless sizes are fp.
func (f FontOps[T]) FontSize(size graphics.Length) T {
	return f.b().SetChecked("fontSize", size, graphics.CheckNonNegative("fontSize", size))
}

// FontWeight sets the text weight.
func (f FontOps[T]) FontWeight(w graphics.FontWeight) T {
	return f.b().SetChecked("fontWeight", w, graphics.CheckFontWeight("fontWeight", w))
}

// FontFamily sets the font family list, e.g. "HarmonyOS Sans, sans-serif".
func (f FontOps[T]) FontFamily(family resource.Str) T {
	if family.IsZero() {
		return f.b().Fail("fontFamily", fluenterrors.MissingField("argument", "fontFamily"))
	}
	return f.b().Set("fontFamily", family)
}

// FontStyle selects normal or italic text.
func (f FontOps[T]) FontStyle(s graphics.FontStyle) T {
	return f.b().Set("fontStyle", s)
}

// DecorationOptions describes a line drawn with text.
type DecorationOptions struct {
	Type  TextDecorationType     `json:"type"`
	Color graphics.ResourceColor `json:"color"`
}

// DecorationOps are the decoration setters shared by Text and Span.
type DecorationOps[T any] struct {
	base *attr.Base[T]
}

func (d DecorationOps[T]) b() *attr.Base[T] { return bound(d.base) }

// Decoration draws an underline, overline or strike-through.
func (d DecorationOps[T]) Decoration(opts DecorationOptions) T {
	return d.b().SetChecked("decoration", opts, textDecorationTypeNames.Check("decoration.type", opts.Type))
}

// LetterSpacing sets the extra space between characters. Negative values
// tighten the text.
func (d DecorationOps[T]) LetterSpacing(l graphics.Length) T {
	return d.b().Set("letterSpacing", l)
}

func fontMethods[T attr.Attribute](fonts func(T) FontOps[T]) attr.Methods[T] {
	return attr.Methods[T]{
		"fontColor": attr.Unary("fontColor", attr.Args.Color,
			func(a T, v graphics.ResourceColor) T { return fonts(a).FontColor(v) }),
		"fontSize":   attr.Unary("fontSize", readFontSize, func(a T, v graphics.Length) T { return fonts(a).FontSize(v) }),
		"fontWeight": attr.Unary("fontWeight", readFontWeight, func(a T, v graphics.FontWeight) T { return fonts(a).FontWeight(v) }),
		"fontFamily": attr.Unary("fontFamily", attr.Args.Str, func(a T, v resource.Str) T { return fonts(a).FontFamily(v) }),
		"fontStyle":  attr.Unary("fontStyle", readFontStyle, func(a T, v graphics.FontStyle) T { return fonts(a).FontStyle(v) }),
	}
}

func decorationMethods[T attr.Attribute](decorations func(T) DecorationOps[T]) attr.Methods[T] {
	return attr.Methods[T]{
		"decoration": attr.Unary("decoration", attr.ObjectReader[DecorationOptions]("DecorationOptions"),
			func(a T, v DecorationOptions) T { return decorations(a).Decoration(v) }),
		"letterSpacing": attr.Unary("letterSpacing", attr.Args.Length,
			func(a T, v graphics.Length) T { return decorations(a).LetterSpacing(v) }),
	}
}

// readFontSize treats unitless numbers as fp.
func readFontSize(a attr.Args, i int, field string) (graphics.Length, error) {
	if f, err := a.Float(i, field); err == nil {
		return graphics.FP(f), nil
	}
	return a.Length(i, field)
}

func readFontWeight(a attr.Args, i int, field string) (graphics.FontWeight, error) {
	if !a.Has(i) || a[i] == nil {
		return 0, fluenterrors.MissingField("argument", field)
	}
	return graphics.ParseFontWeight(a[i])
}

func readFontStyle(a attr.Args, i int, field string) (graphics.FontStyle, error) {
	s, err := a.String(i, field)
	if err != nil {
		return 0, err
	}
	return graphics.ParseFontStyle(s)
}

func readFont(a attr.Args, i int, field string) (graphics.Font, error) {
	f, err := attr.ObjectReader[graphics.Font]("Font")(a, i, field)
	if err != nil {
		return graphics.Font{}, err
	}
	return f, f.Validate()
}
