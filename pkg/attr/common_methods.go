package attr

import (
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// CommonMethods returns the dynamic form of every universal setter for
// attribute type T.
func CommonMethods[T Composite[T]]() Methods[T] {
	c := func(a T) *Common[T] { return a.commonAttrs() }
	return Methods[T]{
		"width":  Unary("width", Args.Length, func(a T, v graphics.Length) T { return c(a).Width(v) }),
		"height": Unary("height", Args.Length, func(a T, v graphics.Length) T { return c(a).Height(v) }),
		"size": Unary("size", ObjectReader[graphics.SizeOptions]("SizeOptions"),
			func(a T, v graphics.SizeOptions) T { return c(a).Size(v) }),
		"constraintSize": Unary("constraintSize", ObjectReader[graphics.ConstraintSizeOptions]("ConstraintSizeOptions"),
			func(a T, v graphics.ConstraintSizeOptions) T { return c(a).ConstraintSize(v) }),
		"padding":      Unary("padding", readInsets, func(a T, v graphics.EdgeInsets) T { return c(a).Padding(v) }),
		"margin":       Unary("margin", readInsets, func(a T, v graphics.EdgeInsets) T { return c(a).Margin(v) }),
		"layoutWeight": Unary("layoutWeight", Args.Float, func(a T, v float64) T { return c(a).LayoutWeight(v) }),
		"aspectRatio":  Unary("aspectRatio", Args.Float, func(a T, v float64) T { return c(a).AspectRatio(v) }),
		"backgroundColor": Unary("backgroundColor", Args.Color,
			func(a T, v graphics.ResourceColor) T { return c(a).BackgroundColor(v) }),
		"foregroundColor": Unary("foregroundColor", Args.Color,
			func(a T, v graphics.ResourceColor) T { return c(a).ForegroundColor(v) }),
		"linearGradient": Unary("linearGradient", readGradient,
			func(a T, v graphics.LinearGradient) T { return c(a).LinearGradient(v) }),
		"opacity": Unary("opacity", Args.Float, func(a T, v float64) T { return c(a).Opacity(v) }),
		"border": Unary("border", ObjectReader[graphics.BorderOptions]("BorderOptions"),
			func(a T, v graphics.BorderOptions) T { return c(a).Border(v) }),
		"borderWidth":  Unary("borderWidth", Args.Length, func(a T, v graphics.Length) T { return c(a).BorderWidth(v) }),
		"borderColor":  Unary("borderColor", Args.Color, func(a T, v graphics.ResourceColor) T { return c(a).BorderColor(v) }),
		"borderRadius": Unary("borderRadius", Args.Length, func(a T, v graphics.Length) T { return c(a).BorderRadius(v) }),
		"shadow":       Unary("shadow", readShadow, func(a T, v graphics.Shadow) T { return c(a).Shadow(v) }),
		"offset": Unary("offset", ObjectReader[graphics.Position]("Position"),
			func(a T, v graphics.Position) T { return c(a).Offset(v) }),
		"visibility": Unary("visibility", EnumReader(visibilityNames), func(a T, v Visibility) T { return c(a).Visibility(v) }),
		"enabled":    Unary("enabled", Args.Bool, func(a T, v bool) T { return c(a).Enabled(v) }),
		"focusable":  Unary("focusable", Args.Bool, func(a T, v bool) T { return c(a).Focusable(v) }),
		"clip":       Unary("clip", Args.Bool, func(a T, v bool) T { return c(a).Clip(v) }),
		"zIndex":     Unary("zIndex", Args.Int, func(a T, v int) T { return c(a).ZIndex(v) }),
		"id":         Unary("id", Args.String, func(a T, v string) T { return c(a).ID(v) }),
		"onClick": Unary("onClick", CallbackReader[func(ClickEvent)](),
			func(a T, v func(ClickEvent)) T { return c(a).OnClick(v) }),
		"onTouch": Unary("onTouch", CallbackReader[func(TouchEvent)](),
			func(a T, v func(TouchEvent)) T { return c(a).OnTouch(v) }),
		"onAppear":    Unary("onAppear", CallbackReader[func()](), func(a T, v func()) T { return c(a).OnAppear(v) }),
		"onDisAppear": Unary("onDisAppear", CallbackReader[func()](), func(a T, v func()) T { return c(a).OnDisappear(v) }),
		"onFocus":     Unary("onFocus", CallbackReader[func()](), func(a T, v func()) T { return c(a).OnFocus(v) }),
		"onBlur":      Unary("onBlur", CallbackReader[func()](), func(a T, v func()) T { return c(a).OnBlur(v) }),
		"onAreaChange": Unary("onAreaChange", CallbackReader[func(old, new Area)](),
			func(a T, v func(old, new Area)) T { return c(a).OnAreaChange(v) }),
	}
}

// readInsets accepts a single Length for all sides or a {top, right,
// bottom, left} object.
func readInsets(a Args, i int, field string) (graphics.EdgeInsets, error) {
	raw, err := a.at(i, field)
	if err != nil {
		return graphics.EdgeInsets{}, err
	}
	switch x := raw.(type) {
	case graphics.EdgeInsets:
		return x, nil
	case map[string]any:
		var e graphics.EdgeInsets
		err := Decode("EdgeInsets", x, &e)
		return e, err
	}
	l, err := ToLength(field, raw)
	if err != nil {
		return graphics.EdgeInsets{}, err
	}
	return graphics.EdgeInsetsAll(l), nil
}

func readGradient(a Args, i int, field string) (graphics.LinearGradient, error) {
	raw, err := a.at(i, field)
	if err != nil {
		return graphics.LinearGradient{}, err
	}
	switch x := raw.(type) {
	case graphics.LinearGradient:
		return x, nil
	case map[string]any:
		var g graphics.LinearGradient
		err := DecodeGradient(field, x, &g)
		return g, err
	}
	return graphics.LinearGradient{}, fluenterrors.TypeMismatch(field, raw, "LinearGradientOptions")
}

func readShadow(a Args, i int, field string) (graphics.Shadow, error) {
	raw, err := a.at(i, field)
	if err != nil {
		return nil, err
	}
	return ToShadow(field, raw)
}
