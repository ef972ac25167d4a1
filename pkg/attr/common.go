package attr

import (
	"reflect"

	"github.com/go-drift/fluent/pkg/graphics"
)

// Common is the universal operation set inherited by every component
// attribute. T is the concrete attribute pointer type returned by each setter.
type Common[T any] struct {
	Base[T]
}

func (c *Common[T]) commonAttrs() *Common[T] { return c }

// Width sets the component width.
func (c *Common[T]) Width(w graphics.Length) T {
	return c.SetChecked("width", w, graphics.CheckNonNegative("width", w))
}

// Height sets the component height.
func (c *Common[T]) Height(h graphics.Length) T {
	return c.SetChecked("height", h, graphics.CheckNonNegative("height", h))
}

// Size sets width and height together.
func (c *Common[T]) Size(s graphics.SizeOptions) T {
	return c.SetChecked("size", s, s.Validate())
}

// ConstraintSize bounds the laid-out size.
func (c *Common[T]) ConstraintSize(s graphics.ConstraintSizeOptions) T {
	return c.SetChecked("constraintSize", s, s.Validate())
}

// Padding sets the inner spacing.
func (c *Common[T]) Padding(p graphics.EdgeInsets) T {
	return c.SetChecked("padding", p, p.Validate("padding"))
}

// Margin sets the outer spacing.
func (c *Common[T]) Margin(m graphics.EdgeInsets) T {
	return c.SetChecked("margin", m, m.Validate("margin"))
}

// LayoutWeight sets the share of remaining main-axis space in a Row or Column.
func (c *Common[T]) LayoutWeight(w float64) T {
	return c.SetChecked("layoutWeight", w, CheckNonNegative("layoutWeight", w))
}

// AspectRatio fixes width / height.
func (c *Common[T]) AspectRatio(r float64) T {
	return c.SetChecked("aspectRatio", r, CheckPositive("aspectRatio", r))
}

// BackgroundColor sets the fill behind the content.
func (c *Common[T]) BackgroundColor(color graphics.ResourceColor) T {
	return c.SetChecked("backgroundColor", color, checkColorSet("backgroundColor", color))
}

// ForegroundColor sets the content color.
func (c *Common[T]) ForegroundColor(color graphics.ResourceColor) T {
	return c.SetChecked("foregroundColor", color, checkColorSet("foregroundColor", color))
}

// LinearGradient sets a gradient background.
func (c *Common[T]) LinearGradient(g graphics.LinearGradient) T {
	return c.SetChecked("linearGradient", g, g.Validate())
}

// Opacity sets the component opacity. Values outside [0, 1] are rejected.
func (c *Common[T]) Opacity(o float64) T {
	return c.SetChecked("opacity", o, CheckRange("opacity", o, 0, 1))
}

// Border sets a uniform border.
func (c *Common[T]) Border(b graphics.BorderOptions) T {
	return c.SetChecked("border", b, b.Validate())
}

// BorderWidth sets the border stroke width.
func (c *Common[T]) BorderWidth(w graphics.Length) T {
	return c.SetChecked("borderWidth", w, graphics.CheckNonNegative("borderWidth", w))
}

// BorderColor sets the border color.
func (c *Common[T]) BorderColor(color graphics.ResourceColor) T {
	return c.SetChecked("borderColor", color, checkColorSet("borderColor", color))
}

// BorderRadius rounds the corners.
func (c *Common[T]) BorderRadius(r graphics.Length) T {
	return c.SetChecked("borderRadius", r, graphics.CheckNonNegative("borderRadius", r))
}

// Shadow sets a custom or predefined shadow.
func (c *Common[T]) Shadow(s graphics.Shadow) T {
	if s == nil {
		return c.Fail("shadow", errMissingValue("shadow"))
	}
	return c.SetChecked("shadow", s, s.Validate())
}

// Offset shifts the component from its laid-out position.
func (c *Common[T]) Offset(p graphics.Position) T {
	return c.Set("offset", p)
}

// Visibility shows, hides or removes the component.
func (c *Common[T]) Visibility(v Visibility) T {
	return c.SetChecked("visibility", v, visibilityNames.Check("visibility", v))
}

// Enabled toggles interaction.
func (c *Common[T]) Enabled(v bool) T {
	return c.Set("enabled", v)
}

// Focusable toggles whether the component can take focus.
func (c *Common[T]) Focusable(v bool) T {
	return c.Set("focusable", v)
}

// Clip clips children to the component bounds.
func (c *Common[T]) Clip(v bool) T {
	return c.Set("clip", v)
}

// ZIndex orders siblings in a stack.
func (c *Common[T]) ZIndex(z int) T {
	return c.Set("zIndex", z)
}

// ID sets the component identifier used by tests and accessibility.
func (c *Common[T]) ID(id string) T {
	return c.SetChecked("id", id, CheckNotEmpty("id", id))
}

// OnClick registers a click handler.
func (c *Common[T]) OnClick(fn func(ClickEvent)) T {
	return c.SetChecked("onClick", fn, CheckNotNil("onClick", fn))
}

// OnTouch registers a touch handler.
func (c *Common[T]) OnTouch(fn func(TouchEvent)) T {
	return c.SetChecked("onTouch", fn, CheckNotNil("onTouch", fn))
}

// OnAppear registers a handler run when the component is mounted.
func (c *Common[T]) OnAppear(fn func()) T {
	return c.SetChecked("onAppear", fn, CheckNotNil("onAppear", fn))
}

// OnDisappear registers a handler run when the component is unmounted.
func (c *Common[T]) OnDisappear(fn func()) T {
	return c.SetChecked("onDisAppear", fn, CheckNotNil("onDisAppear", fn))
}

// OnFocus registers a focus handler.
func (c *Common[T]) OnFocus(fn func()) T {
	return c.SetChecked("onFocus", fn, CheckNotNil("onFocus", fn))
}

// OnBlur registers a blur handler.
func (c *Common[T]) OnBlur(fn func()) T {
	return c.SetChecked("onBlur", fn, CheckNotNil("onBlur", fn))
}

// OnAreaChange registers a handler for layout size or position changes.
func (c *Common[T]) OnAreaChange(fn func(old, new Area)) T {
	return c.SetChecked("onAreaChange", fn, CheckNotNil("onAreaChange", fn))
}

func checkColorSet(field string, c graphics.ResourceColor) error {
	if c.IsZero() {
		return errMissingValue(field)
	}
	return nil
}

func isNilFunc(fn any) bool {
	if fn == nil {
		return true
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && v.IsNil()
}
