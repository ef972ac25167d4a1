package attr

import (
	"fmt"
	"math"
	"reflect"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// Args are the positional arguments of a dynamic attribute call. Elements
// are the values produced by decoders and the DSL: bool, float64, int,
// string, map[string]any, []any, resource.Resource, graphics values and
// callback functions.
type Args []any

func errMissingValue(field string) error {
	return fluenterrors.MissingField("argument", field)
}

// Arity rejects argument counts outside [lo, hi].
func (a Args) Arity(field string, lo, hi int) error {
	if len(a) < lo {
		return errMissingValue(field)
	}
	if len(a) > hi {
		return fluenterrors.Constraint(field, fmt.Sprintf("at most %d arguments", hi), len(a))
	}
	return nil
}

// Has reports whether argument i is present.
func (a Args) Has(i int) bool {
	return i < len(a)
}

func (a Args) at(i int, field string) (any, error) {
	if i >= len(a) || a[i] == nil {
		return nil, errMissingValue(field)
	}
	return a[i], nil
}

// Float reads argument i as a number.
func (a Args) Float(i int, field string) (float64, error) {
	v, err := a.at(i, field)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fluenterrors.TypeMismatch(field, v, "number")
}

// Int reads argument i as an integral number.
func (a Args) Int(i int, field string) (int, error) {
	f, err := a.Float(i, field)
	if err != nil {
		return 0, err
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fluenterrors.TypeMismatch(field, f, "integer")
	}
	return int(f), nil
}

// Bool reads argument i as a boolean.
func (a Args) Bool(i int, field string) (bool, error) {
	v, err := a.at(i, field)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fluenterrors.TypeMismatch(field, v, "boolean")
	}
	return b, nil
}

// String reads argument i as a plain string.
func (a Args) String(i int, field string) (string, error) {
	v, err := a.at(i, field)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fluenterrors.TypeMismatch(field, v, "string")
	}
	return s, nil
}

// Str reads argument i as a string or resource reference.
func (a Args) Str(i int, field string) (resource.Str, error) {
	v, err := a.at(i, field)
	if err != nil {
		return resource.Str{}, err
	}
	return ToStr(field, v)
}

// Color reads argument i as a ResourceColor.
func (a Args) Color(i int, field string) (graphics.ResourceColor, error) {
	v, err := a.at(i, field)
	if err != nil {
		return graphics.ResourceColor{}, err
	}
	return ToColor(field, v)
}

// Length reads argument i as a Length.
func (a Args) Length(i int, field string) (graphics.Length, error) {
	v, err := a.at(i, field)
	if err != nil {
		return graphics.Length{}, err
	}
	return ToLength(field, v)
}

// Fill reads argument i as a ResourceColor or a LinearGradient object.
func (a Args) Fill(i int, field string) (graphics.Fill, error) {
	v, err := a.at(i, field)
	if err != nil {
		return nil, err
	}
	return ToFill(field, v)
}

// ToStr converts a dynamic value to a resource.Str.
func ToStr(field string, v any) (resource.Str, error) {
	switch x := v.(type) {
	case resource.Str:
		return x, nil
	case string:
		return resource.Text(x), nil
	case resource.Resource:
		return resource.Ref(x), nil
	}
	return resource.Str{}, fluenterrors.TypeMismatch(field, v, "string", "Resource")
}

// ToColor converts a dynamic value to a ResourceColor.
func ToColor(field string, v any) (graphics.ResourceColor, error) {
	switch x := v.(type) {
	case graphics.ResourceColor:
		return x, nil
	case graphics.Color:
		return graphics.Solid(x), nil
	case resource.Resource:
		return graphics.ColorRef(x), nil
	case string:
		c, err := graphics.ParseColor(x)
		if err != nil {
			return graphics.ResourceColor{}, retag(field, err)
		}
		return graphics.Solid(c), nil
	case float64:
		if x < 0 || x > math.MaxUint32 || x != math.Trunc(x) {
			return graphics.ResourceColor{}, fluenterrors.Constraint(field, "0 <= color <= 0xFFFFFFFF", x)
		}
		return graphics.Solid(graphics.ColorFromNumber(uint32(x))), nil
	case int:
		return ToColor(field, float64(x))
	}
	return graphics.ResourceColor{}, fluenterrors.TypeMismatch(field, v, "Color", "number", "string", "Resource")
}

// ToLength converts a dynamic value to a Length.
func ToLength(field string, v any) (graphics.Length, error) {
	switch x := v.(type) {
	case graphics.Length:
		return x, nil
	case float64:
		return graphics.VP(x), nil
	case int:
		return graphics.VP(float64(x)), nil
	case resource.Resource:
		return graphics.LengthRef(x), nil
	case string:
		l, err := graphics.ParseLength(x)
		if err != nil {
			return graphics.Length{}, retag(field, err)
		}
		return l, nil
	}
	return graphics.Length{}, fluenterrors.TypeMismatch(field, v, "number", "string", "Resource")
}

// ToFill converts a dynamic value to a Fill: any color form, a
// LinearGradient value, or an object decoded as a LinearGradient.
func ToFill(field string, v any) (graphics.Fill, error) {
	switch x := v.(type) {
	case graphics.LinearGradient:
		return x, x.Validate()
	case map[string]any:
		var g graphics.LinearGradient
		if err := DecodeGradient(field, x, &g); err != nil {
			return nil, err
		}
		return g, g.Validate()
	}
	c, err := ToColor(field, v)
	if err != nil {
		return nil, fluenterrors.TypeMismatch(field, v, "ResourceColor", "LinearGradient")
	}
	return c, nil
}

// Unbound names a callback the declaration refers to but the host did not
// supply. Callback accepts it as a function that does nothing and returns
// zero values.
type Unbound string

// Callback reads argument i as a function of type F.
func Callback[F any](a Args, i int, field string) (F, error) {
	var zero F
	v, err := a.at(i, field)
	if err != nil {
		return zero, err
	}
	if _, ok := v.(Unbound); ok {
		if fn, ok := noop[F](); ok {
			return fn, nil
		}
	}
	fn, ok := v.(F)
	if !ok {
		return zero, fluenterrors.TypeMismatch(field, v, reflect.TypeFor[F]().String())
	}
	return fn, nil
}

// Enum reads argument i as a member of set, given by name or by value.
func Enum[E ~int](a Args, i int, field string, set EnumSet[E]) (E, error) {
	v, err := a.at(i, field)
	if err != nil {
		return 0, err
	}
	switch x := v.(type) {
	case E:
		return x, set.Check(field, x)
	case string:
		if e, ok := set.Parse(x); ok {
			return e, nil
		}
		return 0, fluenterrors.TypeMismatch(field, v, set.Type+" member")
	case float64:
		if x == math.Trunc(x) {
			return E(int(x)), set.Check(field, E(int(x)))
		}
	}
	return 0, fluenterrors.TypeMismatch(field, v, set.Type)
}

// retag rewrites the field name of a structured error raised by a generic parser.
func retag(field string, err error) error {
	var tm *fluenterrors.TypeMismatchError
	if fluenterrors.As(err, &tm) {
		return fluenterrors.TypeMismatch(field, tm.Got, tm.Want...)
	}
	var ce *fluenterrors.ConstraintError
	if fluenterrors.As(err, &ce) {
		return fluenterrors.Constraint(field, ce.Constraint, ce.Value)
	}
	return err
}

func noop[F any]() (F, bool) {
	var zero F
	t := reflect.TypeFor[F]()
	if t.Kind() != reflect.Func {
		return zero, false
	}
	fn := reflect.MakeFunc(t, func([]reflect.Value) []reflect.Value {
		out := make([]reflect.Value, t.NumOut())
		for i := range out {
			out[i] = reflect.Zero(t.Out(i))
		}
		return out
	})
	return fn.Interface().(F), true
}
