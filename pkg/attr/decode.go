package attr

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-viper/mapstructure/v2"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

var (
	lengthType     = reflect.TypeFor[graphics.Length]()
	colorType      = reflect.TypeFor[graphics.ResourceColor]()
	fillType       = reflect.TypeFor[graphics.Fill]()
	shadowType     = reflect.TypeFor[graphics.Shadow]()
	gradientType   = reflect.TypeFor[graphics.LinearGradient]()
	fontWeightType = reflect.TypeFor[graphics.FontWeight]()
	fontStyleType  = reflect.TypeFor[graphics.FontStyle]()
	strType        = reflect.TypeFor[resource.Str]()
)

// Decode fills out (a pointer to an options struct) from an untyped object.
// Field names follow the json tags. Unknown keys are UnknownAttribute
// errors; values that fit no accepted variant are TypeMismatch errors.
func Decode(owner string, in any, out any) error {
	if in == nil {
		return nil
	}
	if _, ok := in.(map[string]any); !ok {
		return fluenterrors.TypeMismatch(owner, in, "object")
	}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "json",
		Metadata: &md,
		Result:   out,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			valueHook,
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in); err != nil {
		if fluenterrors.KindOf(err) != fluenterrors.KindUnknown {
			return err
		}
		return fluenterrors.TypeMismatch(owner, in, fmt.Sprintf("%s (%v)", reflect.TypeOf(out).Elem().Name(), err))
	}
	if len(md.Unused) > 0 {
		slices.Sort(md.Unused)
		return fluenterrors.UnknownAttribute(owner, md.Unused[0])
	}
	return nil
}

// valueHook converts DSL values into the graphics and resource types used
// by option fields.
func valueHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case lengthType:
		return ToLength("length", data)
	case colorType:
		return ToColor("color", data)
	case fillType:
		return ToFill("fill", data)
	case shadowType:
		return ToShadow("shadow", data)
	case strType:
		return ToStr("string", data)
	case gradientType:
		if m, ok := data.(map[string]any); ok {
			var g graphics.LinearGradient
			err := DecodeGradient("linearGradient", m, &g)
			return g, err
		}
	case fontWeightType:
		return graphics.ParseFontWeight(data)
	case fontStyleType:
		if s, ok := data.(string); ok {
			return graphics.ParseFontStyle(s)
		}
	}
	return data, nil
}

// ToShadow converts a ShadowStyle name or a shadow options object.
func ToShadow(field string, v any) (graphics.Shadow, error) {
	switch x := v.(type) {
	case graphics.Shadow:
		return x, x.Validate()
	case string:
		if s, ok := graphics.ParseShadowStyle(x); ok {
			return s, nil
		}
	case map[string]any:
		opts := graphics.ShadowOptions{}
		rest := make(map[string]any, len(x))
		for k, val := range x {
			switch k {
			case "color":
				c, err := ToColor(field+".color", val)
				if err != nil {
					return nil, err
				}
				opts.Color = c
			case "type":
				switch t := val.(type) {
				case string:
					if err := opts.Type.UnmarshalText([]byte(t)); err != nil {
						return nil, retag(field+".type", err)
					}
				case float64:
					opts.Type = graphics.ShadowType(int(t))
				default:
					return nil, fluenterrors.TypeMismatch(field+".type", val, "ShadowType")
				}
			default:
				rest[k] = val
			}
		}
		if err := Decode("ShadowOptions", rest, &opts); err != nil {
			return nil, err
		}
		return opts, opts.Validate()
	}
	return nil, fluenterrors.TypeMismatch(field, v, "ShadowOptions", "ShadowStyle")
}

// DecodeGradient decodes {angle, direction, colors: [[color, pos], ...], repeating}.
func DecodeGradient(field string, m map[string]any, g *graphics.LinearGradient) error {
	for k, v := range m {
		switch k {
		case "angle":
			a, err := Args{v}.Float(0, field+".angle")
			if err != nil {
				return err
			}
			g.Angle = &a
		case "direction":
			s, ok := v.(string)
			if !ok {
				return fluenterrors.TypeMismatch(field+".direction", v, "GradientDirection")
			}
			d, ok := graphics.ParseGradientDirection(s)
			if !ok {
				return fluenterrors.TypeMismatch(field+".direction", v, "GradientDirection")
			}
			g.Direction = d
		case "repeating":
			b, err := Args{v}.Bool(0, field+".repeating")
			if err != nil {
				return err
			}
			g.Repeating = b
		case "colors":
			list, ok := v.([]any)
			if !ok {
				return fluenterrors.TypeMismatch(field+".colors", v, "[[color, number], ...]")
			}
			g.Stops = make([]graphics.GradientStop, 0, len(list))
			for i, item := range list {
				name := fmt.Sprintf("%s.colors[%d]", field, i)
				pair, ok := item.([]any)
				if !ok || len(pair) != 2 {
					return fluenterrors.TypeMismatch(name, item, "[color, number]")
				}
				c, err := Args(pair).Color(0, name)
				if err != nil {
					return err
				}
				pos, err := Args(pair).Float(1, name)
				if err != nil {
					return err
				}
				g.Stops = append(g.Stops, graphics.GradientStop{Color: c, Position: pos})
			}
		default:
			return fluenterrors.UnknownAttribute("LinearGradientOptions", k)
		}
	}
	return nil
}
