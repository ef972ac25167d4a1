package graphics

import (
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BorderStyle) UnmarshalText(text []byte) error {
	v, ok := ParseBorderStyle(string(text))
	if !ok {
		return fluenterrors.TypeMismatch("BorderStyle", string(text), "Solid", "Dashed", "Dotted")
	}
	*s = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *GradientDirection) UnmarshalText(text []byte) error {
	v, ok := ParseGradientDirection(string(text))
	if !ok {
		return fluenterrors.TypeMismatch("GradientDirection", string(text), "GradientDirection member")
	}
	*d = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ShadowStyle) UnmarshalText(text []byte) error {
	v, ok := ParseShadowStyle(string(text))
	if !ok {
		return fluenterrors.TypeMismatch("ShadowStyle", string(text), "ShadowStyle member")
	}
	*s = v
	return nil
}

// UnmarshalText accepts "color", "blur" and the ShadowType.-prefixed forms.
func (s *ShadowType) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimPrefix(string(text), "ShadowType.")) {
	case "color":
		*s = ShadowTypeColor
	case "blur":
		*s = ShadowTypeBlur
	default:
		return fluenterrors.TypeMismatch("ShadowType", string(text), "COLOR", "BLUR")
	}
	return nil
}
