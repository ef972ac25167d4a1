package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// DefaultBadgeMaxCount is the count shown as "99+" when MaxCount is unset.
const DefaultBadgeMaxCount = 99

// BadgeStyle styles the badge bubble. Zero fields use platform defaults.
type BadgeStyle struct {
	Color       graphics.ResourceColor `json:"color"`
	FontSize    graphics.Length        `json:"fontSize"`
	BadgeSize   graphics.Length        `json:"badgeSize"`
	BadgeColor  graphics.ResourceColor `json:"badgeColor"`
	BorderColor graphics.ResourceColor `json:"borderColor"`
	BorderWidth graphics.Length        `json:"borderWidth"`
	FontWeight  graphics.FontWeight    `json:"fontWeight"`
}

func (s BadgeStyle) validate() error {
	return attr.First(
		graphics.CheckNonNegative("style.fontSize", s.FontSize),
		graphics.CheckNonNegative("style.badgeSize", s.BadgeSize),
		graphics.CheckNonNegative("style.borderWidth", s.BorderWidth),
		graphics.CheckFontWeight("style.fontWeight", s.FontWeight),
	)
}

// BadgeParam is the construction argument of [Badge]: either
// [BadgeWithCount] or [BadgeWithValue].
type BadgeParam interface {
	badgeLayout() (BadgePosition, BadgeStyle)
}

// BadgeWithCount shows a number, capped at MaxCount.
type BadgeWithCount struct {
	Count    int           `json:"count" validate:"gte=0"`
	MaxCount int           `json:"maxCount" validate:"omitempty,gt=0"`
	Position BadgePosition `json:"position"`
	Style    BadgeStyle    `json:"style"`
}

func (p BadgeWithCount) badgeLayout() (BadgePosition, BadgeStyle) { return p.Position, p.Style }

// BadgeWithValue shows a short text.
type BadgeWithValue struct {
	Value    string        `json:"value" validate:"required"`
	Position BadgePosition `json:"position"`
	Style    BadgeStyle    `json:"style"`
}

func (p BadgeWithValue) badgeLayout() (BadgePosition, BadgeStyle) { return p.Position, p.Style }

// BadgeAttribute is the attribute builder returned by [Badge].
type BadgeAttribute struct {
	attr.Common[*BadgeAttribute]
}

// Badge creates a badge around a single child. The stored options are a
// BadgeWithCount with MaxCount defaulted, or a BadgeWithValue.
func Badge(param BadgeParam) (*BadgeAttribute, error) {
	switch p := param.(type) {
	case BadgeWithCount:
		if err := attr.ValidateOptions("BadgeWithCount", p); err != nil {
			return nil, err
		}
		if p.MaxCount == 0 {
			p.MaxCount = DefaultBadgeMaxCount
		}
		param = p
	case BadgeWithValue:
		if err := attr.ValidateOptions("BadgeWithValue", p); err != nil {
			return nil, err
		}
	case nil:
		return nil, fluenterrors.MissingField("Badge", "count or value")
	}
	pos, style := param.badgeLayout()
	if err := attr.First(badgePositionNames.Check("position", pos), style.validate()); err != nil {
		return nil, err
	}
	a := &BadgeAttribute{}
	a.Init(a, "Badge", param)
	return a, nil
}

func newBadge(args attr.Args) (*BadgeAttribute, error) {
	if err := args.Arity("Badge", 1, 1); err != nil {
		return nil, err
	}
	if p, ok := args[0].(BadgeParam); ok {
		return Badge(p)
	}
	m, ok := args[0].(map[string]any)
	if !ok {
		return nil, fluenterrors.TypeMismatch("Badge", args[0], "BadgeWithCount", "BadgeWithValue")
	}
	if _, hasValue := m["value"]; hasValue {
		var p BadgeWithValue
		if err := attr.Decode("BadgeWithValue", m, &p); err != nil {
			return nil, err
		}
		return Badge(p)
	}
	if _, hasCount := m["count"]; !hasCount {
		return nil, fluenterrors.MissingField("BadgeWithCount", "count")
	}
	var p BadgeWithCount
	if err := attr.Decode("BadgeWithCount", m, &p); err != nil {
		return nil, err
	}
	return Badge(p)
}
