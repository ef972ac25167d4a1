package graphics

import (
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// SizeOptions sets both dimensions at once.
type SizeOptions struct {
	Width  Length
	Height Length
}

// Validate rejects negative dimensions.
func (s SizeOptions) Validate() error {
	if err := CheckNonNegative("size.width", s.Width); err != nil {
		return err
	}
	return CheckNonNegative("size.height", s.Height)
}

// ConstraintSizeOptions bounds a component's size. A nil bound is open.
type ConstraintSizeOptions struct {
	MinWidth  *Length
	MaxWidth  *Length
	MinHeight *Length
	MaxHeight *Length
}

// Validate rejects negative bounds and min > max on the same axis when both
// bounds share a unit.
func (c ConstraintSizeOptions) Validate() error {
	for _, b := range []struct {
		name string
		l    *Length
	}{{"minWidth", c.MinWidth}, {"maxWidth", c.MaxWidth}, {"minHeight", c.MinHeight}, {"maxHeight", c.MaxHeight}} {
		if b.l == nil {
			continue
		}
		if err := CheckNonNegative("constraintSize."+b.name, *b.l); err != nil {
			return err
		}
	}
	if c.MinWidth != nil && c.MaxWidth != nil && c.MinWidth.Comparable(*c.MaxWidth) && c.MinWidth.Value > c.MaxWidth.Value {
		return fluenterrors.Constraint("constraintSize", "minWidth <= maxWidth", c.MinWidth.String()+" > "+c.MaxWidth.String())
	}
	if c.MinHeight != nil && c.MaxHeight != nil && c.MinHeight.Comparable(*c.MaxHeight) && c.MinHeight.Value > c.MaxHeight.Value {
		return fluenterrors.Constraint("constraintSize", "minHeight <= maxHeight", c.MinHeight.String()+" > "+c.MaxHeight.String())
	}
	return nil
}

// Position is an offset relative to the component's laid-out origin.
type Position struct {
	X Length
	Y Length
}

// EdgeInsets represents padding or margin on four sides.
type EdgeInsets struct {
	Top, Right, Bottom, Left Length
}

// EdgeInsetsAll creates uniform insets on all sides.
func EdgeInsetsAll(value Length) EdgeInsets {
	return EdgeInsets{Top: value, Right: value, Bottom: value, Left: value}
}

// EdgeInsetsSymmetric creates insets with separate horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical Length) EdgeInsets {
	return EdgeInsets{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// EdgeInsetsOnly creates insets with explicit values per side (left, top, right, bottom).
func EdgeInsetsOnly(left, top, right, bottom Length) EdgeInsets {
	return EdgeInsets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Validate rejects negative insets.
func (e EdgeInsets) Validate(field string) error {
	for _, side := range []struct {
		name string
		l    Length
	}{{"top", e.Top}, {"right", e.Right}, {"bottom", e.Bottom}, {"left", e.Left}} {
		if err := CheckNonNegative(field+"."+side.name, side.l); err != nil {
			return err
		}
	}
	return nil
}
