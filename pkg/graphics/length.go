package graphics

import (
	"math"
	"strconv"
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/resource"
)

// Unit is the unit a Length was written in.
type Unit int

const (
	UnitVP      Unit = iota // virtual pixels, the default for bare numbers
	UnitPX                  // physical pixels
	UnitFP                  // font pixels, scale with the user font size
	UnitLPX                 // logical pixels relative to the design width
	UnitPercent             // percentage of the parent
)

// String returns the unit suffix.
func (u Unit) String() string {
	switch u {
	case UnitPX:
		return "px"
	case UnitFP:
		return "fp"
	case UnitLPX:
		return "lpx"
	case UnitPercent:
		return "%"
	default:
		return "vp"
	}
}

// Length preserves a numeric value with its unit, or a resource reference.
type Length struct {
	Value float64
	Unit  Unit
	Ref   *resource.Resource
}

// VP returns a length in virtual pixels.
func VP(v float64) Length { return Length{Value: v, Unit: UnitVP} }

// PX returns a length in physical pixels.
func PX(v float64) Length { return Length{Value: v, Unit: UnitPX} }

// FP returns a length in font pixels.
func FP(v float64) Length { return Length{Value: v, Unit: UnitFP} }

// LPX returns a length in logical pixels.
func LPX(v float64) Length { return Length{Value: v, Unit: UnitLPX} }

// Percent returns a length relative to the parent.
func Percent(v float64) Length { return Length{Value: v, Unit: UnitPercent} }

// LengthRef returns a length backed by a float resource.
func LengthRef(r resource.Resource) Length { return Length{Ref: &r} }

// IsRef reports whether the length is resource-backed.
func (l Length) IsRef() bool { return l.Ref != nil }

// IsZero reports whether l is a literal zero.
func (l Length) IsZero() bool { return l.Ref == nil && l.Value == 0 }

// Comparable reports whether l and o can be ordered without resolution.
func (l Length) Comparable(o Length) bool {
	return l.Ref == nil && o.Ref == nil && l.Unit == o.Unit
}

func (l Length) String() string {
	if l.Ref != nil {
		return l.Ref.String()
	}
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}

// ParseLength parses "10", "10vp", "4px", "12fp", "8lpx", "50%" or a
// $r('app.float.x') reference.
func ParseLength(value string) (Length, error) {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "$r(") {
		r, err := resource.Parse(v)
		if err != nil {
			return Length{}, err
		}
		return LengthRef(r), nil
	}
	lower := strings.ToLower(v)
	unit := UnitVP
	num := lower
	for _, suf := range []struct {
		s string
		u Unit
	}{{"lpx", UnitLPX}, {"vp", UnitVP}, {"px", UnitPX}, {"fp", UnitFP}, {"%", UnitPercent}} {
		if strings.HasSuffix(lower, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(lower, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fluenterrors.TypeMismatch("length", value, "number", "number with vp|px|fp|lpx|%", "$r(...)")
	}
	return Length{Value: f, Unit: unit}, nil
}

// CheckNonNegative returns a ConstraintViolation when a literal length is
// negative or NaN.
func CheckNonNegative(field string, l Length) error {
	if l.Ref == nil && (math.IsNaN(l.Value) || l.Value < 0) {
		return fluenterrors.Constraint(field, "v >= 0", l.String())
	}
	return nil
}

// CheckPositive returns a ConstraintViolation unless a literal length is > 0.
func CheckPositive(field string, l Length) error {
	if l.Ref == nil && !(l.Value > 0) {
		return fluenterrors.Constraint(field, "v > 0", l.String())
	}
	return nil
}
