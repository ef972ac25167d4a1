package attr

import (
	"fmt"
	"math"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// CheckRange rejects v outside [lo, hi]. NaN is outside every range.
func CheckRange(field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return fluenterrors.Constraint(field, fmt.Sprintf("%g <= v <= %g", lo, hi), v)
	}
	return nil
}

// CheckNonNegative rejects v < 0 and NaN.
func CheckNonNegative[N ~int | ~float64](field string, v N) error {
	if !(v >= 0) {
		return fluenterrors.Constraint(field, "v >= 0", v)
	}
	return nil
}

// CheckPositive rejects v <= 0 and NaN.
func CheckPositive[N ~int | ~float64](field string, v N) error {
	if !(v > 0) {
		return fluenterrors.Constraint(field, "v > 0", v)
	}
	return nil
}

// CheckOrdered rejects lo > hi for an order-dependent pair, and any pair
// that does not compare because one side is NaN.
func CheckOrdered[N ~int | ~float64](field, loName, hiName string, lo, hi N) error {
	if !(lo <= hi) {
		return fluenterrors.Constraint(field, loName+" <= "+hiName, fmt.Sprintf("%v > %v", lo, hi))
	}
	return nil
}

// CheckFinite rejects NaN and infinities.
func CheckFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fluenterrors.Constraint(field, "finite number", v)
	}
	return nil
}

// CheckNotNil rejects a nil callback.
func CheckNotNil[F any](field string, fn F) error {
	if isNilFunc(fn) {
		return fluenterrors.MissingField("callback", field)
	}
	return nil
}

// CheckNotEmpty rejects an empty string.
func CheckNotEmpty(field, v string) error {
	if v == "" {
		return fluenterrors.Constraint(field, "non-empty", `""`)
	}
	return nil
}

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
