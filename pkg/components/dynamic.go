package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// decodeOptions reads an optional options object at args[i].
func decodeOptions[O any](owner string, args attr.Args, i int) (O, error) {
	var opts O
	if !args.Has(i) || args[i] == nil {
		return opts, nil
	}
	if typed, ok := args[i].(O); ok {
		return typed, nil
	}
	err := attr.Decode(owner, args[i], &opts)
	return opts, err
}

// settled returns a with its recorded error, for factories that record
// option constraint failures on the new attribute.
func settled[T attr.Attribute](a T) (T, error) {
	return a, a.Err()
}

// bound returns the base a mixin was created with, panicking like the
// embedded setters when the attribute did not come from a factory.
func bound[T any](b *attr.Base[T]) *attr.Base[T] {
	if b == nil {
		panic("attr: attribute used before construction; create it with its component factory")
	}
	return b
}

// requireColor rejects an unset ResourceColor.
func requireColor(field string, c graphics.ResourceColor) error {
	if c.IsZero() {
		return fluenterrors.MissingField("argument", field)
	}
	return nil
}
