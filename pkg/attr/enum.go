package attr

import (
	"fmt"
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// EnumSet names the members of an int-backed enum whose values are 0..n-1.
type EnumSet[E ~int] struct {
	// Type is the enum's declared name, accepted as a prefix ("FlexAlign.Center").
	Type  string
	Names []string
}

// Name returns the member name of e.
func (s EnumSet[E]) Name(e E) string {
	if s.Valid(e) {
		return s.Names[e]
	}
	return fmt.Sprintf("%s(%d)", s.Type, int(e))
}

// Valid reports whether e is a declared member.
func (s EnumSet[E]) Valid(e E) bool {
	return e >= 0 && int(e) < len(s.Names)
}

// Parse maps "SpaceBetween", "SPACE_BETWEEN" or "FlexAlign.SpaceBetween"
// to its member, ignoring case.
func (s EnumSet[E]) Parse(v string) (E, bool) {
	v = strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(v), s.Type+"."), "_", "")
	for i, name := range s.Names {
		if strings.EqualFold(name, v) {
			return E(i), true
		}
	}
	return 0, false
}

// Check returns a ConstraintViolation when e is not a declared member.
func (s EnumSet[E]) Check(field string, e E) error {
	if !s.Valid(e) {
		return fluenterrors.Constraint(field, "declared "+s.Type, int(e))
	}
	return nil
}

// Unmarshal parses text into *e, for UnmarshalText implementations.
func (s EnumSet[E]) Unmarshal(text []byte, e *E) error {
	v, ok := s.Parse(string(text))
	if !ok {
		return fluenterrors.TypeMismatch(s.Type, string(text), s.Type+" member")
	}
	*e = v
	return nil
}

// Visibility controls whether a component is shown and whether it takes space.
type Visibility int

const (
	Visible Visibility = iota
	// Hidden keeps the component's layout space.
	Hidden
	// None removes the component from layout.
	None
)

var visibilityNames = EnumSet[Visibility]{Type: "Visibility", Names: []string{"Visible", "Hidden", "None"}}

func (v Visibility) String() string { return visibilityNames.Name(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visibility) UnmarshalText(text []byte) error { return visibilityNames.Unmarshal(text, v) }
