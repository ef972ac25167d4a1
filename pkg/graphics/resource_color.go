package graphics

import (
	"github.com/go-drift/fluent/pkg/resource"
)

// ResourceColor is a color given either literally or as a resource
// reference. The zero value is unset.
type ResourceColor struct {
	color Color
	ref   *resource.Resource
	set   bool
}

// Solid returns a literal ResourceColor.
func Solid(c Color) ResourceColor {
	return ResourceColor{color: c, set: true}
}

// Hex returns a literal ResourceColor parsed from s. It panics on malformed
// input and is meant for constants in code; use ParseColor for external data.
func Hex(s string) ResourceColor {
	return Solid(MustParseColor(s))
}

// ColorRef returns a ResourceColor backed by a color resource.
func ColorRef(r resource.Resource) ResourceColor {
	return ResourceColor{ref: &r, set: true}
}

// Color returns the literal color and true, or false for references.
func (c ResourceColor) Color() (Color, bool) {
	if !c.set || c.ref != nil {
		return 0, false
	}
	return c.color, true
}

// Resource returns the reference and true when c is resource-backed.
func (c ResourceColor) Resource() (resource.Resource, bool) {
	if c.ref == nil {
		return resource.Resource{}, false
	}
	return *c.ref, true
}

// IsZero reports whether c is unset.
func (c ResourceColor) IsZero() bool {
	return !c.set
}

func (c ResourceColor) String() string {
	switch {
	case !c.set:
		return "<unset>"
	case c.ref != nil:
		return c.ref.String()
	default:
		return c.color.String()
	}
}

func (ResourceColor) isFill() {}

// Fill is either a ResourceColor or a LinearGradient.
type Fill interface {
	isFill()
	String() string
}
