// Package resource models references into an application's resource table.
//
// Resources are opaque to the attribute builders: a [Resource] names an entry
// such as app.color.primary and is carried through attribute state unchanged.
// Resolving it to a concrete value belongs to the host runtime.
package resource

import (
	"fmt"
	"strings"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// Type is the resource table a reference points into.
type Type string

// Known resource types.
const (
	TypeColor   Type = "color"
	TypeFloat   Type = "float"
	TypeString  Type = "string"
	TypeMedia   Type = "media"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
	TypePlural  Type = "plural"
)

var knownTypes = map[Type]bool{
	TypeColor: true, TypeFloat: true, TypeString: true, TypeMedia: true,
	TypeInteger: true, TypeBoolean: true, TypePlural: true,
}

// Resource is a reference of the form scope.type.name, e.g. app.media.icon.
type Resource struct {
	// Scope is "app" or "sys".
	Scope string
	Type  Type
	Name  string
	// Params are substitution arguments for string and plural resources.
	Params []any
	// Bundle and Module select another package's table; empty means the
	// current one.
	Bundle string
	Module string
}

// Parse parses a reference such as "app.color.primary". The $r('...')
// wrapper is accepted and stripped.
func Parse(ref string) (Resource, error) {
	s := strings.TrimSpace(ref)
	if strings.HasPrefix(s, "$r(") && strings.HasSuffix(s, ")") {
		s = strings.Trim(s[3:len(s)-1], `'" `)
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return Resource{}, fluenterrors.TypeMismatch("resource", ref, "scope.type.name")
	}
	if parts[0] != "app" && parts[0] != "sys" {
		return Resource{}, fluenterrors.Constraint("resource", `scope in {"app", "sys"}`, parts[0])
	}
	t := Type(parts[1])
	if !knownTypes[t] {
		return Resource{}, fluenterrors.Constraint("resource", "known resource type", parts[1])
	}
	return Resource{Scope: parts[0], Type: t, Name: parts[2]}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(ref string) Resource {
	r, err := Parse(ref)
	if err != nil {
		panic(err)
	}
	return r
}

// App returns a reference into the application table.
func App(t Type, name string) Resource {
	return Resource{Scope: "app", Type: t, Name: name}
}

// WithParams returns a copy of the reference with substitution arguments.
func (r Resource) WithParams(params ...any) Resource {
	r.Params = append([]any(nil), params...)
	return r
}

// IsZero reports whether r names nothing.
func (r Resource) IsZero() bool {
	return r.Name == ""
}

// Key returns the scope.type.name form.
func (r Resource) Key() string {
	return r.Scope + "." + string(r.Type) + "." + r.Name
}

func (r Resource) String() string {
	if len(r.Params) == 0 {
		return fmt.Sprintf("$r('%s')", r.Key())
	}
	params := make([]string, len(r.Params))
	for i, p := range r.Params {
		params[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("$r('%s', %s)", r.Key(), strings.Join(params, ", "))
}
