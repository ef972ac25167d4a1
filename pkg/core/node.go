package core

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-drift/fluent/pkg/attr"
)

// Node is the frozen hand-off record of one component: what the renderer
// receives. It never changes after the builder creates it.
type Node struct {
	// Component is the component name, e.g. "Slider".
	Component string
	// Options is the record stored by the factory, or nil.
	Options any
	// State is a snapshot of the attribute state at Close.
	State map[string]any
	// Children are the nodes closed under this one, in order.
	Children []*Node
}

func freeze(a attr.Attribute, children []*Node) *Node {
	return &Node{
		Component: a.Component(),
		Options:   a.Options(),
		State:     a.State().Snapshot(),
		Children:  slices.Clip(children),
	}
}

// Lookup returns the attribute stored under key.
func (n *Node) Lookup(key string) (any, bool) {
	v, ok := n.State[key]
	return v, ok
}

// Walk calls fn for n and its descendants in depth-first order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Describe renders the node as plain maps, slices and scalars, suitable for
// YAML or JSON encoding. Callbacks render as "<callback>", values with a
// String method as that string.
func (n *Node) Describe() map[string]any {
	out := map[string]any{"component": n.Component}
	if n.Options != nil {
		if opts := describeValue(reflect.ValueOf(n.Options)); opts != nil {
			out["options"] = opts
		}
	}
	if len(n.State) > 0 {
		state := make(map[string]any, len(n.State))
		for k, v := range n.State {
			state[k] = describeValue(reflect.ValueOf(v))
		}
		out["attributes"] = state
	}
	if len(n.Children) > 0 {
		children := make([]any, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.Describe()
		}
		out["children"] = children
	}
	return out
}

var stringerType = reflect.TypeFor[fmt.Stringer]()

func describeValue(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	if v.Type().Implements(stringerType) && (v.Kind() != reflect.Pointer || !v.IsNil()) {
		return v.Interface().(fmt.Stringer).String()
	}
	switch v.Kind() {
	case reflect.Func:
		if v.IsNil() {
			return nil
		}
		return "<callback>"
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return describeValue(v.Elem())
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	case reflect.Slice, reflect.Array:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = describeValue(v.Index(i))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = describeValue(iter.Value())
		}
		return out
	case reflect.Struct:
		return describeStruct(v)
	}
	return fmt.Sprint(v.Interface())
}

func describeStruct(v reflect.Value) map[string]any {
	t := v.Type()
	out := make(map[string]any, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		out[fieldName(f)] = describeValue(fv)
	}
	return out
}

// fieldName prefers the json tag so dumps use the declaration spelling.
func fieldName(f reflect.StructField) string {
	tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if tag == "" || tag == "-" {
		return f.Name
	}
	return tag
}
