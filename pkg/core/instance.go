package core

import "github.com/go-drift/fluent/pkg/attr"

// Instance returns the builder's current attribute as T. It reports false
// when nothing is open or the current attribute is of another component.
//
//	if s, ok := core.Instance[*components.SliderAttribute](b); ok {
//		s.ShowSteps(true)
//	}
func Instance[T attr.Attribute](b *Builder) (T, bool) {
	t, ok := b.Current().(T)
	return t, ok
}
