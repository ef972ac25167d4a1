package attr

import (
	"maps"
	"slices"
)

// State is the accumulated attribute set of one component instance.
// It is owned by a single attribute builder and is not safe for concurrent use.
type State struct {
	values map[string]any
}

func newState() *State {
	return &State{values: make(map[string]any)}
}

// Lookup returns the value stored under key.
func (s *State) Lookup(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key has been set.
func (s *State) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Len returns the number of set attributes.
func (s *State) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Keys returns the set attribute names in sorted order.
func (s *State) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Snapshot returns a copy of the attribute set.
func (s *State) Snapshot() map[string]any {
	if s == nil {
		return map[string]any{}
	}
	return maps.Clone(s.values)
}

func (s *State) set(key string, v any) {
	s.values[key] = v
}

// Get returns the value stored under key as V.
func Get[V any](s *State, key string) (V, bool) {
	raw, ok := s.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := raw.(V)
	return v, ok
}
