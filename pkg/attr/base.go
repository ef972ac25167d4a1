package attr

import (
	"fmt"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// Attribute is implemented by every component attribute builder.
type Attribute interface {
	// Component returns the component name, e.g. "Slider".
	Component() string
	// State returns the accumulated attributes.
	State() *State
	// Err returns the first error recorded by a setter, or nil.
	Err() error
	// Options returns the construction options record, or nil.
	Options() any
}

// Base carries the self reference and state shared by all attribute
// builders. T is the concrete attribute pointer type.
type Base[T any] struct {
	self      T
	component string
	state     *State
	options   any
	err       error
	// lastErr is the error of the most recent failing setter, even when err
	// already holds an earlier one.
	lastErr   error
}

// Init binds the builder to its concrete value and the options it was
// built from. Factories call it exactly once on a freshly allocated
// attribute; a second call panics.
func (b *Base[T]) Init(self T, component string, options any) {
	if b.state != nil {
		panic(fmt.Sprintf("attr: %s attribute initialized twice", b.component))
	}
	b.self = self
	b.component = component
	b.options = options
	b.state = newState()
}

func (b *Base[T]) mustInit() {
	if b.state == nil {
		panic("attr: attribute used before construction; create it with its component factory")
	}
}

// Component returns the component name.
func (b *Base[T]) Component() string {
	b.mustInit()
	return b.component
}

// State returns the accumulated attributes.
func (b *Base[T]) State() *State {
	b.mustInit()
	return b.state
}

// Err returns the first error recorded by a setter.
func (b *Base[T]) Err() error {
	return b.err
}

// Options returns the construction options record.
func (b *Base[T]) Options() any {
	b.mustInit()
	return b.options
}

// Self returns the concrete attribute.
func (b *Base[T]) Self() T {
	b.mustInit()
	return b.self
}

// Set stores v under key and returns the concrete attribute.
func (b *Base[T]) Set(key string, v any) T {
	b.mustInit()
	b.state.set(key, v)
	return b.self
}

// SetChecked stores v under key when err is nil. Otherwise the state is left
// unchanged and err is recorded.
func (b *Base[T]) SetChecked(key string, v any, err error) T {
	if err != nil {
		return b.Fail(key, err)
	}
	return b.Set(key, v)
}

// Fail records err for the setter named key and returns the concrete attribute.
func (b *Base[T]) Fail(key string, err error) T {
	b.mustInit()
	b.lastErr = fluenterrors.Wrap(b.component+"."+key, b.component, err)
	if b.err == nil {
		b.err = b.lastErr
	}
	return b.self
}

// track clears the per-call error and returns a function reporting the
// error recorded by setters run since.
func (b *Base[T]) track() func() error {
	b.lastErr = nil
	return func() error { return b.lastErr }
}

// OptionsOf returns the options record of a as O.
func OptionsOf[O any](a Attribute) (O, bool) {
	o, ok := a.Options().(O)
	return o, ok
}

// Must returns a unless err is non-nil, in which case it panics. It wraps
// factories that validate their options:
//
//	attr.Must(components.Radio(opts)).Checked(true)
func Must[T any](a T, err error) T {
	if err != nil {
		panic(err)
	}
	return a
}

// Ptr returns a pointer to v, for optional and required numeric option fields.
func Ptr[T any](v T) *T {
	return &v
}
