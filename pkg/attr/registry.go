package attr

import (
	"maps"
	"slices"
	"sync"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// Method applies one dynamically typed attribute call to a.
type Method[T any] func(a T, args Args) error

// Methods maps attribute names (lower camel case, as written in
// declarations) to their dynamic implementations.
type Methods[T any] map[string]Method[T]

// Composite is satisfied by attribute types that embed Common[T].
type Composite[T any] interface {
	Attribute
	commonAttrs() *Common[T]
}

// Component describes a registered component for dynamic construction.
type Component struct {
	// Name is the component name, e.g. "Slider".
	Name string
	// Container reports whether the component accepts children.
	Container bool

	create  func(args Args) (Attribute, error)
	invoke  func(a Attribute, method string, args Args) error
	methods []string
}

// Define builds a Component for attribute type T from its dynamic factory
// and its own methods; the universal methods are added automatically and
// may be overridden by own.
func Define[T Composite[T]](name string, container bool, create func(Args) (T, error), own Methods[T]) *Component {
	all := CommonMethods[T]()
	maps.Copy(all, own)
	return &Component{
		Name:      name,
		Container: container,
		create: func(args Args) (Attribute, error) {
			a, err := create(args)
			if err != nil {
				return nil, err
			}
			return a, nil
		},
		invoke: func(a Attribute, method string, args Args) error {
			t, ok := a.(T)
			if !ok {
				return fluenterrors.TypeMismatch("receiver", a, name+"Attribute")
			}
			m, ok := all[method]
			if !ok {
				return fluenterrors.UnknownAttribute(name, method)
			}
			failed := t.commonAttrs().track()
			if err := m(t, args); err != nil {
				return err
			}
			return failed()
		},
		methods: slices.Sorted(maps.Keys(all)),
	}
}

// New constructs a fresh attribute from dynamic factory arguments.
func (c *Component) New(args Args) (Attribute, error) {
	a, err := c.create(args)
	if err != nil {
		return nil, fluenterrors.Wrap(c.Name, c.Name, err)
	}
	return a, nil
}

// Invoke applies the named attribute method to a.
func (c *Component) Invoke(a Attribute, method string, args Args) error {
	return c.invoke(a, method, args)
}

// Methods returns the attribute method names in sorted order.
func (c *Component) Methods() []string {
	return slices.Clone(c.methods)
}

// HasMethod reports whether the component defines method.
func (c *Component) HasMethod(method string) bool {
	_, found := slices.BinarySearch(c.methods, method)
	return found
}

// Registry maps component names to their definitions. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	components map[string]*Component
}

// NewRegistry returns a registry holding components. Duplicate names panic.
func NewRegistry(components ...*Component) *Registry {
	r := &Registry{components: make(map[string]*Component, len(components))}
	for _, c := range components {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds c. Registering a name twice is a ConstraintViolation.
func (r *Registry) Register(c *Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.components[c.Name]; ok {
		return fluenterrors.Constraint("registry", "unique component name", c.Name)
	}
	r.components[c.Name] = c
	return nil
}

// Lookup returns the component registered under name.
func (r *Registry) Lookup(name string) (*Component, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.components[name]
	if !ok {
		return nil, fluenterrors.UnknownComponent(name)
	}
	return c, nil
}

// Names returns the registered component names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.components))
}

// Unary builds a one-argument Method from an argument reader and a setter.
func Unary[T, V any](field string, read func(Args, int, string) (V, error), set func(T, V) T) Method[T] {
	return func(a T, args Args) error {
		if err := args.Arity(field, 1, 1); err != nil {
			return err
		}
		v, err := read(args, 0, field)
		if err != nil {
			return err
		}
		set(a, v)
		return nil
	}
}

// EnumReader adapts Enum to the reader signature used by Unary.
func EnumReader[E ~int](set EnumSet[E]) func(Args, int, string) (E, error) {
	return func(a Args, i int, field string) (E, error) {
		return Enum(a, i, field, set)
	}
}

// CallbackReader adapts Callback to the reader signature used by Unary.
func CallbackReader[F any]() func(Args, int, string) (F, error) {
	return Callback[F]
}

// ObjectReader decodes an object argument into V with Decode.
func ObjectReader[V any](owner string) func(Args, int, string) (V, error) {
	return func(a Args, i int, field string) (V, error) {
		var v V
		raw, err := a.at(i, field)
		if err != nil {
			return v, err
		}
		if typed, ok := raw.(V); ok {
			return typed, nil
		}
		err = Decode(owner, raw, &v)
		return v, err
	}
}
