package core

import (
	"fmt"

	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/errors"
)

// frame is one open attribute and the children closed under it so far.
type frame struct {
	attr     attr.Attribute
	children []*Node
}

// Builder assembles attributes into a tree of Nodes. It is confined to the
// goroutine that created it.
type Builder struct {
	registry *attr.Registry
	stack    []*frame
	roots    []*Node
	err      error
}

// NewBuilder returns an empty builder. When registry is non-nil, children
// are only accepted under components registered as containers.
func NewBuilder(registry *attr.Registry) *Builder {
	return &Builder{registry: registry}
}

// Depth returns the number of open attributes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

// Err returns the first failure, or nil.
func (b *Builder) Err() error {
	return b.err
}

// Current returns the innermost open attribute, or nil.
func (b *Builder) Current() attr.Attribute {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1].attr
}

// Open makes a the current attribute. Children added before the matching
// Close become its children.
func (b *Builder) Open(a attr.Attribute) error {
	if b.err != nil {
		return b.err
	}
	if a == nil {
		return b.fail(&errors.BuildError{Reason: "nil attribute"})
	}
	if err := b.checkParent(a.Component()); err != nil {
		return b.fail(err)
	}
	b.stack = append(b.stack, &frame{attr: a})
	return nil
}

// Close freezes the current attribute into a Node and attaches it to its
// parent, or to the roots when nothing else is open.
func (b *Builder) Close() error {
	if b.err != nil {
		return b.err
	}
	if len(b.stack) == 0 {
		return b.fail(&errors.BuildError{Reason: "close without open"})
	}
	top := b.stack[len(b.stack)-1]
	if err := top.attr.Err(); err != nil {
		return b.fail(&errors.BuildError{Component: top.attr.Component(), Reason: "invalid attribute", Err: err})
	}
	b.stack = b.stack[:len(b.stack)-1]
	n := freeze(top.attr, top.children)
	if len(b.stack) == 0 {
		b.roots = append(b.roots, n)
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.children = append(parent.children, n)
	}
	return nil
}

// Add opens and immediately closes a, for leaf components.
func (b *Builder) Add(a attr.Attribute) error {
	if err := b.Open(a); err != nil {
		return err
	}
	return b.Close()
}

// Finish returns the root nodes. Every opened attribute must be closed.
func (b *Builder) Finish() ([]*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	if n := len(b.stack); n > 0 {
		top := b.stack[n-1].attr.Component()
		return nil, b.fail(&errors.BuildError{Component: top, Reason: fmt.Sprintf("%d attribute(s) not closed", n)})
	}
	return b.roots, nil
}

// Build runs fn against a fresh builder and returns the finished roots.
// A panic in fn, such as attr.Must on a failed factory, is returned as an
// error instead of unwinding the caller.
func Build(registry *attr.Registry, fn func(b *Builder) error) (nodes []*Node, err error) {
	defer errors.Recover("core.Build", &err)
	b := NewBuilder(registry)
	if err := fn(b); err != nil {
		return nil, err
	}
	return b.Finish()
}

func (b *Builder) checkParent(child string) error {
	if b.registry == nil || len(b.stack) == 0 {
		return nil
	}
	parent := b.stack[len(b.stack)-1].attr.Component()
	c, err := b.registry.Lookup(parent)
	if err != nil {
		return &errors.BuildError{Component: parent, Reason: "unregistered parent", Err: err}
	}
	if !c.Container {
		return &errors.BuildError{Component: parent, Reason: "cannot have children, got " + child}
	}
	return nil
}

func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return b.err
}
