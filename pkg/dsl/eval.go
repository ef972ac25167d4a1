package dsl

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/components"
	"github.com/go-drift/fluent/pkg/core"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/log"
	"github.com/go-drift/fluent/pkg/resource"
	"github.com/go-drift/fluent/pkg/schema"
)

// Env is what a source is evaluated against.
type Env struct {
	// Registry resolves component names. Nil means components.Registry().
	Registry *attr.Registry
	// Handlers binds identifiers to host values: callbacks with the exact
	// function type the attribute expects, controllers and constants.
	Handlers map[string]any
	// Resolver, if set, checks every component and attribute call against
	// the target platform.
	Resolver *schema.Resolver
	// Logger receives debug traces. Nil discards them.
	Logger *log.Logger
	// StubHandlers binds identifiers passed to on* attributes that have no
	// handler to callbacks that do nothing, so sources can be checked
	// without a host.
	StubHandlers bool
}

// Diagnostic is a capability finding located in the source.
type Diagnostic struct {
	Pos lexer.Position
	schema.Diagnostic
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Diagnostic)
}

// Result is the outcome of a successful evaluation.
type Result struct {
	// Nodes are the root component trees in source order.
	Nodes []*core.Node
	// Diagnostics are the resolver findings; empty without a resolver.
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic is an error.
func (r *Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == schema.SeverityError {
			return true
		}
	}
	return false
}

// Err joins the diagnostic errors, each located in the source.
func (r *Result) Err() error {
	var errs []error
	for _, d := range r.Diagnostics {
		if d.Severity == schema.SeverityError {
			errs = append(errs, located(d.Pos, d.Err))
		}
	}
	return fluenterrors.Join(errs...)
}

// Evaluate builds the node trees of f. The first failing call stops
// evaluation; its error is an *errors.ParseError at the call position that
// keeps the kind of the underlying failure. Capability findings do not stop
// evaluation and are reported in the result.
func Evaluate(f *File, env Env) (res *Result, err error) {
	defer fluenterrors.Recover("dsl.Evaluate", &err)
	if env.Registry == nil {
		env.Registry = components.Registry()
	}
	ev := &evaluator{env: env, log: env.Logger.With("file", f.Pos.Filename)}
	nodes, err := core.Build(env.Registry, func(b *core.Builder) error {
		return ev.stmts(b, f.Stmts)
	})
	if err != nil {
		return nil, err
	}
	ev.log.Debug(fmt.Sprintf("evaluated %d root(s)", len(nodes)))
	return &Result{Nodes: nodes, Diagnostics: ev.diags}, nil
}

// Run parses and evaluates a source.
func Run(r io.Reader, filename string, env Env) (*Result, error) {
	f, err := Parse(r, filename)
	if err != nil {
		return nil, err
	}
	return Evaluate(f, env)
}

type evaluator struct {
	env   Env
	log   *log.Logger
	diags []Diagnostic
	// event is set while the arguments of an on* attribute are evaluated.
	event bool
}

func (ev *evaluator) stmts(b *core.Builder, stmts []*Stmt) error {
	for _, s := range stmts {
		if err := ev.stmt(b, s); err != nil {
			return err
		}
	}
	return nil
}

func (ev *evaluator) stmt(b *core.Builder, s *Stmt) error {
	factory := s.Factory()
	comp, err := ev.env.Registry.Lookup(factory.Name)
	if err != nil {
		return located(factory.Pos, err)
	}
	args, err := ev.args(factory.Args)
	if err != nil {
		return err
	}
	a, err := comp.New(args)
	if err != nil {
		return located(factory.Pos, err)
	}
	if r := ev.env.Resolver; r != nil {
		ev.report(factory.Pos, r.Component(comp.Name))
	}

	for _, m := range s.Methods() {
		ev.event = strings.HasPrefix(m.Name, "on")
		args, err := ev.args(m.Args)
		ev.event = false
		if err != nil {
			return err
		}
		if err := comp.Invoke(a, m.Name, args); err != nil {
			return located(m.Pos, err)
		}
		if r := ev.env.Resolver; r != nil {
			ev.report(m.Pos, r.Attribute(comp.Name, m.Name))
		}
	}
	ev.log.With("component", comp.Name).Debug(fmt.Sprintf("%s with %d attribute call(s)", s.Pos, len(s.Methods())))

	if s.Block == nil {
		return located(s.Pos, b.Add(a))
	}
	if err := b.Open(a); err != nil {
		return located(s.Pos, err)
	}
	if err := ev.stmts(b, s.Block.Stmts); err != nil {
		return err
	}
	return located(s.Block.Pos, b.Close())
}

func (ev *evaluator) report(pos lexer.Position, ds schema.Diagnostics) {
	for _, d := range ds {
		ev.diags = append(ev.diags, Diagnostic{Pos: pos, Diagnostic: d})
	}
}

func (ev *evaluator) args(values []*Value) (attr.Args, error) {
	args := make(attr.Args, len(values))
	for i, v := range values {
		x, err := ev.value(v)
		if err != nil {
			return nil, err
		}
		args[i] = x
	}
	return args, nil
}

// value converts a literal to the dynamic form attribute methods accept.
func (ev *evaluator) value(v *Value) (any, error) {
	switch {
	case v.Resource != nil:
		r, err := resource.Parse(string(v.Resource.Ref))
		if err != nil {
			return nil, located(v.Pos, err)
		}
		if len(v.Resource.Params) > 0 {
			params, err := ev.args(v.Resource.Params)
			if err != nil {
				return nil, err
			}
			r = r.WithParams(params...)
		}
		return r, nil
	case v.Str != nil:
		return string(*v.Str), nil
	case v.Number != nil:
		if v.Number.Unit == "" {
			return v.Number.Value, nil
		}
		l, err := graphics.ParseLength(v.Number.Raw)
		return l, located(v.Pos, err)
	case v.Color != nil:
		c, err := graphics.ParseColor(*v.Color)
		return c, located(v.Pos, err)
	case v.Bool != nil:
		return bool(*v.Bool), nil
	case v.Null:
		return nil, nil
	case v.Object != nil:
		m := make(map[string]any, len(v.Object.Entries))
		for _, e := range v.Object.Entries {
			x, err := ev.value(e.Value)
			if err != nil {
				return nil, err
			}
			m[string(e.Key)] = x
		}
		return m, nil
	case v.Array != nil:
		list := make([]any, len(v.Array.Items))
		for i, item := range v.Array.Items {
			x, err := ev.value(item)
			if err != nil {
				return nil, err
			}
			list[i] = x
		}
		return list, nil
	}
	return ev.ident(v)
}

// ident resolves a bare or dotted identifier: a handler binding, a
// stubbed callback, a Color.Name constant, or otherwise an enum member name such as
// "Axis.Horizontal" that the receiving attribute parses.
func (ev *evaluator) ident(v *Value) (any, error) {
	name := strings.Join(v.Path, ".")
	if h, ok := ev.env.Handlers[name]; ok {
		return h, nil
	}
	if ev.event && ev.env.StubHandlers && len(v.Path) == 1 {
		ev.log.With("handler", name).Debug("stubbed")
		return attr.Unbound(name), nil
	}
	if len(v.Path) == 2 && v.Path[0] == "Color" {
		c, err := graphics.ParseColor(v.Path[1])
		return c, located(v.Pos, err)
	}
	return name, nil
}

// located attaches a source position to err, keeping its kind.
func located(pos lexer.Position, err error) error {
	if err == nil {
		return nil
	}
	var pe *fluenterrors.ParseError
	if fluenterrors.As(err, &pe) {
		return err
	}
	return &fluenterrors.ParseError{Filename: pos.Filename, Line: pos.Line, Column: pos.Column, Err: err}
}
