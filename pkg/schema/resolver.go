package schema

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-drift/fluent/pkg/core"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/log"
)

// Target is the platform declarations are checked against.
type Target struct {
	// APIVersion is the target API level, e.g. "9" or "v11". Empty disables
	// version gating.
	APIVersion string
	// Syscaps lists the capabilities the device offers. Nil disables
	// capability checks; an empty slice means none are offered.
	Syscaps []string
}

// Severity grades a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one finding of the resolver.
type Diagnostic struct {
	Severity  Severity
	Component string
	// Attribute is empty for component-level findings.
	Attribute string
	Message   string
	// Err is a *errors.CapabilityError for errors, nil for warnings.
	Err error
}

func (d Diagnostic) String() string {
	name := d.Component
	if d.Attribute != "" {
		name += "." + d.Attribute
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, name, d.Message)
}

// Diagnostics is an ordered list of findings.
type Diagnostics []Diagnostic

// HasErrors reports whether any finding is an error.
func (ds Diagnostics) HasErrors() bool {
	return slices.ContainsFunc(ds, func(d Diagnostic) bool { return d.Severity == SeverityError })
}

// Err joins the errors of every error finding, or returns nil.
func (ds Diagnostics) Err() error {
	var errs []error
	for _, d := range ds {
		if d.Severity == SeverityError {
			errs = append(errs, d.Err)
		}
	}
	return fluenterrors.Join(errs...)
}

// Warnings returns the warning findings.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Resolver checks components and attributes against a Target.
type Resolver struct {
	schema  *Schema
	version string
	syscaps map[string]bool
	log     *log.Logger
}

// NewResolver returns a resolver for target. A nil schema uses Default().
func NewResolver(s *Schema, target Target, logger *log.Logger) (*Resolver, error) {
	if s == nil {
		s = Default()
	}
	r := &Resolver{schema: s, log: logger}
	if target.APIVersion != "" {
		v, err := normalizeVersion(target.APIVersion)
		if err != nil {
			return nil, err
		}
		r.version = v
	}
	if target.Syscaps != nil {
		r.syscaps = make(map[string]bool, len(target.Syscaps))
		for _, c := range target.Syscaps {
			r.syscaps[c] = true
		}
	}
	return r, nil
}

// Schema returns the schema the resolver reads.
func (r *Resolver) Schema() *Schema { return r.schema }

// Component checks a component. Components the schema does not annotate
// pass.
func (r *Resolver) Component(name string) Diagnostics {
	c, ok := r.schema.Lookup(name)
	if !ok {
		return nil
	}
	return r.check(name, "", c.Meta)
}

// Attribute checks one attribute of a component, falling back to the
// common attributes.
func (r *Resolver) Attribute(component, attribute string) Diagnostics {
	m, ok := r.schema.Attribute(component, attribute)
	if !ok {
		return nil
	}
	if m.Syscap == "" {
		if c, ok := r.schema.Lookup(component); ok {
			m.Syscap = c.Syscap
		}
	}
	return r.check(component, attribute, m)
}

// Nodes checks every node of the trees and the attributes recorded in
// their state, in depth-first order.
func (r *Resolver) Nodes(nodes []*core.Node) Diagnostics {
	var ds Diagnostics
	for _, root := range nodes {
		root.Walk(func(n *core.Node) bool {
			ds = append(ds, r.Component(n.Component)...)
			keys := make([]string, 0, len(n.State))
			for k := range n.State {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				ds = append(ds, r.Attribute(n.Component, k)...)
			}
			return true
		})
	}
	return ds
}

func (r *Resolver) check(component, attribute string, m Meta) Diagnostics {
	var ds Diagnostics
	fail := func(reason string) {
		ds = append(ds, Diagnostic{
			Severity:  SeverityError,
			Component: component,
			Attribute: attribute,
			Message:   reason,
			Err:       &fluenterrors.CapabilityError{Component: component, Attribute: attribute, Reason: reason},
		})
	}
	if r.version != "" && m.Since != "" {
		if since, err := normalizeVersion(m.Since); err == nil && semver.Compare(r.version, since) < 0 {
			fail(fmt.Sprintf("requires API %s, target is %s", display(since), display(r.version)))
		}
	}
	if r.syscaps != nil && m.Syscap != "" && !r.syscaps[m.Syscap] {
		fail(fmt.Sprintf("requires %s", m.Syscap))
	}
	if m.Deprecated != "" && r.deprecated(m.Deprecated) {
		msg := "deprecated since API " + strings.TrimPrefix(m.Deprecated, "v")
		if m.Replacement != "" {
			msg += ", use " + m.Replacement
		}
		ds = append(ds, Diagnostic{Severity: SeverityWarning, Component: component, Attribute: attribute, Message: msg})
		r.log.WithFields(map[string]any{"component": component, "attribute": attribute}).Warn(msg)
	}
	return ds
}

// deprecated reports whether a deprecation at version v applies to the
// target. Without a target version every deprecation applies.
func (r *Resolver) deprecated(v string) bool {
	if r.version == "" {
		return true
	}
	dep, err := normalizeVersion(v)
	return err == nil && semver.Compare(r.version, dep) >= 0
}

// normalizeVersion turns an API level such as "9", "4.1" or "v11" into a
// semver string.
func normalizeVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fluenterrors.TypeMismatch("version", v, "API level such as 9 or 4.1")
	}
	return v, nil
}

func display(v string) string { return strings.TrimPrefix(v, "v") }
