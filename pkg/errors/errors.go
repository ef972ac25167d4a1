// Package errors provides structured error handling for fluent attribute
// builders, factories and the dynamic evaluation boundary.
//
// Every error produced by the toolkit matches exactly one of the sentinel
// values below with [errors.Is]:
//
//	if errors.Is(err, fluenterrors.ErrMissingRequiredField) { ... }
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMissingRequiredField indicates an options record lacks a mandatory field.
	KindMissingRequiredField
	// KindTypeMismatch indicates a value matched none of the accepted variants.
	KindTypeMismatch
	// KindConstraintViolation indicates a well-typed value broke a semantic rule.
	KindConstraintViolation
	// KindUnknownComponent indicates a component name is not registered.
	KindUnknownComponent
	// KindUnknownAttribute indicates a component has no such attribute method.
	KindUnknownAttribute
	// KindParsing indicates a DSL or schema parsing failure.
	KindParsing
	// KindCapability indicates the target API level or syscaps cannot host a declaration.
	KindCapability
	// KindBuild indicates a tree building failure.
	KindBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingRequiredField:
		return "missing-required-field"
	case KindTypeMismatch:
		return "type-mismatch"
	case KindConstraintViolation:
		return "constraint-violation"
	case KindUnknownComponent:
		return "unknown-component"
	case KindUnknownAttribute:
		return "unknown-attribute"
	case KindParsing:
		return "parsing"
	case KindCapability:
		return "capability"
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

// Sentinels matched by errors.Is against the structured errors below.
var (
	ErrMissingRequiredField = &sentinel{KindMissingRequiredField}
	ErrTypeMismatch         = &sentinel{KindTypeMismatch}
	ErrConstraintViolation  = &sentinel{KindConstraintViolation}
	ErrUnknownComponent     = &sentinel{KindUnknownComponent}
	ErrUnknownAttribute     = &sentinel{KindUnknownAttribute}
	ErrParsing              = &sentinel{KindParsing}
	ErrCapability           = &sentinel{KindCapability}
	ErrBuild                = &sentinel{KindBuild}
)

type sentinel struct {
	kind ErrorKind
}

func (s *sentinel) Error() string {
	return s.kind.String()
}

// KindOf reports the kind of the first structured error in err's chain.
func KindOf(err error) ErrorKind {
	var k interface{ ErrorKind() ErrorKind }
	if stderrors.As(err, &k) {
		return k.ErrorKind()
	}
	return KindUnknown
}

// FluentError wraps an underlying error with the operation that failed.
type FluentError struct {
	// Op is the operation that failed (e.g., "components.Radio").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Component is the component name, if applicable.
	Component string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FluentError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FluentError) Unwrap() error {
	return e.Err
}

// ErrorKind implements the kind lookup used by KindOf.
func (e *FluentError) ErrorKind() ErrorKind { return e.Kind }

// Is matches the sentinel of the same kind.
func (e *FluentError) Is(target error) bool {
	s, ok := target.(*sentinel)
	return ok && s.kind == e.Kind
}

// Wrap attaches an operation and component to err, keeping err's kind.
// Returns nil when err is nil.
func Wrap(op, component string, err error) error {
	if err == nil {
		return nil
	}
	return &FluentError{Op: op, Kind: KindOf(err), Component: component, Err: err}
}

// FieldError reports a missing or unknown field.
type FieldError struct {
	// Kind is KindMissingRequiredField, KindUnknownAttribute or KindUnknownComponent.
	Kind ErrorKind
	// Owner is the options record or component the field belongs to.
	Owner string
	// Field is the field name as written by callers.
	Field string
}

// MissingField returns a MissingRequiredField error naming field.
func MissingField(owner, field string) error {
	return &FieldError{Kind: KindMissingRequiredField, Owner: owner, Field: field}
}

// UnknownAttribute returns an error for a method the component does not define.
func UnknownAttribute(component, method string) error {
	return &FieldError{Kind: KindUnknownAttribute, Owner: component, Field: method}
}

// UnknownComponent returns an error for an unregistered component name.
func UnknownComponent(name string) error {
	return &FieldError{Kind: KindUnknownComponent, Field: name}
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case KindMissingRequiredField:
		return fmt.Sprintf("%s: missing required field %q", e.Owner, e.Field)
	case KindUnknownAttribute:
		return fmt.Sprintf("%s has no attribute %q", e.Owner, e.Field)
	case KindUnknownComponent:
		return fmt.Sprintf("unknown component %q", e.Field)
	default:
		return fmt.Sprintf("%s.%s: %s", e.Owner, e.Field, e.Kind)
	}
}

// ErrorKind implements the kind lookup used by KindOf.
func (e *FieldError) ErrorKind() ErrorKind { return e.Kind }

// Is matches the sentinel of the same kind.
func (e *FieldError) Is(target error) bool {
	s, ok := target.(*sentinel)
	return ok && s.kind == e.Kind
}

// TypeMismatchError reports a value that matched none of the accepted variants.
type TypeMismatchError struct {
	// Field is the parameter or option name.
	Field string
	// Want lists the accepted variants.
	Want []string
	// Got is the value received.
	Got any
}

// TypeMismatch returns a TypeMismatch error for field.
func TypeMismatch(field string, got any, want ...string) error {
	return &TypeMismatchError{Field: field, Want: want, Got: got}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %T (%v)", e.Field, strings.Join(e.Want, " | "), e.Got, e.Got)
}

// ErrorKind implements the kind lookup used by KindOf.
func (e *TypeMismatchError) ErrorKind() ErrorKind { return KindTypeMismatch }

// Is matches ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ConstraintError reports a well-typed value that violates a semantic rule.
type ConstraintError struct {
	// Field is the parameter or option name.
	Field string
	// Constraint describes the rule, e.g. "0 <= v <= 1".
	Constraint string
	// Value is the offending value.
	Value any
}

// Constraint returns a ConstraintViolation error.
func Constraint(field, constraint string, value any) error {
	return &ConstraintError{Field: field, Constraint: constraint, Value: value}
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %v violates %s", e.Field, e.Value, e.Constraint)
}

// ErrorKind implements the kind lookup used by KindOf.
func (e *ConstraintError) ErrorKind() ErrorKind { return KindConstraintViolation }

// Is matches ErrConstraintViolation.
func (e *ConstraintError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// ParseError reports a DSL or schema parse failure with its source position.
type ParseError struct {
	// Filename is the source name.
	Filename string
	// Line and Column locate the failure; zero when unknown.
	Line, Column int
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %v", e.Filename, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorKind implements the kind lookup used by KindOf. A ParseError around a
// structured error keeps the inner kind.
func (e *ParseError) ErrorKind() ErrorKind {
	if k := KindOf(e.Err); k != KindUnknown {
		return k
	}
	return KindParsing
}

// Is matches ErrParsing when the wrapped error carries no kind of its own.
func (e *ParseError) Is(target error) bool {
	return target == ErrParsing && KindOf(e.Err) == KindUnknown
}

// CapabilityError reports a declaration the target platform cannot host.
type CapabilityError struct {
	// Component and Attribute name the declaration; Attribute is empty for
	// component-level checks.
	Component, Attribute string
	// Reason explains what is missing.
	Reason string
}

func (e *CapabilityError) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("%s.%s: %s", e.Component, e.Attribute, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Component, e.Reason)
}

// ErrorKind implements the kind lookup used by KindOf.
func (e *CapabilityError) ErrorKind() ErrorKind { return KindCapability }

// Is matches ErrCapability.
func (e *CapabilityError) Is(target error) bool {
	return target == ErrCapability
}

// BuildError represents a failure while assembling a component tree.
type BuildError struct {
	// Component is the component being opened or closed.
	Component string
	// Reason describes the failure.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("build %s: %s: %v", e.Component, e.Reason, e.Err)
	}
	return fmt.Sprintf("build %s: %s", e.Component, e.Reason)
}

func (e *BuildError) Unwrap() error { return e.Err }

// ErrorKind implements the kind lookup used by KindOf.
func (e *BuildError) ErrorKind() ErrorKind { return KindBuild }

// Is matches ErrBuild.
func (e *BuildError) Is(target error) bool {
	return target == ErrBuild
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Join returns an error that wraps the given errors.
func Join(errs ...error) error { return stderrors.Join(errs...) }
