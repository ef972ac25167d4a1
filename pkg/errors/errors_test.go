package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindMissingRequiredField, "missing-required-field"},
		{KindTypeMismatch, "type-mismatch"},
		{KindConstraintViolation, "constraint-violation"},
		{KindUnknownComponent, "unknown-component"},
		{KindUnknownAttribute, "unknown-attribute"},
		{KindParsing, "parsing"},
		{KindCapability, "capability"},
		{KindBuild, "build"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMissingField(t *testing.T) {
	err := MissingField("RadioOptions", "group")
	assert.True(t, Is(err, ErrMissingRequiredField))
	assert.False(t, Is(err, ErrConstraintViolation))
	assert.Equal(t, KindMissingRequiredField, KindOf(err))
	assert.Contains(t, err.Error(), `"group"`)

	var fe *FieldError
	require.True(t, As(err, &fe))
	assert.Equal(t, "group", fe.Field)
}

func TestTypeMismatch(t *testing.T) {
	err := TypeMismatch("blockColor", 12, "ResourceColor", "LinearGradient")
	assert.True(t, Is(err, ErrTypeMismatch))
	assert.Equal(t, "blockColor: want ResourceColor | LinearGradient, got int (12)", err.Error())
}

func TestConstraint(t *testing.T) {
	err := Constraint("opacity", "0 <= v <= 1", 1.5)
	assert.True(t, Is(err, ErrConstraintViolation))
	assert.Equal(t, "opacity: 1.5 violates 0 <= v <= 1", err.Error())
}

func TestWrapKeepsKind(t *testing.T) {
	inner := Constraint("step", "v > 0", 0.0)
	err := Wrap("components.Slider", "Slider", inner)

	assert.True(t, Is(err, ErrConstraintViolation))
	assert.Equal(t, KindConstraintViolation, KindOf(err))
	assert.Contains(t, err.Error(), "component=Slider")
	assert.Nil(t, Wrap("op", "", nil))
}

func TestWrapForeignError(t *testing.T) {
	err := Wrap("schema.Load", "", stderrors.New("boom"))
	assert.Equal(t, KindUnknown, KindOf(err))
	assert.Equal(t, "schema.Load [unknown]: boom", err.Error())
}

func TestParseErrorKinds(t *testing.T) {
	plain := &ParseError{Filename: "a.ui", Line: 3, Column: 7, Err: stderrors.New("unexpected token")}
	assert.True(t, Is(plain, ErrParsing))
	assert.Equal(t, KindParsing, KindOf(plain))
	assert.Equal(t, "a.ui:3:7: unexpected token", plain.Error())

	wrapped := &ParseError{Filename: "a.ui", Line: 1, Column: 1, Err: MissingField("RadioOptions", "value")}
	assert.False(t, Is(wrapped, ErrParsing))
	assert.True(t, Is(wrapped, ErrMissingRequiredField))
	assert.Equal(t, KindMissingRequiredField, KindOf(wrapped))
}

func TestBuildErrorUnwraps(t *testing.T) {
	err := &BuildError{Component: "Slider", Reason: "invalid attribute", Err: Constraint("trackThickness", "v > 0", -1.0)}
	assert.True(t, Is(err, ErrBuild))
	assert.True(t, Is(err, ErrConstraintViolation))
	assert.Equal(t, KindBuild, KindOf(err))
}

func TestCapabilityError(t *testing.T) {
	err := fmt.Errorf("check: %w", &CapabilityError{Component: "Rating", Attribute: "starStyle", Reason: "requires API 9"})
	assert.True(t, Is(err, ErrCapability))
	assert.Contains(t, err.Error(), "Rating.starStyle")
}
