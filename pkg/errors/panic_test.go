package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panicking(v any) (err error) {
	defer Recover("test.op", &err)
	panic(v)
}

func TestRecoverPlainValue(t *testing.T) {
	err := panicking("boom")
	require.Error(t, err)
	assert.True(t, Is(err, ErrBuild))
	assert.Equal(t, "panic in test.op: boom", err.Error())

	var pe *PanicError
	require.True(t, As(err, &pe))
	assert.Contains(t, pe.StackTrace, "panicking")
	assert.False(t, pe.Timestamp.IsZero())
}

func TestRecoverKeepsStructuredKind(t *testing.T) {
	err := panicking(MissingField("RadioOptions", "group"))
	assert.True(t, Is(err, ErrMissingRequiredField))
	assert.False(t, Is(err, ErrBuild))
	assert.Equal(t, KindMissingRequiredField, KindOf(err))
}

func TestRecoverNoPanic(t *testing.T) {
	var err error
	func() {
		defer Recover("test.op", &err)
	}()
	assert.NoError(t, err)
}
