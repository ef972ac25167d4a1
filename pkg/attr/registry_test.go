package attr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

func boxComponent() *Component {
	return Define("Box", true, func(args Args) (*boxAttribute, error) {
		if err := args.Arity("Box", 0, 0); err != nil {
			return nil, err
		}
		return newBox(), nil
	}, Methods[*boxAttribute]{
		"label": Unary("label", Args.String, (*boxAttribute).Label),
	})
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry(boxComponent())
	c, err := r.Lookup("Box")
	require.NoError(t, err)
	assert.True(t, c.Container)
	assert.Equal(t, []string{"Box"}, r.Names())

	_, err = r.Lookup("Gauge")
	assert.True(t, fluenterrors.Is(err, fluenterrors.ErrUnknownComponent))
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry(boxComponent())
	err := r.Register(boxComponent())
	assert.True(t, fluenterrors.Is(err, fluenterrors.ErrConstraintViolation))
	assert.Panics(t, func() { NewRegistry(boxComponent(), boxComponent()) })
}

func TestComponentMethods(t *testing.T) {
	c := boxComponent()
	assert.True(t, c.HasMethod("label"))
	assert.True(t, c.HasMethod("onDisAppear"))
	assert.False(t, c.HasMethod("value"))
	assert.IsNonDecreasing(t, c.Methods())
}

func TestInvoke(t *testing.T) {
	c := boxComponent()
	a, err := c.New(nil)
	require.NoError(t, err)

	require.NoError(t, c.Invoke(a, "label", Args{"hello"}))
	require.NoError(t, c.Invoke(a, "width", Args{"12px"}))
	require.NoError(t, c.Invoke(a, "padding", Args{map[string]any{"top": 4.0, "left": "2vp"}}))
	require.NoError(t, c.Invoke(a, "visibility", Args{"Visibility.Hidden"}))
	require.NoError(t, c.Invoke(a, "backgroundColor", Args{"#F00"}))

	s := a.State()
	w, _ := Get[graphics.Length](s, "width")
	assert.Equal(t, graphics.PX(12), w)
	p, _ := Get[graphics.EdgeInsets](s, "padding")
	assert.Equal(t, graphics.VP(4), p.Top)
	assert.Equal(t, graphics.VP(2), p.Left)
	v, _ := Get[Visibility](s, "visibility")
	assert.Equal(t, Hidden, v)
	bg, _ := Get[graphics.ResourceColor](s, "backgroundColor")
	col, _ := bg.Color()
	assert.Equal(t, graphics.ColorRed, col)
}

func TestInvokeErrors(t *testing.T) {
	c := boxComponent()
	tests := []struct {
		name   string
		method string
		args   Args
		want   error
	}{
		{"unknown method", "value", Args{1.0}, fluenterrors.ErrUnknownAttribute},
		{"wrong type", "opacity", Args{"half"}, fluenterrors.ErrTypeMismatch},
		{"out of range", "opacity", Args{2.0}, fluenterrors.ErrConstraintViolation},
		{"missing argument", "width", nil, fluenterrors.ErrMissingRequiredField},
		{"too many arguments", "clip", Args{true, false}, fluenterrors.ErrConstraintViolation},
		{"bad enum", "visibility", Args{"Gone"}, fluenterrors.ErrTypeMismatch},
		{"callback type", "onClick", Args{func() {}}, fluenterrors.ErrTypeMismatch},
		{"unknown padding key", "padding", Args{map[string]any{"start": 1.0}}, fluenterrors.ErrUnknownAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := c.New(nil)
			require.NoError(t, err)
			err = c.Invoke(a, tt.method, tt.args)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, a.State().Len())
		})
	}
}

func TestInvokeReportsEachFailure(t *testing.T) {
	c := boxComponent()
	a, err := c.New(nil)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Invoke(a, "opacity", Args{2.0}), fluenterrors.ErrConstraintViolation)
	// Later failures are reported to their caller even though the
	// attribute already holds an error.
	assert.ErrorIs(t, c.Invoke(a, "opacity", Args{5.0}), fluenterrors.ErrConstraintViolation)
	assert.ErrorIs(t, c.Invoke(a, "aspectRatio", Args{-1.0}), fluenterrors.ErrConstraintViolation)
	assert.ErrorIs(t, c.Invoke(a, "opacity", Args{math.NaN()}), fluenterrors.ErrConstraintViolation)
	assert.Zero(t, a.State().Len())
	assert.ErrorContains(t, a.Err(), "2 violates")

	// The attribute keeps its first error; later valid calls still succeed.
	assert.NoError(t, c.Invoke(a, "opacity", Args{0.5}))
	assert.True(t, a.State().Has("opacity"))
	assert.ErrorContains(t, a.Err(), "2 violates")
}

func TestNewRejectsArguments(t *testing.T) {
	_, err := boxComponent().New(Args{1.0})
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)
}

func TestInvokeCallback(t *testing.T) {
	c := boxComponent()
	a, err := c.New(nil)
	require.NoError(t, err)
	var clicked bool
	require.NoError(t, c.Invoke(a, "onClick", Args{func(ClickEvent) { clicked = true }}))
	fn, ok := Get[func(ClickEvent)](a.State(), "onClick")
	require.True(t, ok)
	fn(ClickEvent{})
	assert.True(t, clicked)
}
