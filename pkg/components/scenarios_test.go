package components

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

func TestSliderScenario(t *testing.T) {
	s := attr.Must(Slider(SliderOptions{
		Min:   0,
		Max:   attr.Ptr(100.0),
		Step:  attr.Ptr(1.0),
		Value: attr.Ptr(10.0),
	})).BlockColor(graphics.Hex("#fff")).TrackThickness(graphics.VP(4))
	require.NoError(t, s.Err())

	opts, ok := attr.OptionsOf[SliderOptions](s)
	require.True(t, ok)
	assert.Equal(t, 10.0, *opts.Value)

	block, ok := attr.Get[graphics.ResourceColor](s.State(), "blockColor")
	require.True(t, ok)
	assert.Equal(t, graphics.Hex("#fff"), block)
	c, _ := block.Color()
	assert.Equal(t, graphics.ColorWhite, c)

	thickness, ok := attr.Get[graphics.Length](s.State(), "trackThickness")
	require.True(t, ok)
	assert.Equal(t, graphics.VP(4), thickness)
}

func TestRadioScenario(t *testing.T) {
	var got []bool
	cb := func(checked bool) { got = append(got, checked) }

	r := attr.Must(Radio(RadioOptions{Group: "g1", Value: "a"})).Checked(true).OnChange(cb)
	require.NoError(t, r.Err())

	checked, ok := attr.Get[bool](r.State(), "checked")
	require.True(t, ok)
	assert.True(t, checked)

	stored, ok := attr.Get[func(bool)](r.State(), "onChange")
	require.True(t, ok)
	assert.Equal(t, reflect.ValueOf(cb).Pointer(), reflect.ValueOf(stored).Pointer())
	stored(true)
	assert.Equal(t, []bool{true}, got)
}

func TestRadioRequiresGroup(t *testing.T) {
	r, err := Radio(RadioOptions{Value: "a"})
	assert.Nil(t, r)
	require.ErrorIs(t, err, fluenterrors.ErrMissingRequiredField)
	var fe *fluenterrors.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "group", fe.Field)
}

func TestCheckboxSelectLastWriteWins(t *testing.T) {
	c := Checkbox().Select(true).Select(false)
	v, ok := attr.Get[bool](c.State(), "select")
	require.True(t, ok)
	assert.False(t, v)
	assert.Equal(t, 1, c.State().Len())
}

func TestScenariosThroughRegistry(t *testing.T) {
	reg := Registry()

	slider, err := reg.Lookup("Slider")
	require.NoError(t, err)
	a, err := slider.New(attr.Args{map[string]any{"min": 0.0, "max": 100.0, "step": 1.0, "value": 10.0}})
	require.NoError(t, err)
	require.NoError(t, slider.Invoke(a, "blockColor", attr.Args{"#fff"}))
	require.NoError(t, slider.Invoke(a, "trackThickness", attr.Args{4.0}))
	opts, _ := attr.OptionsOf[SliderOptions](a)
	assert.Equal(t, 10.0, *opts.Value)
	block, _ := attr.Get[graphics.ResourceColor](a.State(), "blockColor")
	assert.Equal(t, graphics.Hex("#fff"), block)
	thickness, _ := attr.Get[graphics.Length](a.State(), "trackThickness")
	assert.Equal(t, graphics.VP(4), thickness)

	radio, err := reg.Lookup("Radio")
	require.NoError(t, err)
	_, err = radio.New(attr.Args{map[string]any{"value": "a"}})
	var fe *fluenterrors.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fluenterrors.KindMissingRequiredField, fe.Kind)
	assert.Equal(t, "group", fe.Field)

	checkbox, err := reg.Lookup("Checkbox")
	require.NoError(t, err)
	c, err := checkbox.New(nil)
	require.NoError(t, err)
	require.NoError(t, checkbox.Invoke(c, "select", attr.Args{true}))
	require.NoError(t, checkbox.Invoke(c, "select", attr.Args{false}))
	v, _ := attr.Get[bool](c.State(), "select")
	assert.False(t, v)
}
