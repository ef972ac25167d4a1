package dsl

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/components"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
	"github.com/go-drift/fluent/pkg/schema"
	fluenttest "github.com/go-drift/fluent/pkg/testing"
)

func settingsHandlers(volume *float64, saved *int) map[string]any {
	return map[string]any{
		"volumeChanged": func(v float64, _ components.SliderChangeMode) { *volume = v },
		"save":          func(attr.ClickEvent) { *saved++ },
	}
}

func runSettings(t *testing.T, env Env) *Result {
	t.Helper()
	f, err := os.Open("testdata/settings.fluent")
	require.NoError(t, err)
	defer f.Close()
	res, err := Run(f, "settings.fluent", env)
	require.NoError(t, err)
	return res
}

func TestEvaluateSettings(t *testing.T) {
	var volume float64
	var saved int
	res := runSettings(t, Env{Handlers: settingsHandlers(&volume, &saved)})
	roots := res.Nodes
	require.Len(t, roots, 1)
	assert.Empty(t, res.Diagnostics)

	col := roots[0]
	assert.Equal(t, "Column", col.Component)
	assert.Equal(t, components.ColumnOptions{Space: graphics.VP(8)}, col.Options)
	require.Len(t, col.Children, 4)

	title := fluenttest.Find(roots, fluenttest.ByText("Settings")).First()
	size, _ := title.Lookup("fontSize")
	assert.Equal(t, graphics.FP(20), size)
	color, _ := title.Lookup("fontColor")
	assert.Equal(t, graphics.Solid(graphics.MustParseColor("#333333")), color)
	weight, _ := title.Lookup("fontWeight")
	bold, err := graphics.ParseFontWeight("bold")
	require.NoError(t, err)
	assert.Equal(t, bold, weight)

	row := fluenttest.Find(roots, fluenttest.ByComponent("Row")).First()
	justify, _ := row.Lookup("justifyContent")
	assert.Equal(t, components.FlexAlignSpaceBetween, justify)

	span := fluenttest.Find(roots, fluenttest.Descendant(fluenttest.ByText("Volume"), fluenttest.ByComponent("Span"))).First()
	spanColor, _ := span.Lookup("fontColor")
	assert.Equal(t, graphics.Solid(graphics.MustParseColor("gray")), spanColor)

	slider := fluenttest.Find(roots, fluenttest.ByComponent("Slider")).First()
	block, _ := slider.Lookup("blockColor")
	assert.Equal(t, graphics.ColorRef(resource.MustParse("app.color.accent")), block)
	track, _ := slider.Lookup("trackColor")
	gradient, ok := track.(graphics.LinearGradient)
	require.True(t, ok, "trackColor is %T", track)
	assert.Equal(t, graphics.GradientDirectionRight, gradient.Direction)
	assert.Len(t, gradient.Stops, 2)

	onChange, ok := slider.Lookup("onChange")
	require.True(t, ok)
	onChange.(func(float64, components.SliderChangeMode))(42, components.SliderChangeModeEnd)
	assert.Equal(t, 42.0, volume)

	toggle := fluenttest.Find(roots, fluenttest.ByID("wifi")).First()
	assert.Equal(t, "Toggle", toggle.Component)
	opts := toggle.Options.(components.ToggleOptions)
	assert.Equal(t, components.ToggleTypeSwitch, *opts.Type)
	assert.True(t, opts.IsOn)

	button := fluenttest.Find(roots, fluenttest.ByText("Save")).First()
	width, _ := button.Lookup("width")
	assert.Equal(t, graphics.Percent(50), width)
	click, _ := button.Lookup("onClick")
	click.(func(attr.ClickEvent))(attr.ClickEvent{})
	assert.Equal(t, 1, saved)
}

func TestEvaluateSnapshot(t *testing.T) {
	var volume float64
	var saved int
	res := runSettings(t, Env{Handlers: settingsHandlers(&volume, &saved)})
	again := runSettings(t, Env{Handlers: settingsHandlers(&volume, &saved)})
	assert.Empty(t, fluenttest.CaptureSnapshot(res.Nodes).Diff(fluenttest.CaptureSnapshot(again.Nodes)))
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   error
		line   int
		column int
	}{
		{"unknown component", "Column() {\n  Marquee()\n}", fluenterrors.ErrUnknownComponent, 2, 3},
		{"unknown attribute", "Blank()\n  .fontSize(3)", fluenterrors.ErrUnknownAttribute, 2, 4},
		{"wrong argument type", "Divider().vertical(\"yes\")", fluenterrors.ErrTypeMismatch, 1, 11},
		{"constraint", "Divider().opacity(2)", fluenterrors.ErrConstraintViolation, 1, 11},
		{"missing required", "Toggle({ isOn: true })", fluenterrors.ErrMissingRequiredField, 1, 1},
		{"child of leaf", "Divider() {\n  Blank()\n}", fluenterrors.ErrBuild, 2, 3},
		{"bad resource", "Image($r('app.nothing.logo'))", fluenterrors.ErrConstraintViolation, 1, 7},
		{"bad color constant", "Blank().color(Color.notacolor)", fluenterrors.ErrTypeMismatch, 1, 15},
		{"unbound handler", "Button(\"OK\").onClick(submit)", fluenterrors.ErrTypeMismatch, 1, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(strings.NewReader(tt.src), "bad.fluent", Env{})
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tt.want)
			var pe *fluenterrors.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "bad.fluent", pe.Filename)
			assert.Equal(t, tt.line, pe.Line, "line")
			assert.Equal(t, tt.column, pe.Column, "column")
		})
	}
}

func TestEvaluateStopsAtFirstError(t *testing.T) {
	_, err := Run(strings.NewReader("Blank().wobble(1)\nMarquee()"), "first.fluent", Env{})
	assert.ErrorIs(t, err, fluenterrors.ErrUnknownAttribute)
	assert.NotErrorIs(t, err, fluenterrors.ErrUnknownComponent)
}

func TestEvaluateCustomRegistry(t *testing.T) {
	reg := attr.NewRegistry()
	_, err := Run(strings.NewReader("Blank()"), "custom.fluent", Env{Registry: reg})
	assert.ErrorIs(t, err, fluenterrors.ErrUnknownComponent)
}

func TestEvaluateHandlersShadowEnums(t *testing.T) {
	src := "Column().justifyContent(layout)"
	res, err := Run(strings.NewReader(src), "h.fluent", Env{Handlers: map[string]any{"layout": "FlexAlign.End"}})
	require.NoError(t, err)
	v, _ := res.Nodes[0].Lookup("justifyContent")
	assert.Equal(t, components.FlexAlignEnd, v)
}

func TestEvaluateWithResolver(t *testing.T) {
	src := "Slider()\n  .stepColor(#ff0000)\n  .blockColor(#00ff00)\nBlank().color(Color.red)"
	resolver, err := schema.NewResolver(nil, schema.Target{APIVersion: "11"}, nil)
	require.NoError(t, err)

	res, err := Run(strings.NewReader(src), "cap.fluent", Env{Resolver: resolver})
	require.NoError(t, err)
	assert.False(t, res.HasErrors())
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, schema.SeverityWarning, d.Severity)
	assert.Equal(t, "Blank", d.Component)
	assert.Equal(t, 4, d.Pos.Line)

	old, err := schema.NewResolver(nil, schema.Target{APIVersion: "9"}, nil)
	require.NoError(t, err)
	res, err = Run(strings.NewReader(src), "cap.fluent", Env{Resolver: old})
	require.NoError(t, err)
	require.True(t, res.HasErrors())
	err = res.Err()
	assert.ErrorIs(t, err, fluenterrors.ErrCapability)
	var pe *fluenterrors.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, res.Diagnostics[0].String(), "cap.fluent:2:4: error: Slider.stepColor")
}

func TestEvaluateStubHandlers(t *testing.T) {
	src := "Slider().onChange(changed).id(changed)"
	_, err := Run(strings.NewReader(src), "stub.fluent", Env{})
	assert.ErrorIs(t, err, fluenterrors.ErrTypeMismatch)

	res, err := Run(strings.NewReader(src), "stub.fluent", Env{StubHandlers: true})
	require.NoError(t, err)
	slider := res.Nodes[0]
	fn, ok := slider.Lookup("onChange")
	require.True(t, ok)
	assert.NotPanics(t, func() { fn.(func(float64, components.SliderChangeMode))(1, components.SliderChangeModeClick) })
	id, _ := slider.Lookup("id")
	assert.Equal(t, "changed", id)
}
