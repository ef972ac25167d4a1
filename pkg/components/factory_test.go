package components

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/fluent/pkg/attr"
	"github.com/go-drift/fluent/pkg/core"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

func TestFactoriesReturnFreshAttributes(t *testing.T) {
	tests := []struct {
		name      string
		component string
		build     func() (attr.Attribute, error)
	}{
		{"Badge", "Badge", func() (attr.Attribute, error) { return Badge(BadgeWithCount{Count: 3}) }},
		{"Blank", "Blank", func() (attr.Attribute, error) { return Blank(), nil }},
		{"Button", "Button", func() (attr.Attribute, error) { return Button(), nil }},
		{"ButtonWithLabel", "Button", func() (attr.Attribute, error) { return ButtonWithLabel(resource.Text("OK")), nil }},
		{"Checkbox", "Checkbox", func() (attr.Attribute, error) { return Checkbox(), nil }},
		{"CheckboxGroup", "CheckboxGroup", func() (attr.Attribute, error) { return CheckboxGroup(), nil }},
		{"Column", "Column", func() (attr.Attribute, error) { return Column(), nil }},
		{"Row", "Row", func() (attr.Attribute, error) { return Row(), nil }},
		{"Stack", "Stack", func() (attr.Attribute, error) { return Stack(), nil }},
		{"Divider", "Divider", func() (attr.Attribute, error) { return Divider(), nil }},
		{"Image", "Image", func() (attr.Attribute, error) { return Image(resource.Text("a.png")) }},
		{"Progress", "Progress", func() (attr.Attribute, error) { return Progress(ProgressOptions{Value: attr.Ptr(0.0)}) }},
		{"Radio", "Radio", func() (attr.Attribute, error) { return Radio(RadioOptions{Group: "g", Value: "v"}) }},
		{"Rating", "Rating", func() (attr.Attribute, error) { return Rating() }},
		{"Slider", "Slider", func() (attr.Attribute, error) { return Slider() }},
		{"Text", "Text", func() (attr.Attribute, error) { return Text(resource.Text("hi")), nil }},
		{"Span", "Span", func() (attr.Attribute, error) { return Span(resource.Text("hi")), nil }},
		{"TextInput", "TextInput", func() (attr.Attribute, error) { return TextInput(), nil }},
		{"Toggle", "Toggle", func() (attr.Attribute, error) {
			return Toggle(ToggleOptions{Type: attr.Ptr(ToggleTypeSwitch)})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.build()
			require.NoError(t, err)
			require.NotNil(t, a)
			assert.Equal(t, tt.component, a.Component())
			assert.NoError(t, a.Err())
			assert.Zero(t, a.State().Len())

			b, err := tt.build()
			require.NoError(t, err)
			assert.NotSame(t, a.State(), b.State())
		})
	}
}

func TestFactoriesDoNotMutateOptions(t *testing.T) {
	opts := SliderOptions{Min: 5}
	s, err := Slider(opts)
	require.NoError(t, err)
	assert.Nil(t, opts.Max)
	assert.Nil(t, opts.Value)

	stored, ok := attr.OptionsOf[SliderOptions](s)
	require.True(t, ok)
	assert.Equal(t, DefaultSliderMax, *stored.Max)
	assert.Equal(t, DefaultSliderStep, *stored.Step)
	assert.Equal(t, 5.0, *stored.Value)

	typ := ToggleTypeCheckbox
	toggle, err := Toggle(ToggleOptions{Type: &typ})
	require.NoError(t, err)
	typ = ToggleTypeButton
	tOpts, _ := attr.OptionsOf[ToggleOptions](toggle)
	assert.Equal(t, ToggleTypeCheckbox, *tOpts.Type)
}

func TestSliderOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts SliderOptions
		want error
	}{
		{"min equals max", SliderOptions{Min: 10, Max: attr.Ptr(10.0)}, fluenterrors.ErrConstraintViolation},
		{"zero step", SliderOptions{Step: attr.Ptr(0.0)}, fluenterrors.ErrConstraintViolation},
		{"step wider than range", SliderOptions{Max: attr.Ptr(1.0), Step: attr.Ptr(2.0)}, fluenterrors.ErrConstraintViolation},
		{"value above max", SliderOptions{Value: attr.Ptr(101.0)}, fluenterrors.ErrConstraintViolation},
		{"value below min", SliderOptions{Min: 1, Value: attr.Ptr(0.0)}, fluenterrors.ErrConstraintViolation},
		{"bad style", SliderOptions{Style: SliderStyle(9)}, fluenterrors.ErrConstraintViolation},
		{"NaN min", SliderOptions{Min: math.NaN()}, fluenterrors.ErrConstraintViolation},
		{"NaN max", SliderOptions{Max: attr.Ptr(math.NaN())}, fluenterrors.ErrConstraintViolation},
		{"infinite max", SliderOptions{Max: attr.Ptr(math.Inf(1))}, fluenterrors.ErrConstraintViolation},
		{"NaN step", SliderOptions{Step: attr.Ptr(math.NaN())}, fluenterrors.ErrConstraintViolation},
		{"NaN value", SliderOptions{Value: attr.Ptr(math.NaN())}, fluenterrors.ErrConstraintViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Slider(tt.opts)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSliderSetters(t *testing.T) {
	s := attr.Must(Slider()).
		TrackThickness(graphics.VP(0)).
		ShowTips(true, resource.Text("tip"))
	assert.ErrorIs(t, s.Err(), fluenterrors.ErrConstraintViolation)
	assert.False(t, s.State().Has("trackThickness"))

	tips, ok := attr.Get[SliderTips](s.State(), "showTips")
	require.True(t, ok)
	assert.True(t, tips.Show)
	assert.Equal(t, resource.Text("tip"), tips.Content)

	s = attr.Must(Slider()).TrackColor(graphics.NewLinearGradient(graphics.GradientDirectionRight,
		graphics.GradientStop{Color: graphics.Hex("#000"), Position: 0},
		graphics.GradientStop{Color: graphics.Hex("#fff"), Position: 1},
	))
	assert.NoError(t, s.Err())
	assert.True(t, s.State().Has("trackColor"))
}

func TestBadge(t *testing.T) {
	b, err := Badge(BadgeWithCount{Count: 120})
	require.NoError(t, err)
	p, ok := attr.OptionsOf[BadgeParam](b)
	require.True(t, ok)
	assert.Equal(t, DefaultBadgeMaxCount, p.(BadgeWithCount).MaxCount)

	_, err = Badge(BadgeWithCount{Count: -1})
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)

	_, err = Badge(BadgeWithValue{})
	assert.ErrorIs(t, err, fluenterrors.ErrMissingRequiredField)

	_, err = Badge(nil)
	assert.ErrorIs(t, err, fluenterrors.ErrMissingRequiredField)

	b, err = Badge(BadgeWithValue{Value: "new", Position: BadgePositionLeft})
	require.NoError(t, err)
	v, _ := attr.OptionsOf[BadgeParam](b)
	assert.Equal(t, "new", v.(BadgeWithValue).Value)
}

func TestProgress(t *testing.T) {
	_, err := Progress(ProgressOptions{})
	var fe *fluenterrors.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "value", fe.Field)

	_, err = Progress(ProgressOptions{Value: attr.Ptr(5.0), Total: attr.Ptr(0.0)})
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)

	_, err = Progress(ProgressOptions{Value: attr.Ptr(150.0)})
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)

	p := attr.Must(Progress(ProgressOptions{Value: attr.Ptr(5.0), Total: attr.Ptr(10.0)}))
	p.Value(10).Value(11)
	assert.ErrorIs(t, p.Err(), fluenterrors.ErrConstraintViolation)
	v, _ := attr.Get[float64](p.State(), "value")
	assert.Equal(t, 10.0, v)

	p = attr.Must(Progress(ProgressOptions{Value: attr.Ptr(1.0)})).Color(graphics.ResourceColor{})
	assert.ErrorIs(t, p.Err(), fluenterrors.ErrMissingRequiredField)
}

func TestToggleRequiresType(t *testing.T) {
	_, err := Toggle(ToggleOptions{IsOn: true})
	var fe *fluenterrors.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "type", fe.Field)
}

func TestRating(t *testing.T) {
	r := attr.Must(Rating(RatingOptions{Rating: 3.5}))
	r.Stars(3)
	assert.ErrorIs(t, r.Err(), fluenterrors.ErrConstraintViolation)
	assert.False(t, r.State().Has("stars"))

	r = attr.Must(Rating(RatingOptions{Rating: 3.5})).Stars(4).StepSize(0.5)
	require.NoError(t, r.Err())

	r.StarStyle(StarStyleOptions{BackgroundURI: "bg.svg"})
	var fe *fluenterrors.FieldError
	require.ErrorAs(t, r.Err(), &fe)
	assert.Equal(t, "foregroundUri", fe.Field)

	_, err := Rating(RatingOptions{Rating: -1})
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)

	_, err = Rating(RatingOptions{Rating: math.NaN()})
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)
}

func TestRatingAboveDefaultStars(t *testing.T) {
	r := attr.Must(Rating(RatingOptions{Rating: 7}))
	assert.ErrorIs(t, r.Err(), fluenterrors.ErrConstraintViolation)

	err := core.NewBuilder(nil).Add(r)
	assert.ErrorIs(t, err, fluenterrors.ErrBuild)
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)

	r.Stars(8)
	assert.NoError(t, r.Err())

	r = attr.Must(Rating(RatingOptions{Rating: DefaultRatingStars}))
	assert.NoError(t, r.Err())
	r = attr.Must(Rating(RatingOptions{Rating: 4.5}))
	assert.NoError(t, r.Err())
}

func TestImageRequiresSource(t *testing.T) {
	_, err := Image(resource.Str{})
	assert.ErrorIs(t, err, fluenterrors.ErrMissingRequiredField)
	_, err = Image(resource.Text(""))
	assert.ErrorIs(t, err, fluenterrors.ErrMissingRequiredField)

	img, err := Image(resource.Ref(resource.MustParse("app.media.icon")))
	require.NoError(t, err)
	img.ObjectFit(ImageFitCover).OnComplete(func(ImageLoadResult) {})
	assert.NoError(t, img.Err())
	assert.Equal(t, []string{"objectFit", "onComplete"}, img.State().Keys())
}

func TestOptionalFactoriesRecordErrors(t *testing.T) {
	tests := []struct {
		name string
		a    attr.Attribute
		want error
	}{
		{"blank negative", Blank(graphics.VP(-1)), fluenterrors.ErrConstraintViolation},
		{"blank arity", Blank(graphics.VP(1), graphics.VP(2)), fluenterrors.ErrConstraintViolation},
		{"button empty label", ButtonWithLabel(resource.Str{}), fluenterrors.ErrMissingRequiredField},
		{"button bad type", Button(ButtonOptions{Type: ButtonType(42)}), fluenterrors.ErrConstraintViolation},
		{"column negative space", Column(ColumnOptions{Space: graphics.VP(-2)}), fluenterrors.ErrConstraintViolation},
		{"row arity", Row(RowOptions{}, RowOptions{}), fluenterrors.ErrConstraintViolation},
		{"stack bad alignment", Stack(StackOptions{AlignContent: Alignment(99)}), fluenterrors.ErrConstraintViolation},
		{"checkbox arity", Checkbox(CheckboxOptions{}, CheckboxOptions{}), fluenterrors.ErrConstraintViolation},
		{"text arity", Text(resource.Text("a"), resource.Text("b")), fluenterrors.ErrConstraintViolation},
		{"text input arity", TextInput(TextInputOptions{}, TextInputOptions{}), fluenterrors.ErrConstraintViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.a)
			assert.ErrorIs(t, tt.a.Err(), tt.want)
		})
	}
}

func TestFlexSettersCommute(t *testing.T) {
	a := Column().AlignItems(HorizontalAlignEnd).JustifyContent(FlexAlignSpaceBetween)
	b := Column().JustifyContent(FlexAlignSpaceBetween).AlignItems(HorizontalAlignEnd)
	assert.Equal(t, a.State().Snapshot(), b.State().Snapshot())

	r := Row().AlignItems(VerticalAlign(7))
	assert.ErrorIs(t, r.Err(), fluenterrors.ErrConstraintViolation)
	assert.Zero(t, r.State().Len())
}

func TestButtonFontOps(t *testing.T) {
	b := ButtonWithLabel(resource.Text("Go")).
		FontSize(graphics.FP(16)).
		FontWeight(graphics.FontWeight(2)).
		Type(ButtonTypeCapsule).
		Width(graphics.VP(120))
	require.NoError(t, b.Err())
	assert.Equal(t, []string{"fontSize", "fontWeight", "type", "width"}, b.State().Keys())

	opts, _ := attr.OptionsOf[ButtonOptions](b)
	assert.Equal(t, resource.Text("Go"), opts.Label)

	b.FontFamily(resource.Str{})
	assert.ErrorIs(t, b.Err(), fluenterrors.ErrMissingRequiredField)
}

func TestCommonSettersReturnConcreteType(t *testing.T) {
	// Each chain mixes common and component-specific setters; it only
	// compiles when the common setters return the concrete type.
	d := Divider().Width(graphics.VP(1)).Vertical(true).Opacity(0.5).LineCap(LineCapStyleRound)
	assert.NoError(t, d.Err())
	c := Checkbox().Margin(graphics.EdgeInsetsAll(graphics.VP(4))).Select(true).Enabled(false)
	assert.NoError(t, c.Err())
	s := Span(resource.Text("x")).ID("s").FontColor(graphics.Hex("red")).LetterSpacing(graphics.VP(1))
	assert.NoError(t, s.Err())
}
