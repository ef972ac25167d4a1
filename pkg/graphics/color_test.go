package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/resource"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", ColorWhite},
		{"#FFF", ColorWhite},
		{"#8f00", Color(0x88FF0000)},
		{"#00ff00", ColorGreen},
		{"#800000ff", Color(0x800000FF)},
		{"rgb(255, 0, 0)", ColorRed},
		{"rgba(0, 0, 255, 0)", Color(0x000000FF)},
		{"0x0000ff", ColorBlue},
		{"0x80ffffff", Color(0x80FFFFFF)},
		{"teal", RGB(0x00, 0x80, 0x80)},
		{"Black", ColorBlack},
		{"transparent", ColorTransparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %s", got)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	tests := []struct {
		in   string
		kind error
	}{
		{"#12", fluenterrors.ErrTypeMismatch},
		{"#zzzzzz", fluenterrors.ErrTypeMismatch},
		{"notacolor", fluenterrors.ErrTypeMismatch},
		{"rgb(1, 2)", fluenterrors.ErrTypeMismatch},
		{"hsl(1, 2, 3)", fluenterrors.ErrTypeMismatch},
		{"rgb(256, 0, 0)", fluenterrors.ErrConstraintViolation},
		{"rgba(0, 0, 0, 2)", fluenterrors.ErrConstraintViolation},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseColor(tt.in)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "#FFFFFF", ColorWhite.String())
	assert.Equal(t, "#80FF0000", ColorRed.WithAlpha(0.5).String())
}

func TestColorFromNumber(t *testing.T) {
	assert.Equal(t, ColorRed, ColorFromNumber(0xFF0000))
	assert.Equal(t, Color(0x11223344), ColorFromNumber(0x11223344))
}

func TestResourceColor(t *testing.T) {
	var unset ResourceColor
	assert.True(t, unset.IsZero())
	_, ok := unset.Color()
	assert.False(t, ok)

	lit := Hex("#fff")
	c, ok := lit.Color()
	assert.True(t, ok)
	assert.Equal(t, ColorWhite, c)
	assert.Equal(t, "#FFFFFF", lit.String())
	assert.Equal(t, Solid(ColorWhite), lit)

	ref := ColorRef(resource.App(resource.TypeColor, "primary"))
	_, ok = ref.Color()
	assert.False(t, ok)
	r, ok := ref.Resource()
	assert.True(t, ok)
	assert.Equal(t, "primary", r.Name)
	assert.Equal(t, "$r('app.color.primary')", ref.String())
}

func TestLinearGradientValidate(t *testing.T) {
	ok := NewLinearGradient(GradientDirectionRight,
		GradientStop{Color: Solid(ColorRed), Position: 0},
		GradientStop{Color: Solid(ColorBlue), Position: 1},
	)
	require.NoError(t, ok.Validate())
	assert.Equal(t, "linearGradient(Right, #FF0000 0, #0000FF 1)", ok.String())
	assert.Equal(t, "linearGradient(90deg, #FF0000 0, #0000FF 1)", ok.WithAngle(90).String())

	single := NewLinearGradient(GradientDirectionTop, GradientStop{Color: Solid(ColorRed)})
	assert.ErrorIs(t, single.Validate(), fluenterrors.ErrConstraintViolation)

	backwards := NewLinearGradient(GradientDirectionTop,
		GradientStop{Color: Solid(ColorRed), Position: 0.8},
		GradientStop{Color: Solid(ColorBlue), Position: 0.2},
	)
	assert.ErrorIs(t, backwards.Validate(), fluenterrors.ErrConstraintViolation)

	outOfRange := NewLinearGradient(GradientDirectionTop,
		GradientStop{Color: Solid(ColorRed), Position: 0},
		GradientStop{Color: Solid(ColorBlue), Position: 1.5},
	)
	assert.ErrorIs(t, outOfRange.Validate(), fluenterrors.ErrConstraintViolation)

	noColor := NewLinearGradient(GradientDirectionTop, GradientStop{Position: 0}, GradientStop{Color: Solid(ColorBlue), Position: 1})
	assert.ErrorIs(t, noColor.Validate(), fluenterrors.ErrMissingRequiredField)

	badDir := ok
	badDir.Direction = GradientDirection(42)
	assert.ErrorIs(t, badDir.Validate(), fluenterrors.ErrConstraintViolation)
}

func TestParseGradientDirection(t *testing.T) {
	d, ok := ParseGradientDirection("GradientDirection.LeftTop")
	assert.True(t, ok)
	assert.Equal(t, GradientDirectionLeftTop, d)
	_, ok = ParseGradientDirection("Diagonal")
	assert.False(t, ok)
}
