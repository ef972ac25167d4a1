package graphics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want Length
	}{
		{"10", VP(10)},
		{"10vp", VP(10)},
		{"4px", PX(4)},
		{"12.5fp", FP(12.5)},
		{"8lpx", LPX(8)},
		{"50%", Percent(50)},
		{" -3 VP ", VP(-3)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	ref, err := ParseLength("$r('app.float.gap')")
	require.NoError(t, err)
	assert.True(t, ref.IsRef())
	assert.Equal(t, "$r('app.float.gap')", ref.String())

	_, err = ParseLength("wide")
	assert.ErrorIs(t, err, fluenterrors.ErrTypeMismatch)
}

func TestLengthChecks(t *testing.T) {
	assert.NoError(t, CheckNonNegative("width", VP(0)))
	assert.ErrorIs(t, CheckNonNegative("width", VP(-1)), fluenterrors.ErrConstraintViolation)
	assert.ErrorIs(t, CheckPositive("trackThickness", VP(0)), fluenterrors.ErrConstraintViolation)
	assert.ErrorIs(t, CheckNonNegative("width", VP(math.NaN())), fluenterrors.ErrConstraintViolation)
	assert.ErrorIs(t, CheckPositive("trackThickness", VP(math.NaN())), fluenterrors.ErrConstraintViolation)
	assert.Equal(t, "50%", Percent(50).String())
}

func TestConstraintSizeValidate(t *testing.T) {
	lo, hi := VP(10), VP(20)
	assert.NoError(t, ConstraintSizeOptions{MinWidth: &lo, MaxWidth: &hi}.Validate())
	assert.ErrorIs(t, ConstraintSizeOptions{MinWidth: &hi, MaxWidth: &lo}.Validate(), fluenterrors.ErrConstraintViolation)
	assert.ErrorIs(t, ConstraintSizeOptions{MinHeight: &hi, MaxHeight: &lo}.Validate(), fluenterrors.ErrConstraintViolation)

	// Different units cannot be ordered without layout; they pass.
	pct := Percent(5)
	assert.NoError(t, ConstraintSizeOptions{MinWidth: &hi, MaxWidth: &pct}.Validate())
}

func TestEdgeInsetsValidate(t *testing.T) {
	assert.NoError(t, EdgeInsetsAll(VP(4)).Validate("padding"))
	err := EdgeInsetsOnly(VP(1), VP(2), VP(-3), VP(4)).Validate("padding")
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)
	assert.Contains(t, err.Error(), "padding.right")
}

func TestParseFontWeight(t *testing.T) {
	tests := []struct {
		in   any
		want FontWeight
	}{
		{700.0, font.WeightBold},
		{100, font.WeightThin},
		{"500", font.WeightMedium},
		{"FontWeight.Bold", font.WeightBold},
		{"lighter", font.WeightLight},
		{"Regular", font.WeightNormal},
	}
	for _, tt := range tests {
		got, err := ParseFontWeight(tt.in)
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}

	_, err := ParseFontWeight(950.0)
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)
	_, err = ParseFontWeight(450.0)
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)
	_, err = ParseFontWeight(true)
	assert.ErrorIs(t, err, fluenterrors.ErrTypeMismatch)
	assert.Equal(t, "700", FormatFontWeight(font.WeightBold))
}

func TestShadowValidate(t *testing.T) {
	var s Shadow = ShadowOptions{Radius: 4, Color: Solid(ColorBlack)}
	assert.NoError(t, s.Validate())
	s = ShadowOptions{Radius: -1}
	assert.ErrorIs(t, s.Validate(), fluenterrors.ErrConstraintViolation)
	s = ShadowOptions{Radius: math.NaN()}
	assert.ErrorIs(t, s.Validate(), fluenterrors.ErrConstraintViolation)
	s = ShadowStyleOuterFloatingMD
	assert.NoError(t, s.Validate())
	assert.ErrorIs(t, ShadowStyle(99).Validate(), fluenterrors.ErrConstraintViolation)

	style, ok := ParseShadowStyle("ShadowStyle.OuterDefaultSM")
	assert.True(t, ok)
	assert.Equal(t, ShadowStyleOuterDefaultSM, style)
}

func TestBorderValidate(t *testing.T) {
	assert.NoError(t, BorderOptions{Width: VP(1), Color: Solid(ColorGray), Style: BorderStyleDashed}.Validate())
	assert.ErrorIs(t, BorderOptions{Width: VP(-1)}.Validate(), fluenterrors.ErrConstraintViolation)
	assert.ErrorIs(t, BorderOptions{Style: BorderStyle(7)}.Validate(), fluenterrors.ErrConstraintViolation)
}
