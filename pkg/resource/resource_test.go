package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Resource
	}{
		{"app.color.primary", Resource{Scope: "app", Type: TypeColor, Name: "primary"}},
		{"$r('sys.float.padding')", Resource{Scope: "sys", Type: TypeFloat, Name: "padding"}},
		{` $r("app.media.icon") `, Resource{Scope: "app", Type: TypeMedia, Name: "icon"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("primary")
	assert.ErrorIs(t, err, fluenterrors.ErrTypeMismatch)

	_, err = Parse("lib.color.primary")
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)

	_, err = Parse("app.shape.round")
	assert.ErrorIs(t, err, fluenterrors.ErrConstraintViolation)
}

func TestResourceString(t *testing.T) {
	r := App(TypeString, "greeting")
	assert.Equal(t, "$r('app.string.greeting')", r.String())
	assert.Equal(t, "$r('app.string.greeting', Ada, 3)", r.WithParams("Ada", 3).String())
	assert.Empty(t, r.Params, "WithParams must not touch the receiver")
}

func TestStr(t *testing.T) {
	lit := Text("hello")
	s, ok := lit.Literal()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
	_, ok = lit.Resource()
	assert.False(t, ok)

	ref := Ref(App(TypeString, "title"))
	_, ok = ref.Literal()
	assert.False(t, ok)
	r, ok := ref.Resource()
	assert.True(t, ok)
	assert.Equal(t, "title", r.Name)
	assert.Equal(t, "$r('app.string.title')", ref.String())

	assert.True(t, Str{}.IsZero())
	assert.False(t, ref.IsZero())
}
