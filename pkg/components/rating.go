package components

import (
	"math"

	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

// DefaultRatingStars is the star count used until Stars is called.
const DefaultRatingStars = 5

// RatingOptions configures a [Rating].
type RatingOptions struct {
	Rating float64 `json:"rating" validate:"gte=0"`
	// Indicator makes the rating read-only.
	Indicator bool `json:"indicator"`
}

// StarStyleOptions replaces the star images. Background and Foreground are
// required.
type StarStyleOptions struct {
	BackgroundURI string `json:"backgroundUri" validate:"required"`
	ForegroundURI string `json:"foregroundUri" validate:"required"`
	SecondaryURI  string `json:"secondaryUri"`
}

// RatingAttribute is the attribute builder returned by [Rating].
type RatingAttribute struct {
	attr.Common[*RatingAttribute]
	rating float64
}

// Rating creates a star rating.
func Rating(opts ...RatingOptions) (*RatingAttribute, error) {
	var o RatingOptions
	switch {
	case len(opts) > 1:
		return nil, fluenterrors.Constraint("options", "at most 1 options record", len(opts))
	case len(opts) == 1:
		o = opts[0]
	}
	if err := attr.ValidateOptions("RatingOptions", o); err != nil {
		return nil, err
	}
	a := &RatingAttribute{rating: o.Rating}
	a.Init(a, "Rating", o)
	return a, nil
}

// Err reports the first recorded error. A rating above DefaultRatingStars is
// an error while Stars has not raised the count to hold it.
func (a *RatingAttribute) Err() error {
	if err := a.Common.Err(); err != nil {
		return err
	}
	if !a.State().Has("stars") && math.Ceil(a.rating) > DefaultRatingStars {
		return fluenterrors.Wrap("Rating.rating", "Rating",
			fluenterrors.Constraint("rating", "rating <= stars", a.rating))
	}
	return nil
}

// Stars sets the number of stars. The count must be positive and hold the
// current rating.
func (a *RatingAttribute) Stars(n int) *RatingAttribute {
	if err := attr.CheckPositive("stars", n); err != nil {
		return a.Fail("stars", err)
	}
	if float64(n) < math.Ceil(a.rating) {
		return a.Fail("stars", fluenterrors.Constraint("stars", "rating <= stars", n))
	}
	return a.Set("stars", n)
}

// StepSize sets the rating granularity.
func (a *RatingAttribute) StepSize(step float64) *RatingAttribute {
	return a.SetChecked("stepSize", step, attr.CheckPositive("stepSize", step))
}

// StarStyle replaces the star images.
func (a *RatingAttribute) StarStyle(s StarStyleOptions) *RatingAttribute {
	return a.SetChecked("starStyle", s, attr.ValidateOptions("StarStyleOptions", s))
}

// OnChange registers a handler called with the new rating.
func (a *RatingAttribute) OnChange(fn func(rating float64)) *RatingAttribute {
	return a.SetChecked("onChange", fn, attr.CheckNotNil("onChange", fn))
}

func newRating(args attr.Args) (*RatingAttribute, error) {
	if err := args.Arity("Rating", 0, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[RatingOptions]("RatingOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return Rating(o)
}

var ratingMethods = attr.Methods[*RatingAttribute]{
	"stars":    attr.Unary("stars", attr.Args.Int, (*RatingAttribute).Stars),
	"stepSize": attr.Unary("stepSize", attr.Args.Float, (*RatingAttribute).StepSize),
	"starStyle": attr.Unary("starStyle", attr.ObjectReader[StarStyleOptions]("StarStyleOptions"),
		(*RatingAttribute).StarStyle),
	"onChange": attr.Unary("onChange", attr.CallbackReader[func(float64)](), (*RatingAttribute).OnChange),
}
