package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
	"github.com/go-drift/fluent/pkg/resource"
)

// ImageLoadResult describes a decoded image.
type ImageLoadResult struct {
	Width, Height                   float64
	ComponentWidth, ComponentHeight float64
	LoadingStatus                   int
}

// ImageError describes a failed load.
type ImageError struct {
	ComponentWidth, ComponentHeight float64
	Message                         string
}

// ImageAttribute is the attribute builder returned by [Image].
type ImageAttribute struct {
	attr.Common[*ImageAttribute]
}

// Image creates an image from a path, URL or media resource. An empty
// source is a MissingRequiredField error.
func Image(src resource.Str) (*ImageAttribute, error) {
	if lit, ok := src.Literal(); src.IsZero() || (ok && lit == "") {
		return nil, fluenterrors.MissingField("Image", "src")
	}
	a := &ImageAttribute{}
	a.Init(a, "Image", src)
	return a, nil
}

// Alt sets the placeholder shown while loading.
func (a *ImageAttribute) Alt(src resource.Str) *ImageAttribute {
	return a.Set("alt", src)
}

// ObjectFit scales the image into the component box.
func (a *ImageAttribute) ObjectFit(f ImageFit) *ImageAttribute {
	return a.SetChecked("objectFit", f, imageFitNames.Check("objectFit", f))
}

// Interpolation sets the resampling quality.
func (a *ImageAttribute) Interpolation(i ImageInterpolation) *ImageAttribute {
	return a.SetChecked("interpolation", i, imageInterpolationNames.Check("interpolation", i))
}

// FillColor tints an SVG source.
func (a *ImageAttribute) FillColor(c graphics.ResourceColor) *ImageAttribute {
	return a.SetChecked("fillColor", c, requireColor("fillColor", c))
}

// AutoResize decodes at the display size instead of the source size.
func (a *ImageAttribute) AutoResize(v bool) *ImageAttribute {
	return a.Set("autoResize", v)
}

// OnComplete registers a handler called when the image is decoded.
func (a *ImageAttribute) OnComplete(fn func(ImageLoadResult)) *ImageAttribute {
	return a.SetChecked("onComplete", fn, attr.CheckNotNil("onComplete", fn))
}

// OnError registers a handler called when loading fails.
func (a *ImageAttribute) OnError(fn func(ImageError)) *ImageAttribute {
	return a.SetChecked("onError", fn, attr.CheckNotNil("onError", fn))
}

func newImage(args attr.Args) (*ImageAttribute, error) {
	if err := args.Arity("Image", 1, 1); err != nil {
		return nil, err
	}
	src, err := args.Str(0, "src")
	if err != nil {
		return nil, err
	}
	return Image(src)
}

var imageMethods = attr.Methods[*ImageAttribute]{
	"alt":           attr.Unary("alt", attr.Args.Str, (*ImageAttribute).Alt),
	"objectFit":     attr.Unary("objectFit", attr.EnumReader(imageFitNames), (*ImageAttribute).ObjectFit),
	"interpolation": attr.Unary("interpolation", attr.EnumReader(imageInterpolationNames), (*ImageAttribute).Interpolation),
	"fillColor":     attr.Unary("fillColor", attr.Args.Color, (*ImageAttribute).FillColor),
	"autoResize":    attr.Unary("autoResize", attr.Args.Bool, (*ImageAttribute).AutoResize),
	"onComplete":    attr.Unary("onComplete", attr.CallbackReader[func(ImageLoadResult)](), (*ImageAttribute).OnComplete),
	"onError":       attr.Unary("onError", attr.CallbackReader[func(ImageError)](), (*ImageAttribute).OnError),
}
