// Package attr implements the self-typed attribute builder shared by every
// component.
//
// A component's attribute type embeds [Common] parameterised by its own
// pointer type. Every inherited setter then returns the concrete type, so
// chains stay specific to the component:
//
//	type SliderAttribute struct {
//	    attr.Common[*SliderAttribute]
//	}
//
//	func Slider(opts SliderOptions) *SliderAttribute {
//	    a := &SliderAttribute{}
//	    a.Init(a, "Slider", opts)
//	    return a
//	}
//
//	func (a *SliderAttribute) BlockColor(c graphics.ResourceColor) *SliderAttribute {
//	    return a.Set("blockColor", c)
//	}
//
//	components.Slider(opts).Width(graphics.VP(200)).BlockColor(graphics.Hex("#fff"))
//
// # State
//
// Each setter stores one entry in the attribute's [State] and returns the
// receiver. Calling a setter twice keeps only the last value; independent
// setters commute.
//
// # Errors
//
// Setters validate their argument. A failing setter leaves the state as it
// was and records the error on the attribute; [Base.Err] returns the first
// recorded error, and handing the attribute to a builder surfaces it.
//
// # Dynamic calls
//
// [Args], [Method] and [Registry] apply the same setters to untyped values
// (decoded configuration, the DSL). Those paths return TypeMismatch,
// ConstraintViolation and MissingRequiredField errors directly.
package attr
