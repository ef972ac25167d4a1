// Package components defines the attribute builders of every declarative
// component: options records, factories, and chainable setters that return
// the component's own attribute type.
//
// # Creation Patterns
//
// Components without required options have plain factories:
//
//	components.Checkbox().Select(true).SelectedColor(graphics.Hex("#007DFF"))
//
// Factories whose options carry required fields or cross-field constraints
// return an error before any attribute exists. Wrap them with [attr.Must]
// when the options are known to be valid:
//
//	attr.Must(components.Radio(components.RadioOptions{Group: "g1", Value: "a"})).
//	    Checked(true)
//
// Dual call signatures become union parameters or paired constructors:
//
//	components.Badge(components.BadgeWithCount{Count: 3})
//	components.Badge(components.BadgeWithValue{Value: "new"})
//	components.Button()
//	components.ButtonWithLabel(resource.Text("OK"))
//
// # Dynamic Construction
//
// [Registry] describes every component for untyped callers such as the DSL
// evaluator. Its factories decode option objects with json field names and
// its methods accept the same value forms the DSL produces.
package components
