package components

import (
	"github.com/go-drift/fluent/pkg/attr"
	fluenterrors "github.com/go-drift/fluent/pkg/errors"
	"github.com/go-drift/fluent/pkg/graphics"
)

// ColumnOptions configures a [Column].
type ColumnOptions struct {
	// Space is the gap between children.
	Space graphics.Length `json:"space"`
}

// RowOptions configures a [Row].
type RowOptions struct {
	// Space is the gap between children.
	Space graphics.Length `json:"space"`
}

// ColumnAttribute is the attribute builder returned by [Column].
type ColumnAttribute struct {
	attr.Common[*ColumnAttribute]
}

// Column lays its children out vertically.
func Column(opts ...ColumnOptions) *ColumnAttribute {
	a := &ColumnAttribute{}
	var o ColumnOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	a.Init(a, "Column", o)
	if err := checkFlexOptions(len(opts), o.Space); err != nil {
		a.Fail("options", err)
	}
	return a
}

// AlignItems positions children horizontally.
func (a *ColumnAttribute) AlignItems(v HorizontalAlign) *ColumnAttribute {
	return a.SetChecked("alignItems", v, horizontalAlignNames.Check("alignItems", v))
}

// JustifyContent distributes children vertically.
func (a *ColumnAttribute) JustifyContent(v FlexAlign) *ColumnAttribute {
	return a.SetChecked("justifyContent", v, flexAlignNames.Check("justifyContent", v))
}

// Reverse lays children out bottom to top.
func (a *ColumnAttribute) Reverse(v bool) *ColumnAttribute {
	return a.Set("reverse", v)
}

// RowAttribute is the attribute builder returned by [Row].
type RowAttribute struct {
	attr.Common[*RowAttribute]
}

// Row lays its children out horizontally.
func Row(opts ...RowOptions) *RowAttribute {
	a := &RowAttribute{}
	var o RowOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	a.Init(a, "Row", o)
	if err := checkFlexOptions(len(opts), o.Space); err != nil {
		a.Fail("options", err)
	}
	return a
}

// AlignItems positions children vertically.
func (a *RowAttribute) AlignItems(v VerticalAlign) *RowAttribute {
	return a.SetChecked("alignItems", v, verticalAlignNames.Check("alignItems", v))
}

// JustifyContent distributes children horizontally.
func (a *RowAttribute) JustifyContent(v FlexAlign) *RowAttribute {
	return a.SetChecked("justifyContent", v, flexAlignNames.Check("justifyContent", v))
}

// Reverse lays children out end to start.
func (a *RowAttribute) Reverse(v bool) *RowAttribute {
	return a.Set("reverse", v)
}

func checkFlexOptions(n int, space graphics.Length) error {
	if n > 1 {
		return fluenterrors.Constraint("options", "at most 1 options record", n)
	}
	return graphics.CheckNonNegative("space", space)
}

func newColumn(args attr.Args) (*ColumnAttribute, error) {
	if err := args.Arity("Column", 0, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[ColumnOptions]("ColumnOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return settled(Column(o))
}

func newRow(args attr.Args) (*RowAttribute, error) {
	if err := args.Arity("Row", 0, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[RowOptions]("RowOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return settled(Row(o))
}

var columnMethods = attr.Methods[*ColumnAttribute]{
	"alignItems":     attr.Unary("alignItems", attr.EnumReader(horizontalAlignNames), (*ColumnAttribute).AlignItems),
	"justifyContent": attr.Unary("justifyContent", attr.EnumReader(flexAlignNames), (*ColumnAttribute).JustifyContent),
	"reverse":        attr.Unary("reverse", attr.Args.Bool, (*ColumnAttribute).Reverse),
}

var rowMethods = attr.Methods[*RowAttribute]{
	"alignItems":     attr.Unary("alignItems", attr.EnumReader(verticalAlignNames), (*RowAttribute).AlignItems),
	"justifyContent": attr.Unary("justifyContent", attr.EnumReader(flexAlignNames), (*RowAttribute).JustifyContent),
	"reverse":        attr.Unary("reverse", attr.Args.Bool, (*RowAttribute).Reverse),
}

// StackOptions configures a [Stack].
type StackOptions struct {
	AlignContent Alignment `json:"alignContent"`
}

// StackAttribute is the attribute builder returned by [Stack].
type StackAttribute struct {
	attr.Common[*StackAttribute]
}

// Stack overlays its children, later children on top.
func Stack(opts ...StackOptions) *StackAttribute {
	a := &StackAttribute{}
	var o StackOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	a.Init(a, "Stack", o)
	if len(opts) > 1 {
		return a.Fail("options", fluenterrors.Constraint("options", "at most 1 options record", len(opts)))
	}
	if err := alignmentNames.Check("alignContent", o.AlignContent); err != nil {
		a.Fail("options", err)
	}
	return a
}

// AlignContent positions the children within the stack.
func (a *StackAttribute) AlignContent(v Alignment) *StackAttribute {
	return a.SetChecked("alignContent", v, alignmentNames.Check("alignContent", v))
}

func newStack(args attr.Args) (*StackAttribute, error) {
	if err := args.Arity("Stack", 0, 1); err != nil {
		return nil, err
	}
	o, err := decodeOptions[StackOptions]("StackOptions", args, 0)
	if err != nil {
		return nil, err
	}
	return settled(Stack(o))
}

var stackMethods = attr.Methods[*StackAttribute]{
	"alignContent": attr.Unary("alignContent", attr.EnumReader(alignmentNames), (*StackAttribute).AlignContent),
}
