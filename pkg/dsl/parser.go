// Package dsl reads declarative component trees written as chained calls:
//
//	Column({ space: 8vp }) {
//	    Text("Title").fontSize(20fp).fontColor(#333333)
//	    Slider({ value: 10, max: 100 }).blockColor($r('app.color.accent'))
//	    Button("OK").onClick(submit)
//	}
//
// Parse produces a positioned AST; Evaluate runs it against an attribute
// registry and returns the frozen node trees.
package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	fluenterrors "github.com/go-drift/fluent/pkg/errors"
)

var (
	fluentLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{4}|[0-9A-Fa-f]{3})\b`},
		{Name: "Number", Pattern: `0[xX][0-9A-Fa-f]+|-?(?:\d+\.\d+|\.\d+|\d+)(?:[eE][+-]?\d+)?(?:lpx|vp|px|fp|%)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'(?:\\.|[^'\\])*'`},
		{Name: "Ident", Pattern: `\$?[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Symbol", Pattern: `[(){}\[\],.:;]`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(fluentLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
		participle.UseLookahead(2),
	)
)

// File is the root of a parsed source.
type File struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Stmts []*Stmt        `parser:"( @@ ';'? )*"`
}

// Stmt declares one component: its factory call, the attribute calls
// chained on it and, for containers, a block of children.
type Stmt struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Calls []*Call        `parser:"@@ ( '.' @@ )*"`
	Block *Block         `parser:"@@?"`
}

// Factory returns the component call.
func (s *Stmt) Factory() *Call { return s.Calls[0] }

// Methods returns the attribute calls chained on the factory.
func (s *Stmt) Methods() []*Call { return s.Calls[1:] }

// Block holds child statements.
type Block struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Stmts []*Stmt        `parser:"'{' ( @@ ';'? )* '}'"`
}

// Call is a name applied to arguments.
type Call struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Name string         `parser:"@Ident"`
	Args []*Value       `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
}

// Value is one argument or object member.
type Value struct {
	Pos      lexer.Position `parser:"" json:"-"`
	Resource *ResourceRef   `parser:"  @@"`
	Str      *String        `parser:"| @String"`
	Number   *Number        `parser:"| @Number"`
	Color    *string        `parser:"| @Color"`
	Bool     *Boolean       `parser:"| @( 'true' | 'false' )"`
	Null     bool           `parser:"| @'null'"`
	Object   *Object        `parser:"| @@"`
	Array    *Array         `parser:"| @@"`
	Path     []string       `parser:"| @Ident ( '.' @Ident )*"`
}

// ResourceRef is a $r('type.kind.name', params...) reference.
type ResourceRef struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Ref    String         `parser:"'$r' '(' @String"`
	Params []*Value       `parser:"( ',' @@ )* ')'"`
}

// Object is a { key: value, ... } literal.
type Object struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Entries []*Entry       `parser:"'{' ( @@ ( ',' @@ )* )? '}'"`
}

// Entry is one object member. Keys may be identifiers or strings.
type Entry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   String         `parser:"( @Ident | @String )"`
	Value *Value         `parser:"':' @@"`
}

// Array is a [ value, ... ] literal.
type Array struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Items []*Value       `parser:"'[' ( @@ ( ',' @@ )* )? ']'"`
}

// String is an unquoted string literal. Single and double quotes are
// accepted; bare identifiers pass through unchanged.
type String string

// Capture implements participle.Capture.
func (s *String) Capture(values []string) error {
	v, err := unquote(values[0])
	if err != nil {
		return err
	}
	*s = String(v)
	return nil
}

// Number is a numeric literal with an optional length unit.
type Number struct {
	Value float64
	// Unit is "vp", "px", "fp", "lpx", "%" or empty.
	Unit string
	Raw  string
}

// Capture implements participle.Capture.
func (n *Number) Capture(values []string) error {
	raw := values[0]
	n.Raw = raw
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "0x") {
		u, err := strconv.ParseUint(lower[2:], 16, 32)
		if err != nil {
			return err
		}
		n.Value = float64(u)
		return nil
	}
	digits := strings.TrimRight(raw, "lpxvf%")
	n.Unit = raw[len(digits):]
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return err
	}
	n.Value = v
	return nil
}

// Boolean is a true/false literal.
type Boolean bool

// Capture implements participle.Capture.
func (b *Boolean) Capture(values []string) error {
	*b = values[0] == "true"
	return nil
}

// Parse reads a source. Syntax errors are *errors.ParseError values
// carrying the position.
func Parse(r io.Reader, filename string) (*File, error) {
	f, err := fileParser.Parse(filename, r)
	if err != nil {
		return nil, parseError(filename, err)
	}
	return f, nil
}

// ParseString is Parse over a string.
func ParseString(filename, src string) (*File, error) {
	return Parse(strings.NewReader(src), filename)
}

func parseError(filename string, err error) error {
	var perr participle.Error
	if fluenterrors.As(err, &perr) {
		pos := perr.Position()
		return &fluenterrors.ParseError{Filename: filename, Line: pos.Line, Column: pos.Column, Err: fmt.Errorf("%s", perr.Message())}
	}
	return &fluenterrors.ParseError{Filename: filename, Err: err}
}

func unquote(s string) (string, error) {
	if len(s) < 2 {
		return s, nil
	}
	switch s[0] {
	case '"':
		return strconv.Unquote(s)
	case '\'':
		body := strings.ReplaceAll(s[1:len(s)-1], `\'`, `'`)
		body = strings.ReplaceAll(body, `"`, `\"`)
		return strconv.Unquote(`"` + body + `"`)
	}
	return s, nil
}
