// SPDX-License-Identifier: MIT
package csstree

import (
	"fmt"

	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/csstree/lexer"
)

// Primitive is a node of the tree built by the Parser.
//
// The set of implementations is closed.
type Primitive interface {
	// Kind names the Primitive variant.
	Kind() string

	primitive()
}

// Preserved tokens, carried over from the lexer unchanged.
type (
	Ident     struct{ Value string }
	AtKeyword struct{ Value string }
	Hash      struct{ Value string }
	String    struct{ Value string }
	URL       struct{ Value string }
	Delim     struct{ Value rune }

	// Number holds a numeric value & its source text.
	Number struct {
		Value lexer.NumericValue
		Repr  string
	}

	// Percentage holds a numeric value & its source text, excluding the '%'.
	Percentage struct {
		Value lexer.NumericValue
		Repr  string
	}

	// Dimension holds a numeric value, its source text & its unit.
	Dimension struct {
		Value lexer.NumericValue
		Repr  string
		Unit  string
	}

	// UnicodeRange holds an inclusive code point range.
	UnicodeRange struct{ Start, End rune }

	EmptyUnicodeRange struct{}
	WhiteSpace        struct{}
	Comment           struct{}
	CDO               struct{} // <!--
	CDC               struct{} // -->
	Colon             struct{}
	Semicolon         struct{}
	CloseBracket      struct{}
	CloseParen        struct{}
	CloseBrace        struct{}
)

// Nested primitives.
type (
	// Function holds a function's name & its comma separated arguments.
	//
	// Args always has at least one (possibly empty) argument.
	Function struct {
		Name string
		Args [][]Primitive
	}

	// BracketBlock is a […] simple block.
	BracketBlock struct{ Values []Primitive }
	// ParenBlock is a (…) simple block.
	ParenBlock struct{ Values []Primitive }
	// BraceBlock is a {…} simple block.
	BraceBlock struct{ Values []Primitive }
)

func (Ident) Kind() string             { return "Ident" }
func (AtKeyword) Kind() string         { return "AtKeyword" }
func (Hash) Kind() string              { return "Hash" }
func (String) Kind() string            { return "String" }
func (URL) Kind() string               { return "URL" }
func (Delim) Kind() string             { return "Delim" }
func (Number) Kind() string            { return "Number" }
func (Percentage) Kind() string        { return "Percentage" }
func (Dimension) Kind() string         { return "Dimension" }
func (UnicodeRange) Kind() string      { return "UnicodeRange" }
func (EmptyUnicodeRange) Kind() string { return "EmptyUnicodeRange" }
func (WhiteSpace) Kind() string        { return "WhiteSpace" }
func (Comment) Kind() string           { return "Comment" }
func (CDO) Kind() string               { return "CDO" }
func (CDC) Kind() string               { return "CDC" }
func (Colon) Kind() string             { return "Colon" }
func (Semicolon) Kind() string         { return "Semicolon" }
func (CloseBracket) Kind() string      { return "CloseBracket" }
func (CloseParen) Kind() string        { return "CloseParen" }
func (CloseBrace) Kind() string        { return "CloseBrace" }
func (Function) Kind() string          { return "Function" }
func (BracketBlock) Kind() string      { return "BracketBlock" }
func (ParenBlock) Kind() string        { return "ParenBlock" }
func (BraceBlock) Kind() string        { return "BraceBlock" }

func (Ident) primitive()             {}
func (AtKeyword) primitive()         {}
func (Hash) primitive()              {}
func (String) primitive()            {}
func (URL) primitive()               {}
func (Delim) primitive()             {}
func (Number) primitive()            {}
func (Percentage) primitive()        {}
func (Dimension) primitive()         {}
func (UnicodeRange) primitive()      {}
func (EmptyUnicodeRange) primitive() {}
func (WhiteSpace) primitive()        {}
func (Comment) primitive()           {}
func (CDO) primitive()               {}
func (CDC) primitive()               {}
func (Colon) primitive()             {}
func (Semicolon) primitive()         {}
func (CloseBracket) primitive()      {}
func (CloseParen) primitive()        {}
func (CloseBrace) primitive()        {}
func (Function) primitive()          {}
func (BracketBlock) primitive()      {}
func (ParenBlock) primitive()        {}
func (BraceBlock) primitive()        {}

// preservedToPrimitive maps a preserved token to its Primitive.
//
// Openers, functions, EOF & malformed tokens have no mapping; passing one panics with
// ErrNotPreserved.
func preservedToPrimitive(tok lexer.Token) Primitive {
	switch tok.Kind {
	case lexer.Ident:
		return Ident{Value: tok.Value}
	case lexer.AtKeyword:
		return AtKeyword{Value: tok.Value}
	case lexer.Hash:
		return Hash{Value: tok.Value}
	case lexer.String:
		return String{Value: tok.Value}
	case lexer.URL:
		return URL{Value: tok.Value}
	case lexer.Delim:
		return Delim{Value: tok.Delim}
	case lexer.Number:
		return Number{Value: tok.Number, Repr: tok.Repr}
	case lexer.Percentage:
		return Percentage{Value: tok.Number, Repr: tok.Repr}
	case lexer.Dimension:
		return Dimension{Value: tok.Number, Repr: tok.Repr, Unit: tok.Unit}
	case lexer.UnicodeRange:
		return UnicodeRange{Start: tok.Start, End: tok.End}
	case lexer.EmptyUnicodeRange:
		return EmptyUnicodeRange{}
	case lexer.WhiteSpace:
		return WhiteSpace{}
	case lexer.Comment:
		return Comment{}
	case lexer.CDO:
		return CDO{}
	case lexer.CDC:
		return CDC{}
	case lexer.Colon:
		return Colon{}
	case lexer.Semicolon:
		return Semicolon{}
	case lexer.CloseBracket:
		return CloseBracket{}
	case lexer.CloseParen:
		return CloseParen{}
	case lexer.CloseBrace:
		return CloseBrace{}
	}

	panic(fmt.Errorf("%w: %s", ErrNotPreserved, tok))
}

// Equal reports whether two Primitive sequences are structurally identical.
func Equal(a, b []Primitive) bool { return slices.EqualFunc(a, b, equalPrimitive) }

func equalPrimitive(a, b Primitive) bool {
	switch a := a.(type) {
	case Function:
		b, ok := b.(Function)
		return ok && a.Name == b.Name && slices.EqualFunc(a.Args, b.Args, Equal)
	case BracketBlock:
		b, ok := b.(BracketBlock)
		return ok && Equal(a.Values, b.Values)
	case ParenBlock:
		b, ok := b.(ParenBlock)
		return ok && Equal(a.Values, b.Values)
	case BraceBlock:
		b, ok := b.(BraceBlock)
		return ok && Equal(a.Values, b.Values)
	}

	// Remaining variants are comparable.
	return a == b
}
