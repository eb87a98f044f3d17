// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strconv"
)

type (
	// Kind identifies the type of a Token.
	Kind int

	// Token is a lexical token.
	//
	// Tokens are comparable; == compares the kind and the full payload.
	Token struct {
		Kind Kind

		// Value holds the text of Ident, AtKeyword, Hash, String, URL & Function tokens.
		Value string

		// Delim holds the code point of a Delim token.
		Delim rune

		// Number, Repr & Unit are set for numeric tokens.
		//
		// Repr is the verbatim source text of the number (without the unit or '%').
		Number NumericValue
		Repr   string
		Unit   string

		// Start & End bound a UnicodeRange token.
		Start rune
		End   rune
	}

	// NumericValue is either an integer or a floating point value.
	NumericValue struct {
		Integer bool
		Int     int64
		Float   float64
	}
)

// Token kinds.
const (
	EOF Kind = iota
	Ident
	AtKeyword
	Hash
	String
	BadString
	URL
	BadURL
	Delim
	Number
	Percentage
	Dimension
	UnicodeRange
	EmptyUnicodeRange
	WhiteSpace
	Comment
	CDO // <!--
	CDC // -->
	Colon
	Semicolon
	Function // name(
	OpenParen
	OpenBracket
	OpenBrace
	CloseParen
	CloseBracket
	CloseBrace
)

var kindNames = [...]string{
	EOF:               "EOF",
	Ident:             "Ident",
	AtKeyword:         "AtKeyword",
	Hash:              "Hash",
	String:            "String",
	BadString:         "BadString",
	URL:               "URL",
	BadURL:            "BadURL",
	Delim:             "Delim",
	Number:            "Number",
	Percentage:        "Percentage",
	Dimension:         "Dimension",
	UnicodeRange:      "UnicodeRange",
	EmptyUnicodeRange: "EmptyUnicodeRange",
	WhiteSpace:        "WhiteSpace",
	Comment:           "Comment",
	CDO:               "CDO",
	CDC:               "CDC",
	Colon:             "Colon",
	Semicolon:         "Semicolon",
	Function:          "Function",
	OpenParen:         "OpenParen",
	OpenBracket:       "OpenBracket",
	OpenBrace:         "OpenBrace",
	CloseParen:        "CloseParen",
	CloseBracket:      "CloseBracket",
	CloseBrace:        "CloseBrace",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Integer creates an integer NumericValue.
func Integer(v int64) NumericValue { return NumericValue{Integer: true, Int: v} }

// Float creates a floating point NumericValue.
func Float(v float64) NumericValue { return NumericValue{Float: v} }

// String is the fmt.Stringer implementation for NumericValue.
func (n NumericValue) String() string {
	if n.Integer {
		return "Integer(" + strconv.FormatInt(n.Int, 10) + ")"
	}

	return "Float(" + strconv.FormatFloat(n.Float, 'g', -1, 64) + ")"
}

// String is the fmt.Stringer implementation for Token.
func (t Token) String() string {
	switch t.Kind {
	case Ident, AtKeyword, Hash, String, URL, Function:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
	case Delim:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Delim)
	case Number, Percentage:
		return fmt.Sprintf("%s(%s, %q)", t.Kind, t.Number, t.Repr)
	case Dimension:
		return fmt.Sprintf("%s(%s, %q, %q)", t.Kind, t.Number, t.Repr, t.Unit)
	case UnicodeRange:
		return fmt.Sprintf("%s(U+%X, U+%X)", t.Kind, t.Start, t.End)
	default:
		return t.Kind.String()
	}
}
