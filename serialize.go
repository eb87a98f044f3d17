// SPDX-License-Identifier: MIT
package csstree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gitlab.com/fisherprime/csstree/lexer"
)

// REF: http://dev.w3.org/csswg/cssom/#serializing-css-values

// Serialize writes a Primitive sequence to w as CSS text.
//
// Numbers are written from their preserved representation. Re-parsing the output yields an
// equal sequence, whitespace runs aside: each WhiteSpace is written as a single space.
func Serialize(w io.Writer, primitives []Primitive) (err error) {
	var buffer strings.Builder
	serialize(&buffer, primitives)

	_, err = io.WriteString(w, buffer.String())

	return
}

// ToCSS transforms a Primitive sequence into CSS text.
func ToCSS(primitives []Primitive) string {
	var buffer strings.Builder
	serialize(&buffer, primitives)

	return buffer.String()
}

// serialize performs the serialization grunt work.
func serialize(b *strings.Builder, primitives []Primitive) {
	var prev Primitive
	for _, prim := range primitives {
		if prev != nil && needsSeparator(prev, prim) {
			b.WriteString("/**/")
		}
		serializeOne(b, prim)
		prev = prim
	}
}

func serializeOne(b *strings.Builder, prim Primitive) {
	switch p := prim.(type) {
	case Ident:
		writeIdent(b, p.Value)
	case AtKeyword:
		b.WriteByte('@')
		writeIdent(b, p.Value)
	case Hash:
		b.WriteByte('#')
		writeName(b, p.Value, 0)
	case String:
		writeString(b, p.Value)
	case URL:
		writeURL(b, p.Value)
	case Delim:
		if p.Value == '\\' {
			// A lone backslash only survives in front of a newline.
			b.WriteString("\\\n")
			return
		}
		b.WriteRune(p.Value)
	case Number:
		b.WriteString(numberRepr(p.Value, p.Repr))
	case Percentage:
		b.WriteString(numberRepr(p.Value, p.Repr))
		b.WriteByte('%')
	case Dimension:
		b.WriteString(numberRepr(p.Value, p.Repr))
		writeUnit(b, p.Unit)
	case UnicodeRange:
		if p.Start == p.End {
			fmt.Fprintf(b, "U+%X", p.Start)
			return
		}
		fmt.Fprintf(b, "U+%X-%X", p.Start, p.End)
	case EmptyUnicodeRange:
		// Any range whose start exceeds its end.
		b.WriteString("U+1-0")
	case WhiteSpace:
		b.WriteByte(' ')
	case Comment:
		b.WriteString("/**/")
	case CDO:
		b.WriteString("<!--")
	case CDC:
		b.WriteString("-->")
	case Colon:
		b.WriteByte(':')
	case Semicolon:
		b.WriteByte(';')
	case CloseBracket:
		b.WriteByte(']')
	case CloseParen:
		b.WriteByte(')')
	case CloseBrace:
		b.WriteByte('}')
	case Function:
		writeIdent(b, p.Name)
		b.WriteByte('(')
		for index, arg := range p.Args {
			if index > 0 {
				b.WriteByte(',')
			}
			serialize(b, arg)
		}
		b.WriteByte(')')
	case BracketBlock:
		b.WriteByte('[')
		serialize(b, p.Values)
		b.WriteByte(']')
	case ParenBlock:
		b.WriteByte('(')
		serialize(b, p.Values)
		b.WriteByte(')')
	case BraceBlock:
		b.WriteByte('{')
		serialize(b, p.Values)
		b.WriteByte('}')
	}
}

// needsSeparator reports whether writing next right after prev would lex differently.
func needsSeparator(prev, next Primitive) bool {
	if d, ok := prev.(Delim); ok {
		switch d.Value {
		case '#', '@', '-', '+', '.':
			return startsWord(next)
		case '/':
			n, ok := next.(Delim)
			return ok && n.Value == '*'
		case '!':
			// `<!` followed by `--` reads as a CDO.
			if _, ok := next.(CDC); ok {
				return true
			}
			n, ok := next.(Delim)
			return ok && n.Value == '-'
		}

		return false
	}

	switch prev.(type) {
	case UnicodeRange, EmptyUnicodeRange:
		// A trailing `?` reads as a wildcard digit.
		if n, ok := next.(Delim); ok && n.Value == '?' {
			return true
		}
	}

	if _, ok := prev.(Ident); ok {
		// `name(` reads as a function.
		if _, ok := next.(ParenBlock); ok {
			return true
		}
	}

	return endsWord(prev) && startsWord(next)
}

func endsWord(prim Primitive) bool {
	switch prim.(type) {
	case Ident, AtKeyword, Hash, Number, Dimension, UnicodeRange, EmptyUnicodeRange:
		return true
	}

	return false
}

func startsWord(prim Primitive) bool {
	switch p := prim.(type) {
	case Ident, Function, URL, Number, Percentage, Dimension, UnicodeRange, EmptyUnicodeRange, CDC:
		return true
	case Delim:
		return p.Value == '-' || p.Value == '%' || p.Value == '+' || p.Value == '.'
	}

	return false
}

func numberRepr(value lexer.NumericValue, repr string) string {
	if repr != "" {
		return repr
	}

	if value.Integer {
		return strconv.FormatInt(value.Int, 10)
	}

	return strconv.FormatFloat(value.Float, 'f', -1, 64)
}

// writeIdent writes an identifier, escaping what would not start one.
func writeIdent(b *strings.Builder, value string) {
	start := 0
	if strings.HasPrefix(value, "-") {
		b.WriteByte('-')
		start = 1
	}

	writeName(b, value[start:], 1)
}

// writeUnit writes a dimension's unit, escaping a leading 'e' that would read as an exponent.
func writeUnit(b *strings.Builder, unit string) {
	if strings.HasPrefix(unit, "e") || strings.HasPrefix(unit, "E") {
		writeHexEscape(b, rune(unit[0]))
		writeName(b, unit[1:], 0)
		return
	}

	writeIdent(b, unit)
}

// writeName writes a name, escaping the first strict runes when they are not name-start
// code points.
func writeName(b *strings.Builder, value string, strict int) {
	for index, r := range []rune(value) {
		switch {
		case index < strict && !lexer.IsNameStart(r):
			writeEscape(b, r)
		case !lexer.IsName(r):
			writeEscape(b, r)
		default:
			b.WriteRune(r)
		}
	}
}

func writeString(b *strings.Builder, value string) {
	b.WriteByte('"')
	for _, r := range value {
		switch {
		case r == '"', r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n', lexer.IsNonPrintable(r):
			writeHexEscape(b, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

func writeURL(b *strings.Builder, value string) {
	b.WriteString("url(")
	for _, r := range value {
		switch {
		case r == '"', r == '\'', r == '(', r == ')', r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', lexer.IsNonPrintable(r):
			writeHexEscape(b, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(')')
}

func writeEscape(b *strings.Builder, r rune) {
	if r < 0x80 && !lexer.IsHexDigit(r) && !lexer.IsNonPrintable(r) && r != '\n' && r != ' ' && r != '\t' {
		b.WriteByte('\\')
		b.WriteRune(r)
		return
	}

	writeHexEscape(b, r)
}

// writeHexEscape writes a hex escape, the trailing space ends it.
func writeHexEscape(b *strings.Builder, r rune) { fmt.Fprintf(b, "\\%x ", r) }
