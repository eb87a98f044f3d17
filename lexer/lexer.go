// SPDX-License-Identifier: MIT
package lexer

// REF: http://dev.w3.org/csswg/css3-syntax/#tokenization
// REF: https://github.com/benbjohnson/css/blob/master/scanner/scanner.go

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

type (
	// Lexer converts CSS source text into Items, one at a time, on demand.
	Lexer struct {
		debug                       bool
		transformFunctionWhitespace bool
		logger                      logrus.FieldLogger

		// source is the input source.
		source io.RuneReader

		// buffer is a slice of preprocessed runes being lexed.
		buffer []rune
		// bufferIndex is the current buffer position.
		//
		// When this value reaches the length of buffer, the buffer is populated from the source.
		bufferIndex int
		// sourceIndex is the byte offset of buffer[0] in the preprocessed input.
		sourceIndex int

		// skipLF is set after a '\r' so that a following '\n' is dropped.
		skipLF bool

		// err holds the first lexical error found while scanning the current token.
		err  *Error
		done bool
	}
)

const (
	defBufferSize = 10

	emptyRune   rune = 0
	replacement rune = '\uFFFD'
	maxCodePoint     = 0x10FFFF
)

// Lexical error messages.
const (
	msgInvalidEscape       = "invalid escape"
	msgNewlineInString     = "newline in quoted string"
	msgInvalidURLChar      = "invalid character in url"
	msgInvalidURLSyntax    = "invalid url syntax"
	msgUnterminatedComment = "unterminated comment"
)

// Improves on performance compared to ORs.
var whitespace = [256]bool{
	' ':  true,
	'\t': true,
	'\n': true,
}

// New creates a new Lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{
		logger: logrus.New(),

		buffer: make([]rune, 0, defBufferSize),
		source: strings.NewReader(""),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Next returns the next Item from the input.
//
// Once the input is exhausted every call returns an EOF Item.
func (l *Lexer) Next() (item Item) {
	l.discard()
	item.Pos = l.sourceIndex

	if l.done {
		return
	}

	l.err = nil
	item.Token = l.lex()
	item.Err = l.err

	if item.Token.Kind == EOF {
		l.done = true
	}

	if l.debug {
		l.logger.Debugf("lexed item: %s", item)
	}

	return
}

// All returns the remaining Items, the final EOF Item included.
func (l *Lexer) All() (items []Item) {
	for {
		item := l.Next()
		items = append(items, item)

		if item.Token.Kind == EOF {
			return
		}
	}
}

// lex scans a single token starting at the current buffer position.
func (l *Lexer) lex() Token {
	c := l.next()

	switch {
	case c == emptyRune:
		return Token{Kind: EOF}
	case isWhitespace(c):
		l.acceptWhile(isWhitespace)
		return Token{Kind: WhiteSpace}
	case c == '"' || c == '\'':
		return l.lexString(c)
	case c == '#':
		if IsName(l.peek(0)) || isValidEscape(l.peek(0), l.peek(1)) {
			return Token{Kind: Hash, Value: l.lexName()}
		}
	case c == '(':
		return Token{Kind: OpenParen}
	case c == ')':
		return Token{Kind: CloseParen}
	case c == '[':
		return Token{Kind: OpenBracket}
	case c == ']':
		return Token{Kind: CloseBracket}
	case c == '{':
		return Token{Kind: OpenBrace}
	case c == '}':
		return Token{Kind: CloseBrace}
	case c == ':':
		return Token{Kind: Colon}
	case c == ';':
		return Token{Kind: Semicolon}
	case c == '+' || c == '.':
		if startsNumber(c, l.peek(0), l.peek(1)) {
			l.backup()
			return l.lexNumeric()
		}
	case c == '-':
		switch {
		case startsNumber(c, l.peek(0), l.peek(1)):
			l.backup()
			return l.lexNumeric()
		case startsIdent(c, l.peek(0), l.peek(1)):
			l.backup()
			return l.lexIdentLike()
		case l.peek(0) == '-' && l.peek(1) == '>':
			l.skip(2)
			return Token{Kind: CDC}
		}
	case c == '/':
		if l.peek(0) == '*' {
			l.skip(1)
			return l.lexComment()
		}
	case c == '<':
		if l.peek(0) == '!' && l.peek(1) == '-' && l.peek(2) == '-' {
			l.skip(3)
			return Token{Kind: CDO}
		}
	case c == '@':
		if startsIdent(l.peek(0), l.peek(1), l.peek(2)) {
			return Token{Kind: AtKeyword, Value: l.lexName()}
		}
	case c == '\\':
		if isValidEscape(c, l.peek(0)) {
			l.backup()
			return l.lexIdentLike()
		}
		l.report(msgInvalidEscape)
	case isDigit(c):
		l.backup()
		return l.lexNumeric()
	case (c == 'u' || c == 'U') && l.peek(0) == '+' && (IsHexDigit(l.peek(1)) || l.peek(1) == '?'):
		l.skip(1)
		return l.lexUnicodeRange()
	case IsNameStart(c):
		l.backup()
		return l.lexIdentLike()
	}

	return Token{Kind: Delim, Delim: c}
}

// lexComment consumes everything up to & including "*/".
//
// This assumes that the opening "/*" has been consumed.
func (l *Lexer) lexComment() Token {
	for {
		switch l.next() {
		case emptyRune:
			l.report(msgUnterminatedComment)
			return Token{Kind: Comment}
		case '*':
			if l.peek(0) == '/' {
				l.skip(1)
				return Token{Kind: Comment}
			}
		}
	}
}

// lexString consumes a quoted string ending with the quote code point.
//
// EOF closes the string; an unescaped newline yields a BadString.
func (l *Lexer) lexString(quote rune) Token {
	var buf strings.Builder

	for {
		c := l.next()

		switch {
		case c == emptyRune || c == quote:
			return Token{Kind: String, Value: buf.String()}
		case c == '\n':
			l.backup()
			l.report(msgNewlineInString)
			return Token{Kind: BadString}
		case c == '\\':
			switch l.peek(0) {
			case emptyRune:
			case '\n':
				// Escaped newline, a line continuation.
				l.skip(1)
			default:
				buf.WriteRune(l.lexEscape())
			}
		default:
			buf.WriteRune(c)
		}
	}
}

// lexEscape consumes an escaped code point.
//
// This assumes that the backslash has been consumed & the escape is valid.
func (l *Lexer) lexEscape() rune {
	c := l.next()

	switch {
	case c == emptyRune:
		return replacement
	case IsHexDigit(c):
		digits := []rune{c}
		for len(digits) < 6 && IsHexDigit(l.peek(0)) {
			digits = append(digits, l.next())
		}
		if isWhitespace(l.peek(0)) {
			l.skip(1)
		}

		v, _ := strconv.ParseUint(string(digits), 16, 32)
		if v == 0 || (v >= 0xD800 && v <= 0xDFFF) || v > maxCodePoint {
			return replacement
		}

		return rune(v)
	default:
		return c
	}
}

// lexName consumes contiguous name code points & escaped code points.
func (l *Lexer) lexName() string {
	var buf strings.Builder

	for {
		c := l.peek(0)

		switch {
		case IsName(c):
			buf.WriteRune(l.next())
		case isValidEscape(c, l.peek(1)):
			l.skip(1)
			buf.WriteRune(l.lexEscape())
		default:
			return buf.String()
		}
	}
}

// lexIdentLike consumes an ident, function, url or bad-url token.
func (l *Lexer) lexIdentLike() Token {
	name := l.lexName()

	if l.peek(0) == '(' {
		l.skip(1)
		if strings.EqualFold(name, "url") && isASCII(name) {
			return l.lexURL()
		}

		return Token{Kind: Function, Value: name}
	}

	if l.transformFunctionWhitespace && isWhitespace(l.peek(0)) {
		n := 1
		for isWhitespace(l.peek(n)) {
			n++
		}
		if l.peek(n) == '(' {
			l.skip(n + 1)
			if strings.EqualFold(name, "url") && isASCII(name) {
				return l.lexURL()
			}

			return Token{Kind: Function, Value: name}
		}
	}

	return Token{Kind: Ident, Value: name}
}

// lexURL consumes the contents of a url(...) token.
//
// This assumes that "url(" has been consumed.
func (l *Lexer) lexURL() Token {
	l.acceptWhile(isWhitespace)

	switch quote := l.peek(0); quote {
	case emptyRune:
		return Token{Kind: URL}
	case '"', '\'':
		l.skip(1)
		str := l.lexString(quote)
		if str.Kind == BadString {
			l.lexBadURL()
			return Token{Kind: BadURL}
		}

		l.acceptWhile(isWhitespace)
		if c := l.next(); c != ')' && c != emptyRune {
			l.report(msgInvalidURLSyntax)
			l.lexBadURL()
			return Token{Kind: BadURL}
		}

		return Token{Kind: URL, Value: str.Value}
	}

	var buf strings.Builder
	for {
		c := l.next()

		switch {
		case c == ')' || c == emptyRune:
			return Token{Kind: URL, Value: buf.String()}
		case isWhitespace(c):
			l.acceptWhile(isWhitespace)
			if c := l.next(); c == ')' || c == emptyRune {
				return Token{Kind: URL, Value: buf.String()}
			}
			l.report(msgInvalidURLSyntax)
			l.lexBadURL()
			return Token{Kind: BadURL}
		case c == '"' || c == '\'' || c == '(' || IsNonPrintable(c):
			l.report(msgInvalidURLChar)
			l.lexBadURL()
			return Token{Kind: BadURL}
		case c == '\\':
			if !isValidEscape(c, l.peek(0)) {
				l.report(msgInvalidEscape)
				l.lexBadURL()
				return Token{Kind: BadURL}
			}
			buf.WriteRune(l.lexEscape())
		default:
			buf.WriteRune(c)
		}
	}
}

// lexBadURL consumes the remnants of a malformed url, up to & including ')'.
func (l *Lexer) lexBadURL() {
	for {
		c := l.next()

		switch {
		case c == ')' || c == emptyRune:
			return
		case isValidEscape(c, l.peek(0)):
			l.lexEscape()
		}
	}
}

// lexNumeric consumes a number, percentage or dimension token.
func (l *Lexer) lexNumeric() Token {
	value, repr := l.lexNumber()

	if startsIdent(l.peek(0), l.peek(1), l.peek(2)) {
		return Token{Kind: Dimension, Number: value, Repr: repr, Unit: l.lexName()}
	}

	if l.peek(0) == '%' {
		l.skip(1)
		return Token{Kind: Percentage, Number: value, Repr: repr}
	}

	return Token{Kind: Number, Number: value, Repr: repr}
}

// lexNumber consumes a number, returning its value & verbatim representation.
func (l *Lexer) lexNumber() (value NumericValue, repr string) {
	var buf strings.Builder
	integer := true

	if c := l.peek(0); c == '+' || c == '-' {
		buf.WriteRune(l.next())
	}
	l.acceptDigits(&buf)

	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		integer = false
		buf.WriteRune(l.next())
		l.acceptDigits(&buf)
	}

	if c := l.peek(0); c == 'e' || c == 'E' {
		switch next := l.peek(1); {
		case isDigit(next):
			integer = false
			buf.WriteRune(l.next())
			l.acceptDigits(&buf)
		case (next == '+' || next == '-') && isDigit(l.peek(2)):
			integer = false
			buf.WriteRune(l.next())
			buf.WriteRune(l.next())
			l.acceptDigits(&buf)
		}
	}

	repr = buf.String()
	if integer {
		if v, err := strconv.ParseInt(repr, 10, 64); err == nil {
			return Integer(v), repr
		}
	}

	v, _ := strconv.ParseFloat(repr, 64)

	return Float(v), repr
}

// lexUnicodeRange consumes a unicode-range token.
//
// This assumes that "u+" has been consumed.
func (l *Lexer) lexUnicodeRange() Token {
	var digits []rune
	for len(digits) < 6 && IsHexDigit(l.peek(0)) {
		digits = append(digits, l.next())
	}

	hexLen := len(digits)
	for len(digits) < 6 && l.peek(0) == '?' {
		digits = append(digits, l.next())
	}

	var start, end uint64
	if len(digits) > hexLen {
		// Wildcards span the range; "?" is 0 for the start & F for the end.
		start, _ = strconv.ParseUint(strings.ReplaceAll(string(digits), "?", "0"), 16, 32)
		end, _ = strconv.ParseUint(strings.ReplaceAll(string(digits), "?", "F"), 16, 32)
	} else {
		start, _ = strconv.ParseUint(string(digits), 16, 32)
		end = start

		if l.peek(0) == '-' && IsHexDigit(l.peek(1)) {
			l.skip(1)

			var endDigits []rune
			for len(endDigits) < 6 && IsHexDigit(l.peek(0)) {
				endDigits = append(endDigits, l.next())
			}
			end, _ = strconv.ParseUint(string(endDigits), 16, 32)
		}
	}

	if end > maxCodePoint {
		end = maxCodePoint
	}
	if start > end {
		return Token{Kind: EmptyUnicodeRange}
	}

	return Token{Kind: UnicodeRange, Start: rune(start), End: rune(end)}
}

// acceptDigits consumes contiguous digits into buf.
func (l *Lexer) acceptDigits(buf *strings.Builder) {
	for isDigit(l.peek(0)) {
		buf.WriteRune(l.next())
	}
}

// acceptWhile consumes runes while the condition holds.
func (l *Lexer) acceptWhile(fn func(rune) bool) {
	for fn(l.peek(0)) {
		l.skip(1)
	}
}

// report records a lexical error for the token being scanned.
//
// Only the first error of a token is kept.
func (l *Lexer) report(msg string) {
	if l.err != nil {
		return
	}

	l.err = &Error{Message: msg, Pos: l.position()}
}

// next returns the next rune in the input, emptyRune at the end of the input.
func (l *Lexer) next() (r rune) {
	if r = l.peek(0); r != emptyRune {
		l.bufferIndex++
	}

	return
}

// peek returns the rune at offset n from the current position, without updating the index.
func (l *Lexer) peek(n int) rune {
	for l.bufferIndex+n >= len(l.buffer) {
		// Request data from the source.
		if l.Source(0) < 1 {
			return emptyRune
		}
	}

	return l.buffer[l.bufferIndex+n]
}

// skip advances over n runes.
func (l *Lexer) skip(n int) {
	for ; n > 0; n-- {
		l.next()
	}
}

// backup steps back one rune.
func (l *Lexer) backup() {
	if l.bufferIndex > 0 {
		l.bufferIndex--
	}
}

// position returns the byte offset of the current buffer position.
func (l *Lexer) position() (pos int) {
	pos = l.sourceIndex
	for _, r := range l.buffer[:l.bufferIndex] {
		pos += utf8.RuneLen(r)
	}

	return
}

// discard drops the buffer content before the current buffer index.
func (l *Lexer) discard() {
	l.sourceIndex = l.position()
	l.buffer = l.buffer[l.bufferIndex:]
	l.bufferIndex = 0
}

// Source runes from the source reader, preprocessing them.
//
// CR, CRLF & FF become LF; NUL becomes U+FFFD.
func (l *Lexer) Source(amount int) (sourced int) {
	if amount < defBufferSize {
		amount = defBufferSize
	}

	for sourced < amount {
		r, _, err := l.source.ReadRune()
		if err != nil {
			// Error can only be io.EOF
			break
		}

		skipLF := l.skipLF
		l.skipLF = false

		switch r {
		case '\n':
			if skipLF {
				continue
			}
		case '\r':
			r, l.skipLF = '\n', true
		case '\f':
			r = '\n'
		case emptyRune:
			r = replacement
		}

		l.buffer = append(l.buffer, r)
		sourced++
	}

	return
}

// startsIdent checks if the three code points would start an identifier.
func startsIdent(a, b, c rune) bool {
	switch {
	case a == '-':
		return IsNameStart(b) || isValidEscape(b, c)
	case IsNameStart(a):
		return true
	default:
		return isValidEscape(a, b)
	}
}

// startsNumber checks if the three code points would start a number.
func startsNumber(a, b, c rune) bool {
	switch a {
	case '+', '-':
		return isDigit(b) || (b == '.' && isDigit(c))
	case '.':
		return isDigit(b)
	default:
		return isDigit(a)
	}
}

// isValidEscape checks if the two code points are a valid escape.
func isValidEscape(a, b rune) bool { return a == '\\' && b != '\n' }

// isWhitespace return true for space, tab & newline; other newlines are preprocessed to '\n'.
func isWhitespace(r rune) bool { return r >= 0 && r < 256 && whitespace[r] }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsHexDigit returns true for an ASCII hex digit.
func IsHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

// IsNameStart returns true if the rune can start a name.
func IsNameStart(r rune) bool { return isLetter(r) || r >= 0x80 || r == '_' }

// IsName returns true if the rune is a name code point.
func IsName(r rune) bool { return IsNameStart(r) || isDigit(r) || r == '-' }

// IsNonPrintable returns true if the rune is non-printable.
func IsNonPrintable(r rune) bool {
	return (r >= 0 && r <= 0x08) || r == 0x0B || (r >= 0x0E && r <= 0x1F) || r == 0x7F
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}

	return true
}
