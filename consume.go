// SPDX-License-Identifier: MIT
package csstree

import (
	"gitlab.com/fisherprime/csstree/lexer"
)

const quirksFunction = "rect"

// ConsumePrimitiveList consumes primitives up to the end of the input.
//
// Lexical errors do not stop the parse, see Parser.Errors. The only error returned is
// ErrNestingTooDeep, in which case no primitives are returned.
func (p *Parser) ConsumePrimitiveList() (primitives []Primitive, err error) {
	for {
		item := p.next()
		if p.discardable(item) {
			continue
		}
		if item.Token.Kind == lexer.EOF {
			return
		}

		p.pushback(item)

		var prim Primitive
		if prim, err = p.consumePrimitive(); err != nil {
			return nil, err
		}
		primitives = append(primitives, prim)
	}
}

// consumePrimitive consumes exactly one primitive, nested ones included.
func (p *Parser) consumePrimitive() (prim Primitive, err error) {
	item := p.next()

	var values []Primitive
	switch item.Token.Kind {
	case lexer.OpenBracket:
		values, err = p.consumeSimpleBlock(item, lexer.Token{Kind: lexer.CloseBracket})
		prim = BracketBlock{Values: values}
	case lexer.OpenParen:
		values, err = p.consumeSimpleBlock(item, lexer.Token{Kind: lexer.CloseParen})
		prim = ParenBlock{Values: values}
	case lexer.OpenBrace:
		values, err = p.consumeSimpleBlock(item, lexer.Token{Kind: lexer.CloseBrace})
		prim = BraceBlock{Values: values}
	case lexer.Function:
		prim, err = p.consumeFunction(item)
	default:
		prim = preservedToPrimitive(item.Token)
	}
	if err != nil {
		return nil, err
	}

	if p.cfg.Debug {
		p.cfg.Logger.Debugf("consumed primitive: %s at %d", prim.Kind(), item.Pos)
	}

	return
}

// consumeSimpleBlock consumes the contents of the block opened by opener, up to & including
// ending.
//
// A block left open at the end of the input is returned as is.
func (p *Parser) consumeSimpleBlock(opener lexer.Item, ending lexer.Token) (values []Primitive, err error) {
	defer p.leave()
	if err = p.enter(opener); err != nil {
		return
	}

	for {
		item := p.next()
		if p.discardable(item) {
			continue
		}
		if item.Token.Kind == lexer.EOF || item.Token == ending {
			return
		}

		p.pushback(item)

		var prim Primitive
		if prim, err = p.consumePrimitive(); err != nil {
			return nil, err
		}
		values = append(values, prim)
	}
}

// consumeFunction consumes the arguments of the function opened by opener, up to & including
// the closing parenthesis.
//
// Top level commas split the arguments, the last argument is kept even when empty.
func (p *Parser) consumeFunction(opener lexer.Item) (fn Function, err error) {
	defer p.leave()
	if err = p.enter(opener); err != nil {
		return
	}

	fn.Name = opener.Token.Value
	quirks := p.cfg.QuirksMode && equalFoldASCII(fn.Name, quirksFunction)

	var arg []Primitive
	for {
		item := p.next()
		if p.discardable(item) {
			continue
		}

		tok := item.Token
		switch {
		case tok.Kind == lexer.EOF, tok.Kind == lexer.CloseParen:
			fn.Args = append(fn.Args, arg)
			return
		case tok.Kind == lexer.Delim && tok.Delim == ',':
			fn.Args = append(fn.Args, arg)
			arg = nil
		case tok.Kind == lexer.Number:
			arg = append(arg, numberArgument(tok, quirks))
		default:
			p.pushback(item)

			var prim Primitive
			if prim, err = p.consumePrimitive(); err != nil {
				return Function{}, err
			}
			arg = append(arg, prim)
		}
	}
}

// numberArgument maps a Number token found in a function's arguments.
//
// In quirks mode the unitless lengths of `rect()` are read as pixels.
func numberArgument(tok lexer.Token, quirks bool) Primitive {
	if quirks {
		return Dimension{Value: tok.Number, Repr: tok.Repr, Unit: "px"}
	}

	return Number{Value: tok.Number, Repr: tok.Repr}
}

// equalFoldASCII compares two strings, ignoring the case of ASCII letters only.
func equalFoldASCII(s, t string) bool {
	if len(s) != len(t) {
		return false
	}

	for i := 0; i < len(s); i++ {
		if lowerASCII(s[i]) != lowerASCII(t[i]) {
			return false
		}
	}

	return true
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}
