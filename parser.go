// SPDX-License-Identifier: MIT
package csstree

// REF: http://dev.w3.org/csswg/css3-syntax/#tree-construction

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/csstree/lexer"
)

type (
	// TokenSource yields lexical tokens, one per call, each optionally paired with a lexical
	// error.
	//
	// Once exhausted a TokenSource must keep returning EOF Items.
	TokenSource interface {
		Next() lexer.Item
	}

	// Parser builds Primitive trees from a TokenSource.
	//
	// A Parser holds the state of a single parse & is not safe for concurrent use.
	Parser struct {
		cfg Config

		src TokenSource

		// current is the lookahead slot, occupied when buffered is set.
		current  lexer.Item
		buffered bool

		// errs holds lexical & parse errors in encounter order.
		errs []error

		depth int
	}
)

// New instantiates a Parser reading from src.
func New(src TokenSource, options ...Option) *Parser {
	return &Parser{cfg: newConfig(options...), src: src}
}

// newConfig applies options over the default Config.
func newConfig(options ...Option) Config {
	p := Parser{cfg: *DefConfig()}
	for _, opt := range options {
		opt(&p)
	}
	p.cfg.Validate()

	return p.cfg
}

// FromString instantiates a Parser over CSS source text.
//
// The quirksMode argument takes precedence over a WithQuirksMode option.
func FromString(input string, transformFunctionWhitespace, quirksMode bool, options ...Option) *Parser {
	opts := make([]Option, 0, len(options)+1)
	opts = append(opts, options...)
	opts = append(opts, WithQuirksMode(quirksMode))

	p := New(nil, opts...)

	lexOpts := lexer.NewOpts()
	lexOpts.Debug, lexOpts.TransformFunctionWhitespace = p.cfg.Debug, transformFunctionWhitespace
	lexOpts.Logger = p.cfg.Logger
	p.src = lexer.New(lexer.WithString(input), lexer.WithOpts(*lexOpts))

	return p
}

// Config retrieves a copy of the Parser's Config.
func (p *Parser) Config() Config { return p.cfg }

// Errors retrieves the errors recorded so far, in encounter order.
//
// Lexical errors are *lexer.Error values, dropped tokens are reported as *Error values.
func (p *Parser) Errors() []error { return slices.Clone(p.errs) }

// next consumes the buffered Item, or pulls one from the source.
func (p *Parser) next() (item lexer.Item) {
	if p.buffered {
		p.buffered = false
		return p.current
	}

	item = p.src.Next()
	if item.Err != nil {
		p.errs = append(p.errs, item.Err)
	}

	return
}

// pushback returns an Item to the lookahead slot.
//
// The slot holds a single Item, pushing back twice without a call to next is a bug.
func (p *Parser) pushback(item lexer.Item) {
	if p.buffered {
		panic(fmt.Errorf("%w: %s over %s", ErrDoublePushback, item.Token, p.current.Token))
	}

	p.current, p.buffered = item, true
}

// discardable reports whether an Item is skipped by the consumers.
//
// Comments are dropped silently, malformed strings & urls are recorded first.
func (p *Parser) discardable(item lexer.Item) bool {
	switch item.Token.Kind {
	case lexer.Comment:
		return true
	case lexer.BadString, lexer.BadURL:
		p.errs = append(p.errs, &Error{Err: ErrUnexpectedToken, Token: item.Token, Pos: item.Pos})
		return true
	}

	return false
}

// enter tracks the nesting of a block or function opened at pos.
//
// Callers must defer leave, even on failure.
func (p *Parser) enter(item lexer.Item) (err error) {
	p.depth++
	if p.depth <= p.cfg.MaxDepth {
		return
	}

	// Skip expensive operation if not debug.
	if p.cfg.Debug {
		p.cfg.Logger.Debugf("nesting limit reached by: %s \nerrors: %s", spew.Sprint(item), spew.Sprint(p.errs))
	}

	return fmt.Errorf("%w: %d levels at %d", ErrNestingTooDeep, p.depth, item.Pos)
}

func (p *Parser) leave() { p.depth-- }
