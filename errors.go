// SPDX-License-Identifier: MIT
package csstree

import (
	"errors"
	"fmt"

	"gitlab.com/fisherprime/csstree/lexer"
)

// Parsing errors.
var (
	// ErrDoublePushback is the panic value of a pushback onto an occupied lookahead slot.
	ErrDoublePushback = errors.New("pushback while a token is buffered")
	// ErrNotPreserved is the panic value of mapping a token with no primitive equivalent.
	ErrNotPreserved = errors.New("token is not a preserved token")

	ErrNestingTooDeep  = errors.New("nesting too deep")
	ErrUnexpectedToken = errors.New("unexpected token")

	ErrPanicked = errors.New("recovery from panic")
)

// Error is a recoverable parse error recorded alongside the lexical errors.
type Error struct {
	Err   error
	Token lexer.Token
	Pos   int
}

// Error returns the error message.
func (e *Error) Error() string { return fmt.Sprintf("%v %s at %d", e.Err, e.Token, e.Pos) }

// Unwrap returns the underlying sentinel.
func (e *Error) Unwrap() error { return e.Err }
