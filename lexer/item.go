// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// Item pairs a lexed Token with the lexical error encountered while scanning it, if any.
	Item struct {
		Token Token
		Err   *Error // Non-fatal; the Token is still usable.
		Pos   int    // The starting position, (in bytes) of this Item
	}

	// Error is a lexical error reported alongside a token.
	//
	// Lexical errors never stop tokenization.
	Error struct {
		Message string
		Pos     int
	}
)

// Error returns the error message.
func (e *Error) Error() string { return e.Message }

// String is the fmt.Stringer implementation for Item.
func (i Item) String() string {
	if i.Err != nil {
		return fmt.Sprintf("%d %s (%s)", i.Pos, i.Token, i.Err.Message)
	}

	return fmt.Sprintf("%d %s", i.Pos, i.Token)
}
