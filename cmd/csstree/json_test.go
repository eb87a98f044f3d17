// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"reflect"
	"testing"

	"gitlab.com/fisherprime/csstree"
	"gitlab.com/fisherprime/csstree/lexer"
)

func Test_toNode(t *testing.T) {
	tests := []struct {
		name string
		prim csstree.Primitive
		want *node
	}{
		{name: "delim", prim: csstree.Delim{Value: ','}, want: &node{Kind: "Delim", Value: ","}},
		{
			name: "dimension",
			prim: csstree.Dimension{Value: lexer.Float(1.5), Repr: "1.50", Unit: "em"},
			want: &node{Kind: "Dimension", Number: "1.5", Repr: "1.50", Unit: "em"},
		},
		{
			name: "unicode range",
			prim: csstree.UnicodeRange{Start: 0x26, End: 0x7F},
			want: &node{Kind: "UnicodeRange", Range: []rune{0x26, 0x7F}},
		},
		{name: "empty unicode range", prim: csstree.EmptyUnicodeRange{}, want: &node{Kind: "EmptyUnicodeRange"}},
		{
			name: "brace block",
			prim: csstree.BraceBlock{Values: []csstree.Primitive{csstree.Colon{}}},
			want: &node{Kind: "BraceBlock", Children: []*node{{Kind: "Colon"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toNode(tt.prim); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("toNode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_errorMessage(t *testing.T) {
	if got, want := errorMessage(&lexer.Error{Message: "invalid escape", Pos: 3}), "invalid escape at 3"; got != want {
		t.Errorf("errorMessage() = %q, want %q", got, want)
	}
	if got, want := errorMessage(errors.New("x")), "x"; got != want {
		t.Errorf("errorMessage() = %q, want %q", got, want)
	}
}
