// SPDX-License-Identifier: MIT
package csstree

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"gitlab.com/fisherprime/csstree/lexer"
)

func parse(t *testing.T, input string) []Primitive {
	t.Helper()

	prims, err := FromString(input, false, false).ConsumePrimitiveList()
	if err != nil {
		t.Fatalf("Parser.ConsumePrimitiveList(%q) error = %v", input, err)
	}

	return prims
}

func TestToCSS(t *testing.T) {
	tests := []struct {
		name       string
		primitives []Primitive
		want       string
	}{
		{name: "empty", want: ""},
		{
			name: "reference",
			primitives: []Primitive{
				num(42), WhiteSpace{},
				Function{Name: "foo", Args: [][]Primitive{
					{BracketBlock{Values: []Primitive{Ident{Value: "aa"}, WhiteSpace{}, ParenBlock{}, Ident{Value: "b"}}}},
					{WhiteSpace{}, Delim{Value: '-'}},
				}},
				BraceBlock{Values: []Primitive{WhiteSpace{}}},
			},
			want: "42 foo([aa ()b], -){ }",
		},
		{
			name:       "representation is preserved",
			primitives: []Primitive{Number{Value: lexer.Float(1), Repr: "1.0"}, Percentage{Value: lexer.Integer(5), Repr: "+5"}},
			want:       "1.0/**/+5%",
		},
		{
			name:       "missing representation",
			primitives: []Primitive{Dimension{Value: lexer.Float(0.5), Unit: "px"}},
			want:       "0.5px",
		},
		{
			name:       "quirks dimensions",
			primitives: []Primitive{Function{Name: "rect", Args: [][]Primitive{{px(1, "1")}, {px(2, "2")}}}},
			want:       "rect(1px,2px)",
		},
		{
			name:       "escapes",
			primitives: []Primitive{Ident{Value: "1a"}, WhiteSpace{}, String{Value: "a\"b\n"}, WhiteSpace{}, URL{Value: "a b)"}},
			want:       `\31 a "a\"b\a " url(a\20 b\))`,
		},
		{
			name:       "unit read as an exponent",
			primitives: []Primitive{Dimension{Value: lexer.Integer(1), Repr: "1", Unit: "e3"}},
			want:       `1\65 3`,
		},
		{
			name:       "unicode ranges",
			primitives: []Primitive{UnicodeRange{Start: 0x26, End: 0x26}, WhiteSpace{}, UnicodeRange{Start: 0, End: 0x7F}, WhiteSpace{}, EmptyUnicodeRange{}},
			want:       "U+26 U+0-7F U+1-0",
		},
		{
			name: "wildcard & comment openers",
			primitives: []Primitive{
				UnicodeRange{Start: 1, End: 1}, Delim{Value: '?'}, WhiteSpace{},
				Delim{Value: '<'}, Delim{Value: '!'}, CDC{}, WhiteSpace{},
				Delim{Value: '<'}, Delim{Value: '!'}, Delim{Value: '-'}, Delim{Value: '-'},
			},
			want: "U+1/**/? <!/**/--> <!/**/-/**/-",
		},
		{
			name:       "ident before a paren block",
			primitives: []Primitive{Ident{Value: "a"}, ParenBlock{}},
			want:       "a/**/()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCSS(tt.primitives); got != tt.want {
				t.Errorf("ToCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToCSS_reparse(t *testing.T) {
	inputs := []string{
		"42 foo([aa ()b], -){\n  }",
		"a/**/b 1/**/2 -/**/a #/**/x @/**/y ./**/5 +/**/3",
		"50% 12.5px 100\\65 3 1e3 .5em",
		`"q\"u\\o" 'x\a y' url(a\)b) url( "c d" )`,
		"U+26 u+0-7F u+4?? u+30-20",
		"a/**/(b) f(,) g() <!-- --> : ; ) ] }",
		"-bar my\\2603 \\31 x -\\31 y",
		"rect(1,2) [{(deep)}]",
		"U+1/**/? u+1-0/**/? u+a-f/**/??",
		"<!/**/--> <!-/**/-> <!/**/-/**/-",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want := parse(t, input)
			css := ToCSS(want)

			if got := parse(t, css); !Equal(got, want) {
				t.Errorf("parse(ToCSS()) = %s, want %s (css %q)", spew.Sdump(got), spew.Sdump(want), css)
			}
		})
	}
}

func TestToCSS_reparseTransformed(t *testing.T) {
	inputs := []string{"url (x) f (y)", "URL  ( 'q' ) a (b)"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			want, err := FromString(input, true, false).ConsumePrimitiveList()
			if err != nil {
				t.Fatalf("Parser.ConsumePrimitiveList() error = %v", err)
			}
			css := ToCSS(want)

			if got := parse(t, css); !Equal(got, want) {
				t.Errorf("parse(ToCSS()) = %s, want %s (css %q)", spew.Sdump(got), spew.Sdump(want), css)
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	prims := []Primitive{Function{Name: "f", Args: [][]Primitive{{num(1)}, nil}}}

	var buffer bytes.Buffer
	if err := Serialize(&buffer, prims); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if got, want := buffer.String(), ToCSS(prims); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}
