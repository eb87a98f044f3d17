// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"strconv"

	"gitlab.com/fisherprime/csstree"
	"gitlab.com/fisherprime/csstree/lexer"
)

type (
	document struct {
		File       string   `json:"file"`
		Primitives []*node  `json:"primitives"`
		Errors     []string `json:"errors"`
	}

	node struct {
		Kind     string    `json:"kind"`
		Value    string    `json:"value,omitempty"`
		Number   string    `json:"number,omitempty"`
		Repr     string    `json:"repr,omitempty"`
		Unit     string    `json:"unit,omitempty"`
		Range    []rune    `json:"range,omitempty"`
		Args     [][]*node `json:"args,omitempty"`
		Children []*node   `json:"children,omitempty"`
	}
)

func newDocument(name string, result csstree.Result) *document {
	doc := &document{
		File:       name,
		Primitives: toNodes(result.Primitives),
		Errors:     make([]string, len(result.Errors)),
	}

	for index, err := range result.Errors {
		doc.Errors[index] = errorMessage(err)
	}

	return doc
}

func toNodes(primitives []csstree.Primitive) []*node {
	nodes := make([]*node, len(primitives))
	for index, prim := range primitives {
		nodes[index] = toNode(prim)
	}

	return nodes
}

func toNode(prim csstree.Primitive) *node {
	n := &node{Kind: prim.Kind()}

	switch p := prim.(type) {
	case csstree.Ident:
		n.Value = p.Value
	case csstree.AtKeyword:
		n.Value = p.Value
	case csstree.Hash:
		n.Value = p.Value
	case csstree.String:
		n.Value = p.Value
	case csstree.URL:
		n.Value = p.Value
	case csstree.Delim:
		n.Value = string(p.Value)
	case csstree.Number:
		n.Number, n.Repr = formatNumber(p.Value), p.Repr
	case csstree.Percentage:
		n.Number, n.Repr = formatNumber(p.Value), p.Repr
	case csstree.Dimension:
		n.Number, n.Repr, n.Unit = formatNumber(p.Value), p.Repr, p.Unit
	case csstree.UnicodeRange:
		n.Range = []rune{p.Start, p.End}
	case csstree.Function:
		n.Value = p.Name
		n.Args = make([][]*node, len(p.Args))
		for index, arg := range p.Args {
			n.Args[index] = toNodes(arg)
		}
	case csstree.BracketBlock:
		n.Children = toNodes(p.Values)
	case csstree.ParenBlock:
		n.Children = toNodes(p.Values)
	case csstree.BraceBlock:
		n.Children = toNodes(p.Values)
	}

	return n
}

func formatNumber(value lexer.NumericValue) string {
	if value.Integer {
		return strconv.FormatInt(value.Int, 10)
	}

	return strconv.FormatFloat(value.Float, 'g', -1, 64)
}

// errorMessage prefixes lexical errors with their position.
func errorMessage(err error) string {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return fmt.Sprintf("%s at %d", lexErr.Message, lexErr.Pos)
	}

	return err.Error()
}
