// SPDX-License-Identifier: MIT
package csstree

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestParseAll(t *testing.T) {
	inputs := []string{"a", "rect(1)", "(((x)))", "", "'b\n"}

	results, err := ParseAll(context.Background(), inputs,
		WithWorkers(2),
		WithModes(false, true),
		WithParserOptions(WithMaxDepth(2)),
	)
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("ParseAll() = %d results, want %d", len(results), len(inputs))
	}

	want := [][]Primitive{
		{Ident{Value: "a"}},
		{Function{Name: "rect", Args: [][]Primitive{{px(1, "1")}}}},
		nil,
		nil,
		{WhiteSpace{}},
	}
	for index := range want {
		if !reflect.DeepEqual(results[index].Primitives, want[index]) {
			t.Errorf("ParseAll()[%d] = %v, want %v", index, results[index].Primitives, want[index])
		}
	}

	if !errors.Is(results[2].Err, ErrNestingTooDeep) {
		t.Errorf("ParseAll()[2] error = %v, want %v", results[2].Err, ErrNestingTooDeep)
	}
	if len(results[4].Errors) != 2 {
		t.Errorf("ParseAll()[4] errors = %v, want 2", results[4].Errors)
	}
}

func TestParseAll_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := ParseAll(ctx, []string{"a", "b"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ParseAll() error = %v, want %v", err, context.Canceled)
	}
	if len(results) != 2 || results[0].Primitives != nil {
		t.Errorf("ParseAll() = %v, want unstarted results", results)
	}
}

func TestParseAll_empty(t *testing.T) {
	results, err := ParseAll(context.Background(), nil)
	if err != nil || len(results) != 0 {
		t.Errorf("ParseAll() = %v, %v", results, err)
	}
}

func Test_clamp(t *testing.T) {
	type args struct {
		value, lower, upper int
	}

	tests := []struct {
		name string
		args args
		want int
	}{
		{name: "below", args: args{0, 1, 4}, want: 1},
		{name: "within", args: args{3, 1, 4}, want: 3},
		{name: "above", args: args{9, 1, 4}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clamp(tt.args.value, tt.args.lower, tt.args.upper); got != tt.want {
				t.Errorf("clamp() = %v, want %v", got, tt.want)
			}
		})
	}
}
