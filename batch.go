// SPDX-License-Identifier: MIT
package csstree

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/exp/constraints"
)

type (
	// Result holds the outcome of parsing one input of a batch.
	Result struct {
		Primitives []Primitive

		// Errors holds the recoverable errors, see Parser.Errors.
		Errors []error

		// Err is set when the input could not be parsed.
		Err error
	}

	// BatchOption defines the ParseAll functional option type.
	BatchOption func(*batch)

	batch struct {
		workers int

		transformFunctionWhitespace bool
		quirksMode                  bool

		options []Option
		cfg     Config
	}
)

// WithWorkers configures the number of inputs parsed concurrently.
func WithWorkers(workers int) BatchOption { return func(b *batch) { b.workers = workers } }

// WithModes configures the modes every input is parsed with, see FromString.
func WithModes(transformFunctionWhitespace, quirksMode bool) BatchOption {
	return func(b *batch) {
		b.transformFunctionWhitespace, b.quirksMode = transformFunctionWhitespace, quirksMode
	}
}

// WithParserOptions configures the options every Parser is created with.
func WithParserOptions(options ...Option) BatchOption {
	return func(b *batch) { b.options = append(b.options, options...) }
}

// ParseAll parses independent inputs concurrently, one Parser per input.
//
// Results are returned in input order. On context cancelation the inputs not yet started are
// left with a zero Result & the context's error is returned.
func ParseAll(ctx context.Context, inputs []string, options ...BatchOption) (results []Result, err error) {
	b := &batch{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range options {
		opt(b)
	}

	b.cfg = newConfig(b.options...)
	results = make([]Result, len(inputs))
	if len(inputs) < 1 {
		return
	}

	var pool *ants.Pool
	if pool, err = ants.NewPool(clamp(b.workers, 1, len(inputs)), ants.WithLogger(b.cfg.Logger)); err != nil {
		return
	}
	defer pool.Release()

	wg := new(sync.WaitGroup)
	defer wg.Wait()

	for index := range inputs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		index := index
		wg.Add(1)
		if err = pool.Submit(func() {
			defer wg.Done()
			results[index] = b.parse(inputs[index])
		}); err != nil {
			wg.Done()
			return
		}
	}

	if b.cfg.Debug {
		b.cfg.Logger.Debugf("submitted %d inputs to %d workers", len(inputs), pool.Cap())
	}

	return
}

// parse runs a single Parser, reporting a panic as the Result's error.
func (b *batch) parse(input string) (result Result) {
	p := FromString(input, b.transformFunctionWhitespace, b.quirksMode, WithConfig(&b.cfg))

	defer func() {
		if r := recover(); r != nil {
			result = Result{Errors: p.Errors(), Err: fmt.Errorf("%w: %v", ErrPanicked, r)}
		}
	}()

	result.Primitives, result.Err = p.ConsumePrimitiveList()
	result.Errors = p.Errors()

	return
}

func clamp[T constraints.Integer](value, lower, upper T) T {
	switch {
	case value < lower:
		return lower
	case value > upper:
		return upper
	}

	return value
}
