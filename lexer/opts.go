// SPDX-License-Identifier: MIT
package lexer

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

type (
	// Opts defines options for the Lexer's operations.
	Opts struct {
		Debug bool

		// TransformFunctionWhitespace tokenizes `name (` as a Function token, dropping the
		// whitespace between the name & the parenthesis.
		TransformFunctionWhitespace bool

		Logger logrus.FieldLogger
	}

	// Option defines the Lexer functional option type
	Option func(*Lexer)
)

// NewOpts configures the lexer's Opts.
func NewOpts() *Opts {
	return &Opts{
		Logger: logrus.New(),
	}
}

// Validate populates missing Opts entries with defaults.
func (o *Opts) Validate() {
	if o.Logger == nil {
		o.Logger = logrus.New()
	}
}

// WithOpts applies a full Opts value.
func WithOpts(o Opts) Option {
	return func(l *Lexer) {
		o.Validate()
		l.debug, l.transformFunctionWhitespace, l.logger = o.Debug, o.TransformFunctionWhitespace, o.Logger
	}
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithTransformFunctionWhitespace configures the transform function whitespace option.
func WithTransformFunctionWhitespace(transform bool) Option {
	return func(l *Lexer) { l.transformFunctionWhitespace = transform }
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// WithSource configures the source option.
func WithSource(source io.RuneReader) Option { return func(l *Lexer) { l.source = source } }

// WithString configures the source option from a string.
func WithString(input string) Option { return WithSource(strings.NewReader(input)) }
