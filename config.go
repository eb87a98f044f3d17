// SPDX-License-Identifier: MIT
package csstree

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Parser's operations.
	Config struct {
		// Logger for Parser messages.
		//
		// Preferring a public field to allow for sharing.
		Logger logrus.FieldLogger
		Debug  bool

		// QuirksMode enables the legacy unitless lengths of `rect()`.
		QuirksMode bool

		// MaxDepth caps the nesting of blocks & functions.
		MaxDepth int
	}

	// Option defines the Parser functional option type.
	Option func(*Parser)
)

// DefMaxDepth is the default nesting limit.
const DefMaxDepth = 512

// DefConfig obtains the package's default Parser options.
func DefConfig() *Config {
	return &Config{
		Logger:   logrus.New(),
		Debug:    false,
		MaxDepth: DefMaxDepth,
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.MaxDepth < 1 {
		c.MaxDepth = DefMaxDepth
	}
}

// WithConfig configures the Parser Config.
//
// The Config is copied; later changes to cfg do not affect the Parser.
func WithConfig(cfg *Config) Option {
	return func(p *Parser) {
		if cfg == nil {
			return
		}
		p.cfg = *cfg
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(p *Parser) { p.cfg.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(p *Parser) { p.cfg.Debug = debug } }

// WithQuirksMode configures the quirks mode option.
func WithQuirksMode(quirks bool) Option { return func(p *Parser) { p.cfg.QuirksMode = quirks } }

// WithMaxDepth configures the nesting limit.
func WithMaxDepth(depth int) Option { return func(p *Parser) { p.cfg.MaxDepth = depth } }
