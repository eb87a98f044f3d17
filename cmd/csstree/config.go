// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/csstree"
)

// config holds the CLI settings, read from a YAML file & overridden by flags.
type config struct {
	Debug                       bool   `yaml:"debug"`
	QuirksMode                  bool   `yaml:"quirks_mode"`
	TransformFunctionWhitespace bool   `yaml:"transform_function_whitespace"`
	MaxDepth                    int    `yaml:"max_depth"`
	Format                      string `yaml:"format"`
	Workers                     int    `yaml:"workers"`
	Strict                      bool   `yaml:"strict"`
}

func defaults() *config {
	return &config{
		MaxDepth: csstree.DefMaxDepth,
		Format:   formatJSON,
	}
}

// loadConfig reads the configuration file at path, an empty path yields the defaults.
func loadConfig(path string) (*config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// resolveConfig loads the --config file & applies the flags set on the command line.
func resolveConfig(cmd *cobra.Command) (*config, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("transform-function-whitespace") {
		cfg.TransformFunctionWhitespace, _ = flags.GetBool("transform-function-whitespace")
	}
	if f := flags.Lookup("quirks"); f != nil && f.Changed {
		cfg.QuirksMode, _ = flags.GetBool("quirks")
	}
	if f := flags.Lookup("max-depth"); f != nil && f.Changed {
		cfg.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format, _ = flags.GetString("format")
	}
	if f := flags.Lookup("workers"); f != nil && f.Changed {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if f := flags.Lookup("strict"); f != nil && f.Changed {
		cfg.Strict, _ = flags.GetBool("strict")
	}

	return cfg, nil
}

// logger creates the CLI's logger, writing to w.
func (c *config) logger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if c.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}
