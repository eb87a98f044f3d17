// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/csstree"
)

// Output formats.
const (
	formatJSON = "json"
	formatCSS  = "css"
	formatDump = "dump"
)

const stdinName = "-"

var errStrict = errors.New("inputs have errors")

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse CSS values into primitives",
		Long:  "Parse each file (or stdin) as a list of component values & print the resulting primitives.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			switch cfg.Format {
			case formatJSON, formatCSS, formatDump:
			default:
				return fmt.Errorf("unknown format: %s", cfg.Format)
			}

			names, inputs, err := readInputs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			logger := cfg.logger(cmd.ErrOrStderr())

			options := []csstree.BatchOption{
				csstree.WithModes(cfg.TransformFunctionWhitespace, cfg.QuirksMode),
				csstree.WithParserOptions(
					csstree.WithLogger(logger),
					csstree.WithDebug(cfg.Debug),
					csstree.WithMaxDepth(cfg.MaxDepth),
				),
			}
			if cfg.Workers > 0 {
				options = append(options, csstree.WithWorkers(cfg.Workers))
			}

			results, err := csstree.ParseAll(cmd.Context(), inputs, options...)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			return writeResults(cmd.OutOrStdout(), logger, cfg, names, results)
		},
	}

	cmd.Flags().Bool("quirks", false, "enable quirks mode")
	cmd.Flags().Int("max-depth", csstree.DefMaxDepth, "maximum nesting of blocks & functions")
	cmd.Flags().StringP("format", "f", formatJSON, "output format (json, css, dump)")
	cmd.Flags().Int("workers", 0, "inputs parsed concurrently (default GOMAXPROCS)")
	cmd.Flags().Bool("strict", false, "fail when an input has errors")

	return cmd
}

// readInputs reads every named file, stdin when none or "-" is given.
func readInputs(stdin io.Reader, args []string) (names, inputs []string, err error) {
	if len(args) < 1 {
		args = []string{stdinName}
	}

	for _, name := range args {
		var data []byte
		if name == stdinName {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", name, err)
		}

		names, inputs = append(names, name), append(inputs, string(data))
	}

	return
}

func writeResults(w io.Writer, logger logrus.FieldLogger, cfg *config, names []string, results []csstree.Result) (err error) {
	var failed error
	errCount := 0

	for index, result := range results {
		name := names[index]
		errCount += len(result.Errors)

		if result.Err != nil {
			logger.WithField("file", name).Error(result.Err)
			failed = fmt.Errorf("%s: %w", name, result.Err)
			continue
		}

		switch cfg.Format {
		case formatJSON:
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			err = enc.Encode(newDocument(name, result))
		case formatCSS:
			logErrors(logger, name, result.Errors)
			if err = csstree.Serialize(w, result.Primitives); err == nil {
				_, err = fmt.Fprintln(w)
			}
		case formatDump:
			logErrors(logger, name, result.Errors)
			spew.Fdump(w, result.Primitives)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}

	if failed != nil {
		return failed
	}
	if cfg.Strict && errCount > 0 {
		return fmt.Errorf("%w: %d", errStrict, errCount)
	}

	return
}

func logErrors(logger logrus.FieldLogger, name string, errs []error) {
	for _, err := range errs {
		logger.WithField("file", name).Warn(errorMessage(err))
	}
}
