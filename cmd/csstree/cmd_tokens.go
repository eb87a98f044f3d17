// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/csstree/lexer"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a CSS file (or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			src := bufio.NewReader(cmd.InOrStdin())
			if len(args) > 0 && args[0] != stdinName {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("read %s: %w", args[0], err)
				}
				defer file.Close()

				src = bufio.NewReader(file)
			}

			l := lexer.New(
				lexer.WithSource(src),
				lexer.WithOpts(lexer.Opts{
					Debug:                       cfg.Debug,
					TransformFunctionWhitespace: cfg.TransformFunctionWhitespace,
					Logger:                      cfg.logger(cmd.ErrOrStderr()),
				}),
			)

			out := bufio.NewWriter(cmd.OutOrStdout())
			for {
				item := l.Next()
				if _, err := fmt.Fprintln(out, item); err != nil {
					return err
				}

				if item.Token.Kind == lexer.EOF {
					return out.Flush()
				}
			}
		},
	}
}
