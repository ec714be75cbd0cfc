// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cellhash/r30/pkg/r30"
	"github.com/spf13/cobra"
)

func (c *command) initHashCmd() {
	optionNameInputFile := "input-file"
	cmd := &cobra.Command{
		Use:   "hash [text ...]",
		Short: "Print the R30 digest of the given text, a file or stdin",
		Long: `Print the R30 digest of the given text, a file or stdin.

Each text argument is hashed on its own and printed as one lowercase hex
digest per line. With --input-file the file contents are hashed instead;
with no arguments at all, stdin is hashed.`,
		Example: `  r30 hash "hello, world"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := cmd.Flags().GetString(optionNameVerbosity)
			if err != nil {
				return fmt.Errorf("get verbosity: %w", err)
			}
			v = strings.ToLower(v)
			logger, err := newLogger(cmd, v)
			if err != nil {
				return fmt.Errorf("new logger: %w", err)
			}

			inputFileName, err := cmd.Flags().GetString(optionNameInputFile)
			if err != nil {
				return fmt.Errorf("get input file name: %w", err)
			}

			if inputFileName != "" {
				reader, err := os.Open(inputFileName)
				if err != nil {
					return fmt.Errorf("open input file: %w", err)
				}
				defer reader.Close()

				logger.Debugf("hashing file %q", inputFileName)
				d, err := r30.SumReader(reader)
				if err != nil {
					logger.Errorf("hash input file: %v", err)
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d.Hex())
				return nil
			}

			if len(args) == 0 {
				logger.Debug("hashing stdin")
				d, err := r30.SumReader(cmd.InOrStdin())
				if err != nil {
					logger.Errorf("hash stdin: %v", err)
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), d.Hex())
				return nil
			}

			for _, text := range args {
				fmt.Fprintln(cmd.OutOrStdout(), r30.SumString(text))
			}
			return nil
		},
	}
	cmd.Flags().String(optionNameInputFile, "", "hash the contents of this file")
	c.root.AddCommand(cmd)
}
