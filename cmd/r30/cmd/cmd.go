// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"

	"github.com/cellhash/r30/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	optionNameVerbosity = "verbosity"
)

type command struct {
	root *cobra.Command
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "r30",
			Short:         "R30 cellular automaton hash",
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}

	for _, o := range opts {
		o(c)
	}

	c.initGlobalFlags()
	c.initHashCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.String(optionNameVerbosity, "info", "log verbosity level 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=trace")
}

func newLogger(cmd *cobra.Command, verbosity string) (logging.Logger, error) {
	var logger logging.Logger
	switch verbosity {
	case "0", "silent":
		logger = logging.New(io.Discard, 0)
	case "1", "error":
		logger = logging.New(cmd.ErrOrStderr(), logrus.ErrorLevel)
	case "2", "warn":
		logger = logging.New(cmd.ErrOrStderr(), logrus.WarnLevel)
	case "3", "info":
		logger = logging.New(cmd.ErrOrStderr(), logrus.InfoLevel)
	case "4", "debug":
		logger = logging.New(cmd.ErrOrStderr(), logrus.DebugLevel)
	case "5", "trace":
		logger = logging.New(cmd.ErrOrStderr(), logrus.TraceLevel)
	default:
		return nil, fmt.Errorf("unknown verbosity level %q", verbosity)
	}
	return logger, nil
}
