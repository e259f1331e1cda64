// Package main implements the main entry point for the SIC/XE instruction decoder
package main

import (
	"errors"
	"os"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/sicxedecode/internal/cli"
	"github.com/retroenv/sicxedecode/internal/config"
	"github.com/retroenv/sicxedecode/internal/processor"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			processor.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		}
		logger.Fatal(err.Error())
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	processor.PrintBanner(logger, opts, version, commit, date)

	cases, err := processor.GetCasesToProcess(opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	proc, err := processor.New(logger, opts, os.Stdout)
	if err != nil {
		logger.Fatal(err.Error())
	}

	if opts.Interactive() {
		if err := proc.Interactive(os.Stdin); err != nil {
			logger.Fatal(err.Error())
		}
		return
	}

	if err := proc.Run(cases); err != nil {
		logger.Error("Decoding failed", log.Err(err))
		os.Exit(1)
	}
}
