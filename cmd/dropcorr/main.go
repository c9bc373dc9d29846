// SPDX-License-Identifier: MIT

// Command dropcorr simulates dropout in bivariate normal data and compares
// naive, complete-case and weighted correlation and regression estimates.
//
// Usage:
//
//	dropcorr [--config file.yaml] [--seed N | --random-seed] [--samples N]
//	         [--out DIR] [--plots] [--report FILE] [--log-level LEVEL]
//
// Experiment parameters can also come from DROPCORR_* environment variables.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/dropcorr/config"
	"github.com/katalvlaran/dropcorr/experiment"
	"github.com/katalvlaran/dropcorr/figure"
	"github.com/katalvlaran/dropcorr/logging"
	"github.com/katalvlaran/dropcorr/report"
)

// options are the CLI-only settings; experiment parameters live in config.
type options struct {
	out        string
	plots      bool
	reportFile string
	logLevel   string
	dev        bool
	randomSeed bool
	headRows   int
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "dropcorr:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("dropcorr", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)

	var o options
	fs.StringVar(&o.out, "out", ".", "directory for figures and relative report paths")
	fs.BoolVar(&o.plots, "plots", false, "write "+figure.CleanFile+" and "+figure.DroppedFile)
	fs.StringVar(&o.reportFile, "report", "", "write a YAML summary to this file (- for stdout)")
	fs.StringVar(&o.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.BoolVar(&o.dev, "dev", true, "human-readable console logs instead of JSON")
	fs.BoolVar(&o.randomSeed, "random-seed", false, "seed from the clock; overrides --seed")
	fs.IntVar(&o.headRows, "head", report.DefaultHeadRows, "data rows to print (0 hides the table)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger, err := logging.NewTo(stderr, o.logLevel, o.dev)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	if o.randomSeed {
		cfg.Seed = uint64(time.Now().UnixNano())
		logger.Info("clock seed", zap.Uint64("seed", cfg.Seed))
	}

	res, err := experiment.Run(cfg, logger)
	if err != nil {
		return err
	}
	if o.headRows < 0 {
		o.headRows = 0
	}
	if err = report.RenderTables(stdout, res, report.WithHeadRows(o.headRows)); err != nil {
		return err
	}

	if o.plots || (o.reportFile != "" && o.reportFile != "-") {
		if err = os.MkdirAll(o.out, 0o755); err != nil {
			return err
		}
	}
	if o.plots {
		paths, err := figure.SaveAll(o.out, res)
		if err != nil {
			return err
		}
		logger.Info("figures written", zap.Strings("paths", paths))
	}
	if o.reportFile != "" {
		if err = writeReport(o, stdout, res); err != nil {
			return err
		}
	}

	return nil
}

func writeReport(o options, stdout io.Writer, res *experiment.Result) (err error) {
	if o.reportFile == "-" {
		return report.WriteYAML(stdout, res)
	}
	path := o.reportFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(o.out, path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return report.WriteYAML(f, res)
}
